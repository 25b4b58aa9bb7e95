// Package forms validates the contact form and drives its submission.
package forms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/model"
	"github.com/Its-donkey/portfolio/internal/ui/schedule"
	"github.com/Its-donkey/portfolio/logging"
)

// Status messages shown above the form.
const (
	MsgInvalid = "Please fix the errors above and try again."
	MsgSuccess = "Thank you! Your message has been sent successfully."
	MsgFailed  = "Sorry, something went wrong. Please try again later."
	BusyLabel  = "Sending..."
)

// StatusKind distinguishes form-level messages.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// ErrMissingField is returned by NewForm when a field control is absent.
var ErrMissingField = errors.New("forms: missing field control")

// Form owns the contact form's inline errors, status message and submission.
type Form struct {
	doc       dom.Document
	form      dom.Element
	inputs    map[Field]dom.Element
	submit    dom.Element
	sched     schedule.Scheduler
	submitter Submitter
	logger    *logging.Logger
	dismiss   time.Duration
	now       func() time.Time

	fieldErrors map[Field]dom.Element
	status      dom.Element
	statusKind  StatusKind
	dismissing  schedule.Timer
	submitting  bool
	label       string
}

// Options configures a Form.
type Options struct {
	Document  dom.Document
	Form      dom.Element
	Inputs    map[Field]dom.Element
	Submit    dom.Element
	Scheduler schedule.Scheduler
	Submitter Submitter
	Logger    *logging.Logger
	// DismissAfter is how long a success message stays visible.
	DismissAfter time.Duration
	Now          func() time.Time
}

// NewForm checks that every field control is present and returns a Form.
func NewForm(opts Options) (*Form, error) {
	for _, f := range Fields {
		if opts.Inputs[f] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Form{
		doc:         opts.Document,
		form:        opts.Form,
		inputs:      opts.Inputs,
		submit:      opts.Submit,
		sched:       opts.Scheduler,
		submitter:   opts.Submitter,
		logger:      opts.Logger,
		dismiss:     opts.DismissAfter,
		now:         now,
		fieldErrors: make(map[Field]dom.Element),
	}, nil
}

// Blur validates one field and shows or clears its inline error.
func (f *Form) Blur(field Field) bool {
	input, ok := f.inputs[field]
	if !ok {
		return true
	}
	if err := Validate(field, input.Value()); err != nil {
		f.showFieldError(field, err.(*FieldError).Message)
		return false
	}
	f.clearFieldError(field)
	return true
}

// Input clears the field's error as soon as the user edits it.
func (f *Form) Input(field Field) {
	if _, ok := f.inputs[field]; ok {
		f.clearFieldError(field)
	}
}

// FieldError returns the inline error text shown for field.
func (f *Form) FieldError(field Field) (string, bool) {
	el, ok := f.fieldErrors[field]
	if !ok {
		return "", false
	}
	return el.Text(), true
}

// Status returns the current form-level message.
func (f *Form) Status() (StatusKind, string, bool) {
	if f.status == nil {
		return "", "", false
	}
	return f.statusKind, f.status.Text(), true
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.submitting }

// Submit validates every field and hands a valid form to the submitter.
func (f *Form) Submit() {
	if f.submitting {
		return
	}

	values := f.values()
	errs := ValidateAll(values)
	for _, field := range Fields {
		if fe, bad := errs[field]; bad {
			f.showFieldError(field, fe.Message)
		} else {
			f.clearFieldError(field)
		}
	}
	if len(errs) > 0 {
		f.showStatus(StatusError, MsgInvalid)
		f.logger.Debug("form", "submission rejected", map[string]any{"invalid": len(errs)})
		return
	}

	msg := Message{
		ID:      uuid.NewString(),
		Name:    values[FieldName],
		Email:   values[FieldEmail],
		Subject: values[FieldSubject],
		Body:    values[FieldMessage],
		SentAt:  f.now(),
	}
	f.setBusy(true)
	f.submitter.Submit(context.Background(), msg, f.complete)
}

func (f *Form) complete(receipt Receipt, err error) {
	if err != nil {
		f.setBusy(false)
		f.showStatus(StatusError, MsgFailed)
		f.logger.Error("form", "submission failed", err, nil)
		return
	}
	for _, field := range Fields {
		f.inputs[field].SetValue("")
	}
	f.setBusy(false)
	f.showStatus(StatusSuccess, MsgSuccess)
	for _, field := range Fields {
		f.clearFieldError(field)
	}
	f.logger.Info("form", "message sent", map[string]any{
		"message_id": receipt.MessageID,
		"receipt_id": receipt.ID,
	})
}

func (f *Form) values() map[Field]string {
	out := make(map[Field]string, len(Fields))
	for _, field := range Fields {
		out[field] = f.inputs[field].Value()
	}
	return out
}

func (f *Form) setBusy(busy bool) {
	f.submitting = busy
	if f.submit == nil {
		return
	}
	if busy {
		f.label = f.submit.Text()
		f.submit.SetDisabled(true)
		f.submit.SetText(BusyLabel)
		f.submit.AddClass(model.BusyClass)
		return
	}
	f.submit.SetDisabled(false)
	f.submit.SetText(f.label)
	f.submit.RemoveClass(model.BusyClass)
}

func (f *Form) showFieldError(field Field, message string) {
	input := f.inputs[field]
	input.AddClass(model.ErrorClass)
	input.SetStyle("border-color", "var(--error-color)")

	el, ok := f.fieldErrors[field]
	if !ok {
		el = f.doc.Create("div")
		el.AddClass(model.FieldErrorClass)
		el.SetStyle("color", "var(--error-color)")
		el.SetStyle("font-size", "var(--font-size-sm)")
		el.SetStyle("margin-top", "var(--spacing-xs)")
		if parent := input.Parent(); parent != nil {
			parent.Append(el)
		}
		f.fieldErrors[field] = el
	}
	el.SetText(message)
}

func (f *Form) clearFieldError(field Field) {
	input := f.inputs[field]
	input.RemoveClass(model.ErrorClass)
	input.SetStyle("border-color", "")
	if el, ok := f.fieldErrors[field]; ok {
		el.Remove()
		delete(f.fieldErrors, field)
	}
}

// showStatus replaces any existing status message with a new one.
func (f *Form) showStatus(kind StatusKind, message string) {
	f.clearStatus()

	el := f.doc.Create("div")
	el.AddClass(model.StatusClass, model.StatusClass+"-"+string(kind))
	el.SetAttr("role", "status")
	el.SetStyle("padding", "var(--spacing-md)")
	el.SetStyle("margin-bottom", "var(--spacing-md)")
	el.SetStyle("border-radius", "var(--border-radius)")
	el.SetStyle("color", "var(--white)")
	if kind == StatusSuccess {
		el.SetStyle("background-color", "var(--success-color)")
	} else {
		el.SetStyle("background-color", "var(--error-color)")
	}
	el.SetText(message)
	f.form.Prepend(el)
	f.status = el
	f.statusKind = kind

	if kind == StatusSuccess {
		f.dismissing = f.sched.AfterFunc(f.dismiss, func() {
			if f.status == el {
				f.dismissing = nil
				f.clearStatus()
			}
		})
	}
}

func (f *Form) clearStatus() {
	if f.dismissing != nil {
		f.dismissing.Stop()
		f.dismissing = nil
	}
	if f.status != nil {
		f.status.Remove()
		f.status = nil
		f.statusKind = ""
	}
}
