package forms

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field names a contact form control.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists every validated field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is a user-correctable problem with one field.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Validate checks a single field value. It returns a *FieldError or nil.
// Unknown fields are always valid.
func Validate(field Field, value string) error {
	trimmed := strings.TrimSpace(value)
	switch field {
	case FieldName:
		return minLength(field, "Name", trimmed, 2)
	case FieldEmail:
		if !emailPattern.MatchString(trimmed) {
			return &FieldError{Field: field, Message: "Please enter a valid email address"}
		}
	case FieldSubject:
		return minLength(field, "Subject", trimmed, 3)
	case FieldMessage:
		return minLength(field, "Message", trimmed, 10)
	}
	return nil
}

func minLength(field Field, label, value string, n int) error {
	if utf8.RuneCountInString(value) < n {
		return &FieldError{
			Field:   field,
			Message: label + " must be at least " + strconv.Itoa(n) + " characters long",
		}
	}
	return nil
}

// ValidateAll checks every field in values and returns the failures keyed by
// field. A missing value counts as empty.
func ValidateAll(values map[Field]string) map[Field]*FieldError {
	errs := make(map[Field]*FieldError)
	for _, f := range Fields {
		if err := Validate(f, values[f]); err != nil {
			errs[f] = err.(*FieldError)
		}
	}
	return errs
}
