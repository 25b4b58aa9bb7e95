package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/dom/domtest"
	"github.com/Its-donkey/portfolio/internal/ui/forms"
	"github.com/Its-donkey/portfolio/internal/ui/model"
	"github.com/Its-donkey/portfolio/internal/ui/schedule"
	"github.com/Its-donkey/portfolio/internal/ui/theme"
	"github.com/Its-donkey/portfolio/logging"
)

type harness struct {
	clock  *schedule.Virtual
	win    *domtest.Window
	store  *theme.MemoryStore
	logs   *bytes.Buffer
	els    Elements
	page   map[string]*domtest.Element
	links  []*domtest.Element
	fields map[forms.Field]*domtest.Element
	env    Env
	ctrl   *Controller
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:  schedule.NewVirtual(),
		win:    &domtest.Window{Width: 1024},
		store:  theme.NewMemoryStore(),
		logs:   &bytes.Buffer{},
		page:   make(map[string]*domtest.Element),
		fields: make(map[forms.Field]*domtest.Element),
	}
	el := func(key, tag, id string, classes ...string) *domtest.Element {
		e := domtest.NewElement(tag, id, classes...)
		h.page[key] = e
		return e
	}
	root := el("root", "html", "")
	body := el("body", "body", "")
	navbar := el("navbar", "nav", model.NavbarID)
	menu := el("menu", "ul", model.NavMenuID)
	toggle := el("toggle", "button", model.NavToggleID)
	themeToggle := el("themeToggle", "button", model.ThemeToggleID)
	icon := el("icon", "i", "", "fas", model.IconLightClass)
	themeToggle.Append(icon)
	form := el("form", "form", model.ContactFormID, model.ContactFormID)
	submit := el("submit", "button", "")
	submit.SetText("Send Message")

	doc := domtest.NewDocument(root, navbar, menu, toggle, themeToggle, form)

	var sections, links, animated []dom.Element
	for i, id := range []string{"home", "about", "contact"} {
		s := el(id, "section", id)
		s.Top, s.Height = float64(i*500), 500
		s.ViewTop = s.Top
		doc.Add(s)
		sections = append(sections, s)

		link := domtest.NewElement("a", "", model.NavLinkClass)
		link.SetAttr("href", "#"+id)
		menu.Append(link)
		h.links = append(h.links, link)
		links = append(links, link)

		title := domtest.NewElement("h2", "", model.SectionTitleClass)
		s.Append(title)
		animated = append(animated, title)
	}

	inputs := make(map[forms.Field]dom.Element)
	for _, f := range forms.Fields {
		group := domtest.NewElement("div", "", "form-group")
		input := domtest.NewElement("input", "")
		group.Append(input)
		form.Append(group)
		inputs[f] = input
		h.fields[f] = input
	}
	form.Append(submit)

	h.els = Elements{
		Root: root, Body: body, Navbar: navbar, NavMenu: menu, NavToggle: toggle,
		ThemeToggle: themeToggle, ThemeIcon: icon, Form: form, Submit: submit,
		Fields: inputs, Links: links, Sections: sections, Animated: animated,
	}
	env := Env{
		Document:  doc,
		Window:    h.win,
		Store:     h.store,
		Scheduler: h.clock,
		Logger:    logging.New("test", logging.DEBUG, h.logs),
	}
	h.env = env
	ctrl, err := New(DefaultConfig(), h.els, env)
	require.NoError(t, err)
	h.ctrl = ctrl
	return h
}

func (h *harness) activeLinks() []string {
	var out []string
	for _, l := range h.links {
		if l.HasClass(model.ActiveClass) {
			out = append(out, l.Attr("href"))
		}
	}
	return out
}

func TestNewRejectsMissingElements(t *testing.T) {
	h := newHarness(t)
	els := h.els
	els.Navbar = nil
	_, err := New(DefaultConfig(), els, Env{Scheduler: h.clock})
	require.ErrorIs(t, err, ErrMissingElement)
	assert.Contains(t, err.Error(), "navbar")

	els = h.els
	els.Fields = map[forms.Field]dom.Element{}
	_, err = New(DefaultConfig(), els, Env{Scheduler: h.clock})
	require.ErrorIs(t, err, ErrMissingElement)
	assert.ErrorIs(t, err, forms.ErrMissingField)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	h := newHarness(t)
	cfg := DefaultConfig()
	cfg.ThemeStorageKey = " "
	_, err := New(cfg, h.els, Env{Scheduler: h.clock})
	assert.Error(t, err)
}

func TestStartRendersInitialState(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.Set("theme", "dark"))
	h.win.Y = 600

	h.ctrl.Start()

	assert.Equal(t, "dark", h.page["root"].Attr(model.ThemeAttr))
	assert.True(t, h.page["navbar"].HasClass(model.ScrolledClass))
	assert.Equal(t, []string{"#about"}, h.activeLinks())
	for _, el := range h.els.Animated {
		assert.Equal(t, "0", el.Style("opacity"))
	}
	assert.Contains(t, h.logs.String(), "controller started")
}

func TestScrollIsDebounced(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Start()
	require.Equal(t, []string{"#home"}, h.activeLinks())

	h.win.Y = 400
	h.ctrl.Scroll()
	h.clock.Advance(5 * time.Millisecond)
	h.win.Y = 900
	h.ctrl.Scroll()
	h.clock.Advance(9 * time.Millisecond)
	assert.Equal(t, []string{"#home"}, h.activeLinks(), "still inside the debounce window")

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"#contact"}, h.activeLinks())
}

func TestLinkClickScrollsThenCloses(t *testing.T) {
	h := newHarness(t)
	h.ctrl.MenuToggleClick()
	require.True(t, h.ctrl.Menu().IsOpen())

	h.win.Y = 100
	h.ctrl.LinkClick(h.links[2])

	assert.Equal(t, []float64{1000 + 100 - 80}, h.win.Scrolls)
	assert.False(t, h.ctrl.Menu().IsOpen())
	assert.Equal(t, "", h.page["body"].Style("overflow"))
}

func TestMenuCloseTriggers(t *testing.T) {
	h := newHarness(t)

	h.ctrl.MenuToggleClick()
	h.ctrl.KeyDown("Enter")
	assert.True(t, h.ctrl.Menu().IsOpen())
	h.ctrl.KeyDown("Escape")
	assert.False(t, h.ctrl.Menu().IsOpen())

	h.ctrl.MenuToggleClick()
	h.ctrl.DocumentClick(true)
	assert.True(t, h.ctrl.Menu().IsOpen())
	h.ctrl.DocumentClick(false)
	assert.False(t, h.ctrl.Menu().IsOpen())

	h.ctrl.MenuToggleClick()
	h.win.Width = 600
	h.ctrl.Resize()
	h.clock.Advance(250 * time.Millisecond)
	assert.True(t, h.ctrl.Menu().IsOpen(), "still mobile width")

	h.win.Width = 1024
	h.ctrl.Resize()
	h.clock.Advance(249 * time.Millisecond)
	assert.True(t, h.ctrl.Menu().IsOpen())
	h.clock.Advance(time.Millisecond)
	assert.False(t, h.ctrl.Menu().IsOpen())
}

func TestThemeToggleClick(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Start()

	h.ctrl.ThemeToggleClick()
	h.clock.Advance(150 * time.Millisecond)

	stored, _ := h.store.Get("theme")
	assert.Equal(t, "dark", stored)
	assert.Equal(t, stored, h.page["root"].Attr(model.ThemeAttr))
	assert.True(t, h.page["icon"].HasClass(model.IconDarkClass))
}

func TestIntersectRevealsOnce(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Start()
	title := h.els.Animated[0]

	h.ctrl.Intersect(title)
	h.ctrl.Intersect(title)
	h.clock.Advance(100 * time.Millisecond)

	assert.Equal(t, "1", title.Style("opacity"))
	assert.Zero(t, h.clock.Pending())
}

func TestFormEventsThroughController(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Start()
	h.fields[forms.FieldName].SetValue("A")

	h.ctrl.FieldBlur("name")
	_, ok := h.ctrl.Form().FieldError(forms.FieldName)
	assert.True(t, ok)

	h.ctrl.FieldInput("name")
	_, ok = h.ctrl.Form().FieldError(forms.FieldName)
	assert.False(t, ok)

	h.fields[forms.FieldName].SetValue("Ada")
	h.fields[forms.FieldEmail].SetValue("ada@example.com")
	h.fields[forms.FieldSubject].SetValue("Engines")
	h.fields[forms.FieldMessage].SetValue("Let us talk about engines.")
	h.ctrl.FormSubmit()
	h.clock.Advance(2 * time.Second)

	kind, _, ok := h.ctrl.Form().Status()
	require.True(t, ok)
	assert.Equal(t, forms.StatusSuccess, kind)
	assert.Contains(t, h.logs.String(), "message sent")
}

func TestGuardRecoversAndLogs(t *testing.T) {
	h := newHarness(t)

	err := h.ctrl.Guard("boom", func() { panic("element vanished") })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "element vanished")
	line := h.logs.String()
	assert.True(t, strings.Contains(line, `"event":"boom"`), line)
	assert.Contains(t, line, `"level":"ERROR"`)

	assert.NoError(t, h.ctrl.Guard("fine", func() {}))
}

// brokenElement panics when a style is set to brokenValue, standing in for a
// node the browser detached between scheduling and firing.
type brokenElement struct {
	dom.Element
	brokenProp  string
	brokenValue string
}

func (b *brokenElement) SetStyle(prop, value string) {
	if prop == b.brokenProp && value == b.brokenValue {
		panic("node detached")
	}
	b.Element.SetStyle(prop, value)
}

func TestDelayedRevealPanicIsGuarded(t *testing.T) {
	h := newHarness(t)
	broken := &brokenElement{Element: h.els.Animated[0], brokenProp: "opacity", brokenValue: "1"}
	h.els.Animated[0] = broken
	ctrl, err := New(DefaultConfig(), h.els, h.env)
	require.NoError(t, err)
	ctrl.Start()

	ctrl.Intersect(broken)
	assert.NotPanics(t, func() { h.clock.Advance(time.Second) })

	logs := h.logs.String()
	assert.Contains(t, logs, `"event":"reveal"`)
	assert.Contains(t, logs, `"level":"ERROR"`)

	ctrl.MenuToggleClick()
	assert.True(t, ctrl.Menu().IsOpen())
}

func TestDelayedIconSwapPanicIsGuarded(t *testing.T) {
	h := newHarness(t)
	h.els.ThemeIcon = &brokenElement{Element: h.els.ThemeIcon, brokenProp: "transform", brokenValue: "scale(1)"}
	ctrl, err := New(DefaultConfig(), h.els, h.env)
	require.NoError(t, err)
	ctrl.Start()

	ctrl.ThemeToggleClick()
	assert.NotPanics(t, func() { h.clock.Advance(time.Second) })
	assert.Contains(t, h.logs.String(), `"event":"theme-icon"`)
	assert.Equal(t, "dark", h.page["root"].Attr(model.ThemeAttr))
}

// stuckButton panics when re-enabled.
type stuckButton struct {
	dom.Element
}

func (b *stuckButton) SetDisabled(disabled bool) {
	if !disabled {
		panic("button detached")
	}
	b.Element.SetDisabled(disabled)
}

func TestSubmitCompletionPanicIsGuarded(t *testing.T) {
	h := newHarness(t)
	env := h.env
	env.Submitter = forms.SubmitterFunc(func(_ context.Context, msg forms.Message, done func(forms.Receipt, error)) {
		h.clock.AfterFunc(time.Second, func() {
			done(forms.Receipt{ID: "r-1", MessageID: msg.ID}, nil)
		})
	})
	h.els.Submit = &stuckButton{Element: h.els.Submit}
	ctrl, err := New(DefaultConfig(), h.els, env)
	require.NoError(t, err)

	h.fields[forms.FieldName].SetValue("Ada")
	h.fields[forms.FieldEmail].SetValue("ada@example.com")
	h.fields[forms.FieldSubject].SetValue("Engines")
	h.fields[forms.FieldMessage].SetValue("Let us talk about engines.")
	ctrl.FormSubmit()
	require.True(t, ctrl.Form().Submitting())

	assert.NotPanics(t, func() { h.clock.Advance(2 * time.Second) })
	assert.Contains(t, h.logs.String(), `"event":"submit-complete"`)
}
