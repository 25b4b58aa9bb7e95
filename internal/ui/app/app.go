// Package app assembles the page behavior into a single controller. The
// browser adapter resolves the page elements, constructs one Controller and
// forwards DOM events to its entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Its-donkey/portfolio/internal/ui/debounce"
	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/forms"
	"github.com/Its-donkey/portfolio/internal/ui/nav"
	"github.com/Its-donkey/portfolio/internal/ui/reveal"
	"github.com/Its-donkey/portfolio/internal/ui/schedule"
	"github.com/Its-donkey/portfolio/internal/ui/scroll"
	"github.com/Its-donkey/portfolio/internal/ui/theme"
	"github.com/Its-donkey/portfolio/logging"
)

// ErrMissingElement reports a page element the DOM contract requires.
var ErrMissingElement = errors.New("app: required page element missing")

// Elements are the page handles the controller binds to.
type Elements struct {
	Root        dom.Element
	Body        dom.Element
	Navbar      dom.Element
	NavMenu     dom.Element
	NavToggle   dom.Element
	ThemeToggle dom.Element
	ThemeIcon   dom.Element
	Form        dom.Element
	Submit      dom.Element
	Fields      map[forms.Field]dom.Element

	Links    []dom.Element
	Sections []dom.Element
	Animated []dom.Element
}

func (e Elements) validate() error {
	required := []struct {
		name string
		el   dom.Element
	}{
		{"document root", e.Root},
		{"body", e.Body},
		{"navbar", e.Navbar},
		{"nav menu", e.NavMenu},
		{"nav toggle", e.NavToggle},
		{"theme toggle", e.ThemeToggle},
		{"theme icon", e.ThemeIcon},
		{"contact form", e.Form},
		{"submit control", e.Submit},
	}
	for _, r := range required {
		if r.el == nil {
			return fmt.Errorf("%w: %s", ErrMissingElement, r.name)
		}
	}
	return nil
}

// Env supplies the platform services the controller runs on.
type Env struct {
	Document  dom.Document
	Window    dom.Window
	Store     theme.Store
	Scheduler schedule.Scheduler
	Logger    *logging.Logger
	// Submitter delivers contact messages. Nil selects the simulated submitter.
	Submitter forms.Submitter
}

// Controller owns every UI component for one page.
type Controller struct {
	cfg    Config
	els    Elements
	win    dom.Window
	logger *logging.Logger

	theme     *theme.Manager
	menu      *nav.Menu
	navigator *nav.Navigator
	tracker   *scroll.Tracker
	reveal    *reveal.Trigger
	form      *forms.Form

	onScroll *debounce.Debouncer[struct{}]
	onResize *debounce.Debouncer[struct{}]
}

// New wires the components. It fails fast when the page does not satisfy the
// element contract.
func New(cfg Config, els Elements, env Env) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := els.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		els:    els,
		win:    env.Window,
		logger: env.Logger,
	}

	var submitter forms.Submitter = forms.Simulated{Scheduler: env.Scheduler, Delay: cfg.SubmitDelay}
	if env.Submitter != nil {
		submitter = env.Submitter
	}
	form, err := forms.NewForm(forms.Options{
		Document:     env.Document,
		Form:         els.Form,
		Inputs:       els.Fields,
		Submit:       els.Submit,
		Scheduler:    c.guarded("status-dismiss", env.Scheduler),
		Submitter:    c.guardedSubmitter(submitter),
		Logger:       env.Logger,
		DismissAfter: cfg.SuccessDismiss,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingElement, err)
	}

	c.theme = theme.NewManager(theme.Options{
		Store:     env.Store,
		Key:       cfg.ThemeStorageKey,
		Root:      els.Root,
		Icon:      els.ThemeIcon,
		Scheduler: c.guarded("theme-icon", env.Scheduler),
		IconDelay: cfg.IconSwapDelay,
		Logger:    env.Logger,
	})
	c.menu = nav.NewMenu(els.NavMenu, els.NavToggle, els.Body)
	c.navigator = nav.NewNavigator(env.Document, env.Window, cfg.HeaderOffset)
	c.tracker = scroll.NewTracker(els.Navbar, els.Links, els.Sections, cfg.ScrollThreshold, cfg.ProbeBias)
	c.reveal = reveal.NewTrigger(c.guarded("reveal", env.Scheduler))
	c.form = form

	c.onScroll = debounce.New(env.Scheduler, cfg.ScrollDebounce, func(struct{}) {
		c.Guard("scroll", c.updateScroll)
	})
	c.onResize = debounce.New(env.Scheduler, cfg.ResizeDebounce, func(struct{}) {
		c.Guard("resize", c.checkResize)
	})
	return c, nil
}

// Start renders the initial state: stored theme, hidden reveal elements and
// the scroll-derived navbar state.
func (c *Controller) Start() {
	c.Guard("start", func() {
		t := c.theme.Init()
		for _, el := range c.els.Animated {
			c.reveal.Observe(el)
		}
		c.updateScroll()
		c.logger.Info("app", "controller started", map[string]any{
			"theme":    string(t),
			"sections": len(c.els.Sections),
			"links":    len(c.els.Links),
			"animated": len(c.els.Animated),
		})
	})
}

// Guard runs fn and converts a panic into a logged error. Handlers are never
// retried.
func (c *Controller) Guard(event string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s handler: %v", event, r)
			c.logger.Error("app", "event handler failed", err, map[string]any{"event": event})
		}
	}()
	fn()
	return nil
}

// guardedScheduler runs every delayed continuation through the controller's
// Guard under the given event name.
type guardedScheduler struct {
	inner schedule.Scheduler
	c     *Controller
	event string
}

func (g guardedScheduler) AfterFunc(d time.Duration, fn func()) schedule.Timer {
	return g.inner.AfterFunc(d, func() {
		_ = g.c.Guard(g.event, fn)
	})
}

// guardedSubmitter runs the completion callback of s through Guard.
func (c *Controller) guardedSubmitter(s forms.Submitter) forms.Submitter {
	return forms.SubmitterFunc(func(ctx context.Context, msg forms.Message, done func(forms.Receipt, error)) {
		s.Submit(ctx, msg, func(r forms.Receipt, err error) {
			_ = c.Guard("submit-complete", func() { done(r, err) })
		})
	})
}

func (c *Controller) guarded(event string, sched schedule.Scheduler) schedule.Scheduler {
	return guardedScheduler{inner: sched, c: c, event: event}
}

// Scroll schedules a debounced scroll-state update.
func (c *Controller) Scroll() {
	c.onScroll.Trigger(struct{}{})
}

// Resize schedules a debounced breakpoint check.
func (c *Controller) Resize() {
	c.onResize.Trigger(struct{}{})
}

// KeyDown closes the mobile menu on Escape.
func (c *Controller) KeyDown(key string) {
	if key == nav.EscapeKey {
		c.Guard("keydown", c.menu.Close)
	}
}

// DocumentClick closes the mobile menu for clicks outside the navbar.
func (c *Controller) DocumentClick(insideNavbar bool) {
	if !insideNavbar {
		c.Guard("click", c.menu.Close)
	}
}

// LinkClick scrolls to the link's section and then closes the menu. The
// adapter prevents the default navigation before calling it.
func (c *Controller) LinkClick(link dom.Element) {
	c.Guard("nav-link", func() {
		c.navigator.ScrollToSection(link.Attr("href"))
		c.menu.Close()
	})
}

// MenuToggleClick opens or closes the mobile menu.
func (c *Controller) MenuToggleClick() {
	c.Guard("nav-toggle", c.menu.Toggle)
}

// ThemeToggleClick flips the theme.
func (c *Controller) ThemeToggleClick() {
	c.Guard("theme-toggle", func() { c.theme.Toggle() })
}

// Intersect reveals el the first time it becomes visible.
func (c *Controller) Intersect(el dom.Element) {
	c.Guard("intersect", func() { c.reveal.Intersect(el) })
}

// FieldBlur validates the named field.
func (c *Controller) FieldBlur(name string) {
	c.Guard("blur", func() { c.form.Blur(forms.Field(name)) })
}

// FieldInput clears the named field's error.
func (c *Controller) FieldInput(name string) {
	c.Guard("input", func() { c.form.Input(forms.Field(name)) })
}

// FormSubmit validates and submits the contact form.
func (c *Controller) FormSubmit() {
	c.Guard("submit", c.form.Submit)
}

// Theme exposes the theme manager. The browser adapter does not use it; it
// exists so tests can inspect component state.
func (c *Controller) Theme() *theme.Manager { return c.theme }

// Menu exposes the mobile menu state for tests.
func (c *Controller) Menu() *nav.Menu { return c.menu }

// Tracker exposes the scroll state tracker for tests.
func (c *Controller) Tracker() *scroll.Tracker { return c.tracker }

// Form exposes the contact form controller for tests.
func (c *Controller) Form() *forms.Form { return c.form }

func (c *Controller) updateScroll() {
	c.tracker.Update(c.win.ScrollY())
}

func (c *Controller) checkResize() {
	if nav.ShouldCloseOnResize(c.win.InnerWidth(), c.cfg.MobileBreakpoint) {
		c.menu.Close()
	}
}
