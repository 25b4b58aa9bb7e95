// Package theme tracks the light/dark preference and reflects it on the page.
package theme

import (
	"time"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/model"
	"github.com/Its-donkey/portfolio/internal/ui/schedule"
	"github.com/Its-donkey/portfolio/logging"
)

// Theme is the page color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse maps a stored value to a Theme, defaulting to Light.
func Parse(raw string) Theme {
	if Theme(raw) == Dark {
		return Dark
	}
	return Light
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IconClass is the glyph shown while t is active.
func (t Theme) IconClass() string {
	if t == Dark {
		return model.IconDarkClass
	}
	return model.IconLightClass
}

// Manager owns the current theme and its rendering.
type Manager struct {
	store     Store
	key       string
	root      dom.Element
	icon      dom.Element
	sched     schedule.Scheduler
	iconDelay time.Duration
	logger    *logging.Logger

	current Theme
}

// Options configures a Manager.
type Options struct {
	Store     Store
	Key       string
	Root      dom.Element
	Icon      dom.Element
	Scheduler schedule.Scheduler
	IconDelay time.Duration
	Logger    *logging.Logger
}

// NewManager returns a Manager. Call Init to load the stored preference.
func NewManager(opts Options) *Manager {
	return &Manager{
		store:     opts.Store,
		key:       opts.Key,
		root:      opts.Root,
		icon:      opts.Icon,
		sched:     opts.Scheduler,
		iconDelay: opts.IconDelay,
		logger:    opts.Logger,
		current:   Light,
	}
}

// Init loads the stored theme and renders it without any transition.
func (m *Manager) Init() Theme {
	raw, _ := m.store.Get(m.key)
	m.current = Parse(raw)
	m.root.SetAttr(model.ThemeAttr, string(m.current))
	m.setIcon(m.current)
	return m.current
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	return m.current
}

// Toggle flips the theme, persists it and updates the page. The icon swap is
// delayed so the scale-down transition can finish first.
func (m *Manager) Toggle() Theme {
	next := m.current.Toggle()
	m.current = next
	if err := m.store.Set(m.key, string(next)); err != nil {
		m.logger.Warn("theme", "persist theme preference failed", map[string]any{
			"theme": string(next),
			"error": err.Error(),
		})
	}
	m.root.SetAttr(model.ThemeAttr, string(next))

	m.icon.SetStyle("transform", "scale(0)")
	m.sched.AfterFunc(m.iconDelay, func() {
		m.setIcon(next)
		m.icon.SetStyle("transform", "scale(1)")
	})
	m.logger.Debug("theme", "theme toggled", map[string]any{"theme": string(next)})
	return next
}

func (m *Manager) setIcon(t Theme) {
	m.icon.RemoveClass(model.IconLightClass, model.IconDarkClass)
	m.icon.AddClass(t.IconClass())
}
