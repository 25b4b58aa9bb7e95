// Package scroll derives navbar styling and the active navigation link from
// the vertical scroll offset.
package scroll

import (
	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/model"
)

// Section is the vertical extent of an anchored page section.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Contains reports whether y lies in [Top, Top+Height).
func (s Section) Contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Scrolled reports whether the navbar should use its scrolled style.
func Scrolled(scrollY, threshold float64) bool {
	return scrollY > threshold
}

// ActiveSection returns the first section, in document order, containing
// scrollY+bias. ok is false when no section contains the probe.
func ActiveSection(sections []Section, scrollY, bias float64) (id string, ok bool) {
	probe := scrollY + bias
	for _, s := range sections {
		if s.Contains(probe) {
			return s.ID, true
		}
	}
	return "", false
}

// Tracker renders scroll-derived state onto the navbar and its links.
type Tracker struct {
	navbar    dom.Element
	links     []dom.Element
	sections  []dom.Element
	threshold float64
	bias      float64

	active string
}

// NewTracker builds a Tracker. sections are read for layout on every Update.
func NewTracker(navbar dom.Element, links, sections []dom.Element, threshold, bias float64) *Tracker {
	return &Tracker{
		navbar:    navbar,
		links:     links,
		sections:  sections,
		threshold: threshold,
		bias:      bias,
	}
}

// Active returns the section id marked by the last Update, or "".
func (t *Tracker) Active() string { return t.active }

// Update recomputes navbar styling and the active link for scrollY.
func (t *Tracker) Update(scrollY float64) {
	t.navbar.ToggleClass(model.ScrolledClass, Scrolled(scrollY, t.threshold))

	id, ok := ActiveSection(t.extents(), scrollY, t.bias)
	t.clearLinks()
	t.active = ""
	if !ok {
		return
	}
	for _, link := range t.links {
		if link.Attr("href") == "#"+id {
			link.AddClass(model.ActiveClass)
			t.active = id
		}
	}
}

func (t *Tracker) clearLinks() {
	for _, link := range t.links {
		link.RemoveClass(model.ActiveClass)
	}
}

func (t *Tracker) extents() []Section {
	out := make([]Section, 0, len(t.sections))
	for _, el := range t.sections {
		id := el.ID()
		if id == "" {
			continue
		}
		out = append(out, Section{ID: id, Top: el.OffsetTop(), Height: el.OffsetHeight()})
	}
	return out
}
