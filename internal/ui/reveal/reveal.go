// Package reveal runs one-shot entrance animations the first time an element
// scrolls into view.
package reveal

import (
	"fmt"
	"time"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/model"
	"github.com/Its-donkey/portfolio/internal/ui/schedule"
)

// Observer options for the visibility observer.
const (
	Threshold  = 0.1
	RootMargin = "0px 0px -50px 0px"
	Easing     = "ease"
)

// Category selects the reveal style for an element.
type Category int

const (
	Other Category = iota
	SectionTitle
	ProjectCard
	SkillCategory
	TimelineItem
)

func (c Category) String() string {
	switch c {
	case SectionTitle:
		return "section-title"
	case ProjectCard:
		return "project-card"
	case SkillCategory:
		return "skill-category"
	case TimelineItem:
		return "timeline-item"
	default:
		return "other"
	}
}

// Classify picks the category from the element's classes.
func Classify(el dom.Element) Category {
	switch {
	case el.HasClass(model.SectionTitleClass):
		return SectionTitle
	case el.HasClass(model.ProjectCardClass):
		return ProjectCard
	case el.HasClass(model.SkillCategoryClass):
		return SkillCategory
	case el.HasClass(model.TimelineItemClass):
		return TimelineItem
	default:
		return Other
	}
}

// Style is the hidden starting point and timing of a reveal.
type Style struct {
	Transform string
	Duration  time.Duration
	Delay     time.Duration
}

// Transition is the CSS transition declaration for s.
func (s Style) Transition() string {
	secs := s.Duration.Seconds()
	return fmt.Sprintf("opacity %gs %s, transform %gs %s", secs, Easing, secs, Easing)
}

// Plan returns the style for a category at the given sibling index.
func Plan(c Category, siblingIndex int) Style {
	i := time.Duration(siblingIndex)
	switch c {
	case SectionTitle:
		return Style{Transform: "translateY(30px)", Duration: 600 * time.Millisecond, Delay: 100 * time.Millisecond}
	case ProjectCard:
		return Style{Transform: "translateY(40px)", Duration: 600 * time.Millisecond, Delay: i * 100 * time.Millisecond}
	case SkillCategory:
		return Style{Transform: "scale(0.9)", Duration: 500 * time.Millisecond, Delay: i * 150 * time.Millisecond}
	case TimelineItem:
		return Style{Transform: "translateX(-30px)", Duration: 600 * time.Millisecond, Delay: i * 200 * time.Millisecond}
	default:
		return Style{Transform: "translateY(20px)", Duration: 500 * time.Millisecond, Delay: 100 * time.Millisecond}
	}
}

// Trigger hides observed elements and reveals each one on first intersection.
type Trigger struct {
	sched    schedule.Scheduler
	revealed map[dom.Element]bool
}

// NewTrigger returns a Trigger scheduling reveals on sched.
func NewTrigger(sched schedule.Scheduler) *Trigger {
	return &Trigger{sched: sched, revealed: make(map[dom.Element]bool)}
}

// Observe applies the hidden starting style to el.
func (t *Trigger) Observe(el dom.Element) {
	style := Plan(Classify(el), el.SiblingIndex())
	el.SetStyle("opacity", "0")
	el.SetStyle("transform", style.Transform)
}

// Revealed reports whether el has already been revealed.
func (t *Trigger) Revealed(el dom.Element) bool {
	return t.revealed[el]
}

// Intersect starts the reveal of el and returns the scheduled delay. Repeat
// intersections of the same element are ignored and report ok=false.
func (t *Trigger) Intersect(el dom.Element) (delay time.Duration, ok bool) {
	if t.Revealed(el) {
		return 0, false
	}
	t.revealed[el] = true

	style := Plan(Classify(el), el.SiblingIndex())
	el.SetStyle("transition", style.Transition())
	t.sched.AfterFunc(style.Delay, func() {
		el.SetStyle("opacity", "1")
		el.SetStyle("transform", "none")
	})
	return style.Delay, true
}
