// Package model names the page elements the UI binds to. The hosting page must
// supply every one of them; the browser adapter resolves them at startup and
// the markup checker verifies them ahead of time.
package model

// Element ids.
const (
	NavbarID      = "navbar"
	NavMenuID     = "nav-menu"
	NavToggleID   = "nav-toggle"
	ThemeToggleID = "theme-toggle"
	ContactFormID = "contact-form"
)

// Class names toggled or read by the UI.
const (
	NavLinkClass  = "nav-link"
	ActiveClass   = "active"
	ScrolledClass = "scrolled"
	ErrorClass    = "error"
	BusyClass     = "is-busy"

	FieldErrorClass = "error-message"
	StatusClass     = "form-message"

	IconLightClass = "fa-moon"
	IconDarkClass  = "fa-sun"
)

// ThemeAttr is the document-level attribute carrying the active theme.
const ThemeAttr = "data-theme"

// Selectors used by the adapter to collect element groups.
const (
	NavLinkSelector   = "." + NavLinkClass
	SectionSelector   = "section[id]"
	ThemeIconSelector = "#" + ThemeToggleID + " i"
	SubmitSelector    = "button[type=submit]"
)

// Contact form field names, in display order.
var ContactFields = []string{"name", "email", "subject", "message"}

// Reveal classes observed for entrance animations.
const (
	SectionTitleClass  = "section-title"
	ProjectCardClass   = "project-card"
	SkillCategoryClass = "skill-category"
	TimelineItemClass  = "timeline-item"
)

// RevealClasses is the fixed set of observed element classes.
var RevealClasses = []string{
	SectionTitleClass,
	ProjectCardClass,
	SkillCategoryClass,
	TimelineItemClass,
	"about-text",
	"about-image",
	"contact-info",
	"contact-form",
}

// Requirement is one selector the hosting page must match.
type Requirement struct {
	Selector    string
	Description string
	// Optional requirements are reported but do not fail a check.
	Optional bool
}

// Contract lists everything the UI expects from the page markup.
func Contract() []Requirement {
	reqs := []Requirement{
		{Selector: "#" + NavbarID, Description: "navigation bar"},
		{Selector: "#" + NavMenuID, Description: "mobile navigation menu"},
		{Selector: "#" + NavToggleID, Description: "mobile menu toggle"},
		{Selector: "#" + ThemeToggleID, Description: "theme toggle control"},
		{Selector: ThemeIconSelector, Description: "theme toggle icon"},
		{Selector: NavLinkSelector, Description: "navigation links"},
		{Selector: SectionSelector, Description: "page sections"},
		{Selector: "#" + ContactFormID, Description: "contact form"},
		{Selector: "#" + ContactFormID + " " + SubmitSelector, Description: "contact form submit control"},
	}
	for _, name := range ContactFields {
		reqs = append(reqs, Requirement{
			Selector:    "#" + ContactFormID + ` [name="` + name + `"]`,
			Description: "contact form field " + name,
		})
	}
	for _, class := range RevealClasses {
		reqs = append(reqs, Requirement{
			Selector:    "." + class,
			Description: "animated " + class + " elements",
			Optional:    true,
		})
	}
	return reqs
}
