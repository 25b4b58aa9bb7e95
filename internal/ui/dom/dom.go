// Package dom is the narrow view of the browser page the UI components work
// against. The browser adapter implements it over syscall/js; domtest provides
// an in-memory version for tests.
package dom

// Element is a single page node.
type Element interface {
	ID() string
	Tag() string

	Attr(name string) string
	SetAttr(name, value string)

	HasClass(name string) bool
	AddClass(names ...string)
	RemoveClass(names ...string)
	// ToggleClass adds name when on is true and removes it otherwise.
	ToggleClass(name string, on bool)

	Style(prop string) string
	SetStyle(prop, value string)

	Text() string
	SetText(text string)

	// Value and SetValue address form controls.
	Value() string
	SetValue(value string)
	SetDisabled(disabled bool)
	Disabled() bool

	// OffsetTop and OffsetHeight are layout extents relative to the document.
	OffsetTop() float64
	OffsetHeight() float64
	// ViewportTop is the distance from the viewport top to the element's top edge.
	ViewportTop() float64

	Parent() Element
	// SiblingIndex is the 0-based position among the parent's element children.
	SiblingIndex() int
	Append(child Element)
	Prepend(child Element)
	Remove()
}

// Document resolves and creates elements.
type Document interface {
	// ByID returns nil when no element carries id.
	ByID(id string) Element
	Create(tag string) Element
}

// Window exposes viewport metrics and scrolling.
type Window interface {
	ScrollY() float64
	InnerWidth() float64
	// ScrollTo smooth-scrolls the viewport so its top sits at top.
	ScrollTo(top float64)
}
