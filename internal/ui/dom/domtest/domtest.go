// Package domtest provides an in-memory dom implementation for tests.
package domtest

import (
	"strings"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
)

// Element is a fake node. Layout fields are set directly by tests.
type Element struct {
	id       string
	tag      string
	attrs    map[string]string
	classes  []string
	styles   map[string]string
	text     string
	value    string
	disabled bool
	parent   *Element
	children []*Element

	Top, Height float64
	// ViewTop is returned by ViewportTop.
	ViewTop float64
}

var _ dom.Element = (*Element)(nil)

// NewElement builds a detached element. classes may be empty.
func NewElement(tag, id string, classes ...string) *Element {
	return &Element{
		id:      id,
		tag:     strings.ToLower(tag),
		attrs:   make(map[string]string),
		styles:  make(map[string]string),
		classes: append([]string(nil), classes...),
	}
}

func (e *Element) ID() string  { return e.id }
func (e *Element) Tag() string { return e.tag }

func (e *Element) Attr(name string) string { return e.attrs[name] }

func (e *Element) SetAttr(name, value string) { e.attrs[name] = value }

func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) AddClass(names ...string) {
	for _, name := range names {
		if !e.HasClass(name) {
			e.classes = append(e.classes, name)
		}
	}
}

func (e *Element) RemoveClass(names ...string) {
	for _, name := range names {
		for i, c := range e.classes {
			if c == name {
				e.classes = append(e.classes[:i], e.classes[i+1:]...)
				break
			}
		}
	}
}

func (e *Element) ToggleClass(name string, on bool) {
	if on {
		e.AddClass(name)
	} else {
		e.RemoveClass(name)
	}
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string { return append([]string(nil), e.classes...) }

func (e *Element) Style(prop string) string { return e.styles[prop] }

func (e *Element) SetStyle(prop, value string) { e.styles[prop] = value }

func (e *Element) Text() string { return e.text }

func (e *Element) SetText(text string) { e.text = text }

func (e *Element) Value() string { return e.value }

func (e *Element) SetValue(value string) { e.value = value }

func (e *Element) SetDisabled(disabled bool) { e.disabled = disabled }

func (e *Element) Disabled() bool { return e.disabled }

func (e *Element) OffsetTop() float64    { return e.Top }
func (e *Element) OffsetHeight() float64 { return e.Height }
func (e *Element) ViewportTop() float64  { return e.ViewTop }

func (e *Element) Parent() dom.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) SiblingIndex() int {
	if e.parent == nil {
		return 0
	}
	for i, c := range e.parent.children {
		if c == e {
			return i
		}
	}
	return 0
}

func (e *Element) Append(child dom.Element) {
	c := child.(*Element)
	c.detach()
	c.parent = e
	e.children = append(e.children, c)
}

func (e *Element) Prepend(child dom.Element) {
	c := child.(*Element)
	c.detach()
	c.parent = e
	e.children = append([]*Element{c}, e.children...)
}

func (e *Element) Remove() { e.detach() }

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, c := range siblings {
		if c == e {
			e.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Children returns the element children in order.
func (e *Element) Children() []*Element { return append([]*Element(nil), e.children...) }

// FindByClass returns the first descendant carrying class, or nil.
func (e *Element) FindByClass(class string) *Element {
	for _, c := range e.children {
		if c.HasClass(class) {
			return c
		}
		if found := c.FindByClass(class); found != nil {
			return found
		}
	}
	return nil
}

// Document indexes elements by id.
type Document struct {
	byID map[string]*Element
}

var _ dom.Document = (*Document)(nil)

// NewDocument registers the given elements by their ids.
func NewDocument(elements ...*Element) *Document {
	d := &Document{byID: make(map[string]*Element)}
	for _, el := range elements {
		d.Add(el)
	}
	return d
}

// Add registers el when it has an id.
func (d *Document) Add(el *Element) {
	if el.id != "" {
		d.byID[el.id] = el
	}
}

func (d *Document) ByID(id string) dom.Element {
	el, ok := d.byID[id]
	if !ok {
		return nil
	}
	return el
}

func (d *Document) Create(tag string) dom.Element {
	return NewElement(tag, "")
}

// Window records scroll calls.
type Window struct {
	Y       float64
	Width   float64
	Scrolls []float64
}

var _ dom.Window = (*Window)(nil)

func (w *Window) ScrollY() float64    { return w.Y }
func (w *Window) InnerWidth() float64 { return w.Width }

func (w *Window) ScrollTo(top float64) {
	w.Scrolls = append(w.Scrolls, top)
}
