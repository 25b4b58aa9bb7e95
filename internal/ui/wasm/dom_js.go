//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
)

// jsElement adapts a DOM node. Wrappers are pointers so they can be compared
// and used as map keys; js.Value itself is not comparable.
type jsElement struct {
	v js.Value
}

func wrap(v js.Value) dom.Element {
	if !v.Truthy() {
		return nil
	}
	return &jsElement{v: v}
}

func unwrap(el dom.Element) js.Value {
	if je, ok := el.(*jsElement); ok {
		return je.v
	}
	return js.Null()
}

func stringOrEmpty(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (e *jsElement) ID() string  { return stringOrEmpty(e.v.Get("id")) }
func (e *jsElement) Tag() string { return stringOrEmpty(e.v.Get("tagName")) }

func (e *jsElement) Attr(name string) string {
	return stringOrEmpty(e.v.Call("getAttribute", name))
}

func (e *jsElement) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *jsElement) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *jsElement) AddClass(names ...string) {
	e.v.Get("classList").Call("add", toArgs(names)...)
}

func (e *jsElement) RemoveClass(names ...string) {
	e.v.Get("classList").Call("remove", toArgs(names)...)
}

func (e *jsElement) ToggleClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

func (e *jsElement) Style(prop string) string {
	return stringOrEmpty(e.v.Get("style").Call("getPropertyValue", prop))
}

func (e *jsElement) SetStyle(prop, value string) {
	if value == "" {
		e.v.Get("style").Call("removeProperty", prop)
		return
	}
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *jsElement) Text() string        { return stringOrEmpty(e.v.Get("textContent")) }
func (e *jsElement) SetText(text string) { e.v.Set("textContent", text) }

func (e *jsElement) Value() string         { return stringOrEmpty(e.v.Get("value")) }
func (e *jsElement) SetValue(value string) { e.v.Set("value", value) }

func (e *jsElement) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }
func (e *jsElement) Disabled() bool            { return e.v.Get("disabled").Truthy() }

func (e *jsElement) OffsetTop() float64    { return e.v.Get("offsetTop").Float() }
func (e *jsElement) OffsetHeight() float64 { return e.v.Get("offsetHeight").Float() }

func (e *jsElement) ViewportTop() float64 {
	return e.v.Call("getBoundingClientRect").Get("top").Float()
}

func (e *jsElement) Parent() dom.Element { return wrap(e.v.Get("parentElement")) }

func (e *jsElement) SiblingIndex() int {
	parent := e.v.Get("parentElement")
	if !parent.Truthy() {
		return 0
	}
	indexOf := js.Global().Get("Array").Get("prototype").Get("indexOf")
	idx := indexOf.Call("call", parent.Get("children"), e.v).Int()
	if idx < 0 {
		return 0
	}
	return idx
}

func (e *jsElement) Append(child dom.Element)  { e.v.Call("appendChild", unwrap(child)) }
func (e *jsElement) Prepend(child dom.Element) { e.v.Call("prepend", unwrap(child)) }
func (e *jsElement) Remove()                   { e.v.Call("remove") }

func toArgs(names []string) []any {
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	return args
}

type jsDocument struct {
	v js.Value
}

func (d jsDocument) ByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d jsDocument) Create(tag string) dom.Element {
	return wrap(d.v.Call("createElement", tag))
}

func (d jsDocument) query(selector string) dom.Element {
	return wrap(d.v.Call("querySelector", selector))
}

func (d jsDocument) queryAll(selector string) []dom.Element {
	var out []dom.Element
	forEachNode(d.v.Call("querySelectorAll", selector), func(node js.Value) {
		out = append(out, &jsElement{v: node})
	})
	return out
}

type jsWindow struct {
	v js.Value
}

func (w jsWindow) ScrollY() float64    { return w.v.Get("pageYOffset").Float() }
func (w jsWindow) InnerWidth() float64 { return w.v.Get("innerWidth").Float() }

func (w jsWindow) ScrollTo(top float64) {
	w.v.Call("scrollTo", map[string]any{
		"top":      top,
		"behavior": "smooth",
	})
}
