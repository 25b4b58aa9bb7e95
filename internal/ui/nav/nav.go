// Package nav handles the mobile menu and smooth scrolling to page sections.
package nav

import (
	"strings"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/model"
)

// EscapeKey is the KeyboardEvent.key value that closes the menu.
const EscapeKey = "Escape"

// Menu is the mobile navigation open/closed state.
type Menu struct {
	menu   dom.Element
	toggle dom.Element
	body   dom.Element
	open   bool
}

// NewMenu returns a closed Menu.
func NewMenu(menu, toggle, body dom.Element) *Menu {
	return &Menu{menu: menu, toggle: toggle, body: body}
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool { return m.open }

// Toggle flips the menu and locks page scrolling while it is open.
func (m *Menu) Toggle() {
	m.set(!m.open)
}

// Close forces the menu closed. Calling it on a closed menu is harmless.
func (m *Menu) Close() {
	m.set(false)
}

func (m *Menu) set(open bool) {
	m.open = open
	m.menu.ToggleClass(model.ActiveClass, open)
	m.toggle.ToggleClass(model.ActiveClass, open)
	if open {
		m.body.SetStyle("overflow", "hidden")
	} else {
		m.body.SetStyle("overflow", "")
	}
}

// ShouldCloseOnResize reports whether a viewport of width leaves mobile layout.
func ShouldCloseOnResize(width, breakpoint float64) bool {
	return width > breakpoint
}

// ScrollTarget is the document offset that places an element headerOffset
// below the viewport top.
func ScrollTarget(elementViewportTop, scrollY, headerOffset float64) float64 {
	return elementViewportTop + scrollY - headerOffset
}

// SectionID strips the fragment marker from an anchor href.
func SectionID(href string) string {
	href = strings.TrimSpace(href)
	if i := strings.IndexByte(href, '#'); i >= 0 {
		return href[i+1:]
	}
	return href
}

// Navigator scrolls the window to anchored sections.
type Navigator struct {
	doc          dom.Document
	win          dom.Window
	headerOffset float64
}

// NewNavigator returns a Navigator reserving headerOffset for the fixed header.
func NewNavigator(doc dom.Document, win dom.Window, headerOffset float64) *Navigator {
	return &Navigator{doc: doc, win: win, headerOffset: headerOffset}
}

// ScrollToSection smooth-scrolls to the element named by target, which may be
// an id or an href fragment. Unknown targets are ignored and report false.
func (n *Navigator) ScrollToSection(target string) bool {
	id := SectionID(target)
	if id == "" {
		return false
	}
	el := n.doc.ByID(id)
	if el == nil {
		return false
	}
	n.win.ScrollTo(ScrollTarget(el.ViewportTop(), n.win.ScrollY(), n.headerOffset))
	return true
}
