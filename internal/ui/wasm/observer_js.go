//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/reveal"
)

// observeVisibility registers an IntersectionObserver over elements and calls
// onVisible with the matching wrapper for each intersecting entry. It reports
// false when the browser has no IntersectionObserver.
func observeVisibility(elements []dom.Element, onVisible func(dom.Element)) bool {
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.Type() != js.TypeFunction {
		return false
	}
	callback := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		forEachNode(args[0], func(entry js.Value) {
			if !entry.Get("isIntersecting").Bool() {
				return
			}
			target := entry.Get("target")
			for _, el := range elements {
				if unwrap(el).Equal(target) {
					onVisible(el)
					return
				}
			}
		})
		return nil
	})
	handlers = append(handlers, callback)

	observer := ctor.New(callback, map[string]any{
		"threshold":  reveal.Threshold,
		"rootMargin": reveal.RootMargin,
	})
	for _, el := range elements {
		observer.Call("observe", unwrap(el))
	}
	return true
}
