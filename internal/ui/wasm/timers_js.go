//go:build js && wasm

package wasm

import (
	"syscall/js"
	"time"

	"github.com/Its-donkey/portfolio/internal/ui/schedule"
)

// timeoutScheduler runs callbacks through setTimeout so they execute on the
// browser event loop between DOM events.
type timeoutScheduler struct{}

type timeout struct {
	id   js.Value
	cb   js.Func
	done bool
}

func (timeoutScheduler) AfterFunc(d time.Duration, fn func()) schedule.Timer {
	t := &timeout{}
	t.cb = js.FuncOf(func(js.Value, []js.Value) any {
		if t.done {
			return nil
		}
		t.done = true
		t.cb.Release()
		fn()
		return nil
	})
	t.id = js.Global().Call("setTimeout", t.cb, d.Milliseconds())
	return t
}

func (t *timeout) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	js.Global().Call("clearTimeout", t.id)
	t.cb.Release()
	return true
}
