//go:build js && wasm

package wasm

import "syscall/js"

// handlers keeps bound callbacks alive for the lifetime of the page.
var handlers []js.Func

func addHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	handlers = append(handlers, fn)
}

func releaseHandlers() {
	for _, fn := range handlers {
		fn.Release()
	}
	handlers = handlers[:0]
}

func forEachNode(list js.Value, fn func(js.Value)) {
	if !list.Truthy() {
		return
	}
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		fn(list.Index(i))
	}
}

func preventDefault(args []js.Value) {
	if len(args) > 0 {
		args[0].Call("preventDefault")
	}
}

func eventTarget(args []js.Value) js.Value {
	if len(args) == 0 {
		return js.Undefined()
	}
	return args[0].Get("target")
}
