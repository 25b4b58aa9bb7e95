//go:build js && wasm

package wasm

import (
	"bytes"
	"syscall/js"
)

// consoleWriter sends each JSON log line to the browser console, routing by
// level so errors and warnings stand out in devtools.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return len(p), nil
	}
	method := "log"
	switch {
	case bytes.Contains(p, []byte(`"level":"ERROR"`)), bytes.Contains(p, []byte(`"level":"FATAL"`)):
		method = "error"
	case bytes.Contains(p, []byte(`"level":"WARN"`)):
		method = "warn"
	}
	console.Call(method, string(bytes.TrimSpace(p)))
	return len(p), nil
}
