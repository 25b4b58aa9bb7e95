//go:build js && wasm

// Command ui-wasm is the browser entry point for the portfolio page behavior.
// Build it with GOOS=js GOARCH=wasm.
package main

import "github.com/Its-donkey/portfolio/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
