//go:build !js && !wasm

// Command ui-serve serves the portfolio page locally and checks its markup
// against the element contract the browser code binds to.
package main

import (
	"os"

	"github.com/Its-donkey/portfolio/cmd/ui-serve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
