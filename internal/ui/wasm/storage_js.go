//go:build js && wasm

package wasm

import (
	"errors"
	"fmt"
	"syscall/js"
)

var errStorageUnavailable = errors.New("localStorage unavailable")

// localStore persists values in window.localStorage.
type localStore struct{}

func storage() js.Value {
	return js.Global().Get("localStorage")
}

func (localStore) Get(key string) (string, bool) {
	s := storage()
	if !s.Truthy() {
		return "", false
	}
	value := s.Call("getItem", key)
	if value.Type() != js.TypeString {
		return "", false
	}
	return value.String(), true
}

// Set writes value. Browsers in restricted modes throw from setItem; that
// surfaces here as a returned error instead of a panic.
func (localStore) Set(key, value string) (err error) {
	s := storage()
	if !s.Truthy() {
		return errStorageUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage setItem: %v", r)
		}
	}()
	s.Call("setItem", key, value)
	return nil
}
