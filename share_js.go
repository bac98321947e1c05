//go:build js

package main

import (
	"strings"
	"syscall/js"
)

// On wasm the share string lives in the page URL so links are copyable.

func platformSettings() (Settings, error) {
	return DefaultSettings(), nil
}

func loadShare(Settings) (string, error) {
	hash := js.Global().Get("location").Get("hash").String()
	return strings.TrimPrefix(hash, "#"), nil
}

func saveShare(_ Settings, enc string) error {
	js.Global().Get("location").Set("hash", enc)
	return nil
}
