//go:build !js

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const settingsPath = "settings.yaml"

func platformSettings() (Settings, error) {
	return LoadSettings(settingsPath)
}

func loadShare(s Settings) (string, error) {
	b, err := os.ReadFile(s.SharePath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read share file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func saveShare(s Settings, enc string) error {
	if err := os.WriteFile(s.SharePath, []byte(enc+"\n"), 0644); err != nil {
		return fmt.Errorf("write share file: %w", err)
	}
	return nil
}
