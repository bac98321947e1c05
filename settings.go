package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultWindowW   = 1280
	defaultWindowH   = 720
	defaultSharePath = "autosave.gadgets"
)

// Optional settings file read from next to the binary. Missing file means
// defaults.
type Settings struct {
	WindowW   int    `yaml:"window_width"`
	WindowH   int    `yaml:"window_height"`
	SharePath string `yaml:"share_path"`
}

func DefaultSettings() Settings {
	return Settings{
		WindowW:   defaultWindowW,
		WindowH:   defaultWindowH,
		SharePath: defaultSharePath,
	}
}

func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	if s.WindowW <= 0 || s.WindowH <= 0 {
		return s, fmt.Errorf("parse settings: bad window size %dx%d", s.WindowW, s.WindowH)
	}
	return s, nil
}
