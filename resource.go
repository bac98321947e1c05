package main

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders
var shadersFS embed.FS
var shaders = map[string]*ebiten.Shader{}

// Loads a shader from the given shader path (shaders/*), reusing it if previously loaded. Not thread safe.
func Shader(path string) (*ebiten.Shader, error) {
	if s, ok := shaders[path]; ok {
		return s, nil
	}
	b, err := shadersFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	shader, err := ebiten.NewShader(b)
	if err != nil {
		return nil, fmt.Errorf("loading shader: %w", err)
	}
	shaders[path] = shader
	return shader, nil
}
