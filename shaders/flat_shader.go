//go:build ignore
// +build ignore

package shaders

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	return color
}
