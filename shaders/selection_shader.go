//go:build ignore
// +build ignore

package shaders

var Time float

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	pulse := 0.75 + 0.25*sin(4*Time)
	return vec4(color.rgb*pulse, color.a)
}
