// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BoxVertexShader transforms colored vertices by the projection and
// model-view matrices.
//
//go:embed box.vert
var BoxVertexShader string

// BoxFragmentShader outputs the interpolated vertex color.
//
//go:embed box.frag
var BoxFragmentShader string
