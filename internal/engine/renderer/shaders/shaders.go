// Package shaders embeds the GLSL sources used by the renderer.
package shaders

import _ "embed"

// MeshVertexShader transforms lit meshes.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades meshes with ambient, directional and point lights.
//
//go:embed mesh.frag
var MeshFragmentShader string

// LineVertexShader draws per-vertex coloured helper lines.
//
//go:embed line.vert
var LineVertexShader string

//go:embed line.frag
var LineFragmentShader string
