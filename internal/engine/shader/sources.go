package shader

import _ "embed"

// ViewportVertexShader is the vertex shader for the visible pass.
//
//go:embed glsl/viewport.vert
var ViewportVertexShader string

// ViewportFragmentShader is the fragment shader for the visible pass.
//
//go:embed glsl/viewport.frag
var ViewportFragmentShader string

// PickingVertexShader is the vertex shader for the color-id picking pass.
//
//go:embed glsl/picking.vert
var PickingVertexShader string

// PickingFragmentShader writes the flat per-object id color, unlit.
//
//go:embed glsl/picking.frag
var PickingFragmentShader string

// TextVertexShader places overlay glyph quads in screen pixels.
//
//go:embed glsl/text.vert
var TextVertexShader string

// TextFragmentShader tints the glyph atlas coverage.
//
//go:embed glsl/text.frag
var TextFragmentShader string
