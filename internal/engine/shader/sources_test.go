package shader

import (
	"strings"
	"testing"

	"github.com/Faultbox/meshview/internal/engine/render"
)

func TestEmbeddedSources(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"viewport vertex", ViewportVertexShader, []string{render.UniformMVP, render.AttribPosition, render.AttribNormal}},
		{"viewport fragment", ViewportFragmentShader, []string{render.UniformColor, render.UniformDifferHue}},
		{"picking vertex", PickingVertexShader, []string{render.UniformMVP, render.AttribPosition}},
		{"picking fragment", PickingFragmentShader, []string{render.UniformColor}},
		{"text vertex", TextVertexShader, []string{"projection", "a_position", "a_texcoord", "a_color"}},
		{"text fragment", TextFragmentShader, []string{"glyphs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.source, "#version 410 core") {
				t.Errorf("missing core profile version line")
			}
			for _, name := range tt.want {
				if !strings.Contains(tt.source, name) {
					t.Errorf("source does not reference %q", name)
				}
			}
		})
	}
}
