package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/pkg/math"
)

// Renderer draws queued text with blending over whatever is in the
// framebuffer. It owns its vertex array and restores the previous one.
type Renderer struct {
	log   *zap.Logger
	prog  *shader.Program
	atlas *Atlas
	batch *Batch

	vao uint32
	vbo uint32
	tex uint32

	width, height int
}

// New creates the text program and uploads the glyph atlas.
// Must be called with a current GL context.
func New(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	prog, err := shader.New("text", shader.TextVertexShader, shader.TextFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	atlas := DefaultAtlas()
	r := &Renderer{
		log:   log,
		prog:  prog,
		atlas: atlas,
		batch: NewBatch(atlas),
	}
	r.uploadAtlas()

	var prevVAO int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &prevVAO)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * render.FloatSize)
	prog.EnableAttribute("a_position", 2, stride, 0)
	prog.EnableAttribute("a_texcoord", 2, stride, 2*render.FloatSize)
	prog.EnableAttribute("a_color", 3, stride, 4*render.FloatSize)

	gl.BindVertexArray(uint32(prevVAO))

	b := atlas.Image.Bounds()
	log.Debug("overlay atlas uploaded", zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
	return r, nil
}

func (r *Renderer) uploadAtlas() {
	b := r.atlas.Image.Bounds()
	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(r.atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// SetScale sets the glyph magnification, normally the display scale
// rounded to a whole number so the bitmap stays crisp.
func (r *Renderer) SetScale(scale float32) {
	r.batch.SetScale(float32(int(scale + 0.5)))
}

// Begin starts a frame of the given device pixel size.
func (r *Renderer) Begin(width, height int) {
	r.width, r.height = width, height
	r.batch.Reset()
}

// LineHeight is the height of one text line in device pixels.
func (r *Renderer) LineHeight() float32 {
	return r.batch.LineHeight()
}

// DrawText queues text with its top-left corner at (x, y), top-left origin.
func (r *Renderer) DrawText(x, y float32, text string, c render.Color) {
	r.batch.Add(x, y, text, c)
}

// End draws everything queued since Begin.
func (r *Renderer) End() {
	count := r.batch.VertexCount()
	if count == 0 || r.width <= 0 || r.height <= 0 {
		return
	}

	var prevVAO, prevBlend int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &prevVAO)
	gl.GetIntegerv(gl.BLEND, &prevBlend)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.prog.Bind()
	r.prog.SetMat4("projection", math.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)

	verts := r.batch.Vertices()
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*render.FloatSize, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, count)

	gl.BindVertexArray(uint32(prevVAO))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.prog.Release()
	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
}

// Close releases GL resources.
func (r *Renderer) Close() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
		r.tex = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	r.prog.Delete()
}
