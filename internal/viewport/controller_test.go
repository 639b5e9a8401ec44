package viewport

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/engine/render/rendertest"
	"github.com/Faultbox/meshview/internal/viewport/axes"
	"github.com/Faultbox/meshview/internal/viewport/camera"
	"github.com/Faultbox/meshview/internal/viewport/picking"
	"github.com/Faultbox/meshview/internal/viewport/projection"
)

type fakeScene struct {
	dev      *rendertest.Device
	diameter float32
	active   map[int]bool
	picks    int
}

func (s *fakeScene) DrawAll(prog render.Program) {
	s.dev.Draw(render.Triangles, 0, 36)
}

func (s *fakeScene) DrawPicking(prog render.Program) {
	s.picks++
	s.dev.Draw(render.Triangles, 0, 36)
}

func (s *fakeScene) MaxDiameter() float32 { return s.diameter }

func (s *fakeScene) SetActiveByIndex(id int) {
	if id != picking.NoHit {
		s.active[id] = true
	}
}

func (s *fakeScene) SetAllInactive() {
	s.active = make(map[int]bool)
}

func (s *fakeScene) Info() []InfoRow {
	return []InfoRow{{Label: "Objects:", Value: "1"}}
}

func (s *fakeScene) activeIDs() []int {
	var ids []int
	for id := range s.active {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type text struct {
	x, y  float32
	s     string
	color render.Color
}

type fakeOverlay struct {
	texts  []text
	frames int
}

func (o *fakeOverlay) Begin(width, height int) { o.texts = nil }
func (o *fakeOverlay) LineHeight() float32     { return 16 }
func (o *fakeOverlay) End()                    { o.frames++ }

func (o *fakeOverlay) DrawText(x, y float32, s string, c render.Color) {
	o.texts = append(o.texts, text{x, y, s, c})
}

func (o *fakeOverlay) find(s string) (text, bool) {
	for _, t := range o.texts {
		if t.s == s {
			return t, true
		}
	}
	return text{}, false
}

type harness struct {
	dev     *rendertest.Device
	main    *rendertest.Program
	pick    *rendertest.Program
	scene   *fakeScene
	overlay *fakeOverlay
	c       *Controller
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{
		dev:     rendertest.NewDevice(),
		main:    rendertest.NewProgram("viewport"),
		pick:    rendertest.NewProgram("picking"),
		overlay: &fakeOverlay{},
	}
	h.scene = &fakeScene{dev: h.dev, active: make(map[int]bool)}
	h.c = New(h.dev, h.scene, h.overlay, opts, nil)
	require.NoError(t, h.c.Init(func() (render.Program, render.Program, error) {
		return h.main, h.pick, nil
	}))
	require.NoError(t, h.c.Paint())
	h.dev.Reset()
	return h
}

func TestInitFailureHalts(t *testing.T) {
	dev := rendertest.NewDevice()
	c := New(dev, &fakeScene{dev: dev}, nil, DefaultOptions(), nil)

	loadErr := errors.New("compile failed")
	err := c.Init(func() (render.Program, render.Program, error) {
		return nil, nil, loadErr
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, loadErr))

	assert.True(t, errors.Is(c.Paint(), ErrNotInitialized))
	assert.Empty(t, dev.Log, "a halted viewport must not draw")
}

func TestPaintBeforeInit(t *testing.T) {
	dev := rendertest.NewDevice()
	c := New(dev, &fakeScene{dev: dev}, nil, DefaultOptions(), nil)
	assert.ErrorIs(t, c.Paint(), ErrNotInitialized)
}

func TestInitialState(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	s := h.c.Camera()
	assert.Equal(t, float32(0), s.AngleX)
	assert.Equal(t, float32(70), s.AngleY)
	assert.Equal(t, float32(100), s.Zoom)
	assert.Equal(t, 10, h.c.GridStep())
	assert.Equal(t, projection.NearStandard, h.c.NearPlane())
	assert.False(t, h.c.NeedsRedraw(), "Paint clears the redraw flag")
}

func TestSetFrontView(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.c.SetFrontView()
	s := h.c.Camera()
	assert.Equal(t, float32(0), s.AngleX)
	assert.Equal(t, float32(90), s.AngleY)
	assert.True(t, h.c.NeedsRedraw())
}

func TestPresetShortcuts(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	tests := []struct {
		set  func()
		x, y float32
	}{
		{h.c.SetBackView, 180, 90},
		{h.c.SetLeftView, 270, 90},
		{h.c.SetRightView, 90, 90},
		{h.c.SetTopView, 0, 0},
		{h.c.SetBottomView, 0, 180},
	}
	for _, tt := range tests {
		tt.set()
		s := h.c.Camera()
		assert.Equal(t, tt.x, s.AngleX)
		assert.Equal(t, tt.y, s.AngleY)
	}
}

func TestPaintOrder(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	require.NoError(t, h.c.Paint())

	assert.Equal(t, []string{
		"clear 1.00 1.00 1.00",
		"depth true",
		"viewport 0 0 800 600",
		// world axes
		"bind buffer 1",
		"draw lines 0 4",
		"draw lines 4 4",
		"draw lines 8 4",
		// scene
		"draw triangles 0 36",
		// corner indicator
		"viewport 5 5 105 105",
		"bind buffer 1",
		"draw lines 12 2",
		"draw lines 14 2",
		"draw lines 16 2",
		"depth false",
		"viewport 0 0 800 600",
	}, h.dev.Log)
	assert.Equal(t, 2, h.overlay.frames, "overlay drawn once per frame")
}

func TestPaintGridAfterIndicator(t *testing.T) {
	opts := DefaultOptions()
	opts.Axes = false
	opts.Grid = true
	h := newHarness(t, opts)
	require.NoError(t, h.c.Paint())

	assert.Equal(t, []string{
		"clear 1.00 1.00 1.00",
		"depth true",
		"viewport 0 0 800 600",
		"draw triangles 0 36",
		"viewport 5 5 105 105",
		"bind buffer 1",
		"draw lines 12 2",
		"draw lines 14 2",
		"draw lines 16 2",
		"viewport 0 0 800 600",
		"bind buffer 2",
		"draw lines 0 84",
		"depth false",
		"viewport 0 0 800 600",
	}, h.dev.Log)
	assert.Equal(t, render.Gray.Vec3(), h.main.Vec3[render.UniformColor], "grid is gray on white")
}

func TestGridColorOnDarkBackground(t *testing.T) {
	opts := DefaultOptions()
	opts.Grid = true
	h := newHarness(t, opts)

	h.c.SetBackgroundColor(render.Black)
	require.NoError(t, h.c.Paint())
	assert.Equal(t, "clear 0.00 0.00 0.00", h.dev.Log[0])
	assert.Equal(t, render.White.Vec3(), h.main.Vec3[render.UniformColor])
}

func TestPickReplace(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.scene.active[3] = true
	h.dev.Pixel = [3]uint8{0, 0, 7}

	h.c.PointerPress(Pointer{X: 10, Y: 20, Button: ButtonRight})
	req, ok := h.c.PendingPick()
	require.True(t, ok)
	assert.Equal(t, picking.Request{X: 10, Y: 20}, req)

	require.NoError(t, h.c.Paint())
	assert.Equal(t, []int{7}, h.scene.activeIDs())
	assert.Equal(t, 1, h.scene.picks)

	_, ok = h.c.PendingPick()
	assert.False(t, ok, "request is consumed by one paint")
	assert.True(t, h.c.NeedsRedraw(), "selection change needs a redraw")

	require.Len(t, h.dev.Targets, 1)
	assert.Equal(t, [][2]int{{10, 20}}, h.dev.Targets[0].Reads)
	assert.True(t, h.dev.Targets[0].Destroyed)

	require.NoError(t, h.c.Paint())
	assert.Equal(t, 1, h.scene.picks, "no second pick")
}

func TestPickAdditive(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.scene.active[3] = true
	h.dev.Pixel = [3]uint8{0, 0, 7}

	h.c.PointerPress(Pointer{X: 1, Y: 1, Button: ButtonRight, Shift: true})
	require.NoError(t, h.c.Paint())
	assert.Equal(t, []int{3, 7}, h.scene.activeIDs())
}

func TestPickBackgroundClears(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.scene.active[3] = true

	h.c.PointerPress(Pointer{X: 1, Y: 1, Button: ButtonRight})
	require.NoError(t, h.c.Paint())
	assert.Empty(t, h.scene.activeIDs())
}

func TestPickLastRequestWins(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.c.PointerPress(Pointer{X: 1, Y: 1, Button: ButtonRight})
	h.c.PointerRelease(Pointer{X: 1, Y: 1, Button: ButtonRight})
	h.c.PointerPress(Pointer{X: 5, Y: 6, Button: ButtonRight, Shift: true})
	require.NoError(t, h.c.Paint())

	require.Len(t, h.dev.Targets, 1)
	assert.Equal(t, [][2]int{{5, 6}}, h.dev.Targets[0].Reads)
}

func TestPickScaledToDevicePixels(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.c.Resize(400, 300, 2)

	h.c.PointerPress(Pointer{X: 10, Y: 20, Button: ButtonRight})
	require.NoError(t, h.c.Paint())

	require.Len(t, h.dev.Targets, 1)
	tg := h.dev.Targets[0]
	assert.Equal(t, 800, tg.Width)
	assert.Equal(t, 600, tg.Height)
	assert.Equal(t, [][2]int{{20, 40}}, tg.Reads)
}

func TestPickFailure(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.scene.active[3] = true
	h.dev.FailTargets = true
	before := h.c.Camera()

	h.c.PointerPress(Pointer{X: 1, Y: 1, Button: ButtonRight})
	err := h.c.Paint()
	require.Error(t, err)
	assert.ErrorIs(t, err, picking.ErrNoTarget)

	assert.Equal(t, []int{3}, h.scene.activeIDs(), "selection untouched")
	assert.Equal(t, before, h.c.Camera(), "camera untouched")
	_, ok := h.c.PendingPick()
	assert.False(t, ok, "failed request is dropped")

	h.dev.FailTargets = false
	assert.NoError(t, h.c.Paint())
}

func TestRotateDrag(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.c.PointerPress(Pointer{X: 100, Y: 100, Button: ButtonLeft})
	h.c.PointerMove(Pointer{X: 110, Y: 90})
	s := h.c.Camera()
	assert.InDelta(t, 350, s.AngleX, 1e-4)
	assert.InDelta(t, 80, s.AngleY, 1e-4)
	assert.True(t, h.c.NeedsRedraw())
	_, pending := h.c.PendingPick()
	assert.False(t, pending, "left press does not pick")
}

func TestPanDrag(t *testing.T) {
	tests := []struct {
		name   string
		button Button
		shift  bool
	}{
		{"middle", ButtonMiddle, false},
		{"shift left", ButtonLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, DefaultOptions())
			h.c.PointerPress(Pointer{X: 0, Y: 0, Button: tt.button, Shift: tt.shift})
			h.c.PointerMove(Pointer{X: 9, Y: 6, Shift: tt.shift})

			s := h.c.Camera()
			assert.InDelta(t, 3, s.PanX, 1e-5)
			assert.InDelta(t, -2, s.PanY, 1e-5)
			assert.Equal(t, float32(70), s.AngleY, "pan does not rotate")

			h.c.CenterPosition()
			s = h.c.Camera()
			assert.Zero(t, s.PanX)
			assert.Zero(t, s.PanY)
		})
	}
}

func TestInvertedControls(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	require.True(t, h.c.ToggleInvertedControls())

	h.c.PointerPress(Pointer{X: 100, Y: 100, Button: ButtonLeft})
	h.c.PointerMove(Pointer{X: 110, Y: 90})
	s := h.c.Camera()
	assert.InDelta(t, 10, s.AngleX, 1e-4)
	assert.InDelta(t, 60, s.AngleY, 1e-4)
}

func TestMoveWithoutButton(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	before := h.c.Camera()

	h.c.PointerMove(Pointer{X: 50, Y: 50})
	assert.Equal(t, before, h.c.Camera())
	assert.False(t, h.c.NeedsRedraw())

	h.c.PointerPress(Pointer{X: 50, Y: 50, Button: ButtonLeft})
	h.c.PointerRelease(Pointer{X: 50, Y: 50, Button: ButtonLeft})
	h.c.PointerMove(Pointer{X: 80, Y: 80})
	assert.Equal(t, before, h.c.Camera(), "release ends the drag")
}

func TestRedrawTimer(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	interval, running := h.c.RedrawTimer()
	assert.Equal(t, RedrawInterval, interval)
	assert.False(t, running)
	h.c.Tick()
	assert.False(t, h.c.NeedsRedraw(), "idle timer does nothing")

	h.c.PointerPress(Pointer{Button: ButtonLeft})
	h.c.PointerPress(Pointer{Button: ButtonMiddle})
	_, running = h.c.RedrawTimer()
	assert.True(t, running)
	h.c.Tick()
	assert.True(t, h.c.NeedsRedraw())

	h.c.PointerRelease(Pointer{Button: ButtonLeft})
	_, running = h.c.RedrawTimer()
	assert.True(t, running, "still held")

	h.c.PointerRelease(Pointer{Button: ButtonMiddle})
	_, running = h.c.RedrawTimer()
	assert.False(t, running)
}

func TestWheel(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.c.Wheel(-1)
	assert.InDelta(t, 125, h.c.Camera().Zoom, 1e-3)
	assert.True(t, h.c.NeedsRedraw())

	h.c.Wheel(1)
	h.c.Wheel(1)
	assert.InDelta(t, 80, h.c.Camera().Zoom, 1e-3)
}

func TestWheelRejectedStillRedraws(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	for h.c.Camera().Zoom*camera.ZoomFactor < camera.MaxZoom {
		h.c.Wheel(-1)
	}
	require.NoError(t, h.c.Paint())

	z := h.c.Camera().Zoom
	h.c.Wheel(-1)
	assert.Equal(t, z, h.c.Camera().Zoom)
	assert.True(t, h.c.NeedsRedraw())
}

func TestWheelRegeneratesGridOnlyOnStepChange(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	grid := h.dev.Buffers[1]
	uploads := grid.Uploads

	steps := map[int]bool{h.c.GridStep(): true}
	for i := 0; i < 30; i++ {
		h.c.Wheel(-1)
		steps[h.c.GridStep()] = true
	}
	assert.Equal(t, uploads+len(steps)-1, grid.Uploads)
}

func TestWheelHighDensity(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.c.Resize(400, 300, 2)

	h.c.Wheel(-1)
	assert.InDelta(t, 110, h.c.Camera().Zoom, 1e-3)
}

func TestNearPlaneFollowsZoom(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.scene.diameter = 40

	h.c.RecalculatePosition()
	assert.InDelta(t, 100, h.c.Camera().Zoom, 1e-4)
	assert.Equal(t, projection.NearStandard, h.c.NearPlane())

	h.c.Wheel(1) // 80, still at the boundary
	assert.Equal(t, projection.NearStandard, h.c.NearPlane())
	h.c.Wheel(1) // 64
	assert.Equal(t, projection.NearClose, h.c.NearPlane())
}

func TestRecalculatePosition(t *testing.T) {
	tests := []struct {
		name     string
		diameter float32
		zoom     float32
	}{
		{"empty scene", 0, camera.DefaultZoom},
		{"small scene", 10, 25},
		{"huge scene", 1e6, camera.MaxZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, DefaultOptions())
			h.c.SetTopView()
			h.scene.diameter = tt.diameter

			h.c.RecalculatePosition()
			s := h.c.Camera()
			assert.Equal(t, float32(0), s.AngleX)
			assert.Equal(t, float32(70), s.AngleY)
			assert.InDelta(t, tt.zoom, s.Zoom, 1e-3)
			assert.Equal(t, projection.GridStep(s.Zoom), h.c.GridStep())
			assert.True(t, h.c.NeedsRedraw())
		})
	}
}

func TestDiameterFloorSurvivesSmallerScene(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.scene.diameter = 100
	h.c.RecalculatePosition() // zoom 250, floor 100
	h.scene.diameter = 10
	h.c.RecalculatePosition() // zoom 25, floor still 100
	assert.Equal(t, projection.NearClose, h.c.NearPlane())
}

func TestToggles(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	assert.False(t, h.c.ToggleAxes())
	assert.True(t, h.c.ToggleGrid())
	assert.False(t, h.c.ToggleInfo())
	assert.True(t, h.c.NeedsRedraw())

	o := h.c.Options()
	assert.False(t, o.Axes)
	assert.True(t, o.Grid)
	assert.False(t, o.Info)

	assert.True(t, h.c.ToggleInvertedControls())
	assert.False(t, h.c.ToggleInvertedControls())
}

func TestInfoRows(t *testing.T) {
	opts := DefaultOptions()
	h := newHarness(t, opts)
	assert.Equal(t, []InfoRow{{Label: "Objects:", Value: "1"}}, h.c.InfoRows())

	h.c.ToggleGrid()
	assert.Equal(t, []InfoRow{
		{Label: "Objects:", Value: "1"},
		{Label: "Grid step:", Value: "10"},
	}, h.c.InfoRows())

	opts.CameraInfo = true
	h = newHarness(t, opts)
	rows := h.c.InfoRows()
	require.Len(t, rows, 3)
	assert.Equal(t, InfoRow{Label: "Camera angle Y:", Value: "70.0"}, rows[2])

	h.c.SetCameraInfo(false)
	assert.Len(t, h.c.InfoRows(), 1)
	assert.True(t, h.c.NeedsRedraw())
}

func TestOverlay(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	require.NoError(t, h.c.Paint())

	label, ok := h.overlay.find("Objects:")
	require.True(t, ok)
	assert.Equal(t, render.Black, label.color)
	value, ok := h.overlay.find("1")
	require.True(t, ok)
	assert.InDelta(t, infoMargin+300*infoLabelRatio, value.x, 1e-4)

	for _, l := range []struct {
		s string
		c render.Color
	}{{"x", render.Red}, {"y", render.Green}, {"z", render.Blue}} {
		txt, ok := h.overlay.find(l.s)
		require.True(t, ok, l.s)
		assert.Equal(t, l.c, txt.color)
		// labels stay near the bottom-left corner box
		assert.Less(t, txt.x, float32(camera.IndicatorBox.X+camera.IndicatorBox.W+10))
		assert.Greater(t, txt.y, float32(600-camera.IndicatorBox.Y-camera.IndicatorBox.H-10))
	}

	h.c.ToggleInfo()
	h.c.SetTextColor(render.White)
	require.NoError(t, h.c.Paint())
	_, ok = h.overlay.find("Objects:")
	assert.False(t, ok)
}

func TestInfoWidth(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	assert.Equal(t, float32(300), h.c.infoWidth())

	h.c.Resize(200, 100, 1)
	assert.InDelta(t, 140, h.c.infoWidth(), 1e-4)
}

func TestResize(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.c.Resize(640, 480, 1.5)
	w, ht := h.c.Size()
	assert.Equal(t, 960, w)
	assert.Equal(t, 720, ht)
	assert.True(t, h.c.NeedsRedraw())

	require.NoError(t, h.c.Paint())
	assert.Contains(t, h.dev.Log, "viewport 0 0 960 720")

	h.c.Resize(0, 0, 0)
	w, ht = h.c.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, ht)
}

func TestResizeRebuildsAxesOnDensityChange(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	tip := func(b *rendertest.Buffer) float32 { return b.Data[12*6] }

	axesBuf := h.dev.Buffers[0]
	require.InDelta(t, axes.IndicatorTip, tip(axesBuf), 1e-6)

	h.c.Resize(640, 480, 2)
	require.True(t, axesBuf.Deleted)
	axesBuf = h.dev.Buffers[len(h.dev.Buffers)-1]
	assert.InDelta(t, axes.HighDensityIndicatorTip, tip(axesBuf), 1e-6)

	n := len(h.dev.Buffers)
	h.c.Resize(640, 480, 1.5)
	assert.Len(t, h.dev.Buffers, n, "still high density, no rebuild")

	h.c.Resize(640, 480, 1)
	assert.True(t, axesBuf.Deleted)
	axesBuf = h.dev.Buffers[len(h.dev.Buffers)-1]
	assert.InDelta(t, axes.IndicatorTip, tip(axesBuf), 1e-6)

	require.NoError(t, h.c.Paint())
}

func TestClose(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.c.Close()

	for _, b := range h.dev.Buffers {
		assert.True(t, b.Deleted)
	}
	assert.ErrorIs(t, h.c.Paint(), ErrNotInitialized)
}
