package easel

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"

	"github.com/gopaint/easel/mesh"
)

// Surface is the composition root of the paint engine. It exclusively
// owns the pixel buffer, the two view matrices, the dirty (upload
// pending) flag, the undo history, and the brush engine, and it turns
// normalized input intents into mutations of that state.
//
// A Surface is single-owner: call every method from one goroutine,
// typically the host's event loop. The brush engine and history receive
// the pixel buffer per call and never retain it, so undo/redo and load
// can replace the buffer object wholesale.
type Surface struct {
	pix  *PixBuf
	mode Mode
	mesh *mesh.Mesh

	imageMat   Mat4
	meshMat    Mat4
	projection Mat4

	dirty   bool
	history History
	engine  *BrushEngine

	// preStroke is the copy-on-write snapshot taken when the current
	// stroke started; committed to history when the stroke finishes.
	preStroke *PixBuf

	pan struct {
		active bool
		lastUI Point
	}

	viewportW int
	viewportH int

	loadGen uint64

	opts surfaceOptions
}

// NewSurface creates a surface with a blank canvas of the given size.
func NewSurface(width, height int, opts ...Option) *Surface {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Surface{
		pix:        NewPixBuf(width, height, o.background),
		mesh:       mesh.Quad(),
		projection: o.projection,
		engine:     NewBrushEngine(),
		viewportW:  o.viewportW,
		viewportH:  o.viewportH,
		dirty:      true,
		opts:       o,
	}
	s.engine.SetBrush(o.brush)
	s.resetMatrices()
	return s
}

// Pix returns the live pixel buffer. The pointer is only valid until the
// next load, resize, undo, or redo.
func (s *Surface) Pix() *PixBuf {
	return s.pix
}

// Dirty reports whether the buffer has changed since the last upload.
func (s *Surface) Dirty() bool {
	return s.dirty
}

// Mode returns the active view mode.
func (s *Surface) Mode() Mode {
	return s.mode
}

// SetMode switches between the texture and mesh views. Switching never
// resets either view matrix; each mode keeps its own pan/zoom state.
func (s *Surface) SetMode(m Mode) {
	if m != ModeTexture && m != ModeMesh {
		return
	}
	if m != s.mode {
		Logger().Info("view mode switched", "mode", m.String())
	}
	s.mode = m
}

// SetMesh replaces the mesh shown in mesh mode. Valid before any image
// is loaded; the mesh is then textured by the blank canvas.
func (s *Surface) SetMesh(m *mesh.Mesh) {
	if m == nil {
		return
	}
	s.mesh = m
}

// Mesh returns the mesh shown in mesh mode.
func (s *Surface) Mesh() *mesh.Mesh {
	return s.mesh
}

// SetViewport updates the UI viewport size. The viewport centers loaded
// images and anchors mesh-mode zoom.
func (s *Surface) SetViewport(width, height int) {
	s.viewportW = width
	s.viewportH = height
}

// Brush returns the brush used by future strokes.
func (s *Surface) Brush() Brush {
	return s.engine.Brush()
}

// SetBrush replaces the brush used by future strokes.
func (s *Surface) SetBrush(b Brush) {
	s.engine.SetBrush(b)
}

// Transform returns a Transformer over the surface's current matrices.
// The Transformer reads live state; it stays correct across pan and zoom.
func (s *Surface) Transform() Transformer {
	return Transformer{Image: &s.imageMat, Mesh: &s.meshMat, Projection: &s.projection}
}

// ImageMatrix returns a copy of the texture view's matrix.
func (s *Surface) ImageMatrix() Mat4 {
	return s.imageMat
}

// MeshMatrix returns a copy of the mesh view's matrix.
func (s *Surface) MeshMatrix() Mat4 {
	return s.meshMat
}

// History returns the undo history, mainly for inspection in tests and
// UI state (CanUndo/CanRedo).
func (s *Surface) History() *History {
	return &s.history
}

// activeView returns the current view as its tagged variant.
func (s *Surface) activeView() view {
	switch s.mode {
	case ModeMesh:
		return meshView{mat: &s.meshMat, mesh: s.mesh}
	default:
		return textureView{mat: &s.imageMat}
	}
}

// resetMatrices restores both view matrices to their initial state: the
// image centered in the viewport, the mesh at identity.
func (s *Surface) resetMatrices() {
	s.imageMat = Identity4()
	if s.viewportW > 0 && s.viewportH > 0 {
		s.imageMat = s.imageMat.Translate(
			float32(s.viewportW-s.pix.Width())/2,
			float32(s.viewportH-s.pix.Height())/2,
			0,
		)
	}
	s.meshMat = Identity4()
}

// ResetTransform restores the active view's matrix to its initial state.
func (s *Surface) ResetTransform() {
	switch s.activeView().(type) {
	case meshView:
		s.meshMat = Identity4()
	default:
		old := s.meshMat
		s.resetMatrices()
		s.meshMat = old
	}
}

// LoadImage replaces the canvas with a copy of the image's pixels,
// resets both view matrices, clears the undo history, and schedules a
// texture upload.
func (s *Surface) LoadImage(img image.Image) {
	s.pix = FromImage(img)
	s.abandonStroke()
	s.history.Reset()
	s.resetMatrices()
	s.dirty = true
	Logger().Info("image loaded", "width", s.pix.Width(), "height", s.pix.Height())
}

// Reset restores a blank canvas of the current size, clearing history
// and transforms.
func (s *Surface) Reset() {
	s.pix = NewPixBuf(s.pix.Width(), s.pix.Height(), s.opts.background)
	s.abandonStroke()
	s.history.Reset()
	s.resetMatrices()
	s.dirty = true
}

// Resize rescales the canvas content to the new dimensions with a
// bilinear filter. Like load, it clears the undo history: old snapshots
// no longer match the buffer dimensions.
func (s *Surface) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	if width == s.pix.Width() && height == s.pix.Height() {
		return
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Rect, s.pix, s.pix.Bounds(), xdraw.Src, nil)
	s.pix = &PixBuf{width: width, height: height, data: dst.Pix}
	s.abandonStroke()
	s.history.Reset()
	s.dirty = true
	Logger().Info("canvas resized", "width", width, "height", height)
}

// abandonStroke drops any stroke in progress together with its pre-stroke
// snapshot. Used when the buffer is replaced out from under the engine.
func (s *Surface) abandonStroke() {
	s.engine.Abandon()
	s.preStroke = nil
}

// StrokeStart begins a brush stroke at the given UI position. The
// pre-stroke buffer is snapshotted here (copy-on-write) so that undo
// restores the exact image the stroke started from.
//
// Strokes paint in texture mode only; in mesh mode the intent is dropped.
func (s *Surface) StrokeStart(ui Point, pressure float32) {
	if s.mode != ModeTexture {
		Logger().Debug("stroke start ignored in mesh mode")
		return
	}
	p, err := s.Transform().UIToImage(ui)
	if err != nil {
		Logger().Warn("stroke start dropped", "err", err)
		return
	}
	if !s.engine.Stroking() {
		s.preStroke = s.pix.Clone()
	}
	s.engine.StartStroke(s.pix, p, pressure)
	s.dirty = true
}

// StrokeContinue extends the stroke in progress. A continue with no
// stroke in progress is a silent no-op.
func (s *Surface) StrokeContinue(ui Point, pressure float32) {
	if !s.engine.Stroking() {
		return
	}
	p, err := s.Transform().UIToImage(ui)
	if err != nil {
		Logger().Warn("stroke sample dropped", "err", err)
		return
	}
	if s.engine.ContinueStroke(s.pix, p, pressure) {
		s.dirty = true
	}
}

// StrokeFinish ends the stroke in progress with a final daub and commits
// the pre-stroke snapshot to the undo history. A finish with no stroke in
// progress is a silent no-op.
func (s *Surface) StrokeFinish(ui Point, pressure float32) {
	if !s.engine.Stroking() {
		return
	}
	p, err := s.Transform().UIToImage(ui)
	if err != nil {
		// The final position is unusable; close the stroke where it last
		// painted so history stays consistent.
		Logger().Warn("stroke finish position dropped", "err", err)
		s.finishStrokeInPlace()
		return
	}
	stroke, ok := s.engine.FinishStroke(s.pix, p, pressure)
	if !ok {
		return
	}
	s.commitStroke(len(stroke.Samples))
}

// finishStrokeInPlace ends the stroke in progress at its last painted
// sample, without a new input position. Used when the final position is
// unusable or the stroke is cut short by a mode switch.
func (s *Surface) finishStrokeInPlace() {
	last, ok := s.engine.lastSample()
	if !ok {
		s.abandonStroke()
		return
	}
	stroke, ok := s.engine.FinishStroke(s.pix, last.Pos, last.Pressure)
	if !ok {
		return
	}
	s.commitStroke(len(stroke.Samples))
}

// commitStroke records the finished stroke's pre-stroke snapshot in the
// undo history.
func (s *Surface) commitStroke(samples int) {
	if s.preStroke != nil {
		s.history.Checkpoint(s.preStroke)
		s.preStroke = nil
	}
	s.dirty = true
	Logger().Debug("stroke finished", "samples", samples)
}

// Undo steps the canvas back one committed stroke. Returns false when
// there is nothing to undo. Ignored while a stroke is in progress.
func (s *Surface) Undo() bool {
	if s.engine.Stroking() {
		return false
	}
	buf, ok := s.history.Undo(s.pix)
	if !ok {
		return false
	}
	s.pix = buf
	s.dirty = true
	return true
}

// Redo steps the canvas forward one undone stroke. Returns false when
// there is nothing to redo. Ignored while a stroke is in progress.
func (s *Surface) Redo() bool {
	if s.engine.Stroking() {
		return false
	}
	buf, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.pix = buf
	s.dirty = true
	return true
}

// PanStart begins a pan gesture at the given UI position.
func (s *Surface) PanStart(ui Point) {
	s.pan.active = true
	s.pan.lastUI = ui
}

// PanMove continues a pan gesture. In texture mode the image matrix is
// translated by the delta between the successive image-space positions of
// the cursor, so the canvas tracks the pointer exactly at any zoom. In
// mesh mode the mesh matrix is translated by a fixed-scale screen delta
// projected into clip space.
func (s *Surface) PanMove(ui Point) {
	if !s.pan.active {
		return
	}
	switch v := s.activeView().(type) {
	case meshView:
		delta := ui.Sub(s.pan.lastUI).Mul(s.opts.meshPanScale)
		*v.mat = v.mat.Translate(delta.X, -delta.Y, 0)
	default:
		t := s.Transform()
		p0, err0 := t.UIToImage(s.pan.lastUI)
		p1, err1 := t.UIToImage(ui)
		if err0 != nil || err1 != nil {
			Logger().Warn("pan sample dropped", "err", ErrSingularTransform)
			s.pan.lastUI = ui
			return
		}
		delta := p1.Sub(p0)
		s.imageMat = s.imageMat.TranslateLocal(delta.X, delta.Y, 0)
	}
	s.pan.lastUI = ui
}

// PanStop ends a pan gesture.
func (s *Surface) PanStop() {
	s.pan.active = false
}

// Panning reports whether a pan gesture is in progress.
func (s *Surface) Panning() bool {
	return s.pan.active
}

// Zoom scales the active view by zoomStep^delta. In texture mode the
// zoom pivots on the given UI position so the point under the cursor
// stays put; in mesh mode it pivots on the viewport center. The
// cumulative scale is clamped to the configured zoom limits, which keeps
// the matrices invertible.
func (s *Surface) Zoom(delta float32, pivotUI Point) {
	v := s.activeView()
	factor := math32.Pow(s.opts.zoomStep, delta)
	cur := v.matrix().ScaleX()
	if cur*factor < s.opts.minZoom {
		factor = s.opts.minZoom / cur
	}
	if cur*factor > s.opts.maxZoom {
		factor = s.opts.maxZoom / cur
	}
	if factor <= 0 {
		return
	}
	switch v.(type) {
	case meshView:
		// Viewport center maps to the clip-space origin.
		s.meshMat = s.meshMat.ZoomAround(Pt(0, 0), factor)
	default:
		s.imageMat = s.imageMat.ZoomAround(pivotUI, factor)
	}
}

// Draw presents the active view through the renderer: the pixel buffer is
// uploaded first if it changed, then one draw is issued. With a clean
// buffer this is a pure redraw, so a frame-driven loop can call it
// unconditionally.
func (s *Surface) Draw(r Renderer) error {
	if r == nil {
		return ErrNoRenderer
	}
	if s.dirty {
		if err := r.UploadTexture(s.pix.Bounds(), s.pix.Data(), s.pix.Stride()); err != nil {
			return err
		}
		s.dirty = false
		Logger().Debug("texture uploaded",
			"width", s.pix.Width(), "height", s.pix.Height())
	}
	op := DrawOp{
		Viewport: image.Point{X: s.viewportW, Y: s.viewportH},
	}
	switch v := s.activeView().(type) {
	case meshView:
		op.Mode = ModeMesh
		op.Transform = *v.mat
		op.Projection = s.projection
		op.Mesh = v.mesh
	default:
		op.Mode = ModeTexture
		op.Transform = s.imageMat
		op.Projection = Identity4()
	}
	return r.Draw(op)
}

// Background returns the configured canvas background color.
func (s *Surface) Background() color.RGBA {
	return s.opts.background
}
