package easel

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Brush holds the paint parameters for a stroke: daub radius in image
// pixels, paint color, and blend opacity in [0, 1].
type Brush struct {
	Radius  float32
	Color   color.RGBA
	Opacity float32
}

// DefaultBrush returns the engine's initial brush: a 4px opaque black.
func DefaultBrush() Brush {
	return Brush{Radius: 4, Color: color.RGBA{A: 255}, Opacity: 1}
}

// effectiveRadius scales the base radius by pen pressure, clamped so a
// light touch still paints at least a single pixel.
func (b Brush) effectiveRadius(pressure float32) float32 {
	r := b.Radius * clamp01(pressure)
	if r < 1 {
		return 1
	}
	return r
}

// Sample is one input point of a stroke in image-space coordinates.
type Sample struct {
	Pos      Point
	Pressure float32
}

// Stroke is one continuous brush interaction from pointer-down to
// pointer-up: the ordered input samples plus the brush parameters
// snapshotted when the stroke started. Strokes are transient; the engine
// returns the finished stroke to the caller and forgets it.
type Stroke struct {
	Brush   Brush
	Samples []Sample
}

type strokePhase uint8

const (
	phaseIdle strokePhase = iota
	phaseStroking
)

// BrushEngine rasterizes brush strokes into a pixel buffer.
//
// The engine is a two-state machine (idle, stroking). Continue and finish
// calls while idle are silent no-ops: a pointer-up without a matching
// pointer-down is reachable through ordinary input races such as pointer
// capture loss, and must not fault. A start while already stroking
// abandons the dangling stroke and begins a new one.
//
// The engine never owns pixels: every call receives the target buffer and
// must not retain it, because undo/redo and load replace the buffer
// object wholesale between calls.
type BrushEngine struct {
	brush  Brush
	phase  strokePhase
	stroke Stroke
}

// NewBrushEngine returns an idle engine with the default brush.
func NewBrushEngine() *BrushEngine {
	return &BrushEngine{brush: DefaultBrush()}
}

// SetBrush replaces the brush used by future strokes. Opacity is clamped
// to [0, 1]. A stroke already in progress keeps its snapshot.
func (e *BrushEngine) SetBrush(b Brush) {
	b.Opacity = clamp01(b.Opacity)
	if b.Radius < 1 {
		b.Radius = 1
	}
	e.brush = b
}

// Brush returns the brush used by future strokes.
func (e *BrushEngine) Brush() Brush {
	return e.brush
}

// Stroking reports whether a stroke is in progress.
func (e *BrushEngine) Stroking() bool {
	return e.phase == phaseStroking
}

// StartStroke begins a new stroke at pos and paints its first daub, so a
// single click leaves a mark. If a previous stroke was left dangling by a
// lost pointer, it is abandoned and the new stroke starts cleanly.
func (e *BrushEngine) StartStroke(buf *PixBuf, pos Point, pressure float32) {
	if e.phase == phaseStroking {
		Logger().Warn("stroke start while stroking; abandoning dangling stroke",
			"samples", len(e.stroke.Samples))
	}
	pressure = clamp01(pressure)
	e.phase = phaseStroking
	e.stroke = Stroke{
		Brush:   e.brush,
		Samples: []Sample{{Pos: pos, Pressure: pressure}},
	}
	daub(buf, pos, e.stroke.Brush.effectiveRadius(pressure), e.stroke.Brush.Color, e.stroke.Brush.Opacity)
}

// ContinueStroke extends the current stroke to pos, painting interpolated
// daubs along the segment from the previous sample. Returns false without
// painting when no stroke is in progress.
func (e *BrushEngine) ContinueStroke(buf *PixBuf, pos Point, pressure float32) bool {
	if e.phase != phaseStroking {
		return false
	}
	pressure = clamp01(pressure)
	prev := e.stroke.Samples[len(e.stroke.Samples)-1]
	cur := Sample{Pos: pos, Pressure: pressure}
	e.paintSegment(buf, prev, cur)
	e.stroke.Samples = append(e.stroke.Samples, cur)
	return true
}

// FinishStroke paints a final daub at pos, returns the completed stroke,
// and resets the engine to idle. Returns false when no stroke is in
// progress.
func (e *BrushEngine) FinishStroke(buf *PixBuf, pos Point, pressure float32) (Stroke, bool) {
	if e.phase != phaseStroking {
		return Stroke{}, false
	}
	e.ContinueStroke(buf, pos, pressure)
	done := e.stroke
	e.phase = phaseIdle
	e.stroke = Stroke{}
	return done, true
}

// Abandon drops any stroke in progress without painting or returning it.
// Used when the target buffer is replaced mid-stroke, e.g. by a load.
func (e *BrushEngine) Abandon() {
	if e.phase == phaseStroking {
		Logger().Debug("stroke abandoned", "samples", len(e.stroke.Samples))
	}
	e.phase = phaseIdle
	e.stroke = Stroke{}
}

// lastSample returns the most recent sample of the stroke in progress.
func (e *BrushEngine) lastSample() (Sample, bool) {
	if e.phase != phaseStroking || len(e.stroke.Samples) == 0 {
		return Sample{}, false
	}
	return e.stroke.Samples[len(e.stroke.Samples)-1], true
}

// paintSegment daubs from just past prev up to and including cur, stepping
// at half the effective radius so fast pointer movement leaves a solid
// line instead of a row of separated dots.
func (e *BrushEngine) paintSegment(buf *PixBuf, prev, cur Sample) {
	b := e.stroke.Brush
	dist := prev.Pos.Distance(cur.Pos)
	spacing := b.effectiveRadius(math32.Max(prev.Pressure, cur.Pressure)) / 2
	if spacing < 1 {
		spacing = 1
	}
	steps := int(math32.Ceil(dist / spacing))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps)
		pos := prev.Pos.Lerp(cur.Pos, t)
		pressure := prev.Pressure + (cur.Pressure-prev.Pressure)*t
		daub(buf, pos, b.effectiveRadius(pressure), b.Color, b.Opacity)
	}
}

// daub blends one circular mark into the buffer. Every pixel whose
// Euclidean distance from center is at most radius is moved toward the
// brush color by opacity and forced fully opaque; pixels outside the
// buffer are clipped. The same inputs always paint the same pixels the
// same way.
func daub(buf *PixBuf, center Point, radius float32, c color.RGBA, opacity float32) {
	opacity = clamp01(opacity)
	x0 := int(math32.Floor(center.X - radius))
	x1 := int(math32.Ceil(center.X + radius))
	y0 := int(math32.Floor(center.Y - radius))
	y1 := int(math32.Ceil(center.Y + radius))

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= buf.Width() {
		x1 = buf.Width() - 1
	}
	if y1 >= buf.Height() {
		y1 = buf.Height() - 1
	}

	rr := radius * radius
	data := buf.Data()
	for y := y0; y <= y1; y++ {
		dy := float32(y) - center.Y
		for x := x0; x <= x1; x++ {
			dx := float32(x) - center.X
			if dx*dx+dy*dy > rr {
				continue
			}
			i := (y*buf.Width() + x) * 4
			data[i+0] = blendChannel(data[i+0], c.R, opacity)
			data[i+1] = blendChannel(data[i+1], c.G, opacity)
			data[i+2] = blendChannel(data[i+2], c.B, opacity)
			data[i+3] = 0xFF
		}
	}
}

// blendChannel linearly interpolates one 8-bit channel toward the brush
// value: old*(1-opacity) + brush*opacity, rounded to nearest.
func blendChannel(old, brush uint8, opacity float32) uint8 {
	v := float32(old)*(1-opacity) + float32(brush)*opacity
	return uint8(v + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
