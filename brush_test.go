package easel

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestDaubPaintsExactDisc(t *testing.T) {
	b := NewPixBuf(11, 11, white)
	center := Pt(5, 5)
	radius := float32(3)

	daub(b, center, radius, black, 1)

	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			dx := float32(x) - center.X
			dy := float32(y) - center.Y
			inside := dx*dx+dy*dy <= radius*radius
			got := b.GetPixel(x, y)
			if inside && got != black {
				t.Errorf("pixel (%d, %d) inside disc = %v, want black", x, y, got)
			}
			if !inside && got != white {
				t.Errorf("pixel (%d, %d) outside disc = %v, want untouched", x, y, got)
			}
		}
	}
}

func TestDaubUnitRadius(t *testing.T) {
	b := NewPixBuf(4, 4, white)

	daub(b, Pt(1, 1), 1, black, 1)

	// Radius 1 covers the center and its four orthogonal neighbors;
	// diagonals are sqrt(2) away and stay untouched.
	if got := b.GetPixel(1, 1); got != black {
		t.Errorf("center (1, 1) = %v, want black", got)
	}
	for _, p := range []image.Point{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		if got := b.GetPixel(p.X, p.Y); got != black {
			t.Errorf("neighbor (%d, %d) = %v, want black", p.X, p.Y, got)
		}
	}
	if got := b.GetPixel(0, 0); got != white {
		t.Errorf("diagonal (0, 0) = %v, want untouched", got)
	}
}

func TestDaubClipsToBounds(t *testing.T) {
	b := NewPixBuf(4, 4, white)

	// Center outside the buffer; only the overlapping part paints.
	daub(b, Pt(-1, -1), 2, black, 1)

	if got := b.GetPixel(0, 0); got != black {
		t.Errorf("overlapping pixel (0, 0) = %v, want black", got)
	}
	if got := b.GetPixel(3, 3); got != white {
		t.Errorf("far pixel (3, 3) = %v, want untouched", got)
	}
}

func TestDaubBlendsWithOpacity(t *testing.T) {
	b := NewPixBuf(3, 3, white)

	daub(b, Pt(1, 1), 1, black, 0.5)

	// 255*(1-0.5) + 0*0.5 = 127.5, rounded to 128. Alpha forced opaque.
	want := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	if got := b.GetPixel(1, 1); got != want {
		t.Errorf("half-opacity blend = %v, want %v", got, want)
	}
}

func TestDaubIsDeterministic(t *testing.T) {
	a := NewPixBuf(16, 16, white)
	b := NewPixBuf(16, 16, white)
	daub(a, Pt(7.3, 8.1), 4.2, color.RGBA{R: 30, G: 60, B: 90, A: 255}, 0.7)
	daub(b, Pt(7.3, 8.1), 4.2, color.RGBA{R: 30, G: 60, B: 90, A: 255}, 0.7)
	if !a.Equal(b) {
		t.Errorf("identical daubs produced different pixels")
	}
}

func TestBlendChannelRounds(t *testing.T) {
	tests := []struct {
		old, brush uint8
		opacity    float32
		want       uint8
	}{
		{255, 0, 1, 0},
		{255, 0, 0, 255},
		{255, 0, 0.5, 128},
		{0, 255, 0.5, 128},
		{100, 200, 0.25, 125},
	}
	for _, tt := range tests {
		if got := blendChannel(tt.old, tt.brush, tt.opacity); got != tt.want {
			t.Errorf("blendChannel(%d, %d, %v) = %d, want %d",
				tt.old, tt.brush, tt.opacity, got, tt.want)
		}
	}
}

func TestEffectiveRadiusPressure(t *testing.T) {
	b := Brush{Radius: 10}
	tests := []struct {
		pressure float32
		want     float32
	}{
		{1, 10},
		{0.5, 5},
		{0.05, 1},  // clamped to the 1px floor
		{0, 1},     // zero pressure still paints
		{2, 10},    // pressure clamped to 1
		{-0.5, 1},  // negative pressure clamped to 0, then floored
	}
	for _, tt := range tests {
		if got := b.effectiveRadius(tt.pressure); got != tt.want {
			t.Errorf("effectiveRadius(%v) = %v, want %v", tt.pressure, got, tt.want)
		}
	}
}

func TestEngineSingleClickLeavesMark(t *testing.T) {
	e := NewBrushEngine()
	e.SetBrush(Brush{Radius: 2, Color: black, Opacity: 1})
	b := NewPixBuf(8, 8, white)

	e.StartStroke(b, Pt(4, 4), 1)
	stroke, ok := e.FinishStroke(b, Pt(4, 4), 1)
	if !ok {
		t.Fatalf("FinishStroke failed after StartStroke")
	}
	if len(stroke.Samples) != 2 {
		t.Errorf("len(Samples) = %d, want 2", len(stroke.Samples))
	}
	if got := b.GetPixel(4, 4); got != black {
		t.Errorf("click position = %v, want painted", got)
	}
	if e.Stroking() {
		t.Errorf("Stroking() = true after finish")
	}
}

func TestEngineIdleNoOps(t *testing.T) {
	e := NewBrushEngine()
	b := NewPixBuf(8, 8, white)
	before := b.Clone()

	if e.ContinueStroke(b, Pt(4, 4), 1) {
		t.Errorf("ContinueStroke succeeded while idle")
	}
	if _, ok := e.FinishStroke(b, Pt(4, 4), 1); ok {
		t.Errorf("FinishStroke succeeded while idle")
	}
	if !b.Equal(before) {
		t.Errorf("idle no-ops painted pixels")
	}
}

func TestEngineRestartAbandonsDanglingStroke(t *testing.T) {
	e := NewBrushEngine()
	b := NewPixBuf(8, 8, white)

	e.StartStroke(b, Pt(1, 1), 1)
	e.StartStroke(b, Pt(6, 6), 1)

	stroke, ok := e.FinishStroke(b, Pt(6, 6), 1)
	if !ok {
		t.Fatalf("FinishStroke failed")
	}
	if got := stroke.Samples[0].Pos; got != Pt(6, 6) {
		t.Errorf("restarted stroke begins at %v, want the second start position", got)
	}
}

// A fast drag must leave a connected line: every point of the segment lies
// within the effective radius of some painted daub.
func TestEngineSegmentLeavesNoGaps(t *testing.T) {
	e := NewBrushEngine()
	e.SetBrush(Brush{Radius: 3, Color: black, Opacity: 1})
	b := NewPixBuf(64, 16, white)

	start := Pt(4, 8)
	end := Pt(60, 8)
	e.StartStroke(b, start, 1)
	if _, ok := e.FinishStroke(b, end, 1); !ok {
		t.Fatalf("FinishStroke failed")
	}

	// Walk the segment in sub-pixel steps; the nearest pixel must be painted.
	dist := start.Distance(end)
	for d := float32(0); d <= dist; d += 0.5 {
		p := start.Lerp(end, d/dist)
		x := int(math32.Round(p.X))
		y := int(math32.Round(p.Y))
		if got := b.GetPixel(x, y); got != black {
			t.Errorf("gap at (%d, %d): %v", x, y, got)
		}
	}
}

func TestEngineBrushSnapshotPerStroke(t *testing.T) {
	e := NewBrushEngine()
	e.SetBrush(Brush{Radius: 5, Color: black, Opacity: 1})
	b := NewPixBuf(32, 32, white)

	e.StartStroke(b, Pt(16, 16), 1)
	// Changing the brush mid-stroke must not affect the stroke in progress.
	e.SetBrush(Brush{Radius: 1, Color: white, Opacity: 0.1})
	stroke, ok := e.FinishStroke(b, Pt(20, 16), 1)
	if !ok {
		t.Fatalf("FinishStroke failed")
	}
	if stroke.Brush.Radius != 5 {
		t.Errorf("stroke brush radius = %v, want the snapshot taken at start", stroke.Brush.Radius)
	}
}

func TestSetBrushClamps(t *testing.T) {
	e := NewBrushEngine()
	e.SetBrush(Brush{Radius: 0.25, Opacity: 3})
	got := e.Brush()
	if got.Radius != 1 {
		t.Errorf("Radius = %v, want clamped to 1", got.Radius)
	}
	if got.Opacity != 1 {
		t.Errorf("Opacity = %v, want clamped to 1", got.Opacity)
	}
}

func TestEngineAbandon(t *testing.T) {
	e := NewBrushEngine()
	b := NewPixBuf(8, 8, white)

	e.StartStroke(b, Pt(2, 2), 1)
	e.Abandon()
	if e.Stroking() {
		t.Errorf("Stroking() = true after Abandon")
	}
	if _, ok := e.lastSample(); ok {
		t.Errorf("lastSample available after Abandon")
	}
	if _, ok := e.FinishStroke(b, Pt(2, 2), 1); ok {
		t.Errorf("FinishStroke succeeded after Abandon")
	}
}
