package easel

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixBufFill(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	b := NewPixBuf(4, 3, bg)

	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", b.Width(), b.Height())
	}
	if got := len(b.Data()); got != 4*3*4 {
		t.Fatalf("len(Data()) = %d, want %d", got, 4*3*4)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := b.GetPixel(x, y); got != bg {
				t.Fatalf("GetPixel(%d, %d) = %v, want %v", x, y, got, bg)
			}
		}
	}
}

func TestNewPixBufClampsDimensions(t *testing.T) {
	b := NewPixBuf(0, -5, color.RGBA{})
	if b.Width() != 1 || b.Height() != 1 {
		t.Errorf("dimensions = %dx%d, want 1x1", b.Width(), b.Height())
	}
}

func TestPixBufSetGetPixel(t *testing.T) {
	b := NewPixBuf(4, 4, color.RGBA{A: 255})
	red := color.RGBA{R: 255, A: 255}

	b.SetPixel(2, 1, red)
	if got := b.GetPixel(2, 1); got != red {
		t.Errorf("GetPixel(2, 1) = %v, want %v", got, red)
	}

	// Out-of-bounds writes are dropped, reads return zero.
	b.SetPixel(-1, 0, red)
	b.SetPixel(4, 0, red)
	b.SetPixel(0, 4, red)
	if got := b.GetPixel(-1, 0); got != (color.RGBA{}) {
		t.Errorf("GetPixel(-1, 0) = %v, want zero", got)
	}
	if got := b.GetPixel(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("GetPixel(0, 0) = %v, want untouched background", got)
	}
}

func TestPixBufCloneIsDeep(t *testing.T) {
	b := NewPixBuf(2, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatalf("clone not equal to original")
	}

	c.SetPixel(0, 0, color.RGBA{R: 99, A: 255})
	if b.Equal(c) {
		t.Errorf("mutating clone changed original")
	}
	if got := b.GetPixel(0, 0); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("original pixel = %v after clone mutation", got)
	}
}

func TestPixBufEqual(t *testing.T) {
	a := NewPixBuf(2, 2, color.RGBA{A: 255})
	if a.Equal(nil) {
		t.Errorf("Equal(nil) = true")
	}
	if a.Equal(NewPixBuf(2, 3, color.RGBA{A: 255})) {
		t.Errorf("Equal = true for different dimensions")
	}
	b := NewPixBuf(2, 2, color.RGBA{A: 255})
	if !a.Equal(b) {
		t.Errorf("Equal = false for identical buffers")
	}
}

func TestFromImageCopiesPixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	b := FromImage(src)
	if got := b.GetPixel(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("GetPixel(0, 0) = %v, want red", got)
	}
	if got := b.GetPixel(1, 1); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("GetPixel(1, 1) = %v, want blue", got)
	}

	// Later source mutations must not show through.
	src.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	if got := b.GetPixel(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("buffer aliased the source image")
	}
}

// FromImage must respect source bounds that do not start at the origin,
// as produced by SubImage.
func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(2, 2, color.NRGBA{R: 200, A: 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	b := FromImage(sub)
	if b.Width() != 2 || b.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", b.Width(), b.Height())
	}
	if got := b.GetPixel(0, 0); got != (color.RGBA{R: 200, A: 255}) {
		t.Errorf("GetPixel(0, 0) = %v, want offset source pixel", got)
	}
}

func TestPixBufToImageRoundTrip(t *testing.T) {
	b := NewPixBuf(3, 2, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	b.SetPixel(1, 1, color.RGBA{R: 100, G: 110, B: 120, A: 255})

	if got := FromImage(b.ToImage()); !b.Equal(got) {
		t.Errorf("FromImage(ToImage()) differs from original")
	}
}
