package easel

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// PixBuf is a rectangular RGBA pixel buffer: width*height*4 bytes,
// row-major, 8 bits per channel, non-premultiplied.
//
// The invariant len(data) == width*height*4 holds for the lifetime of a
// PixBuf; dimensions never change after creation. Operations that resize
// or restore a canvas replace the whole *PixBuf so that buffer and
// dimensions can never disagree.
type PixBuf struct {
	width  int
	height int
	data   []uint8
}

// NewPixBuf creates a pixel buffer of the given dimensions, filled with
// the given color. Non-positive dimensions are clamped to 1.
func NewPixBuf(width, height int, fill color.RGBA) *PixBuf {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b := &PixBuf{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	b.Clear(fill)
	return b
}

// FromImage creates a pixel buffer with a copy of the image's pixels.
func FromImage(img image.Image) *PixBuf {
	bounds := img.Bounds()
	b := &PixBuf{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		data:   make([]uint8, bounds.Dx()*bounds.Dy()*4),
	}
	dst := &image.NRGBA{Pix: b.data, Stride: b.width * 4, Rect: image.Rect(0, 0, b.width, b.height)}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return b
}

// Width returns the width of the buffer in pixels.
func (b *PixBuf) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *PixBuf) Height() int {
	return b.height
}

// Data returns the raw pixel data (RGBA, row-major). The slice aliases
// the buffer's storage; callers must not retain it across operations that
// replace the buffer (load, resize, undo, redo).
func (b *PixBuf) Data() []uint8 {
	return b.data
}

// Stride returns the number of bytes per row.
func (b *PixBuf) Stride() int {
	return b.width * 4
}

// Bounds returns the buffer rectangle, implementing image.Image.
func (b *PixBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixBuf) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements the image.Image interface.
func (b *PixBuf) At(x, y int) color.Color {
	return b.GetPixel(x, y)
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the buffer are silently ignored.
func (b *PixBuf) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Coordinates outside the buffer return transparent black.
func (b *PixBuf) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Clear fills the entire buffer with a color.
func (b *PixBuf) Clear(c color.RGBA) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixBuf) Clone() *PixBuf {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &PixBuf{width: b.width, height: b.height, data: data}
}

// Equal reports whether two buffers have identical dimensions and pixels.
func (b *PixBuf) Equal(other *PixBuf) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i, v := range b.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// ToImage converts the buffer to a new image.NRGBA copy.
func (b *PixBuf) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// SavePNG saves the buffer to a PNG file.
func (b *PixBuf) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.ToImage())
}

// SaveWebP saves the buffer to a lossless WebP file.
func (b *PixBuf) SaveWebP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return nativewebp.Encode(f, b.ToImage(), nil)
}
