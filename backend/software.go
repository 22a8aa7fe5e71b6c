package backend

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gopaint/easel"
)

// SoftwareBackend is a CPU compositing backend. It keeps the canvas
// texture in host memory and rasterizes both view modes into an RGBA
// framebuffer, so the engine works with no GPU at all: headless export,
// tests, and hosts that blit the framebuffer themselves.
type SoftwareBackend struct {
	initialized   bool
	surfaceFormat gputypes.TextureFormat
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software compositing backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend. The software backend never touches a
// GPU, but it does honor the host's surface format: renderers created
// after Init emit framebuffer bytes in the device's channel order. A nil
// handle means RGBA.
func (b *SoftwareBackend) Init(dev DeviceHandle) error {
	b.surfaceFormat = gputypes.TextureFormatRGBA8Unorm
	if dev != nil {
		b.surfaceFormat = dev.SurfaceFormat()
	}
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewRenderer creates a CPU renderer with the given framebuffer size.
func (b *SoftwareBackend) NewRenderer(width, height int) (easel.Renderer, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	r := NewSoftwareRenderer(width, height)
	r.swapRB = b.surfaceFormat == gputypes.TextureFormatBGRA8Unorm
	return r, nil
}

// SoftwareRenderer rasterizes draw ops into an in-memory framebuffer.
// The texture view is drawn by inverse mapping every framebuffer pixel
// through the view matrix; the mesh view by projecting each triangle and
// rasterizing it with barycentric weights and a depth buffer.
//
// Sampling is nearest-neighbor, which matches what a pixel painter wants
// to see: the exact bytes of the buffer, not a filtered approximation.
type SoftwareRenderer struct {
	fb    *image.RGBA
	depth []float32

	tex        []uint8
	texW, texH int
	desc       TextureDescriptor

	// swapRB emits framebuffer bytes in BGRA order for hosts whose
	// surface format is BGRA (see SoftwareBackend.Init).
	swapRB bool

	background color.RGBA
}

var _ easel.Renderer = (*SoftwareRenderer)(nil)

// NewSoftwareRenderer creates a renderer with the given framebuffer size.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &SoftwareRenderer{
		fb:         image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:      make([]float32, width*height),
		background: color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF},
	}
}

// SetBackground sets the color the framebuffer is cleared to before each
// draw.
func (r *SoftwareRenderer) SetBackground(c color.RGBA) {
	r.background = c
}

// Framebuffer returns the image produced by the last Draw. The pixels are
// overwritten by the next Draw.
func (r *SoftwareRenderer) Framebuffer() *image.RGBA {
	return r.fb
}

// Descriptor returns the descriptor of the current canvas texture. The
// CPU compositor sizes its texel buffer from it; a host that mirrors the
// canvas into its own GPU resources creates them from the same
// descriptor. Zero until the first upload.
func (r *SoftwareRenderer) Descriptor() TextureDescriptor {
	return r.desc
}

// UploadTexture copies a region of RGBA pixels into the canvas texture.
// An upload whose region starts at the origin resizes the texture to the
// region; partial uploads must fit the current texture.
func (r *SoftwareRenderer) UploadTexture(rect image.Rectangle, pix []uint8, stride int) error {
	if rect.Empty() {
		return nil
	}
	w, h := rect.Dx(), rect.Dy()
	if rect.Min == (image.Point{}) && (w != r.texW || h != r.texH) {
		r.desc = CanvasTextureDescriptor(w, h)
		r.tex = make([]uint8, int(r.desc.Width)*int(r.desc.Height)*4)
		r.texW, r.texH = w, h
	}
	if rect.Max.X > r.texW || rect.Max.Y > r.texH || rect.Min.X < 0 || rect.Min.Y < 0 {
		return fmt.Errorf("backend: upload region %v outside %dx%d texture", rect, r.texW, r.texH)
	}
	for y := 0; y < h; y++ {
		src := pix[y*stride : y*stride+w*4]
		dstOff := ((rect.Min.Y+y)*r.texW + rect.Min.X) * 4
		copy(r.tex[dstOff:dstOff+w*4], src)
	}
	return nil
}

// Draw rasterizes the op into the framebuffer.
func (r *SoftwareRenderer) Draw(op easel.DrawOp) error {
	if op.Viewport.X > 0 && op.Viewport.Y > 0 {
		r.resize(op.Viewport.X, op.Viewport.Y)
	}
	r.clear()
	if r.texW == 0 || r.texH == 0 {
		return nil
	}
	switch op.Mode {
	case easel.ModeMesh:
		if op.Mesh == nil {
			return nil
		}
		r.drawMesh(op)
		return nil
	default:
		return r.drawTexture(op)
	}
}

func (r *SoftwareRenderer) resize(width, height int) {
	if r.fb.Rect.Dx() == width && r.fb.Rect.Dy() == height {
		return
	}
	r.fb = image.NewRGBA(image.Rect(0, 0, width, height))
	r.depth = make([]float32, width*height)
}

func (r *SoftwareRenderer) clear() {
	c := r.background
	if r.swapRB {
		c.R, c.B = c.B, c.R
	}
	px := r.fb.Pix
	for i := 0; i < len(px); i += 4 {
		px[i+0] = c.R
		px[i+1] = c.G
		px[i+2] = c.B
		px[i+3] = c.A
	}
	for i := range r.depth {
		r.depth[i] = math32.MaxFloat32
	}
}

// drawTexture inverse-maps each framebuffer pixel through the view matrix
// and samples the texture where it lands.
func (r *SoftwareRenderer) drawTexture(op easel.DrawOp) error {
	inv, ok := op.Transform.Inverse()
	if !ok {
		return easel.ErrSingularTransform
	}
	w := r.fb.Rect.Dx()
	h := r.fb.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := inv.TransformPoint(easel.Pt(float32(x)+0.5, float32(y)+0.5))
			tx := int(math32.Floor(p.X))
			ty := int(math32.Floor(p.Y))
			if tx < 0 || ty < 0 || tx >= r.texW || ty >= r.texH {
				continue
			}
			r.setPixel(x, y, tx, ty)
		}
	}
	return nil
}

// drawMesh projects each triangle through projection*transform and
// rasterizes it with barycentric weights, depth-testing against the
// z-buffer and sampling the texture at the interpolated UV.
func (r *SoftwareRenderer) drawMesh(op easel.DrawOp) {
	mvp := op.Projection.Mul(op.Transform)
	m := op.Mesh
	w := float32(r.fb.Rect.Dx())
	h := float32(r.fb.Rect.Dy())

	for t := 0; t < m.TriangleCount(); t++ {
		i0 := m.Indices[t*3]
		i1 := m.Indices[t*3+1]
		i2 := m.Indices[t*3+2]
		v0, ok0 := projectVertex(mvp, m.Positions[i0], w, h)
		v1, ok1 := projectVertex(mvp, m.Positions[i1], w, h)
		v2, ok2 := projectVertex(mvp, m.Positions[i2], w, h)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		r.rasterTriangle(v0, v1, v2, m.UVs[i0], m.UVs[i1], m.UVs[i2])
	}
}

// screenVertex is a projected vertex in framebuffer coordinates plus its
// depth in NDC.
type screenVertex struct {
	x, y, z float32
}

// projectVertex runs one vertex through the MVP matrix, divides by w, and
// maps NDC onto the framebuffer (Y down). Vertices behind the eye are
// rejected.
func projectVertex(mvp easel.Mat4, pos [3]float32, w, h float32) (screenVertex, bool) {
	v := mvp.MulVec4([4]float32{pos[0], pos[1], pos[2], 1})
	if v[3] <= 0 {
		return screenVertex{}, false
	}
	ndcX := v[0] / v[3]
	ndcY := v[1] / v[3]
	ndcZ := v[2] / v[3]
	return screenVertex{
		x: (ndcX + 1) / 2 * w,
		y: (1 - ndcY) / 2 * h,
		z: ndcZ,
	}, true
}

func (r *SoftwareRenderer) rasterTriangle(v0, v1, v2 screenVertex, uv0, uv1, uv2 [2]float32) {
	// Signed doubled area; zero means degenerate, sign fixes winding.
	area := (v1.x-v0.x)*(v2.y-v0.y) - (v2.x-v0.x)*(v1.y-v0.y)
	if area == 0 {
		return
	}

	minX := int(math32.Floor(math32.Min(v0.x, math32.Min(v1.x, v2.x))))
	maxX := int(math32.Ceil(math32.Max(v0.x, math32.Max(v1.x, v2.x))))
	minY := int(math32.Floor(math32.Min(v0.y, math32.Min(v1.y, v2.y))))
	maxY := int(math32.Ceil(math32.Max(v0.y, math32.Max(v1.y, v2.y))))

	fbW := r.fb.Rect.Dx()
	fbH := r.fb.Rect.Dy()
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= fbW {
		maxX = fbW - 1
	}
	if maxY >= fbH {
		maxY = fbH - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5
			w0 := ((v1.x-px)*(v2.y-py) - (v2.x-px)*(v1.y-py)) / area
			w1 := ((v2.x-px)*(v0.y-py) - (v0.x-px)*(v2.y-py)) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*v0.z + w1*v1.z + w2*v2.z
			di := y*fbW + x
			if z >= r.depth[di] {
				continue
			}
			u := w0*uv0[0] + w1*uv1[0] + w2*uv2[0]
			v := w0*uv0[1] + w1*uv1[1] + w2*uv2[1]
			tx := int(u * float32(r.texW))
			ty := int(v * float32(r.texH))
			if tx < 0 || ty < 0 || tx >= r.texW || ty >= r.texH {
				continue
			}
			r.depth[di] = z
			r.setPixel(x, y, tx, ty)
		}
	}
}

// setPixel copies texel (tx, ty) to framebuffer pixel (x, y).
func (r *SoftwareRenderer) setPixel(x, y, tx, ty int) {
	src := (ty*r.texW + tx) * 4
	dst := r.fb.PixOffset(x, y)
	sr, sb := r.tex[src+0], r.tex[src+2]
	if r.swapRB {
		sr, sb = sb, sr
	}
	r.fb.Pix[dst+0] = sr
	r.fb.Pix[dst+1] = r.tex[src+1]
	r.fb.Pix[dst+2] = sb
	r.fb.Pix[dst+3] = 0xFF
}
