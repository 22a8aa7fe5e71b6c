package easel

import (
	"image"

	"github.com/gopaint/easel/mesh"
)

// Renderer is the engine's boundary to a rendering backend. The engine
// calls exactly two primitives: upload a rectangular pixel region to the
// canvas texture, and issue a draw with the current transforms. That
// keeps it decoupled from any specific graphics API.
//
// Implementations live in backend/ (a CPU compositor is always
// registered; GPU backends bind through backend.DeviceHandle).
type Renderer interface {
	// UploadTexture copies a rectangular region of RGBA pixels into the
	// canvas texture, growing or recreating it if the dimensions changed.
	// pix is row-major with the given stride in bytes.
	UploadTexture(rect image.Rectangle, pix []uint8, stride int) error

	// Draw renders the active view. Called once per frame by the host's
	// render loop; with no preceding upload it is a pure redraw.
	Draw(op DrawOp) error
}

// DrawOp carries everything a backend needs to issue one draw.
type DrawOp struct {
	// Mode selects the texture or mesh draw path.
	Mode Mode

	// Transform is the active view matrix: the image matrix in texture
	// mode, the mesh matrix in mesh mode.
	Transform Mat4

	// Projection is the viewport's projection matrix. Identity in
	// texture mode.
	Projection Mat4

	// Viewport is the output size in pixels.
	Viewport image.Point

	// Mesh is the mesh to draw in mesh mode; nil in texture mode.
	Mesh *mesh.Mesh
}
