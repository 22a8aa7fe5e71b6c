package easel

import "github.com/gopaint/easel/mesh"

// Mode selects which of the two renderable representations of the canvas
// is active: the flat texture or the textured mesh. Exactly one mode is
// active at a time; switching modes never resets either view matrix.
type Mode uint8

const (
	// ModeTexture displays the pixel buffer as a flat 2D image.
	ModeTexture Mode = iota

	// ModeMesh displays the pixel buffer as the texture of a 3D mesh.
	ModeMesh
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeTexture:
		return "texture"
	case ModeMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// view is the active view as a tagged variant. This is a sealed
// interface: only textureView and meshView implement it, and pan, zoom
// and draw dispatch on the concrete payload with a type switch.
type view interface {
	// viewMarker is an unexported method that seals this interface.
	viewMarker()

	// matrix returns the view's pan/zoom matrix.
	matrix() *Mat4
}

// textureView is the flat 2D view of the pixel buffer.
type textureView struct {
	mat *Mat4
}

func (textureView) viewMarker()     {}
func (v textureView) matrix() *Mat4 { return v.mat }

// meshView is the textured 3D mesh view of the pixel buffer.
type meshView struct {
	mat  *Mat4
	mesh *mesh.Mesh
}

func (meshView) viewMarker()     {}
func (v meshView) matrix() *Mat4 { return v.mat }
