package easel

// Transformer converts between UI/screen coordinates, image-local pixel
// coordinates, and mesh clip-space coordinates using the surface's two
// view matrices and the viewport's projection matrix.
//
// All conversions are pure functions of the current matrix state. The
// matrices change on every pan and zoom, so inverses are recomputed per
// call rather than cached; caching would need invalidation on every
// matrix mutation for no measurable win at this size.
type Transformer struct {
	// Image maps image space (pixels, origin top-left) to UI space.
	Image *Mat4

	// Mesh maps mesh model space to clip space, before projection.
	Mesh *Mat4

	// Projection is the viewport's projection matrix for mesh mode.
	Projection *Mat4
}

// UIToImage converts a UI-space point to image-space pixel coordinates.
// Returns ErrSingularTransform when the image matrix is not invertible;
// the caller should drop the input sample.
func (t Transformer) UIToImage(p Point) (Point, error) {
	inv, ok := t.Image.Inverse()
	if !ok {
		return Point{}, ErrSingularTransform
	}
	return inv.TransformPoint(p), nil
}

// ImageToUI converts an image-space point to UI space.
func (t Transformer) ImageToUI(p Point) Point {
	return t.Image.TransformPoint(p)
}

// UIToMesh converts a UI-space point (already normalized to clip
// coordinates by the caller) into mesh model space by inverting the
// composed projection and mesh matrices. Returns ErrSingularTransform
// when the composition is not invertible.
func (t Transformer) UIToMesh(p Point) (Point, error) {
	inv, ok := t.Projection.Mul(*t.Mesh).Inverse()
	if !ok {
		return Point{}, ErrSingularTransform
	}
	return inv.TransformPoint(p), nil
}
