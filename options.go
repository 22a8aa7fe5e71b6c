package easel

import "image/color"

// Option configures a Surface during creation.
//
// Example:
//
//	// Default white 512x512 canvas.
//	s := easel.NewSurface(512, 512)
//
//	// Transparent canvas with a tighter zoom range.
//	s := easel.NewSurface(512, 512,
//	    easel.WithBackground(color.RGBA{}),
//	    easel.WithZoomLimits(0.25, 4))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	background   color.RGBA
	minZoom      float32
	maxZoom      float32
	zoomStep     float32
	meshPanScale float32
	brush        Brush
	viewportW    int
	viewportH    int
	projection   Mat4
}

// defaultSurfaceOptions returns the default surface options.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		minZoom:      0.1,
		maxZoom:      10.0,
		zoomStep:     1.25,
		meshPanScale: 0.005,
		brush:        DefaultBrush(),
		projection:   Identity4(),
	}
}

// WithBackground sets the canvas color used by NewSurface and Reset.
func WithBackground(c color.RGBA) Option {
	return func(o *surfaceOptions) {
		o.background = c
	}
}

// WithZoomLimits clamps the cumulative view scale to [min, max].
// Both bounds must be positive so view matrices stay invertible; invalid
// bounds are ignored.
func WithZoomLimits(min, max float32) Option {
	return func(o *surfaceOptions) {
		if min > 0 && max >= min {
			o.minZoom = min
			o.maxZoom = max
		}
	}
}

// WithBrush sets the initial brush.
func WithBrush(b Brush) Option {
	return func(o *surfaceOptions) {
		o.brush = b
	}
}

// WithViewport sets the UI viewport size in pixels. The viewport centers
// newly loaded images and anchors mesh-mode zoom; it can be updated later
// with Surface.SetViewport.
func WithViewport(width, height int) Option {
	return func(o *surfaceOptions) {
		o.viewportW = width
		o.viewportH = height
	}
}

// WithProjection sets the projection matrix used by the mesh view.
// Defaults to identity (orthographic clip-space pass-through).
func WithProjection(p Mat4) Option {
	return func(o *surfaceOptions) {
		o.projection = p
	}
}

// WithMeshPanScale sets the fixed factor converting a UI pixel drag into
// mesh clip-space translation.
func WithMeshPanScale(scale float32) Option {
	return func(o *surfaceOptions) {
		if scale > 0 {
			o.meshPanScale = scale
		}
	}
}
