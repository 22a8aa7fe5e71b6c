// Copyright 2026 The gopaint Authors
// SPDX-License-Identifier: MIT

package fynecanvas

import (
	"image"

	"fyne.io/fyne/v2"
	fcanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gopaint/easel"
	"github.com/gopaint/easel/backend"
)

// Widget displays a paint surface and feeds it pointer input.
//
// The widget owns the surface's presentation only; the surface itself is
// supplied by the caller, who keeps it for loading images, changing
// brushes, and exporting.
type Widget struct {
	widget.BaseWidget

	surface  *easel.Surface
	router   *easel.Router
	renderer *backend.SoftwareRenderer
	raster   *fcanvas.Raster
}

var _ fyne.Widget = (*Widget)(nil)
var _ desktop.Mouseable = (*Widget)(nil)
var _ fyne.Draggable = (*Widget)(nil)
var _ fyne.Scrollable = (*Widget)(nil)

// New creates a widget presenting the given surface.
func New(s *easel.Surface) *Widget {
	w := &Widget{
		surface:  s,
		router:   easel.NewRouter(s),
		renderer: backend.NewSoftwareRenderer(1, 1),
	}
	w.raster = fcanvas.NewRaster(w.drawFrame)
	w.raster.ScaleMode = fcanvas.ImageScalePixels
	w.ExtendBaseWidget(w)
	return w
}

// Surface returns the surface the widget presents.
func (w *Widget) Surface() *easel.Surface {
	return w.surface
}

// drawFrame is the raster generator: it renders the surface at the
// raster's current pixel size and hands Fyne the framebuffer.
func (w *Widget) drawFrame(width, height int) image.Image {
	if width < 1 || height < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	w.surface.SetViewport(width, height)
	if err := w.surface.Draw(w.renderer); err != nil {
		easel.Logger().Warn("frame draw failed", "err", err)
	}
	return w.renderer.Framebuffer()
}

// CreateRenderer implements fyne.Widget.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// MinSize implements fyne.Widget.
func (w *Widget) MinSize() fyne.Size {
	return fyne.NewSize(160, 120)
}

// MouseDown implements desktop.Mouseable. The primary button paints, any
// other button pans.
func (w *Widget) MouseDown(ev *desktop.MouseEvent) {
	w.router.PointerDown(eventPos(ev.Position), mapButton(ev.Button), 0)
	w.Refresh()
}

// MouseUp implements desktop.Mouseable.
func (w *Widget) MouseUp(ev *desktop.MouseEvent) {
	w.router.PointerUp(eventPos(ev.Position), 0)
	w.Refresh()
}

// Dragged implements fyne.Draggable, continuing the gesture the buttons
// started.
func (w *Widget) Dragged(ev *fyne.DragEvent) {
	w.router.PointerMove(eventPos(ev.Position), 0)
	w.Refresh()
}

// DragEnd implements fyne.Draggable. The gesture is closed by MouseUp;
// nothing is left to do here.
func (w *Widget) DragEnd() {}

// Scrolled implements fyne.Scrollable, zooming around the view center.
// Fyne scroll events carry no cursor position, so the widget center is
// the best available pivot.
func (w *Widget) Scrolled(ev *fyne.ScrollEvent) {
	var delta float32
	switch {
	case ev.Scrolled.DY > 0:
		delta = 1
	case ev.Scrolled.DY < 0:
		delta = -1
	default:
		return
	}
	size := w.Size()
	w.router.Wheel(delta, easel.Pt(size.Width/2, size.Height/2))
	w.Refresh()
}

// Undo routes an undo command and refreshes. Returns false when there
// was nothing to undo.
func (w *Widget) Undo() bool {
	ok := w.router.Undo()
	if ok {
		w.Refresh()
	}
	return ok
}

// Redo routes a redo command and refreshes. Returns false when there was
// nothing to redo.
func (w *Widget) Redo() bool {
	ok := w.router.Redo()
	if ok {
		w.Refresh()
	}
	return ok
}

// ToggleMode switches between the texture and mesh views.
func (w *Widget) ToggleMode() {
	w.router.ToggleMode()
	w.Refresh()
}

// ResetView restores the active view's pan and zoom.
func (w *Widget) ResetView() {
	w.router.ResetView()
	w.Refresh()
}

// SetPanModifier forwards the pan modifier key state to the router.
func (w *Widget) SetPanModifier(held bool) {
	w.router.SetPanModifier(held)
}

// Refresh redraws the raster.
func (w *Widget) Refresh() {
	w.raster.Refresh()
	w.BaseWidget.Refresh()
}

func eventPos(p fyne.Position) easel.Point {
	return easel.Pt(p.X, p.Y)
}

func mapButton(b desktop.MouseButton) easel.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return easel.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return easel.ButtonMiddle
	default:
		return easel.ButtonPrimary
	}
}
