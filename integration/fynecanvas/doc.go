// Copyright 2026 The gopaint Authors
// SPDX-License-Identifier: MIT

// Package fynecanvas embeds a paint surface in a Fyne application.
//
// The package provides a fyne.Widget that owns an easel.Surface, routes
// Fyne pointer events through easel.Router, and presents frames through
// the software backend into a canvas.Raster. The data flow is:
//
//	pointer events -> Router -> Surface (CPU pixels) -> Raster -> Window
//
// # Usage
//
//	s := easel.NewSurface(512, 512)
//	w := fynecanvas.New(s)
//	win.SetContent(w)
//
// Keyboard commands stay with the host application; wire them to the
// widget's Undo, Redo, ToggleMode, and ResetView methods.
//
// # Thread Safety
//
// The widget drives the surface from Fyne's event goroutine and is NOT
// safe for concurrent use from other goroutines.
package fynecanvas
