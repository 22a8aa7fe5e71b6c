// Package easel provides an interactive raster paint-surface engine.
//
// # Overview
//
// easel owns a single RGBA pixel buffer that a user paints onto with
// brush strokes. The buffer is viewable in two modes that share it as a
// texture: a flat 2D image with pan/zoom, and a textured 3D mesh with its
// own pan/zoom. The engine keeps pointer input, coordinate transforms,
// and snapshot-based undo/redo geometrically consistent across both modes.
//
// # Quick Start
//
//	import "github.com/gopaint/easel"
//
//	// Create a 512x512 white canvas.
//	s := easel.NewSurface(512, 512)
//
//	// Paint a short black stroke.
//	s.SetBrush(easel.Brush{Radius: 8, Color: color.RGBA{A: 255}, Opacity: 1})
//	s.StrokeStart(easel.Pt(100, 100), 1)
//	s.StrokeContinue(easel.Pt(150, 120), 1)
//	s.StrokeFinish(easel.Pt(200, 140), 1)
//
//	// Undo it.
//	s.Undo()
//
//	// Present through a renderer (see backend/).
//	s.Draw(renderer)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, BrushEngine, History, Router, Mat4, Point, PixBuf
//   - Boundaries: imageio (decode/encode), mesh (mesh handles),
//     backend (renderer registry + software renderer)
//   - Integration: integration/fynecanvas (Fyne widget), cmd/easeldemo
//
// Rendering backends implement the two-primitive Renderer interface
// (texture upload and draw dispatch); the engine never talks to a
// graphics API directly.
//
// # Coordinate Systems
//
// Image space is local to the pixel buffer: origin at top-left, units in
// pixels, X right, Y down. UI space is the coordinate system of the input
// surface. The image and mesh matrices map their model space to UI/clip
// space; input positions travel the inverse direction.
//
// # Concurrency
//
// A Surface is single-owner: all mutation must happen on one goroutine,
// typically the host's event loop. The only concurrent element is the
// asynchronous image decode started by BeginLoad, whose result is handed
// back to the owner through CompleteLoad.
package easel
