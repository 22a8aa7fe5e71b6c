// Command easeldemo opens a paint window.
//
// Paint with the left mouse button, pan with the right button or while
// holding space, and zoom with the wheel. Keys: Z undo, Y redo, M toggle
// the mesh view, R reset the view, S save the canvas as PNG.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/gopaint/easel"
	"github.com/gopaint/easel/integration/fynecanvas"
)

func main() {
	var (
		imagePath = flag.String("image", "", "image file to load onto the canvas")
		width     = flag.Int("width", 512, "canvas width for a blank canvas")
		height    = flag.Int("height", 512, "canvas height for a blank canvas")
		out       = flag.String("out", "easel.png", "path the S key saves the canvas to")
		verbose   = flag.Bool("v", false, "log engine activity to stderr")
	)
	flag.Parse()

	if *verbose {
		easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	surface := easel.NewSurface(*width, *height)
	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			slog.Error("read image", "path", *imagePath, "err", err)
			os.Exit(1)
		}
		if err := surface.LoadBytes(data); err != nil {
			slog.Error("decode image", "path", *imagePath, "err", err)
			os.Exit(1)
		}
	}

	a := app.New()
	win := a.NewWindow("easel")
	paint := fynecanvas.New(surface)
	win.SetContent(paint)
	win.Resize(fyne.NewSize(800, 600))

	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyZ:
			paint.Undo()
		case fyne.KeyY:
			paint.Redo()
		case fyne.KeyM:
			paint.ToggleMode()
		case fyne.KeyR:
			paint.ResetView()
		case fyne.KeyS:
			if err := surface.Pix().SavePNG(*out); err != nil {
				slog.Error("save canvas", "path", *out, "err", err)
			}
		}
	})
	if dc, ok := win.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				paint.SetPanModifier(true)
			}
		})
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				paint.SetPanModifier(false)
			}
		})
	}

	win.ShowAndRun()
}
