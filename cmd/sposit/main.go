// Command sposit is the demo host: it loads an HTML page, lets its scripts
// configure the column engine, and shows the laid-out columns in a window.
// Resizing the window drives the engine's resize subscription, so the
// column count responds live.
package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/solomonrothman/sposit/pkg/html"
	"github.com/solomonrothman/sposit/pkg/js"
	"github.com/solomonrothman/sposit/pkg/layout"
	"github.com/solomonrothman/sposit/pkg/render"
	"github.com/solomonrothman/sposit/pkg/sposit"
)

// demoHTML is used when no page is given on the command line.
const demoHTML = `
<div class="sposit-wrapper">
  <div class="sposit-container" style="width: 220px; height: 60px;"></div>
  <div class="sposit-container" style="width: 220px; height: 90px;"></div>
  <div class="sposit-container" style="width: 220px; height: 45px;"></div>
  <div class="sposit-container" style="width: 220px; height: 70px;"></div>
  <div class="sposit-container" style="width: 220px; height: 55px;"></div>
  <div class="sposit-container" style="width: 220px; height: 80px;"></div>
  <div class="sposit-container" style="width: 220px; height: 65px;"></div>
  <div class="sposit-container" style="width: 220px; height: 50px;"></div>
</div>
<script>
  sposit({minColumnWidth: 220, columnOffset: 10});
</script>
`

const (
	initialWidth  = 1024
	initialHeight = 700
)

func main() {
	markup := demoHTML
	if len(os.Args) > 1 {
		body, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("read %s: %v", os.Args[1], err)
		}
		markup = string(body)
	}

	doc, err := html.Parse(markup)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	le := layout.NewEngine(doc, initialWidth, initialHeight)
	columns := sposit.New(doc, le, sposit.DefaultOptions())

	target := image.NewRGBA(image.Rect(0, 0, initialWidth, initialHeight))
	canvasImg := canvas.NewImageFromImage(target)
	canvasImg.FillMode = canvas.ImageFillStretch

	// Repaint whenever geometry settles.
	le.SetOnReflow(func() {
		w := int(le.ViewportWidth())
		if w <= 0 {
			return
		}
		r := render.NewRenderer(w, initialHeight)
		r.Render(le.Boxes())
		canvasImg.Image = r.Image()
		canvasImg.Refresh()
	})

	// Scripts may call sposit(...) to configure and trigger the first pass.
	jsEngine := js.New()
	jsEngine.SetColumnEngine(columns)
	jsEngine.SetGeometry(func(n *html.Node) (x, y, w, h float64, ok bool) {
		box := le.BoxFor(n)
		if box == nil {
			return 0, 0, 0, 0, false
		}
		return box.X, box.Y, box.Width, box.Height, true
	})

	le.Reflow(nil)
	if err := jsEngine.Execute(doc); err != nil {
		log.Printf("js: %v", err)
	}
	columns.Recompute()

	// Window resizes feed the engine's debounced subscription.
	notifier := &sposit.Notifier{}
	sub := columns.BindResize(notifier)

	a := app.New()
	w := a.NewWindow("sposit demo")
	w.Resize(fyne.NewSize(initialWidth, initialHeight))

	onSize := func(width, height float32) {
		le.Resize(float64(width), float64(height))
		notifier.Notify(float64(width), float64(height))
	}
	w.SetContent(container.New(&resizeAwareLayout{onSize: onSize}, canvasImg))

	w.SetOnClosed(func() {
		sub.Unsubscribe()
	})
	w.SetTitle(fmt.Sprintf("sposit demo — %dx%d", initialWidth, initialHeight))

	w.ShowAndRun()
}

// resizeAwareLayout fills the container with its single child and reports
// size changes. fyne has no window resize event; the container layout pass
// is where new sizes first become visible.
type resizeAwareLayout struct {
	onSize func(width, height float32)
	last   fyne.Size
}

func (r *resizeAwareLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
	if size != r.last {
		r.last = size
		if r.onSize != nil {
			r.onSize(size.Width, size.Height)
		}
	}
}

func (r *resizeAwareLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(320, 240)
}
