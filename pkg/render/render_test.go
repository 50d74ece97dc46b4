package render

import (
	"image/color"
	"testing"

	"github.com/solomonrothman/sposit/pkg/html"
	"github.com/solomonrothman/sposit/pkg/layout"
)

func TestRender(t *testing.T) {
	doc, err := html.Parse(`
		<div class="sposit-wrapper" style="width: 400px; column-count: 2">
			<div style="height: 40px"></div>
			<div style="height: 40px"></div>
		</div>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	le := layout.NewEngine(doc, 400, 300)
	le.Reflow(nil)

	r := NewRenderer(400, 300)
	r.Render(le.Boxes())

	img := r.Image()
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("unexpected frame size %dx%d", b.Dx(), b.Dy())
	}

	// inside the first item tile: not the white background
	if sameColor(img.At(20, 20), color.RGBA{255, 255, 255, 255}) {
		t.Error("item tile not painted")
	}
	// below the wrapper: untouched background
	if !sameColor(img.At(20, 250), color.RGBA{255, 255, 255, 255}) {
		t.Error("background overpainted")
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar == br && ag == bg && ab == bb
}
