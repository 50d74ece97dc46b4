// Package render rasterizes the laid-out box tree so the demo host can
// display what the column engine decided: wrapper outlines, item tiles
// shaded by their column, and the gaps between columns left blank.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/solomonrothman/sposit/pkg/layout"
)

type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// itemPalette cycles per item so column boundaries read at a glance.
var itemPalette = [][3]float64{
	{0.36, 0.54, 0.86},
	{0.42, 0.72, 0.48},
	{0.88, 0.68, 0.32},
	{0.78, 0.44, 0.58},
	{0.46, 0.70, 0.74},
}

// Render draws the box tree onto a fresh white background.
func (r *Renderer) Render(boxes []*layout.Box) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	for _, box := range boxes {
		r.drawWrapper(box)
	}
}

// Image returns the rendered frame.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) drawWrapper(box *layout.Box) {
	r.context.SetRGB(0.93, 0.93, 0.95)
	r.context.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	r.context.Fill()

	r.context.SetRGB(0.55, 0.55, 0.60)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(box.X+0.5, box.Y+0.5, box.Width-1, box.Height-1)
	r.context.Stroke()

	for i, item := range box.Children {
		r.drawItem(item, i)
	}
}

func (r *Renderer) drawItem(box *layout.Box, index int) {
	c := itemPalette[index%len(itemPalette)]
	r.context.SetRGB(c[0], c[1], c[2])
	// Inset by 2px so adjacent tiles stay visually separate.
	r.context.DrawRectangle(box.X+2, box.Y+2, box.Width-4, box.Height-4)
	r.context.Fill()

	for i, child := range box.Children {
		r.drawItem(child, index+i+1)
	}
}
