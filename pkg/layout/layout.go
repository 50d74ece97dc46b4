// Package layout is the host reflow surface: a small flow engine that gives
// the DOM pixel geometry. Block elements stack vertically; an element whose
// style carries a column-count flows its children into that many columns,
// filling each column top to bottom before starting the next. This is the
// geometry the dispersion correction in pkg/sposit measures against.
package layout

import (
	"math"

	"github.com/solomonrothman/sposit/pkg/css"
	"github.com/solomonrothman/sposit/pkg/html"
)

// DefaultItemHeight is used for elements with no height style. Items need
// some vertical extent for column fill to distribute them.
const DefaultItemHeight = 40

// DefaultColumnGap matches the engine's default column offset.
const DefaultColumnGap = 10

// Box is the laid-out geometry of one element. X and Y are absolute
// (viewport-relative) pixel positions of the content box.
type Box struct {
	Node     *html.Node
	Style    *css.Style
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Children []*Box
	Parent   *Box
}

// Engine lays out one document against a viewport.
type Engine struct {
	doc      *html.Document
	boxes    map[*html.Node]*Box
	roots    []*Box
	onReflow func()

	viewport struct {
		width  float64
		height float64
	}
}

// SetOnReflow registers a hook invoked at the end of every Reflow, after
// settled. Hosts use it to repaint.
func (le *Engine) SetOnReflow(fn func()) {
	le.onReflow = fn
}

func NewEngine(doc *html.Document, viewportWidth, viewportHeight float64) *Engine {
	le := &Engine{doc: doc}
	le.viewport.width = viewportWidth
	le.viewport.height = viewportHeight
	return le
}

// Resize updates the viewport. Geometry is stale until the next Reflow.
func (le *Engine) Resize(width, height float64) {
	le.viewport.width = width
	le.viewport.height = height
}

// ViewportWidth returns the current viewport width.
func (le *Engine) ViewportWidth() float64 {
	return le.viewport.width
}

// Boxes returns the root boxes of the last reflow, in document order.
func (le *Engine) Boxes() []*Box {
	return le.roots
}

// BoxFor returns the box laid out for the node, or nil before any reflow.
func (le *Engine) BoxFor(n *html.Node) *Box {
	return le.boxes[n]
}

// Reflow recomputes all geometry from the current DOM state, then invokes
// settled. This engine is synchronous, so settled runs before Reflow
// returns; callers must still route all post-layout measurement through it.
func (le *Engine) Reflow(settled func()) {
	le.boxes = make(map[*html.Node]*Box)
	le.roots = le.roots[:0]

	y := 0.0
	for _, child := range le.doc.Root.ElementChildren() {
		box := le.layoutBlock(child, nil, 0, y, le.viewport.width)
		le.roots = append(le.roots, box)
		y += box.Height
	}

	if settled != nil {
		settled()
	}
	if le.onReflow != nil {
		le.onReflow()
	}
}

// layoutBlock lays out one element at (x, y) within availWidth and returns
// its box. Children either stack vertically or, when the element styles a
// column count, flow into columns.
func (le *Engine) layoutBlock(n *html.Node, parent *Box, x, y, availWidth float64) *Box {
	style := styleOf(n)

	width := availWidth
	if w, ok := style.GetLength("width"); ok && w >= 0 {
		width = math.Min(w, availWidth)
	}

	box := &Box{Node: n, Style: style, X: x, Y: y, Width: width, Parent: parent}
	le.boxes[n] = box

	items := n.ElementChildren()
	contentHeight := 0.0
	if count, ok := css.ColumnCount(style); ok && count > 0 && len(items) > 0 {
		contentHeight = le.layoutColumns(box, items, count)
	} else {
		cy := y
		for _, child := range items {
			childBox := le.layoutBlock(child, box, x, cy, width)
			box.Children = append(box.Children, childBox)
			cy += childBox.Height
		}
		contentHeight = cy - y
	}

	box.Height = contentHeight
	if h, ok := style.GetLength("height"); ok && h >= 0 {
		box.Height = h
	} else if len(items) == 0 {
		box.Height = DefaultItemHeight
	}
	return box
}

// layoutColumns distributes the items into count columns, filling column 0
// before column 1 and so on. Items keep their styled width when narrower
// than the column; otherwise they take the column width. Returns the
// content height (the tallest column).
func (le *Engine) layoutColumns(wrapper *Box, items []*html.Node, count int) float64 {
	if count > len(items) {
		count = len(items)
	}

	gap := DefaultColumnGap
	if g, ok := css.ColumnGap(wrapper.Style); ok {
		gap = int(g)
	}

	colWidth := (wrapper.Width - float64((count-1)*gap)) / float64(count)
	if colWidth < 0 {
		colWidth = 0
	}
	perColumn := (len(items) + count - 1) / count

	maxHeight := 0.0
	for i, item := range items {
		col := i / perColumn
		colX := wrapper.X + float64(col)*(colWidth+float64(gap))

		itemBox := le.layoutBlock(item, wrapper, colX, wrapper.Y, colWidth)
		wrapper.Children = append(wrapper.Children, itemBox)

		// Stack within the column under the previous item of that column.
		newY := wrapper.Y
		if row := i % perColumn; row > 0 {
			prev := wrapper.Children[i-1]
			newY = prev.Y + prev.Height
		}
		le.offsetSubtree(itemBox, newY-itemBox.Y)
		itemBox.Y = newY

		if bottom := itemBox.Y + itemBox.Height - wrapper.Y; bottom > maxHeight {
			maxHeight = bottom
		}
	}
	return maxHeight
}

// offsetSubtree shifts the descendants of box down by dy to follow a
// post-layout Y adjustment of their root.
func (le *Engine) offsetSubtree(box *Box, dy float64) {
	for _, child := range box.Children {
		child.Y += dy
		le.offsetSubtree(child, dy)
	}
}

func styleOf(n *html.Node) *css.Style {
	attr, _ := n.GetAttribute("style")
	return css.ParseInlineStyle(attr)
}
