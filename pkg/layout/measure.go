package layout

import (
	"github.com/solomonrothman/sposit/pkg/css"
	"github.com/solomonrothman/sposit/pkg/html"
	"github.com/solomonrothman/sposit/pkg/sposit"
)

// WrapperMetrics reports the settled geometry of one wrapper and the items
// under it matching containerSelector, in the shape the column engine
// consumes. Offsets are relative to the wrapper's content edge. ok is false
// when the wrapper has not been laid out yet.
func (le *Engine) WrapperMetrics(wrapper *html.Node, containerSelector string) (sposit.Measurement, bool) {
	wrapperBox := le.BoxFor(wrapper)
	if wrapperBox == nil {
		return sposit.Measurement{}, false
	}

	var items []*Box
	for _, n := range css.QueryAll(wrapper, containerSelector) {
		if box := le.BoxFor(n); box != nil {
			items = append(items, box)
		}
	}

	m := sposit.Measurement{
		WrapperWidth: wrapperBox.Width,
		ItemCount:    len(items),
	}
	if len(items) == 0 {
		return m, true
	}

	last := items[len(items)-1]
	m.LastItemOffsetLeft = last.X - wrapperBox.X
	m.LastItemWidth = last.Width

	// The last column is the rightmost column start among the items; the
	// first item placed there carries its offset.
	lastColX := items[0].X
	for _, box := range items {
		if box.X > lastColX {
			lastColX = box.X
		}
	}
	m.LastColumnItemOffsetLeft = lastColX - wrapperBox.X

	return m, true
}
