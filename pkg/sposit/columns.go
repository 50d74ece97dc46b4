package sposit

import "math"

// Measurement is the geometry read from the host for one wrapper at the
// start of a pass. It is read fresh on every recomputation and never stored.
// Offsets are relative to the wrapper's content edge.
type Measurement struct {
	WrapperWidth             float64
	ItemCount                int
	LastItemOffsetLeft       float64
	LastItemWidth            float64
	LastColumnItemOffsetLeft float64
}

// ComputeColumnCount decides how many columns of at least MinColumnWidth
// (plus ColumnOffset of gap) fit in the wrapper. The count is clamped to
// MaxColumns when bounded and to ItemCount (never more columns than items).
// Degenerate input — zero width, zero items, a division that produces a
// non-finite value — yields 0. Monotone non-decreasing in WrapperWidth.
func ComputeColumnCount(m Measurement, o Options) int {
	unit := o.MinColumnWidth + o.ColumnOffset
	raw := math.Floor(m.WrapperWidth / unit)
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return 0
	}

	count := int(raw)
	if o.MaxColumns.Bounded() && count > int(o.MaxColumns) {
		count = int(o.MaxColumns)
	}
	if count > m.ItemCount {
		count = m.ItemCount
	}
	return count
}

// ShouldDisperse reports whether the trailing column renders with excess
// whitespace: the space remaining after the last item, and the space
// remaining after the start of the last column, are both at least the last
// item's width. When true the engine re-applies with one column fewer —
// a one-shot correction, never iterated within the same pass.
func ShouldDisperse(m Measurement) bool {
	if m.ItemCount == 0 || m.LastItemWidth <= 0 {
		return false
	}
	afterLastItem := m.WrapperWidth - (m.LastItemOffsetLeft + m.LastItemWidth)
	afterLastColumn := m.WrapperWidth - m.LastColumnItemOffsetLeft
	return afterLastItem >= m.LastItemWidth && afterLastColumn >= m.LastItemWidth
}
