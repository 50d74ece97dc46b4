package css

import "strconv"

// Vendor identifies the host's rendering engine family, which determines
// the spelling of the multi-column properties.
type Vendor int

const (
	VendorStandard Vendor = iota
	VendorWebKit
	VendorMoz
)

// ColumnCountProperty returns the column-count property name for the vendor.
func (v Vendor) ColumnCountProperty() string {
	switch v {
	case VendorWebKit:
		return "-webkit-column-count"
	case VendorMoz:
		return "-moz-column-count"
	}
	return "column-count"
}

// ColumnGapProperty returns the column-gap property name for the vendor.
func (v Vendor) ColumnGapProperty() string {
	switch v {
	case VendorWebKit:
		return "-webkit-column-gap"
	case VendorMoz:
		return "-moz-column-gap"
	}
	return "column-gap"
}

// columnCountProperties in lookup order: standard first, then prefixed.
var columnCountProperties = []string{
	"column-count",
	"-moz-column-count",
	"-webkit-column-count",
}

var columnGapProperties = []string{
	"column-gap",
	"-moz-column-gap",
	"-webkit-column-gap",
}

// ColumnGap reads the column gap length from a style, accepting any vendor
// spelling.
func ColumnGap(s *Style) (float64, bool) {
	for _, prop := range columnGapProperties {
		if val, ok := s.Get(prop); ok {
			if n, ok := ParseLength(val); ok && n >= 0 {
				return n, true
			}
		}
	}
	return 0, false
}

// ColumnCount reads the column count from a style, accepting any vendor
// spelling. Returns 0, false when absent or not a positive integer.
func ColumnCount(s *Style) (int, bool) {
	for _, prop := range columnCountProperties {
		val, ok := s.Get(prop)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			continue
		}
		return n, true
	}
	return 0, false
}
