package sposit

import "testing"

func TestParseOptions_Nil(t *testing.T) {
	opts := ParseOptions(nil)
	if opts != DefaultOptions() {
		t.Errorf("expected defaults, got %+v", opts)
	}
}

func TestParseOptions_Overrides(t *testing.T) {
	opts := ParseOptions(map[string]interface{}{
		"minColumnWidth":    float64(200),
		"columnOffset":      5,
		"maxColumns":        3,
		"wrapperSelector":   ".grid",
		"containerSelector": ".tile",
		"respondOnResize":   false,
		"disperseEvenly":    false,
	})

	if opts.MinColumnWidth != 200 || opts.ColumnOffset != 5 {
		t.Errorf("numeric fields wrong: %+v", opts)
	}
	if opts.MaxColumns != 3 {
		t.Errorf("expected max 3, got %v", opts.MaxColumns)
	}
	if opts.WrapperSelector != ".grid" || opts.ContainerSelector != ".tile" {
		t.Errorf("selectors wrong: %+v", opts)
	}
	if opts.RespondOnResize || opts.DisperseEvenly {
		t.Errorf("booleans wrong: %+v", opts)
	}
}

func TestParseOptions_StringNumbers(t *testing.T) {
	opts := ParseOptions(map[string]interface{}{
		"minColumnWidth": "220px",
		"columnOffset":   "15",
	})
	if opts.MinColumnWidth != 220 {
		t.Errorf("expected 220 from '220px', got %v", opts.MinColumnWidth)
	}
	if opts.ColumnOffset != 15 {
		t.Errorf("expected 15 from '15', got %v", opts.ColumnOffset)
	}
}

func TestParseOptions_InvalidFallsBackToDefault(t *testing.T) {
	opts := ParseOptions(map[string]interface{}{
		"minColumnWidth":  "wide",
		"columnOffset":    -4,
		"maxColumns":      "several",
		"wrapperSelector": "   ",
		"respondOnResize": "yes",
	})
	def := DefaultOptions()

	if opts.MinColumnWidth != def.MinColumnWidth {
		t.Errorf("minColumnWidth: expected default %v, got %v", def.MinColumnWidth, opts.MinColumnWidth)
	}
	if opts.ColumnOffset != def.ColumnOffset {
		t.Errorf("columnOffset: expected default %v, got %v", def.ColumnOffset, opts.ColumnOffset)
	}
	if opts.MaxColumns != DynamicColumns {
		t.Errorf("maxColumns: expected dynamic, got %v", opts.MaxColumns)
	}
	if opts.WrapperSelector != def.WrapperSelector {
		t.Errorf("wrapperSelector: expected default, got %q", opts.WrapperSelector)
	}
	if !opts.RespondOnResize {
		t.Error("respondOnResize: expected default true")
	}
}

func TestParseOptions_DynamicKeyword(t *testing.T) {
	opts := ParseOptions(map[string]interface{}{"maxColumns": "dynamic"})
	if opts.MaxColumns.Bounded() {
		t.Errorf("expected unbounded, got %v", opts.MaxColumns)
	}
}

func TestParseOptions_ZeroMinWidthRejected(t *testing.T) {
	opts := ParseOptions(map[string]interface{}{"minColumnWidth": 0})
	if opts.MinColumnWidth != DefaultMinColumnWidth {
		t.Errorf("expected default min width, got %v", opts.MinColumnWidth)
	}
}

func TestMaxColumnsBounded(t *testing.T) {
	if DynamicColumns.Bounded() {
		t.Error("dynamic must be unbounded")
	}
	if !MaxColumns(1).Bounded() {
		t.Error("1 must be bounded")
	}
}
