package sposit

import (
	"strings"

	"github.com/solomonrothman/sposit/pkg/css"
)

// Option defaults. Each ParseOptions field falls back to its default when
// the supplied value is missing or fails validation:
//
//	minColumnWidth    number > 0            240
//	columnOffset      number >= 0           10
//	maxColumns        int >= 1 | "dynamic"  dynamic
//	wrapperSelector   non-empty string      .sposit-wrapper
//	containerSelector non-empty string      .sposit-container
//	respondOnResize   bool                  true
//	disperseEvenly    bool                  true
const (
	DefaultMinColumnWidth    = 240
	DefaultColumnOffset      = 10
	DefaultWrapperSelector   = ".sposit-wrapper"
	DefaultContainerSelector = ".sposit-container"
)

// MaxColumns bounds the computed column count. The zero value
// (DynamicColumns) means unbounded: the width decides alone.
type MaxColumns int

const DynamicColumns MaxColumns = 0

// Bounded reports whether the value is a finite bound.
func (m MaxColumns) Bounded() bool { return m > 0 }

// Options is the active configuration of a column engine. It is immutable
// per layout pass; Engine.Configure replaces it wholesale.
type Options struct {
	MinColumnWidth    float64
	ColumnOffset      float64
	MaxColumns        MaxColumns
	WrapperSelector   string
	ContainerSelector string
	RespondOnResize   bool
	DisperseEvenly    bool
}

func DefaultOptions() Options {
	return Options{
		MinColumnWidth:    DefaultMinColumnWidth,
		ColumnOffset:      DefaultColumnOffset,
		MaxColumns:        DynamicColumns,
		WrapperSelector:   DefaultWrapperSelector,
		ContainerSelector: DefaultContainerSelector,
		RespondOnResize:   true,
		DisperseEvenly:    true,
	}
}

// ParseOptions merges a loosely typed option map (the shape the script
// surface hands over) over the defaults. Validation happens here, at merge
// time: a value that fails to parse is replaced by the field's default
// rather than carried along for a use-site coercion to trip over.
func ParseOptions(raw map[string]interface{}) Options {
	opts := DefaultOptions()
	if raw == nil {
		return opts
	}

	if v, ok := raw["minColumnWidth"]; ok {
		if n, ok := toNumber(v); ok && n > 0 {
			opts.MinColumnWidth = n
		}
	}
	if v, ok := raw["columnOffset"]; ok {
		if n, ok := toNumber(v); ok && n >= 0 {
			opts.ColumnOffset = n
		}
	}
	if v, ok := raw["maxColumns"]; ok {
		opts.MaxColumns = toMaxColumns(v)
	}
	if v, ok := raw["wrapperSelector"]; ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			opts.WrapperSelector = s
		}
	}
	if v, ok := raw["containerSelector"]; ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			opts.ContainerSelector = s
		}
	}
	if v, ok := raw["respondOnResize"]; ok {
		if b, ok := v.(bool); ok {
			opts.RespondOnResize = b
		}
	}
	if v, ok := raw["disperseEvenly"]; ok {
		if b, ok := v.(bool); ok {
			opts.DisperseEvenly = b
		}
	}

	return opts
}

// toNumber accepts the numeric shapes that reach us from Go callers and
// from goja-exported maps, plus CSS-style strings ("240", "240px").
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		return css.ParseLength(n)
	}
	return 0, false
}

func toMaxColumns(v interface{}) MaxColumns {
	if s, ok := v.(string); ok {
		if strings.EqualFold(strings.TrimSpace(s), "dynamic") {
			return DynamicColumns
		}
	}
	if n, ok := toNumber(v); ok && n >= 1 {
		return MaxColumns(int(n))
	}
	return DynamicColumns
}
