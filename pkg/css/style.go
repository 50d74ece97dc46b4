package css

import (
	"sort"
	"strconv"
	"strings"
)

type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) Remove(property string) {
	delete(s.Properties, property)
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// ParseInlineStyle parses a style attribute ("width: 240px; height: 80px")
// into a Style. Malformed declarations are skipped.
func ParseInlineStyle(attr string) *Style {
	s := NewStyle()
	for _, decl := range strings.Split(attr, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		colon := strings.Index(decl, ":")
		if colon < 0 {
			continue
		}
		property := strings.TrimSpace(decl[:colon])
		value := strings.TrimSpace(decl[colon+1:])
		if property != "" && value != "" {
			s.Set(property, value)
		}
	}
	return s
}

// Serialize renders the style back to attribute form with properties in
// sorted order, so repeated parse/serialize round trips are stable.
func (s *Style) Serialize() string {
	if len(s.Properties) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(s.Properties[k])
	}
	return sb.String()
}
