package css

import "strings"

// Selector is a parsed complex selector: compound parts joined by
// combinators. Parts[0] is the leftmost ancestor requirement and
// Parts[len-1] is the target element; Combinators[i] joins Parts[i]
// and Parts[i+1].
type Selector struct {
	Raw         string
	Parts       []SelectorPart
	Combinators []Combinator
}

// SelectorPart is one compound selector: an optional element name plus
// any number of id/class/attribute/pseudo-class constraints.
type SelectorPart struct {
	Element       string
	ID            string
	Classes       []string
	Attributes    []AttributeSelector
	PseudoClasses []string
}

// AttributeSelector matches [name], [name=value], [name^=value] etc.
type AttributeSelector struct {
	Name     string
	Operator string // "", "=", "^=", "$=", "*=", "~=", "|="
	Value    string
}

type Combinator int

const (
	DescendantCombinator Combinator = iota // whitespace
	ChildCombinator                        // >
	AdjacentSiblingCombinator              // +
	GeneralSiblingCombinator               // ~
)

// SplitSelectorGroup splits a comma-separated selector group into its
// individual selector strings. Commas inside attribute brackets are kept.
func SplitSelectorGroup(group string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(group); i++ {
		switch group[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if s := strings.TrimSpace(group[start:i]); s != "" {
					out = append(out, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(group[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// ParseSelector parses a single complex selector. Malformed input yields
// a selector with zero parts, which matches nothing.
func ParseSelector(raw string) Selector {
	sel := Selector{Raw: raw}
	pending := DescendantCombinator
	for _, tok := range tokenizeSelector(raw) {
		switch tok {
		case ">":
			pending = ChildCombinator
			continue
		case "+":
			pending = AdjacentSiblingCombinator
			continue
		case "~":
			pending = GeneralSiblingCombinator
			continue
		}
		if len(sel.Parts) > 0 {
			sel.Combinators = append(sel.Combinators, pending)
		}
		sel.Parts = append(sel.Parts, parseCompound(tok))
		pending = DescendantCombinator
	}
	return sel
}

// tokenizeSelector splits a selector into compound tokens and combinator
// symbols. Bracketed attribute content is opaque so "[data-x~=y]" does not
// read as a sibling combinator.
func tokenizeSelector(raw string) []string {
	var tokens []string
	var cur strings.Builder
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if depth > 0 {
			cur.WriteByte(c)
			if c == ']' {
				depth--
			}
			continue
		}
		switch c {
		case '[':
			depth++
			cur.WriteByte(c)
		case ' ', '\t', '\n':
			flush()
		case '>', '+', '~':
			flush()
			tokens = append(tokens, string(c))
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// parseCompound parses one compound token like div.item#main[rel=tag]:hover.
func parseCompound(tok string) SelectorPart {
	var part SelectorPart
	i := 0
	for i < len(tok) {
		switch tok[i] {
		case '#':
			j := i + 1
			for j < len(tok) && !isCompoundBoundary(tok[j]) {
				j++
			}
			part.ID = tok[i+1 : j]
			i = j
		case '.':
			j := i + 1
			for j < len(tok) && !isCompoundBoundary(tok[j]) {
				j++
			}
			part.Classes = append(part.Classes, tok[i+1:j])
			i = j
		case '[':
			j := strings.IndexByte(tok[i:], ']')
			if j < 0 {
				// Unterminated attribute selector: drop the rest.
				return part
			}
			part.Attributes = append(part.Attributes, parseAttributeSelector(tok[i+1:i+j]))
			i += j + 1
		case ':':
			j := i + 1
			for j < len(tok) && !isCompoundBoundary(tok[j]) {
				j++
			}
			part.PseudoClasses = append(part.PseudoClasses, tok[i+1:j])
			i = j
		default:
			j := i
			for j < len(tok) && !isCompoundBoundary(tok[j]) {
				j++
			}
			part.Element = strings.ToLower(tok[i:j])
			i = j
		}
	}
	return part
}

func isCompoundBoundary(c byte) bool {
	return c == '#' || c == '.' || c == '[' || c == ':'
}

func parseAttributeSelector(body string) AttributeSelector {
	for _, op := range []string{"^=", "$=", "*=", "~=", "|=", "="} {
		if idx := strings.Index(body, op); idx >= 0 {
			return AttributeSelector{
				Name:     strings.TrimSpace(body[:idx]),
				Operator: op,
				Value:    strings.Trim(strings.TrimSpace(body[idx+len(op):]), `"'`),
			}
		}
	}
	return AttributeSelector{Name: strings.TrimSpace(body)}
}
