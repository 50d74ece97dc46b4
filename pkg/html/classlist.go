package html

import "strings"

// Class token operations on the "class" attribute. These back both the
// classList binding in pkg/js and the column-count tag that pkg/sposit
// stamps on wrapper elements.

// Classes returns the node's class tokens in attribute order.
func (n *Node) Classes() []string {
	attr, _ := n.GetAttribute("class")
	if attr == "" {
		return nil
	}
	return strings.Fields(attr)
}

// SetClasses replaces the class attribute with the given tokens.
func (n *Node) SetClasses(classes []string) {
	n.SetAttribute("class", strings.Join(classes, " "))
}

// HasClass reports whether the node carries the class token.
func (n *Node) HasClass(token string) bool {
	for _, c := range n.Classes() {
		if c == token {
			return true
		}
	}
	return false
}

// AddClass appends the class token if not already present.
func (n *Node) AddClass(token string) {
	classes := n.Classes()
	for _, c := range classes {
		if c == token {
			return
		}
	}
	n.SetClasses(append(classes, token))
}

// RemoveClass removes every occurrence of the class token.
func (n *Node) RemoveClass(token string) {
	classes := n.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != token {
			kept = append(kept, c)
		}
	}
	n.SetClasses(kept)
}

// RemoveClassesWithPrefix removes every class token starting with prefix.
// Used to clear a tag family (e.g. a stale column-count tag) before the
// current tag is applied, so repeated passes never accumulate tokens.
func (n *Node) RemoveClassesWithPrefix(prefix string) {
	classes := n.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if !strings.HasPrefix(c, prefix) {
			kept = append(kept, c)
		}
	}
	n.SetClasses(kept)
}
