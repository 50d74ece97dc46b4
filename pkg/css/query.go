package css

import "github.com/solomonrothman/sposit/pkg/html"

// QueryAll returns all descendants of root matching any selector in the
// comma-separated group, in document order. The root itself is excluded.
func QueryAll(root *html.Node, group string) []*html.Node {
	selectors := parseGroup(group)
	var results []*html.Node
	walkTree(root, func(n *html.Node) {
		if n == root {
			return
		}
		for _, sel := range selectors {
			if MatchesSelector(n, sel) {
				results = append(results, n)
				break
			}
		}
	})
	return results
}

// QueryFirst returns the first descendant of root matching any selector in
// the group, or nil.
func QueryFirst(root *html.Node, group string) *html.Node {
	for _, n := range QueryAll(root, group) {
		return n
	}
	return nil
}

func parseGroup(group string) []Selector {
	raws := SplitSelectorGroup(group)
	selectors := make([]Selector, 0, len(raws))
	for _, raw := range raws {
		selectors = append(selectors, ParseSelector(raw))
	}
	return selectors
}

// walkTree visits every node under root in document order, root included.
func walkTree(root *html.Node, visit func(*html.Node)) {
	visit(root)
	for _, child := range root.Children {
		walkTree(child, visit)
	}
}
