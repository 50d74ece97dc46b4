package html

import "testing"

func element(class string) *Node {
	n := &Node{Type: ElementNode, TagName: "div"}
	if class != "" {
		n.SetAttribute("class", class)
	}
	return n
}

func TestAddClass(t *testing.T) {
	n := element("a")
	n.AddClass("b")
	if got, _ := n.GetAttribute("class"); got != "a b" {
		t.Errorf("expected 'a b', got '%s'", got)
	}
}

func TestAddClassNoDuplicate(t *testing.T) {
	n := element("a b")
	n.AddClass("a")
	if got, _ := n.GetAttribute("class"); got != "a b" {
		t.Errorf("expected 'a b', got '%s'", got)
	}
}

func TestRemoveClass(t *testing.T) {
	n := element("a b c")
	n.RemoveClass("b")
	if got, _ := n.GetAttribute("class"); got != "a c" {
		t.Errorf("expected 'a c', got '%s'", got)
	}
}

func TestHasClass(t *testing.T) {
	n := element("one two")
	if !n.HasClass("one") || !n.HasClass("two") {
		t.Error("expected both classes present")
	}
	if n.HasClass("three") {
		t.Error("did not expect 'three'")
	}
}

func TestRemoveClassesWithPrefix(t *testing.T) {
	n := element("grid cols-3 cols-4 highlight")
	n.RemoveClassesWithPrefix("cols-")
	if got, _ := n.GetAttribute("class"); got != "grid highlight" {
		t.Errorf("expected 'grid highlight', got '%s'", got)
	}
}

func TestRemoveClassesWithPrefixNoMatch(t *testing.T) {
	n := element("grid highlight")
	n.RemoveClassesWithPrefix("cols-")
	if got, _ := n.GetAttribute("class"); got != "grid highlight" {
		t.Errorf("expected classes unchanged, got '%s'", got)
	}
}

func TestClassesOnBareNode(t *testing.T) {
	n := &Node{Type: ElementNode, TagName: "div"}
	if n.Classes() != nil {
		t.Error("expected nil classes for node without class attribute")
	}
	if n.HasClass("x") {
		t.Error("bare node should not report classes")
	}
}
