package html

import "testing"

func TestParser_SingleElement(t *testing.T) {
	doc, err := Parse("<div></div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Root.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(doc.Root.Children))
	}
	if doc.Root.Children[0].TagName != "div" {
		t.Errorf("expected tag 'div', got '%s'", doc.Root.Children[0].TagName)
	}
}

func TestParser_MultipleElements(t *testing.T) {
	doc, err := Parse("<div></div><p></p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Root.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(doc.Root.Children))
	}
}

func TestParser_WithAttributes(t *testing.T) {
	doc, err := Parse(`<div style="color: red"></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	style, ok := doc.Root.Children[0].GetAttribute("style")
	if !ok || style != "color: red" {
		t.Error("expected style attribute 'color: red'")
	}
}

func TestParser_NestedElements(t *testing.T) {
	doc, err := Parse(`<div><p>Hello</p></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(doc.Root.Children))
	}

	div := doc.Root.Children[0]
	if div.TagName != "div" {
		t.Errorf("expected 'div', got '%s'", div.TagName)
	}

	if len(div.Children) != 1 {
		t.Fatalf("expected div to have 1 child, got %d", len(div.Children))
	}

	p := div.Children[0]
	if p.TagName != "p" {
		t.Errorf("expected 'p', got '%s'", p.TagName)
	}

	if len(p.Children) != 1 {
		t.Fatalf("expected p to have 1 text child, got %d", len(p.Children))
	}

	if p.Children[0].Type != TextNode || p.Children[0].Text != "Hello" {
		t.Error("expected text node with 'Hello'")
	}
}

func TestParser_SiblingElements(t *testing.T) {
	doc, err := Parse(`<div><p>First</p><p>Second</p></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	div := doc.Root.Children[0]
	if len(div.Children) != 2 {
		t.Fatalf("expected div to have 2 children, got %d", len(div.Children))
	}

	if div.Children[0].TagName != "p" || div.Children[1].TagName != "p" {
		t.Error("expected two p elements")
	}

	if div.Children[0].Children[0].Text != "First" {
		t.Error("expected first p to contain 'First'")
	}

	if div.Children[1].Children[0].Text != "Second" {
		t.Error("expected second p to contain 'Second'")
	}
}

func TestParser_ParentReferences(t *testing.T) {
	doc, err := Parse(`<div><p>Text</p></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	div := doc.Root.Children[0]
	p := div.Children[0]

	if p.Parent != div {
		t.Error("p's parent should be div")
	}

	if div.Parent != doc.Root {
		t.Error("div's parent should be root")
	}
}

func TestParser_ScriptTag(t *testing.T) {
	doc, err := Parse(`<div></div><script>var x = 1 < 2;</script>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Script tag should not appear in DOM tree
	if len(doc.Root.Children) != 1 {
		t.Fatalf("expected 1 child (div), got %d", len(doc.Root.Children))
	}

	if len(doc.Scripts) != 1 {
		t.Fatalf("expected 1 script, got %d", len(doc.Scripts))
	}

	// Raw content survives untouched, '<' included
	if doc.Scripts[0] != "var x = 1 < 2;" {
		t.Errorf("script content incorrect: '%s'", doc.Scripts[0])
	}
}

func TestParser_MultipleScriptsInOrder(t *testing.T) {
	doc, err := Parse(`
		<script>first();</script>
		<div></div>
		<script>second();</script>
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Scripts) != 2 {
		t.Fatalf("expected 2 scripts, got %d", len(doc.Scripts))
	}
	if doc.Scripts[0] != "first();" || doc.Scripts[1] != "second();" {
		t.Errorf("scripts out of order: %q", doc.Scripts)
	}
}

func TestParser_StyleTagDiscarded(t *testing.T) {
	doc, err := Parse(`<style>div { color: red; }</style><div></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Style bodies are not modeled; the tag must not leak into the tree
	if len(doc.Root.Children) != 1 || doc.Root.Children[0].TagName != "div" {
		t.Fatalf("expected only the div in the tree, got %d children", len(doc.Root.Children))
	}
}

func TestParser_VoidAndSelfClosing(t *testing.T) {
	doc, err := Parse(`<div><br><span/></div><p></p>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Root.Children) != 2 {
		t.Fatalf("expected 2 top-level children, got %d", len(doc.Root.Children))
	}
	div := doc.Root.Children[0]
	if len(div.Children) != 2 {
		t.Fatalf("expected br and span inside div, got %d children", len(div.Children))
	}
}

func TestParser_UnmatchedEndTagIgnored(t *testing.T) {
	doc, err := Parse(`<div></span></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Root.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(doc.Root.Children))
	}
}
