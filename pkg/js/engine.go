package js

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/solomonrothman/sposit/pkg/html"
	"github.com/solomonrothman/sposit/pkg/sposit"
)

// GeometryFunc reports the laid-out geometry of a node, for the offset
// properties on element proxies. ok is false before the first reflow.
type GeometryFunc func(n *html.Node) (x, y, width, height float64, ok bool)

// Engine executes JavaScript against an HTML document's DOM and exposes
// the column layout surface to scripts.
type Engine struct {
	vm      *goja.Runtime
	columns *sposit.Engine
	geom    GeometryFunc
}

// New creates a new JS engine with a fresh goja runtime.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm}

	// Register console API
	c := &consoleAPI{}
	c.register(vm)

	return e
}

// SetColumnEngine exposes columns to scripts as the global sposit().
func (e *Engine) SetColumnEngine(columns *sposit.Engine) {
	e.columns = columns
}

// SetGeometry routes element offset properties (offsetLeft, offsetWidth...)
// to the host layouter. Without it the offsets read as 0.
func (e *Engine) SetGeometry(geom GeometryFunc) {
	e.geom = geom
}

// Execute runs all scripts from the document against the DOM.
// Scripts are executed in order. Any JS errors are returned but
// callers may choose to log and continue rather than fail.
func (e *Engine) Execute(doc *html.Document) error {
	// Register document global pointing at this document's DOM
	ctx := registerDocument(e.vm, doc)
	ctx.geom = e.geom

	if e.columns != nil {
		registerColumns(e.vm, ctx, e.columns)
	}

	// Execute each script in document order
	for i, script := range doc.Scripts {
		_, err := e.vm.RunString(script)
		if err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
	}

	return nil
}
