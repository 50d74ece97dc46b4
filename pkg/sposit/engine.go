// Package sposit computes responsive multi-column layouts: it decides how
// many fixed-minimum-width columns fit a wrapper element's measured width,
// writes the count to the wrapper's column-count style property and to a
// descriptive class tag, and optionally drops one column when the trailing
// column would be mostly whitespace.
//
// The engine degrades silently by design: missing selector matches produce
// zero iterations, invalid configuration falls back to defaults, and a
// zero-width wrapper simply gets zero columns. Nothing in the layout path
// returns an error.
//
// DOM access is not serialized by the engine. Hosts drive recomputation from
// a single goroutine (their event loop); the debounced resize path is the
// only internal source of deferred execution.
package sposit

import (
	"strconv"
	"sync"

	"github.com/solomonrothman/sposit/pkg/css"
	"github.com/solomonrothman/sposit/pkg/html"
)

// ClassTagPrefix is the family prefix of the class tag stamped on wrappers.
// A wrapper with three columns carries "sposit-columns-3"; applying a new
// count removes any previous tag of the family first.
const ClassTagPrefix = "sposit-columns-"

// Layouter is the host's reflow surface. The real implementation is
// pkg/layout's flow engine; tests substitute fakes to control settling.
type Layouter interface {
	// Reflow recomputes geometry from the current DOM state and invokes
	// settled once the new geometry is observable. Hosts with asynchronous
	// rendering may defer settled; measurement must never happen before it.
	Reflow(settled func())

	// WrapperMetrics reports current geometry for one wrapper element and
	// the items under it matching containerSelector. ok is false when the
	// wrapper has no geometry yet (never laid out).
	WrapperMetrics(wrapper *html.Node, containerSelector string) (Measurement, bool)
}

// SelectOrder picks which of the matched container elements to return.
type SelectOrder int

const (
	SelectAll SelectOrder = iota
	SelectFirst
	SelectLast
)

// Engine owns one document's column layout state.
type Engine struct {
	doc      *html.Document
	layouter Layouter

	mu     sync.Mutex
	opts   Options
	vendor css.Vendor
	gen    uint64 // recomputation generation; a bump cancels pending dispersion
}

// New creates an engine over the document, measuring and reflowing through
// the given layouter.
func New(doc *html.Document, layouter Layouter, opts Options) *Engine {
	return &Engine{doc: doc, layouter: layouter, opts: opts}
}

// SetVendor selects the property spelling used when writing the column
// count. Defaults to the unprefixed standard property.
func (e *Engine) SetVendor(v css.Vendor) {
	e.mu.Lock()
	e.vendor = v
	e.mu.Unlock()
}

// Options returns the active configuration.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// Configure replaces the configuration wholesale. It does not trigger a
// recomputation; callers decide when the next pass runs.
func (e *Engine) Configure(opts Options) {
	e.mu.Lock()
	e.opts = opts
	e.mu.Unlock()
}

// ContainerElements returns the container elements under the matched
// wrappers, in document order. Empty selectors fall back to the configured
// ones. Order narrows the result to all, first, or last.
func (e *Engine) ContainerElements(wrapperSelector, containerSelector string, order SelectOrder) []*html.Node {
	opts := e.Options()
	if wrapperSelector == "" {
		wrapperSelector = opts.WrapperSelector
	}
	if containerSelector == "" {
		containerSelector = opts.ContainerSelector
	}

	var out []*html.Node
	for _, w := range css.QueryAll(e.doc.Root, wrapperSelector) {
		out = append(out, css.QueryAll(w, containerSelector)...)
	}

	switch order {
	case SelectFirst:
		if len(out) > 1 {
			out = out[:1]
		}
	case SelectLast:
		if len(out) > 1 {
			out = out[len(out)-1:]
		}
	}
	return out
}

// Recompute runs a full pass with the configured wrapper selector and
// column bound. This is what the resize subscription calls.
func (e *Engine) Recompute() {
	opts := e.Options()
	e.RecomputeWith(opts.WrapperSelector, opts.MaxColumns)
}

// RecomputeWith runs a pass against the given wrapper selector and column
// bound, overriding the configured ones for this pass only. For each
// matched wrapper it measures, computes the count, applies style and class
// tag, then reflows; when dispersion is enabled the correction runs after
// the layouter reports the new geometry settled.
//
// Starting a pass cancels any dispersion correction still pending from an
// earlier pass, so a resize burst can never decrement twice.
func (e *Engine) RecomputeWith(wrapperSelector string, max MaxColumns) {
	e.mu.Lock()
	e.gen++
	gen := e.gen
	opts := e.opts
	e.mu.Unlock()

	opts.MaxColumns = max
	if wrapperSelector == "" {
		wrapperSelector = opts.WrapperSelector
	}
	if e.doc == nil || e.layouter == nil {
		return
	}

	wrappers := css.QueryAll(e.doc.Root, wrapperSelector)
	for _, w := range wrappers {
		m, ok := e.layouter.WrapperMetrics(w, opts.ContainerSelector)
		if !ok {
			continue
		}
		e.apply(w, ComputeColumnCount(m, opts))
	}
	if len(wrappers) == 0 {
		return
	}

	e.layouter.Reflow(func() {
		if !opts.DisperseEvenly {
			return
		}
		e.mu.Lock()
		stale := e.gen != gen
		e.mu.Unlock()
		if stale {
			return // superseded by a newer pass
		}
		e.disperse(wrappers, opts)
	})
}

// disperse applies the one-shot trailing-whitespace correction to each
// wrapper whose settled geometry warrants it, then reflows once more. The
// follow-up reflow gets no further correction.
func (e *Engine) disperse(wrappers []*html.Node, opts Options) {
	changed := false
	for _, w := range wrappers {
		count, ok := e.appliedCount(w)
		if !ok || count <= 1 {
			continue
		}
		m, ok := e.layouter.WrapperMetrics(w, opts.ContainerSelector)
		if !ok {
			continue
		}
		if ShouldDisperse(m) {
			e.apply(w, count-1)
			changed = true
		}
	}
	if changed {
		e.layouter.Reflow(func() {})
	}
}

// apply writes the decision to the wrapper: the vendor-appropriate
// column-count style property plus the class tag, replacing any previous
// tag of the family.
func (e *Engine) apply(w *html.Node, count int) {
	e.mu.Lock()
	vendor := e.vendor
	e.mu.Unlock()

	attr, _ := w.GetAttribute("style")
	style := css.ParseInlineStyle(attr)
	style.Set(vendor.ColumnCountProperty(), strconv.Itoa(count))
	w.SetAttribute("style", style.Serialize())

	w.RemoveClassesWithPrefix(ClassTagPrefix)
	w.AddClass(ClassTagPrefix + strconv.Itoa(count))
}

// appliedCount reads back the count previously written to the wrapper,
// accepting any vendor spelling.
func (e *Engine) appliedCount(w *html.Node) (int, bool) {
	attr, ok := w.GetAttribute("style")
	if !ok {
		return 0, false
	}
	return css.ColumnCount(css.ParseInlineStyle(attr))
}
