package sposit

import (
	"sync"
	"time"
)

// ResizeFunc receives the new viewport size in pixels.
type ResizeFunc func(width, height float64)

// ResizeSource delivers viewport resize events. Subscribe returns an
// unsubscribe function; calling it must stop further delivery.
type ResizeSource interface {
	Subscribe(fn ResizeFunc) (unsubscribe func())
}

// defaultDebounce coalesces a resize burst into one recomputation.
const defaultDebounce = 50 * time.Millisecond

// ResizeSubscription ties one engine to one resize source. Each engine
// instance owns its own subscription, so several engines can coexist and
// each can be torn down independently via Unsubscribe.
type ResizeSubscription struct {
	engine *Engine
	cancel func()

	mu     sync.Mutex
	timer  *time.Timer
	delay  time.Duration
	closed bool
}

// BindResize subscribes the engine to the source. When RespondOnResize is
// disabled the returned subscription is inert: it never fires and its
// Unsubscribe is a no-op.
func (e *Engine) BindResize(src ResizeSource) *ResizeSubscription {
	sub := &ResizeSubscription{engine: e, delay: defaultDebounce}
	if !e.Options().RespondOnResize {
		return sub
	}
	sub.cancel = src.Subscribe(sub.onResize)
	return sub
}

// SetDebounce adjusts the coalescing delay. Zero recomputes on the next
// timer tick with no coalescing window.
func (s *ResizeSubscription) SetDebounce(d time.Duration) {
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
}

func (s *ResizeSubscription) onResize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.engine.Recompute)
}

// Unsubscribe detaches from the source and stops any pending debounced
// recomputation. Safe to call more than once.
func (s *ResizeSubscription) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
	}
}

// Notifier is a basic ResizeSource for hosts that surface resize events as
// plain callbacks, and for tests.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]ResizeFunc
}

func (n *Notifier) Subscribe(fn ResizeFunc) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]ResizeFunc)
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Notify delivers a resize event to every live subscriber.
func (n *Notifier) Notify(width, height float64) {
	n.mu.Lock()
	fns := make([]ResizeFunc, 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(width, height)
	}
}
