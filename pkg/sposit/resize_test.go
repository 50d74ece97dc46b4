package sposit

import (
	"testing"
	"time"
)

// resize tests use real timers with short delays; each Recompute on the
// fixture document costs exactly one reflow (dispersion disabled).

func resizeFixture(t *testing.T, respond bool) (*Engine, *fakeLayouter) {
	t.Helper()
	doc, _ := wrapperDoc(t)
	fl := &fakeLayouter{metrics: Measurement{WrapperWidth: 1000, ItemCount: 10}, ok: true}
	opts := DefaultOptions()
	opts.DisperseEvenly = false
	opts.RespondOnResize = respond
	return New(doc, fl, opts), fl
}

func waitForReflows(t *testing.T, fl *fakeLayouter, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if fl.reflowCount() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d reflows, have %d", want, fl.reflowCount())
}

func TestBindResize_DebouncesBurst(t *testing.T) {
	eng, fl := resizeFixture(t, true)
	var src Notifier

	sub := eng.BindResize(&src)
	defer sub.Unsubscribe()
	sub.SetDebounce(20 * time.Millisecond)

	src.Notify(800, 600)
	src.Notify(850, 600)
	src.Notify(900, 600)

	waitForReflows(t, fl, 1)
	time.Sleep(60 * time.Millisecond)
	if got := fl.reflowCount(); got != 1 {
		t.Errorf("burst should coalesce to one recomputation, got %d", got)
	}
}

func TestBindResize_SeparateEventsRecomputeSeparately(t *testing.T) {
	eng, fl := resizeFixture(t, true)
	var src Notifier

	sub := eng.BindResize(&src)
	defer sub.Unsubscribe()
	sub.SetDebounce(5 * time.Millisecond)

	src.Notify(800, 600)
	waitForReflows(t, fl, 1)

	src.Notify(900, 600)
	waitForReflows(t, fl, 2)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	eng, fl := resizeFixture(t, true)
	var src Notifier

	sub := eng.BindResize(&src)
	sub.SetDebounce(5 * time.Millisecond)

	src.Notify(800, 600)
	waitForReflows(t, fl, 1)

	sub.Unsubscribe()
	src.Notify(900, 600)
	time.Sleep(50 * time.Millisecond)
	if got := fl.reflowCount(); got != 1 {
		t.Errorf("resize after unsubscribe recomputed, reflows %d", got)
	}

	// repeat teardown is a no-op
	sub.Unsubscribe()
}

func TestUnsubscribe_CancelsPendingTimer(t *testing.T) {
	eng, fl := resizeFixture(t, true)
	var src Notifier

	sub := eng.BindResize(&src)
	sub.SetDebounce(50 * time.Millisecond)

	src.Notify(800, 600)
	sub.Unsubscribe() // before the debounce window elapses

	time.Sleep(100 * time.Millisecond)
	if got := fl.reflowCount(); got != 0 {
		t.Errorf("pending recomputation ran after unsubscribe, reflows %d", got)
	}
}

func TestBindResize_InertWhenDisabled(t *testing.T) {
	eng, fl := resizeFixture(t, false)
	var src Notifier

	sub := eng.BindResize(&src)
	src.Notify(800, 600)

	time.Sleep(80 * time.Millisecond)
	if got := fl.reflowCount(); got != 0 {
		t.Errorf("disabled subscription recomputed, reflows %d", got)
	}
	sub.Unsubscribe()
}
