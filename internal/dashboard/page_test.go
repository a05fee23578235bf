package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mwiater/llmboard/internal/dataset"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTimer struct {
	mu      sync.Mutex
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

type fakeClock struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
	c.fn = f
	c.timer = &fakeTimer{}
	return c.timer
}

// fire runs the scheduled callback unless the timer was stopped.
func (c *fakeClock) fire() {
	c.mu.Lock()
	fn, timer := c.fn, c.timer
	c.mu.Unlock()
	if fn == nil {
		return
	}
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	timer.fired = true
	timer.mu.Unlock()
	fn()
}

func onePointDataset() dataset.Dataset {
	return dataset.Dataset{
		Title: "LLM Leaderboard",
		Sections: []dataset.Section{{
			Key:     "overall",
			Heading: "Overall",
			Charts: []dataset.Chart{{
				Key:     "overall",
				Title:   "Best Overall",
				Entries: []dataset.Entry{{Name: "GPT-4", Score: 82}},
			}},
		}},
	}
}

func TestPageLoadingToReady(t *testing.T) {
	clock := &fakeClock{}
	page := NewPage(onePointDataset(), WithClock(clock))
	defer page.Close()

	if page.State() != Loading || page.Cards() != nil {
		t.Fatalf("expected loading page without cards, got %v", page.State())
	}

	page.Start(context.Background())
	if clock.delay != DefaultLoadingDelay {
		t.Fatalf("expected default delay %v, got %v", DefaultLoadingDelay, clock.delay)
	}
	if !page.Pending() {
		t.Fatal("expected a pending timer after Start")
	}

	clock.fire()

	select {
	case <-page.Ready():
	default:
		t.Fatal("ready channel not closed")
	}
	if page.State() != Ready || page.Pending() {
		t.Fatalf("expected ready with no pending timer, got %v pending=%v", page.State(), page.Pending())
	}

	cards := page.Cards()
	if len(cards) != 1 {
		t.Fatalf("expected one card, got %d", len(cards))
	}
	bars := cards[0].Bars()
	if len(bars) != 1 {
		t.Fatalf("expected one bar, got %d", len(bars))
	}
	if bars[0].Height != 0.82 || bars[0].Color != VeryGood.Color() {
		t.Fatalf("unexpected bar: %+v", bars[0])
	}
}

func TestPageCloseCancelsTimer(t *testing.T) {
	clock := &fakeClock{}
	page := NewPage(onePointDataset(), WithClock(clock), WithLoadingDelay(time.Second))
	page.Start(context.Background())

	if err := page.Mount(NewViewport(1024, DefaultBreakpoint)); !errors.Is(err, ErrPageNotReady) {
		t.Fatalf("expected ErrPageNotReady while loading, got %v", err)
	}

	page.Close()
	page.Close()
	if !clock.timer.stopped {
		t.Fatal("Close did not stop the timer")
	}
	clock.fire()
	if page.State() != Loading {
		t.Fatalf("closed page must stay loading, got %v", page.State())
	}
}

func TestPageContextCancelStopsTimer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	page := NewPage(onePointDataset(), WithLoadingDelay(time.Hour))
	page.Start(ctx)
	cancel()

	deadline := time.After(2 * time.Second)
	for page.Pending() {
		select {
		case <-deadline:
			t.Fatal("context cancellation did not release the timer")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	if page.State() != Loading {
		t.Fatalf("expected loading, got %v", page.State())
	}
}

func TestPageRealTimerReachesReady(t *testing.T) {
	page := NewPage(onePointDataset(), WithLoadingDelay(10*time.Millisecond))
	defer page.Close()
	page.Start(context.Background())

	select {
	case <-page.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("page never became ready")
	}
	page.Close()
	if page.State() != Ready {
		t.Fatal("Close must not undo Ready")
	}
}

func TestPageStartTwiceIsNoop(t *testing.T) {
	clock := &fakeClock{}
	page := NewPage(onePointDataset(), WithClock(clock))
	defer page.Close()
	page.Start(context.Background())
	first := clock.timer
	page.Start(context.Background())
	if clock.timer != first {
		t.Fatal("second Start scheduled another timer")
	}
}

func TestPageNegativeDelay(t *testing.T) {
	page := NewPage(onePointDataset(), WithLoadingDelay(-time.Second))
	if page.LoadingDelay() != 0 {
		t.Fatalf("expected zero delay, got %v", page.LoadingDelay())
	}
}

func TestPageMountUnmount(t *testing.T) {
	page := NewPage(dataset.Builtin(), WithLoadingDelay(0))
	defer page.Close()
	page.Start(context.Background())
	<-page.Ready()

	vp := NewViewport(1024, DefaultBreakpoint)
	if err := page.Mount(vp); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if vp.Listeners() != len(page.Cards()) {
		t.Fatalf("expected %d listeners, got %d", len(page.Cards()), vp.Listeners())
	}
	if len(page.Sections()) != 2 || len(page.Cards()) != 6 {
		t.Fatalf("unexpected layout: %d sections, %d cards", len(page.Sections()), len(page.Cards()))
	}

	vp.Resize(320)
	for _, c := range page.Cards() {
		if c.Mode() != Mobile {
			t.Fatalf("%s did not switch to mobile", c.Title())
		}
	}

	page.Unmount()
	if vp.Listeners() != 0 {
		t.Fatalf("expected no listeners after unmount, got %d", vp.Listeners())
	}
}

func TestBuildCardRespectsInfoFlag(t *testing.T) {
	off := false
	card := BuildCard(dataset.Chart{Title: "T", Description: "D", Info: &off})
	if card.HasInfoControl() {
		t.Fatal("info disabled in the dataset should hide the control")
	}
	if !BuildCard(dataset.Chart{Title: "T", Description: "D"}).HasInfoControl() {
		t.Fatal("info should default to enabled")
	}
}
