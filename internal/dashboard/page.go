package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mwiater/llmboard/internal/dataset"
)

// DefaultLoadingDelay is how long the loading placeholder stays up.
const DefaultLoadingDelay = 500 * time.Millisecond

// LoadingText is shown while the page is loading.
const LoadingText = "Loading benchmark data..."

// ErrPageNotReady is returned by Mount while the page is still loading.
var ErrPageNotReady = errors.New("page is still loading")

// PageState is the page lifecycle state.
type PageState int

const (
	// Loading shows the placeholder.
	Loading PageState = iota
	// Ready shows the charts. It is terminal.
	Ready
)

// String returns "loading" or "ready".
func (s PageState) String() string {
	if s == Ready {
		return "ready"
	}
	return "loading"
}

// Timer is a cancellable one-shot timer.
type Timer interface {
	Stop() bool
}

// Clock schedules the loading transition. The real clock is time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithLoadingDelay overrides DefaultLoadingDelay. Negative values are
// treated as zero.
func WithLoadingDelay(d time.Duration) PageOption {
	return func(p *Page) {
		if d < 0 {
			d = 0
		}
		p.delay = d
	}
}

// WithClock replaces the timer source.
func WithClock(c Clock) PageOption {
	return func(p *Page) { p.clock = c }
}

// SectionView is a dataset section with its chart cards.
type SectionView struct {
	Key     string
	Heading string
	Cards   []*ChartCard
}

// Page is the leaderboard shell. It starts in Loading and moves to Ready once
// the loading delay elapses; nothing moves it back.
type Page struct {
	ds    dataset.Dataset
	delay time.Duration
	clock Clock

	mu       sync.Mutex
	state    PageState
	started  bool
	closed   bool
	timer    Timer
	stopCtx  func() bool
	ready    chan struct{}
	sections []SectionView
}

// NewPage builds a page over ds in the Loading state.
func NewPage(ds dataset.Dataset, opts ...PageOption) *Page {
	p := &Page{
		ds:    ds,
		delay: DefaultLoadingDelay,
		clock: realClock{},
		ready: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dataset returns the page's dataset.
func (p *Page) Dataset() dataset.Dataset { return p.ds }

// LoadingDelay returns the configured placeholder duration.
func (p *Page) LoadingDelay() time.Duration { return p.delay }

// Start schedules the Loading to Ready transition. Cancelling ctx before the
// delay elapses has the same effect as Close. Start is a no-op after the
// first call.
func (p *Page) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.closed {
		return
	}
	p.started = true
	p.timer = p.clock.AfterFunc(p.delay, p.markReady)
	p.stopCtx = context.AfterFunc(ctx, p.Close)
}

func (p *Page) markReady() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.state == Ready {
		return
	}
	p.sections = BuildSections(p.ds)
	p.state = Ready
	p.timer = nil
	if p.stopCtx != nil {
		p.stopCtx()
		p.stopCtx = nil
	}
	close(p.ready)
}

// Close cancels a pending loading timer. It does not undo a completed
// transition and is safe to call more than once.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.stopCtx != nil {
		p.stopCtx()
		p.stopCtx = nil
	}
}

// Pending reports whether a loading timer is still scheduled.
func (p *Page) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.timer != nil
}

// State returns the current lifecycle state.
func (p *Page) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Ready is closed when the page reaches Ready.
func (p *Page) Ready() <-chan struct{} {
	return p.ready
}

// Sections returns the sections with their cards, or nil while loading.
func (p *Page) Sections() []SectionView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sections
}

// Cards returns every chart card in page order, or nil while loading.
func (p *Page) Cards() []*ChartCard {
	var cards []*ChartCard
	for _, s := range p.Sections() {
		cards = append(cards, s.Cards...)
	}
	return cards
}

// Legend returns the performance scale rows.
func (p *Page) Legend() []LegendEntry {
	return Legend()
}

// Mount attaches every card to src. It fails with ErrPageNotReady until the
// page is Ready. On error the cards mounted so far are released again.
func (p *Page) Mount(src ViewportSource) error {
	if p.State() != Ready {
		return ErrPageNotReady
	}
	cards := p.Cards()
	for i, c := range cards {
		if err := c.Mount(src); err != nil {
			for _, done := range cards[:i] {
				done.Unmount()
			}
			return err
		}
	}
	return nil
}

// Unmount releases every card subscription.
func (p *Page) Unmount() {
	for _, c := range p.Cards() {
		c.Unmount()
	}
}

// BuildCard turns a dataset chart into a card.
func BuildCard(chart dataset.Chart) *ChartCard {
	return NewChartCard(
		chart.Title,
		PointsFromEntries(chart.Entries),
		WithInfo(chart.InfoEnabled()),
		WithDescription(chart.Description),
	)
}

// BuildSections builds the ready-state section views for ds without going
// through the loading lifecycle. Static renderers use it.
func BuildSections(ds dataset.Dataset) []SectionView {
	out := make([]SectionView, 0, len(ds.Sections))
	for _, s := range ds.Sections {
		view := SectionView{Key: s.Key, Heading: s.Heading}
		for _, chart := range s.Charts {
			view.Cards = append(view.Cards, BuildCard(chart))
		}
		out = append(out, view)
	}
	return out
}
