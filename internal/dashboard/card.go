package dashboard

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrAlreadyMounted is returned when Mount is called on a mounted card.
var ErrAlreadyMounted = errors.New("chart card already mounted")

// Margins are the chart plot margins.
type Margins struct {
	Top, Right, Left, Bottom int
}

// Layout is the geometry of a chart for one viewport mode. It never carries
// data or colors.
type Layout struct {
	Mode        ViewportMode
	Height      int
	AxisHeight  int
	Margins     Margins
	TickDY      float64
	TickFont    float64
	YTickFont   float64
	YDomainMin  float64
	YDomainMax  float64
	YAxisLabel  string
	BarRadius   int
	ChartLayout string
}

// LayoutFor returns the chart geometry for mode.
func LayoutFor(mode ViewportMode) Layout {
	l := Layout{
		Mode:        mode,
		Height:      320,
		AxisHeight:  100,
		Margins:     Margins{Top: 20, Right: 10, Left: 10, Bottom: 100},
		TickDY:      20,
		TickFont:    12,
		YTickFont:   12,
		YDomainMin:  0,
		YDomainMax:  100,
		YAxisLabel:  "Score (%)",
		BarRadius:   4,
		ChartLayout: "desktop",
	}
	if mode == Mobile {
		l.Height = 260
		l.AxisHeight = 120
		l.Margins.Bottom = 120
		l.TickDY = 16
		l.TickFont = 10
		l.ChartLayout = "mobile"
	}
	return l
}

// YTicks are the value-axis tick positions on the fixed [0,100] scale.
var YTicks = []float64{0, 25, 50, 75, 100}

// Bar is one rendered bar. Height is the fraction of the vertical scale.
type Bar struct {
	Index  int
	Name   string
	Score  float64
	Height float64
	Color  string
	Tier   Tier
	Tick   Tick
}

// CardOption configures a ChartCard.
type CardOption func(*ChartCard)

// WithInfo enables the info affordance.
func WithInfo(enabled bool) CardOption {
	return func(c *ChartCard) { c.info = enabled }
}

// WithDescription sets the text revealed by the info toggle.
func WithDescription(desc string) CardOption {
	return func(c *ChartCard) { c.description = desc }
}

// ChartCard is a titled bar chart with an optional expandable description.
// It owns its info toggle and viewport mode; cards share no state.
type ChartCard struct {
	title       string
	description string
	info        bool
	points      []Point

	// mountMu serializes Mount and Unmount so one subscription is live at most.
	mountMu sync.Mutex

	mu          sync.Mutex
	expanded    bool
	mode        ViewportMode
	unsubscribe func()
}

// NewChartCard builds a collapsed, desktop-mode card.
func NewChartCard(title string, points []Point, opts ...CardOption) *ChartCard {
	c := &ChartCard{
		title:  title,
		points: append([]Point(nil), points...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Title returns the card title.
func (c *ChartCard) Title() string { return c.title }

// Description returns the info text, which may be empty.
func (c *ChartCard) Description() string { return c.description }

// Points returns a copy of the card's points.
func (c *ChartCard) Points() []Point {
	return append([]Point(nil), c.points...)
}

// HasInfoControl reports whether the info toggle is rendered.
func (c *ChartCard) HasInfoControl() bool {
	return c.info && c.description != ""
}

// Expanded reports whether the description panel is open.
func (c *ChartCard) Expanded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded
}

// Toggle flips the description panel. It is a no-op without an info control.
func (c *ChartCard) Toggle() {
	if !c.HasInfoControl() {
		return
	}
	c.mu.Lock()
	c.expanded = !c.expanded
	c.mu.Unlock()
}

// HandleKey toggles the panel on enter or space and reports whether the key
// was consumed.
func (c *ChartCard) HandleKey(key string) bool {
	if !c.HasInfoControl() {
		return false
	}
	switch key {
	case "enter", " ", "space":
		c.Toggle()
		return true
	}
	return false
}

// InfoLabel is the accessible name of the info toggle for its current state.
func (c *ChartCard) InfoLabel() string {
	action := "Show"
	if c.Expanded() {
		action = "Hide"
	}
	return fmt.Sprintf("%s information about %s", action, c.title)
}

// AriaLabel describes the chart for assistive technology.
func (c *ChartCard) AriaLabel() string {
	return fmt.Sprintf("Bar chart showing %s scores", c.title)
}

// Mode returns the card's current viewport mode.
func (c *ChartCard) Mode() ViewportMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *ChartCard) setMode(mode ViewportMode) {
	c.mu.Lock()
	c.mode = mode
	c.mu.Unlock()
}

// Mount reads the current width from src and subscribes to resize events
// until Unmount.
func (c *ChartCard) Mount(src ViewportSource) error {
	c.mountMu.Lock()
	defer c.mountMu.Unlock()

	if c.Mounted() {
		return ErrAlreadyMounted
	}

	bp := src.Breakpoint()
	c.setMode(ModeFor(src.Width(), bp))
	cancel := src.Subscribe(func(width int) {
		c.setMode(ModeFor(width, bp))
	})

	c.mu.Lock()
	c.unsubscribe = cancel
	c.mu.Unlock()
	return nil
}

// Unmount releases the resize subscription. Calling it on an unmounted card
// does nothing.
func (c *ChartCard) Unmount() {
	c.mountMu.Lock()
	defer c.mountMu.Unlock()

	c.mu.Lock()
	cancel := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Mounted reports whether the card holds a live subscription.
func (c *ChartCard) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsubscribe != nil
}

// Layout returns the geometry for the card's current mode.
func (c *ChartCard) Layout() Layout {
	return LayoutFor(c.Mode())
}

// Bars renders one bar per point on the fixed [0,100] scale.
func (c *ChartCard) Bars() []Bar {
	mode := c.Mode()
	bars := make([]Bar, 0, len(c.points))
	for i, p := range c.points {
		bars = append(bars, Bar{
			Index:  i,
			Name:   p.Name,
			Score:  p.Score,
			Height: scaleHeight(p.Score),
			Color:  p.Color(),
			Tier:   p.Tier(),
			Tick:   RenderTick(p.Name, mode),
		})
	}
	return bars
}

// Tooltip returns the tooltip for bar i, or false when i is out of range.
func (c *ChartCard) Tooltip(i int) (Tooltip, bool) {
	if i < 0 || i >= len(c.points) {
		return RenderTooltip(false, nil, "")
	}
	p := c.points[i]
	return RenderTooltip(true, []Payload{{Value: p.Score, Color: p.Color()}}, p.Name)
}

func scaleHeight(score float64) float64 {
	switch {
	case math.IsNaN(score), score <= 0:
		return 0
	case score >= 100:
		return 1
	default:
		return score / 100
	}
}
