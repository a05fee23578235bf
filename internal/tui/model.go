// internal/tui/model.go
// Package tui renders the leaderboard as an interactive Bubble Tea dashboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/llmboard/internal/dashboard"
	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/logging"
)

// DefaultBreakpoint is the terminal width, in columns, below which charts use
// the mobile layout.
const DefaultBreakpoint = 100

// viewState represents the current screen of the dashboard.
type viewState int

const (
	// viewLoading shows the spinner until the page is ready.
	viewLoading viewState = iota
	// viewReady shows the charts.
	viewReady
)

// readyMsg is sent once the page leaves the loading state.
type readyMsg struct{}

// cancelledMsg is sent when the context ends before the page is ready.
type cancelledMsg struct{ err error }

// Options configures the dashboard.
type Options struct {
	LoadingDelay time.Duration
	// Breakpoint is the terminal width in columns; values <= 0 use DefaultBreakpoint.
	Breakpoint int
}

// model is the Bubble Tea model for the dashboard.
type model struct {
	ctx      context.Context
	page     *dashboard.Page
	screen   *dashboard.Viewport
	state    viewState
	mounted  bool
	err      error
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	focus    int
	selected int
	offsets  []int
	width    int
	height   int
}

// initialModel creates the model for a page that has already been started.
func initialModel(ctx context.Context, page *dashboard.Page, opts Options) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bp := opts.Breakpoint
	if bp <= 0 {
		bp = DefaultBreakpoint
	}

	return &model{
		ctx:      ctx,
		page:     page,
		screen:   dashboard.NewViewport(0, bp),
		state:    viewLoading,
		spinner:  s,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeyMap(),
		selected: -1,
	}
}

// waitForReady blocks until the page is ready or ctx ends.
func waitForReady(ctx context.Context, page *dashboard.Page) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-page.Ready():
			return readyMsg{}
		case <-ctx.Done():
			return cancelledMsg{err: ctx.Err()}
		}
	}
}

// Init starts the spinner and waits for the page.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForReady(m.ctx, m.page))
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.shutdown()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.resizeViewport()
			return m, nil
		}
		if m.state == viewReady {
			return m, m.handleReadyKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width)
		m.resizeViewport()
		m.refresh()

	case readyMsg:
		m.state = viewReady
		if err := m.page.Mount(m.screen); err != nil {
			m.err = fmt.Errorf("mount charts: %w", err)
			return m, nil
		}
		m.mounted = true
		logging.Debugf("dashboard ready with %d charts", len(m.page.Cards()))
		m.refresh()
		return m, nil

	case cancelledMsg:
		m.shutdown()
		return m, tea.Quit

	case spinner.TickMsg:
		if m.state != viewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) handleReadyKey(msg tea.KeyMsg) tea.Cmd {
	cards := m.page.Cards()
	if len(cards) == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.NextCard):
		m.setFocus((m.focus + 1) % len(cards))
	case key.Matches(msg, m.keys.PrevCard):
		m.setFocus((m.focus - 1 + len(cards)) % len(cards))
	case key.Matches(msg, m.keys.NextBar):
		if n := len(cards[m.focus].Points()); n > 0 {
			m.selected = min(m.selected+1, n-1)
		}
		m.refresh()
	case key.Matches(msg, m.keys.PrevBar):
		if m.selected > 0 {
			m.selected--
		}
		m.refresh()
	case key.Matches(msg, m.keys.Toggle):
		if cards[m.focus].HandleKey(msg.String()) {
			m.refresh()
		}
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// setFocus moves focus to card i, clears the bar selection and scrolls the
// card into view.
func (m *model) setFocus(i int) {
	m.focus = i
	m.selected = -1
	m.refresh()
	if i < len(m.offsets) {
		m.viewport.SetYOffset(m.offsets[i])
	}
}

func (m *model) resizeViewport() {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-helpHeight-1, 1)
}

// refresh re-renders the board into the scrollable viewport.
func (m *model) refresh() {
	if m.state != viewReady || m.width == 0 {
		return
	}
	b := renderBoard(m.page.Dataset(), m.page.Sections(), m.page.Legend(), m.screen.Mode(), m.width, m.focus, m.selected)
	m.offsets = b.offsets
	m.viewport.SetContent(b.content)
}

// shutdown releases the page timer and the chart subscriptions. It is safe to
// call more than once.
func (m *model) shutdown() {
	if m.mounted {
		m.page.Unmount()
		m.mounted = false
	}
	m.page.Close()
}

// View renders the dashboard based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	switch m.state {
	case viewLoading:
		return fmt.Sprintf("\n  %s %s\n", m.spinner.View(), dashboard.LoadingText)
	case viewReady:
		return m.viewport.View() + "\n" + m.help.View(m.keys)
	default:
		return "Unknown state"
	}
}

// Run shows the dashboard for ds until the user quits or ctx is cancelled.
func Run(ctx context.Context, ds dataset.Dataset, opts Options) error {
	page := dashboard.NewPage(ds, dashboard.WithLoadingDelay(opts.LoadingDelay))
	defer page.Close()
	page.Start(ctx)

	m := initialModel(ctx, page, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	m.shutdown()

	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
