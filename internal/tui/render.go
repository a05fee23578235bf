// internal/tui/render.go
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/llmboard/internal/dashboard"
	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/util"
)

const (
	// rowPixels maps layout pixel heights onto terminal rows.
	rowPixels      = 32
	yGutter        = 4
	mobileLabelMax = 14
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cardTitle     = lipgloss.NewStyle().Bold(true)
	selectedIndex = lipgloss.NewStyle().Reverse(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
)

func cardStyle(focused bool, width int) lipgloss.Style {
	border := lipgloss.Color("240")
	if focused {
		border = lipgloss.Color("205")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)
}

// barWidth is the column width of one bar for mode.
func barWidth(mode dashboard.ViewportMode) int {
	if mode == dashboard.Mobile {
		return 3
	}
	return 5
}

// renderHeader renders the page title, intro copy and legend.
func renderHeader(ds dataset.Dataset, legend []dashboard.LegendEntry, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(ds.Title))
	b.WriteString("\n")
	for _, p := range ds.Intro {
		b.WriteString("\n")
		b.WriteString(util.WrapToWidth(p, width))
		b.WriteString("\n")
	}
	if ds.LinkURL != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%s: %s", ds.LinkText, ds.LinkURL)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderLegend(legend))
	return b.String()
}

// renderLegend renders the performance scale on one line.
func renderLegend(legend []dashboard.LegendEntry) string {
	parts := make([]string, 0, len(legend))
	for _, e := range legend {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s (%s)", swatch, e.Label, e.Range))
	}
	return cardTitle.Render("Performance Scale") + "  " + strings.Join(parts, "  ")
}

// renderCard renders one chart card. selected is the highlighted bar index,
// or -1 for none.
func renderCard(card *dashboard.ChartCard, focused bool, selected, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(cardTitle.Render(util.TruncateRunes(card.Title(), inner)))
	b.WriteString("\n")
	if card.HasInfoControl() {
		b.WriteString(mutedStyle.Render("[i] " + card.InfoLabel()))
		b.WriteString("\n")
		if card.Expanded() {
			b.WriteString(util.WrapToWidth(card.Description(), inner))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(renderChart(card, selected))

	if tip, ok := card.Tooltip(selected); ok {
		value := lipgloss.NewStyle().Foreground(lipgloss.Color(tip.Color)).Render(tip.Text)
		b.WriteString("\n▸ " + tip.Label + "  " + value)
	}

	labels := renderTickLabels(card.Bars(), card.Mode())
	if labels != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(util.WrapToWidth(labels, inner)))
	}

	return cardStyle(focused, width-2).Render(b.String())
}

// renderChart draws vertical bars on the fixed [0,100] scale.
func renderChart(card *dashboard.ChartCard, selected int) string {
	layout := card.Layout()
	bars := card.Bars()
	rows := layout.Height / rowPixels
	w := barWidth(layout.Mode)

	var b strings.Builder
	for r := rows; r >= 1; r-- {
		b.WriteString(yLabel(r, rows))
		for _, bar := range bars {
			cells := int(math.Round(bar.Height * float64(rows)))
			if cells >= r {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(strings.Repeat("█", w)))
			} else {
				b.WriteString(strings.Repeat(" ", w))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%*s└", yGutter-1, "0"))
	b.WriteString(strings.Repeat("─", len(bars)*(w+1)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yGutter))
	for _, bar := range bars {
		idx := util.Center(strconv.Itoa(bar.Index+1), w)
		if bar.Index == selected {
			idx = selectedIndex.Render(idx)
		}
		b.WriteString(idx + " ")
	}
	return b.String()
}

// yLabel renders the value axis gutter for row r of rows.
func yLabel(r, rows int) string {
	switch {
	case r == rows:
		return fmt.Sprintf("%*d┤", yGutter-1, 100)
	case rows > 1 && r == rows/2:
		return fmt.Sprintf("%*d┤", yGutter-1, 50)
	default:
		return strings.Repeat(" ", yGutter-1) + "│"
	}
}

// renderTickLabels lists the cleaned tick text under the chart. Mobile mode
// truncates long names.
func renderTickLabels(bars []dashboard.Bar, mode dashboard.ViewportMode) string {
	parts := make([]string, 0, len(bars))
	for _, bar := range bars {
		text := bar.Tick.Text
		if mode == dashboard.Mobile {
			text = util.TruncateRunes(text, mobileLabelMax)
		}
		parts = append(parts, fmt.Sprintf("%d %s", bar.Index+1, text))
	}
	return strings.Join(parts, "  ")
}

// board is the rendered ready-state content and the line each card starts on.
type board struct {
	content string
	offsets []int
}

// renderBoard lays out every section. Desktop places two cards per row;
// mobile stacks them in a single column.
func renderBoard(ds dataset.Dataset, sections []dashboard.SectionView, legend []dashboard.LegendEntry, mode dashboard.ViewportMode, width, focus, selected int) board {
	var lines []string
	var offsets []int
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(renderHeader(ds, legend, width))

	perRow := 2
	if mode == dashboard.Mobile {
		perRow = 1
	}
	cardWidth := width / perRow

	n := 0
	for _, s := range sections {
		add(headingStyle.Render(s.Heading))
		for start := 0; start < len(s.Cards); start += perRow {
			end := min(start+perRow, len(s.Cards))
			var row []string
			for _, card := range s.Cards[start:end] {
				sel := -1
				if n == focus {
					sel = selected
				}
				offsets = append(offsets, len(lines))
				row = append(row, renderCard(card, n == focus, sel, cardWidth))
				n++
			}
			add(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
	}

	if ds.Footer != "" {
		add("")
		add(mutedStyle.Render(ds.Footer))
	}
	return board{content: strings.Join(lines, "\n"), offsets: offsets}
}
