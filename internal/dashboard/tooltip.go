package dashboard

import (
	"fmt"
	"strconv"
)

// Payload is the data carried by a hovered or selected bar.
type Payload struct {
	Value float64
	Color string
}

// Tooltip is the small info box shown for a hovered bar.
type Tooltip struct {
	Label     string
	Value     float64
	Color     string
	Text      string
	AriaLabel string
}

// RenderTooltip builds the tooltip for the first payload entry. It reports
// false when the tooltip is inactive or there is nothing to show.
func RenderTooltip(active bool, payload []Payload, label string) (Tooltip, bool) {
	if !active || len(payload) == 0 {
		return Tooltip{}, false
	}
	clean := CleanLabel(label)
	first := payload[0]
	return Tooltip{
		Label:     clean,
		Value:     first.Value,
		Color:     first.Color,
		Text:      fmt.Sprintf("Score: %s", FormatPercent(first.Value)),
		AriaLabel: fmt.Sprintf("Chart data for %s", clean),
	}, true
}

// FormatPercent renders v as a percentage without trailing zeros.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
