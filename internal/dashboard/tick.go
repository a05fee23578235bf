package dashboard

import "strings"

const (
	tickAngle  = -45.0
	tickAnchor = "end"
	tickFill   = "#9ca3af"
)

// Tick is a rendered x-axis label.
type Tick struct {
	Text     string
	Angle    float64
	Anchor   string
	DY       float64
	FontSize float64
	Fill     string
}

// CleanLabel collapses soft line breaks in a model name into spaces.
func CleanLabel(label string) string {
	return strings.ReplaceAll(label, "\n", " ")
}

// RenderTick produces the rotated single-line label for a category name.
func RenderTick(label string, mode ViewportMode) Tick {
	t := Tick{
		Text:     CleanLabel(label),
		Angle:    tickAngle,
		Anchor:   tickAnchor,
		DY:       20,
		FontSize: 12,
		Fill:     tickFill,
	}
	if mode == Mobile {
		t.DY = 16
		t.FontSize = 10
	}
	return t
}
