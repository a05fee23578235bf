// internal/dashboard/tier.go
// Package dashboard holds the presentation core of the leaderboard: the
// performance tier classifier, the axis tick and tooltip renderers, and the
// chart card and page components that the terminal and site renderers draw.
package dashboard

// Tier is a performance classification over benchmark scores. Tiers are
// totally ordered; a larger value is a better tier.
type Tier int

const (
	// Poor covers every score below 60.
	Poor Tier = iota
	// Fair covers [60, 70).
	Fair
	// Good covers [70, 80).
	Good
	// VeryGood covers [80, 90).
	VeryGood
	// Excellent covers 90 and above.
	Excellent
)

// Tier lower bounds. A score belongs to the highest tier whose bound it meets.
const (
	excellentFloor = 90.0
	veryGoodFloor  = 80.0
	goodFloor      = 70.0
	fairFloor      = 60.0
)

// Classify maps a score to its performance tier. It accepts any float64;
// values outside [0,100] land in the nearest boundary tier and NaN is Poor.
func Classify(score float64) Tier {
	switch {
	case score >= excellentFloor:
		return Excellent
	case score >= veryGoodFloor:
		return VeryGood
	case score >= goodFloor:
		return Good
	case score >= fairFloor:
		return Fair
	default:
		return Poor
	}
}

// ColorFor returns the display color for score.
func ColorFor(score float64) string {
	return Classify(score).Color()
}

// Color returns the hex color token used to paint bars of this tier.
func (t Tier) Color() string {
	switch t {
	case Excellent:
		return "#10b981"
	case VeryGood:
		return "#3b82f6"
	case Good:
		return "#8b5cf6"
	case Fair:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// String returns the human label of the tier.
func (t Tier) String() string {
	switch t {
	case Excellent:
		return "Excellent"
	case VeryGood:
		return "Very Good"
	case Good:
		return "Good"
	case Fair:
		return "Fair"
	default:
		return "Poor"
	}
}

// Range returns the legend text for the score range of the tier.
func (t Tier) Range() string {
	switch t {
	case Excellent:
		return "90+"
	case VeryGood:
		return "80-89"
	case Good:
		return "70-79"
	case Fair:
		return "60-69"
	default:
		return "<60"
	}
}

// Tiers returns every tier, best first.
func Tiers() []Tier {
	return []Tier{Excellent, VeryGood, Good, Fair, Poor}
}

// LegendEntry is one row of the performance scale legend.
type LegendEntry struct {
	Tier  Tier
	Label string
	Range string
	Color string
}

// Legend returns the performance scale rows, best tier first.
func Legend() []LegendEntry {
	tiers := Tiers()
	out := make([]LegendEntry, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, LegendEntry{Tier: t, Label: t.String(), Range: t.Range(), Color: t.Color()})
	}
	return out
}
