package dashboard

import "github.com/mwiater/llmboard/internal/dataset"

// Point is a single bar in a chart. Its color is derived from the score and
// can only be produced by NewPoint, so the two never drift apart.
type Point struct {
	Name  string
	Score float64
	color string
}

// NewPoint builds a Point and derives its color from score.
func NewPoint(name string, score float64) Point {
	return Point{Name: name, Score: score, color: ColorFor(score)}
}

// Color returns the tier color of the point.
func (p Point) Color() string {
	if p.color == "" {
		return ColorFor(p.Score)
	}
	return p.color
}

// Tier returns the performance tier of the point.
func (p Point) Tier() Tier {
	return Classify(p.Score)
}

// PointsFromEntries converts dataset entries to points, recomputing colors.
func PointsFromEntries(entries []dataset.Entry) []Point {
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		points = append(points, NewPoint(e.Name, e.Score))
	}
	return points
}
