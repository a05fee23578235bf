// internal/dataset/dataset.go
// Package dataset defines the benchmark tables the leaderboard renders and
// loads them from JSON or YAML files.
package dataset

import (
	"errors"
	"strings"
)

// ErrEmptyDataset is returned when a dataset carries no charts.
var ErrEmptyDataset = errors.New("dataset contains no charts")

// Entry is one model score within a chart. Name may contain "\n" soft breaks.
type Entry struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// Chart is one benchmark, rendered as a single chart card.
type Chart struct {
	Key         string  `json:"key" yaml:"key"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Info        *bool   `json:"info,omitempty" yaml:"info,omitempty"`
	Entries     []Entry `json:"entries" yaml:"entries"`
}

// InfoEnabled reports whether the chart shows an info affordance. Charts
// enable it unless the file says otherwise.
func (c Chart) InfoEnabled() bool {
	if c.Info == nil {
		return true
	}
	return *c.Info
}

// Section is a titled group of charts on the page.
type Section struct {
	Key     string  `json:"key" yaml:"key"`
	Heading string  `json:"heading" yaml:"heading"`
	Charts  []Chart `json:"charts" yaml:"charts"`
}

// Dataset is the full page content.
type Dataset struct {
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Intro    []string  `json:"intro,omitempty" yaml:"intro,omitempty"`
	LinkText string    `json:"linkText,omitempty" yaml:"linkText,omitempty"`
	LinkURL  string    `json:"linkURL,omitempty" yaml:"linkURL,omitempty"`
	Footer   string    `json:"footer,omitempty" yaml:"footer,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Charts returns every chart in page order.
func (d Dataset) Charts() []Chart {
	var out []Chart
	for _, s := range d.Sections {
		out = append(out, s.Charts...)
	}
	return out
}

// Chart finds a chart by key.
func (d Dataset) Chart(key string) (Chart, bool) {
	for _, c := range d.Charts() {
		if strings.EqualFold(c.Key, key) {
			return c, true
		}
	}
	return Chart{}, false
}

// PointCount returns the total number of entries across charts.
func (d Dataset) PointCount() int {
	n := 0
	for _, c := range d.Charts() {
		n += len(c.Entries)
	}
	return n
}

// Merge appends the sections of other into d. Sections sharing a key are
// combined; page copy from d wins where it is set.
func (d Dataset) Merge(other Dataset) Dataset {
	out := d
	out.Sections = append([]Section(nil), d.Sections...)
	if out.Title == "" {
		out.Title = other.Title
	}
	if len(out.Intro) == 0 {
		out.Intro = other.Intro
	}
	if out.LinkText == "" {
		out.LinkText, out.LinkURL = other.LinkText, other.LinkURL
	}
	if out.Footer == "" {
		out.Footer = other.Footer
	}

	for _, s := range other.Sections {
		merged := false
		for i := range out.Sections {
			if out.Sections[i].Key != "" && out.Sections[i].Key == s.Key {
				charts := append([]Chart(nil), out.Sections[i].Charts...)
				out.Sections[i].Charts = append(charts, s.Charts...)
				merged = true
				break
			}
		}
		if !merged {
			out.Sections = append(out.Sections, s)
		}
	}
	return out
}

// withDefaults fills page copy the file left out from the built-in dataset.
func (d Dataset) withDefaults() Dataset {
	b := Builtin()
	if d.Title == "" {
		d.Title = b.Title
	}
	if d.Footer == "" {
		d.Footer = b.Footer
	}
	return d
}
