// internal/site/site.go
// Package site renders the leaderboard as a static HTML page with inline SVG
// charts, plus a JSON copy of the data it was built from.
package site

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mwiater/llmboard/internal/dashboard"
	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/util"
)

const (
	// IndexFile is the page written into the output directory.
	IndexFile = "index.html"
	// DataFile is the JSON export written next to the page.
	DataFile = "data.json"

	chartWidth  = 400.0
	yAxisWidth  = 44.0
	barFill     = 0.7
	updatedFmt  = "January 2, 2006"
	yLabelInset = 12.0
)

//go:embed assets/index.html.tmpl assets/site.css assets/site.js
var assets embed.FS

var pageTemplate = template.Must(template.New("index.html.tmpl").
	Funcs(template.FuncMap{"num": num}).
	ParseFS(assets, "assets/index.html.tmpl"))

// Options controls page rendering.
type Options struct {
	// Prefix is the URL path the site is hosted under, without a trailing
	// slash. Empty means the site root.
	Prefix       string
	LoadingDelay time.Duration
	Breakpoint   int
	Updated      time.Time
}

func (o Options) withDefaults() Options {
	if o.LoadingDelay < 0 {
		o.LoadingDelay = 0
	}
	if o.Breakpoint <= 0 {
		o.Breakpoint = dashboard.DefaultBreakpoint
	}
	if o.Updated.IsZero() {
		o.Updated = time.Now()
	}
	return o
}

type pageView struct {
	Title       string
	Intro       []string
	LinkText    string
	LinkURL     string
	Footer      string
	Updated     string
	LoadingText string
	DataURL     string
	DelayMs     int64
	Breakpoint  int
	Legend      []dashboard.LegendEntry
	Sections    []sectionView
	CSS         template.CSS
	Script      template.JS
}

type sectionView struct {
	Key     string
	Heading string
	Cards   []cardView
}

type cardView struct {
	ID          string
	Title       string
	Description string
	HasInfo     bool
	Expanded    bool
	InfoLabel   string
	AriaLabel   string
	Charts      []svgView
}

type svgView struct {
	Mode       string
	Width      float64
	Height     float64
	YTicks     []yTickView
	YLabel     string
	YLabelX    float64
	YLabelY    float64
	YLabelFont float64
	Bars       []barView
}

type yTickView struct {
	X, X1, X2, Y float64
	Label        string
	FontSize     float64
}

type barView struct {
	X, Y, W, H   float64
	Radius       int
	Color        string
	Title        string
	TickX, TickY float64
	Tick         dashboard.Tick
}

// Render writes the page for ds to a byte slice.
func Render(ds dataset.Dataset, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	css, err := assets.ReadFile("assets/site.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	js, err := assets.ReadFile("assets/site.js")
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	view := pageView{
		Title:       ds.Title,
		Intro:       ds.Intro,
		LinkText:    ds.LinkText,
		LinkURL:     ds.LinkURL,
		Footer:      ds.Footer,
		Updated:     opts.Updated.Format(updatedFmt),
		LoadingText: dashboard.LoadingText,
		DataURL:     opts.Prefix + "/" + DataFile,
		DelayMs:     opts.LoadingDelay.Milliseconds(),
		Breakpoint:  opts.Breakpoint,
		Legend:      dashboard.Legend(),
		CSS:         template.CSS(css),
		Script:      template.JS(js),
	}

	n := 0
	for _, s := range dashboard.BuildSections(ds) {
		sv := sectionView{Key: s.Key, Heading: s.Heading}
		for _, card := range s.Cards {
			n++
			cv, err := buildCardView(fmt.Sprintf("chart-%d", n), card, opts.Breakpoint)
			if err != nil {
				return nil, err
			}
			sv.Cards = append(sv.Cards, cv)
		}
		view.Sections = append(view.Sections, sv)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// buildCardView captures the card in both viewport modes by mounting it on a
// viewport and resizing across the breakpoint.
func buildCardView(id string, card *dashboard.ChartCard, breakpoint int) (cardView, error) {
	vp := dashboard.NewViewport(breakpoint, breakpoint)
	if err := card.Mount(vp); err != nil {
		return cardView{}, fmt.Errorf("mount %s: %w", card.Title(), err)
	}
	defer card.Unmount()

	desktop := buildSVG(card)
	vp.Resize(breakpoint - 1)
	mobile := buildSVG(card)

	return cardView{
		ID:          id,
		Title:       card.Title(),
		Description: card.Description(),
		HasInfo:     card.HasInfoControl(),
		Expanded:    card.Expanded(),
		InfoLabel:   card.InfoLabel(),
		AriaLabel:   card.AriaLabel(),
		Charts:      []svgView{desktop, mobile},
	}, nil
}

func buildSVG(card *dashboard.ChartCard) svgView {
	layout := card.Layout()
	bars := card.Bars()

	plotLeft := float64(layout.Margins.Left) + yAxisWidth
	plotRight := chartWidth - float64(layout.Margins.Right)
	plotTop := float64(layout.Margins.Top)
	plotBottom := float64(layout.Height - layout.Margins.Bottom)
	plotHeight := plotBottom - plotTop
	span := layout.YDomainMax - layout.YDomainMin

	view := svgView{
		Mode:       layout.ChartLayout,
		Width:      chartWidth,
		Height:     float64(layout.Height),
		YLabel:     layout.YAxisLabel,
		YLabelX:    yLabelInset,
		YLabelY:    plotTop + plotHeight/2,
		YLabelFont: layout.YTickFont,
	}

	for _, v := range dashboard.YTicks {
		y := plotBottom - (v-layout.YDomainMin)/span*plotHeight
		view.YTicks = append(view.YTicks, yTickView{
			X:        plotLeft - 6,
			X1:       plotLeft,
			X2:       plotRight,
			Y:        y,
			Label:    strconv.FormatFloat(v, 'f', -1, 64),
			FontSize: layout.YTickFont,
		})
	}

	if len(bars) == 0 {
		return view
	}
	band := (plotRight - plotLeft) / float64(len(bars))
	width := band * barFill
	for _, b := range bars {
		h := b.Height * plotHeight
		x := plotLeft + float64(b.Index)*band + (band-width)/2
		tip, _ := card.Tooltip(b.Index)
		view.Bars = append(view.Bars, barView{
			X:      x,
			Y:      plotBottom - h,
			W:      width,
			H:      h,
			Radius: layout.BarRadius,
			Color:  b.Color,
			Title:  tip.Label + ": " + tip.Text,
			TickX:  x + width/2,
			TickY:  plotBottom,
			Tick:   b.Tick,
		})
	}
	return view
}

// num formats SVG coordinates with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// exportPoint is a data point with its derived presentation fields.
type exportPoint struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Color string  `json:"color"`
	Tier  string  `json:"tier"`
}

type exportChart struct {
	Key         string        `json:"key"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Points      []exportPoint `json:"points"`
}

type exportSection struct {
	Key     string        `json:"key"`
	Heading string        `json:"heading"`
	Charts  []exportChart `json:"charts"`
}

type exportDoc struct {
	Title    string          `json:"title"`
	Updated  string          `json:"updated"`
	Sections []exportSection `json:"sections"`
}

// RenderData returns the JSON export for ds. Colors and tiers are derived
// from the scores.
func RenderData(ds dataset.Dataset, updated time.Time) ([]byte, error) {
	if updated.IsZero() {
		updated = time.Now()
	}
	doc := exportDoc{Title: ds.Title, Updated: updated.Format(time.DateOnly)}
	for _, s := range ds.Sections {
		es := exportSection{Key: s.Key, Heading: s.Heading, Charts: []exportChart{}}
		for _, c := range s.Charts {
			ec := exportChart{Key: c.Key, Title: c.Title, Description: c.Description, Points: []exportPoint{}}
			for _, p := range dashboard.PointsFromEntries(c.Entries) {
				ec.Points = append(ec.Points, exportPoint{
					Name:  dashboard.CleanLabel(p.Name),
					Score: p.Score,
					Color: p.Color(),
					Tier:  p.Tier().String(),
				})
			}
			es.Charts = append(es.Charts, ec)
		}
		doc.Sections = append(doc.Sections, es)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}
	return append(data, '\n'), nil
}

// Build writes index.html and data.json into outDir, creating it if needed,
// and returns the written paths.
func Build(outDir string, ds dataset.Dataset, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	if strings.TrimSpace(outDir) == "" {
		return nil, fmt.Errorf("output directory must not be empty")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	page, err := Render(ds, opts)
	if err != nil {
		return nil, err
	}
	data, err := RenderData(ds, opts.Updated)
	if err != nil {
		return nil, err
	}

	files := []struct {
		name    string
		content []byte
	}{
		{IndexFile, page},
		{DataFile, data},
	}
	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(outDir, f.name)
		if err := util.WriteFile(path, f.content); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
