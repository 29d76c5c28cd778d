package view

import (
	"strconv"
	"strings"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/analytics"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/format"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

// Chart geometry constants.
const (
	ChartHeight      = 300
	ChartWidthMargin = 40
	ChartLineWidth   = 2
	ChartPointRadius = 4
	ChartGridLines   = 6

	boundsPadding = 0.15
)

// ChartMargins is the space reserved around the plot area.
var ChartMargins = Margins{Top: 20, Right: 20, Bottom: 40, Left: 50}

// Margins is the space around the plot area, in surface units.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Point is a position on the drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GridLine is a horizontal grid line with its right-aligned value label.
type GridLine struct {
	Y      float64 `json:"y"`
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	LabelX float64 `json:"labelX"`
	LabelY float64 `json:"labelY"`
}

// AxisLabel is a centred x-axis label.
type AxisLabel struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// DataPoint is a plotted monthly return.
type DataPoint struct {
	Point
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Chart is a fully laid out line chart of monthly returns.
type Chart struct {
	Theme       model.Theme  `json:"theme"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	Margins     Margins      `json:"margins"`
	PlotWidth   float64      `json:"plotWidth"`
	PlotHeight  float64      `json:"plotHeight"`
	YMin        float64      `json:"yMin"`
	YMax        float64      `json:"yMax"`
	GridLines   []GridLine   `json:"gridLines"`
	XLabels     []AxisLabel  `json:"xLabels"`
	Axis        []Point      `json:"axis"`
	Points      []DataPoint  `json:"points"`
	Palette     ChartPalette `json:"palette"`
	LineWidth   float64      `json:"lineWidth"`
	PointRadius float64      `json:"pointRadius"`
}

// ChartWidth returns the surface width for a container width.
// The surface never gets narrower than the horizontal margins.
func ChartWidth(containerWidth int) float64 {
	return max(float64(containerWidth-ChartWidthMargin), ChartMargins.Left+ChartMargins.Right)
}

// ChartBounds returns the y-axis range for a series: zero is always inside
// it and both ends are padded by 15% of the span. A flat series gets [-1, 1].
func ChartBounds(entries []model.MonthEntry) (yMin, yMax float64) {
	lowest, highest := analytics.ReturnBounds(entries)
	if highest == lowest {
		return lowest - 1, highest + 1
	}
	padding := (highest - lowest) * boundsPadding
	return lowest - padding, highest + padding
}

// RenderChart lays out the monthly returns on a surface sized to the container.
func RenderChart(entries []model.MonthEntry, theme model.Theme, containerWidth int) Chart {
	m := ChartMargins
	width := ChartWidth(containerWidth)
	height := float64(ChartHeight)
	plotWidth := width - m.Left - m.Right
	plotHeight := height - m.Top - m.Bottom

	yMin, yMax := ChartBounds(entries)
	yRange := yMax - yMin

	var lastReturn float64
	if len(entries) > 0 {
		lastReturn = entries[len(entries)-1].MonthlyReturn
	}

	c := Chart{
		Theme:       theme,
		Width:       width,
		Height:      height,
		Margins:     m,
		PlotWidth:   plotWidth,
		PlotHeight:  plotHeight,
		YMin:        yMin,
		YMax:        yMax,
		Palette:     Palette(theme, lastReturn),
		LineWidth:   ChartLineWidth,
		PointRadius: ChartPointRadius,
		Axis: []Point{
			{X: m.Left, Y: m.Top},
			{X: m.Left, Y: height - m.Bottom},
			{X: width - m.Right, Y: height - m.Bottom},
		},
	}

	intervals := float64(ChartGridLines - 1)
	c.GridLines = make([]GridLine, ChartGridLines)
	for i := range c.GridLines {
		y := m.Top + plotHeight/intervals*float64(i)
		value := yMax - yRange/intervals*float64(i)
		c.GridLines[i] = GridLine{
			Y:      y,
			Value:  value,
			Label:  format.AxisPercent(value),
			LabelX: m.Left - 10,
			LabelY: y + 4,
		}
	}

	c.XLabels = make([]AxisLabel, len(entries))
	c.Points = make([]DataPoint, len(entries))
	for i, e := range entries {
		x := m.Left + xStep(plotWidth, len(entries))*float64(i)
		c.XLabels[i] = AxisLabel{X: x, Y: height - m.Bottom + 20, Text: e.Abbreviation()}
		c.Points[i] = DataPoint{
			Point: Point{X: x, Y: m.Top + plotHeight - (e.MonthlyReturn-yMin)/yRange*plotHeight},
			Month: e.Month,
			Value: e.MonthlyReturn,
		}
	}

	return c
}

// xStep is the horizontal distance between consecutive points.
func xStep(plotWidth float64, n int) float64 {
	if n < 2 {
		return 0
	}
	return plotWidth / float64(n-1)
}

// PolylinePoints renders the data points as an SVG points attribute.
func (c Chart) PolylinePoints() string {
	parts := make([]string, len(c.Points))
	for i, p := range c.Points {
		parts[i] = coord(p.X) + "," + coord(p.Y)
	}
	return strings.Join(parts, " ")
}

// AxisPoints renders the left and bottom axes as an SVG points attribute.
func (c Chart) AxisPoints() string {
	parts := make([]string, len(c.Axis))
	for i, p := range c.Axis {
		parts[i] = coord(p.X) + "," + coord(p.Y)
	}
	return strings.Join(parts, " ")
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// GridRight is the x coordinate where grid lines end.
func (c Chart) GridRight() float64 {
	return c.Width - c.Margins.Right
}
