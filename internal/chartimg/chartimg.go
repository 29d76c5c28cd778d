// Package chartimg rasterizes laid out charts to PNG images.
package chartimg

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/view"
)

// ContentType is the media type written by Render.
const ContentType = "image/png"

// Errors for series go-chart cannot plot. The x range needs two distinct
// values, so a single month has no PNG rendition.
var (
	ErrNoPoints     = errors.New("chart has no data points")
	ErrTooFewPoints = errors.New("chart needs at least two data points")
)

// Render writes c as a PNG image of the same size, bounds, grid and colours.
func Render(w io.Writer, c view.Chart) error {
	switch len(c.Points) {
	case 0:
		return ErrNoPoints
	case 1:
		return ErrTooFewPoints
	}

	xs := make([]float64, len(c.Points))
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = float64(i)
		ys[i] = p.Value
	}

	xTicks := make([]chart.Tick, len(c.XLabels))
	for i, l := range c.XLabels {
		xTicks[i] = chart.Tick{Value: float64(i), Label: l.Text}
	}

	yTicks := make([]chart.Tick, len(c.GridLines))
	grid := make([]chart.GridLine, len(c.GridLines))
	for i, g := range c.GridLines {
		// Grid lines run top to bottom; ticks must ascend.
		j := len(c.GridLines) - 1 - i
		yTicks[j] = chart.Tick{Value: g.Value, Label: g.Label}
		grid[j] = chart.GridLine{Value: g.Value}
	}

	p := c.Palette
	axisStyle := chart.Style{
		StrokeColor: color(p.AxisText),
		StrokeWidth: 1,
		FontColor:   color(p.AxisText),
		FontSize:    9,
	}

	ch := chart.Chart{
		Width:  int(c.Width),
		Height: int(c.Height),
		Background: chart.Style{
			FillColor: color(p.Background),
			Padding: chart.Box{
				Top:    int(c.Margins.Top),
				Right:  int(c.Margins.Right),
				Bottom: int(c.Margins.Bottom),
				Left:   int(c.Margins.Left),
			},
		},
		Canvas: chart.Style{FillColor: color(p.Background)},
		XAxis: chart.XAxis{
			Style: axisStyle,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(c.Points) - 1)},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Style:          axisStyle,
			Range:          &chart.ContinuousRange{Min: c.YMin, Max: c.YMax},
			Ticks:          yTicks,
			GridLines:      grid,
			GridMajorStyle: chart.Style{StrokeColor: color(p.GridLine), StrokeWidth: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: color(p.LineStroke),
					StrokeWidth: c.LineWidth,
					DotColor:    color(p.Point),
					DotWidth:    c.PointRadius,
				},
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// color parses "#rrggbb" or "#rrggbbaa".
func color(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 8 {
		return drawing.ColorFromHex(hex)
	}
	alpha, err := strconv.ParseUint(hex[6:], 16, 8)
	if err != nil {
		return drawing.ColorFromHex(hex[:6])
	}
	return drawing.ColorFromHex(hex[:6]).WithAlpha(uint8(alpha))
}
