// Package view projects catalog records into display-ready view models.
// Every renderer is a pure function of its inputs; callers apply the result
// to whatever surface they draw on.
package view

import "github.com/ndewijer/Investment-Fund-Dashboard/internal/model"

// Theme icons shown on the toggle button. The icon names the theme the
// button switches to.
const (
	IconSun  = "☀️"
	IconMoon = "🌙"
)

// DarkModeClass is the body class applied while the dark theme is active.
const DarkModeClass = "dark-mode"

// ChartPalette holds the colours used to draw a chart.
type ChartPalette struct {
	Background string `json:"background"`
	GridLine   string `json:"gridLine"`
	AxisText   string `json:"axisText"`
	LineStroke string `json:"lineStroke"`
	LineFill   string `json:"lineFill"`
	Point      string `json:"point"`
}

// Palette returns the chart colours for a theme. The line colour follows the
// sign of the last monthly return.
func Palette(theme model.Theme, lastReturn float64) ChartPalette {
	p := ChartPalette{
		Background: "#ffffff",
		GridLine:   "#e2e8f0",
		AxisText:   "#475569",
		LineStroke: "#10b981",
		LineFill:   "#d1fae50d",
		Point:      "#3b82f6",
	}
	if theme.IsDark() {
		p.Background = "#1e293b"
		p.GridLine = "#334155"
		p.AxisText = "#cbd5e1"
	}
	if lastReturn < 0 {
		p.LineStroke = "#dc2626"
		p.LineFill = "#fee2e20d"
	}
	return p
}

// ThemeIcon returns the toggle icon for the active theme.
func ThemeIcon(theme model.Theme) string {
	if theme.IsDark() {
		return IconSun
	}
	return IconMoon
}

// BodyClass returns the document class for the active theme.
func BodyClass(theme model.Theme) string {
	if theme.IsDark() {
		return DarkModeClass
	}
	return ""
}
