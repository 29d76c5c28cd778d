package dashboard

import (
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/view"
)

// Surface is the display the controller renders into. Each method replaces
// the content of one named region.
type Surface interface {
	ReplaceFundList(cards []view.Card)
	ReplaceComparisonTable(rows []view.TableRow)
	ShowDetails(detail view.Detail)
	DetailsVisible() bool
	// ChartContainerWidth reports the width of the chart container and
	// whether a chart surface exists at all.
	ChartContainerWidth() (int, bool)
	DrawChart(chart view.Chart)
	ApplyTheme(theme model.Theme, bodyClass, icon string)
	ScrollToDetails()
	ViewportWidth() int
}

// Document is an in-memory Surface holding the regions of one client's page.
// The details section starts hidden.
type Document struct {
	FundList        []view.Card
	ComparisonRows  []view.TableRow
	Details         view.Detail
	DetailsHidden   bool
	Chart           *view.Chart
	BodyClass       string
	ThemeIcon       string
	Theme           model.Theme
	ChartContainer  int
	HasChartSurface bool
	Viewport        int

	// ChartDraws and ScrollRequests count side effects for observers.
	ChartDraws     int
	ScrollRequests int
	scrollPending  bool
}

// NewDocument creates an empty document with a chart surface of the given
// container width and an assumed viewport width.
func NewDocument(chartContainerWidth, viewportWidth int) *Document {
	return &Document{
		DetailsHidden:   true,
		Theme:           model.ThemeLight,
		ThemeIcon:       view.ThemeIcon(model.ThemeLight),
		ChartContainer:  chartContainerWidth,
		HasChartSurface: true,
		Viewport:        viewportWidth,
	}
}

// ReplaceFundList replaces the fund cards with cards.
func (d *Document) ReplaceFundList(cards []view.Card) {
	d.FundList = cards
}

// ReplaceComparisonTable replaces the rows of the comparison table.
func (d *Document) ReplaceComparisonTable(rows []view.TableRow) {
	d.ComparisonRows = rows
}

// ShowDetails fills the details section and reveals it.
func (d *Document) ShowDetails(detail view.Detail) {
	d.Details = detail
	d.DetailsHidden = false
}

// DetailsVisible reports whether the details section is shown.
func (d *Document) DetailsVisible() bool {
	return !d.DetailsHidden
}

// ChartContainerWidth returns the width of the chart container and whether
// the document has a chart surface at all.
func (d *Document) ChartContainerWidth() (int, bool) {
	return d.ChartContainer, d.HasChartSurface
}

// DrawChart replaces the chart and counts the draw.
func (d *Document) DrawChart(chart view.Chart) {
	d.Chart = &chart
	d.ChartDraws++
}

// ApplyTheme sets the active theme with its body class and toggle icon.
func (d *Document) ApplyTheme(theme model.Theme, bodyClass, icon string) {
	d.Theme = theme
	d.BodyClass = bodyClass
	d.ThemeIcon = icon
}

// ScrollToDetails requests a scroll to the details section. The request is
// consumed by TakeScroll.
func (d *Document) ScrollToDetails() {
	d.ScrollRequests++
	d.scrollPending = true
}

// ViewportWidth returns the last known viewport width.
func (d *Document) ViewportWidth() int {
	return d.Viewport
}

// SetViewportWidth records the latest known viewport width. Non-positive
// widths are ignored.
func (d *Document) SetViewportWidth(width int) {
	if width > 0 {
		d.Viewport = width
	}
}

// TakeScroll reports whether a scroll was requested since the last call.
func (d *Document) TakeScroll() bool {
	pending := d.scrollPending
	d.scrollPending = false
	return pending
}
