// Package dashboard coordinates the fund dashboard for a single client.
//
// The Controller owns the client's application state (active theme and the
// selected fund), pulls records from a FundSource, renders them through the
// view package and applies the results to a Surface. All methods are meant
// to be called from one goroutine at a time; delayed scrolls honour
// Options.Guard.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/view"
)

// Default interaction settings.
const (
	DefaultScrollBreakpoint = 1024
	DefaultScrollDelay      = 100 * time.Millisecond
)

// FundSource provides catalog records.
type FundSource interface {
	GetAllFunds() []model.FundRecord
	GetFund(id int) (model.FundRecord, error)
}

// ThemeStore persists the theme flag of one client.
type ThemeStore interface {
	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme model.Theme) error
}

// Options tunes the interaction behaviour of a Controller.
type Options struct {
	// ScrollBreakpoint is the widest viewport for which card activation scrolls.
	ScrollBreakpoint int
	// ScrollDelay is the wait before a card activation scrolls.
	ScrollDelay time.Duration
	// Guard, when set, is held while a delayed scroll touches the surface.
	// It must be the lock that serializes the controller's other calls.
	Guard sync.Locker
}

// DefaultOptions returns the standard interaction settings.
func DefaultOptions() Options {
	return Options{
		ScrollBreakpoint: DefaultScrollBreakpoint,
		ScrollDelay:      DefaultScrollDelay,
	}
}

// State is the application state of one client's dashboard.
// A zero SelectedFundID means no fund is selected.
type State struct {
	Theme          model.Theme
	SelectedFundID int
}

// ToggleResult describes the outcome of a theme toggle.
type ToggleResult struct {
	Theme        model.Theme `json:"theme"`
	Icon         string      `json:"icon"`
	ChartRedrawn bool        `json:"chartRedrawn"`
}

// Controller drives one client's dashboard.
type Controller struct {
	funds   FundSource
	themes  ThemeStore
	surface Surface
	opts    Options

	state         State
	pendingScroll *ScrollTask
}

// NewController creates a Controller rendering into surface.
func NewController(funds FundSource, themes ThemeStore, surface Surface, opts Options) *Controller {
	return &Controller{
		funds:   funds,
		themes:  themes,
		surface: surface,
		opts:    opts,
		state:   State{Theme: model.ThemeLight},
	}
}

// State returns a copy of the current application state.
func (c *Controller) State() State {
	return c.state
}

// Init restores the persisted theme and renders the fund list and table.
func (c *Controller) Init(ctx context.Context) {
	c.LoadTheme(ctx)
	c.RenderOverview()
}

// LoadTheme restores the persisted theme, falling back to light when the
// preference is missing, unrecognised or cannot be read.
func (c *Controller) LoadTheme(ctx context.Context) model.Theme {
	theme := model.ThemeLight

	saved, err := c.themes.LoadTheme(ctx)
	switch {
	case err == nil:
		if t, ok := model.ParseTheme(saved); ok {
			theme = t
		}
	case !errors.Is(err, apperrors.ErrPreferenceNotFound):
		log.Printf("failed to load theme preference: %v", err)
	}

	c.applyTheme(theme)
	return theme
}

// RenderOverview replaces the fund list and the comparison table.
func (c *Controller) RenderOverview() {
	funds := c.funds.GetAllFunds()
	c.surface.ReplaceFundList(view.RenderCards(funds))
	c.surface.ReplaceComparisonTable(view.RenderTable(funds))
}

// ShowFundDetails populates the details section for a fund and draws its chart.
// An unknown id is logged and leaves the surface untouched.
func (c *Controller) ShowFundDetails(id int) error {
	fund, err := c.funds.GetFund(id)
	if err != nil {
		log.Printf("fund not found: %d", id)
		return err
	}

	c.surface.ShowDetails(view.RenderDetail(fund))
	c.state.SelectedFundID = fund.ID
	c.DrawChart(fund.MonthlySummary)
	return nil
}

// DrawChart renders the monthly returns with the active theme. It does
// nothing when the surface has no chart region and reports whether it drew.
func (c *Controller) DrawChart(entries []model.MonthEntry) bool {
	width, ok := c.surface.ChartContainerWidth()
	if !ok {
		return false
	}
	c.surface.DrawChart(view.RenderChart(entries, c.state.Theme, width))
	return true
}

// ActivateCard selects a fund from its card and schedules the delayed scroll
// to the details section. The returned task replaces any task still pending
// from an earlier activation.
func (c *Controller) ActivateCard(id int) (*ScrollTask, error) {
	if err := c.ShowFundDetails(id); err != nil {
		return nil, err
	}

	c.pendingScroll.Cancel()
	task := newScrollTask(c.opts.ScrollDelay, c.opts.Guard, func() bool {
		if c.surface.ViewportWidth() > c.opts.ScrollBreakpoint {
			return false
		}
		c.surface.ScrollToDetails()
		return true
	})
	c.pendingScroll = task
	return task, nil
}

// ActivateRow selects a fund from its table row and scrolls immediately.
func (c *Controller) ActivateRow(id int) error {
	if err := c.ShowFundDetails(id); err != nil {
		return err
	}

	c.pendingScroll.Cancel()
	c.pendingScroll = nil
	c.surface.ScrollToDetails()
	return nil
}

// ToggleTheme flips and persists the theme. When the details section shows a
// selected fund its chart is redrawn with the new colours.
func (c *Controller) ToggleTheme(ctx context.Context) (ToggleResult, error) {
	next := c.state.Theme.Toggle()
	if err := c.themes.SaveTheme(ctx, next); err != nil {
		return ToggleResult{}, fmt.Errorf("failed to persist theme: %w", err)
	}
	c.applyTheme(next)

	result := ToggleResult{Theme: next, Icon: view.ThemeIcon(next)}
	if c.surface.DetailsVisible() && c.state.SelectedFundID > 0 {
		if fund, err := c.funds.GetFund(c.state.SelectedFundID); err == nil {
			result.ChartRedrawn = c.DrawChart(fund.MonthlySummary)
		}
	}
	return result, nil
}

// Close cancels any pending scroll.
func (c *Controller) Close() {
	c.pendingScroll.Cancel()
	c.pendingScroll = nil
}

func (c *Controller) applyTheme(theme model.Theme) {
	c.state.Theme = theme
	c.surface.ApplyTheme(theme, view.BodyClass(theme), view.ThemeIcon(theme))
}
