package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/request"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/response"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/chartimg"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/service"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/view"
)

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService         *service.FundService
	chartContainerWidth int
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
// chartContainerWidth is used when a chart request carries no width.
func NewFundHandler(fundService *service.FundService, chartContainerWidth int) *FundHandler {
	return &FundHandler{
		fundService:         fundService,
		chartContainerWidth: chartContainerWidth,
	}
}

// GetAllFunds handles GET requests to retrieve the fund cards.
//
// Endpoint: GET /api/fund
// Response: 200 OK with array of view.Card
func (h *FundHandler) GetAllFunds(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.fundService.GetFundCards())
}

// GetComparison handles GET requests to retrieve the comparison table.
//
// Endpoint: GET /api/fund/comparison
// Response: 200 OK with array of view.TableRow
func (h *FundHandler) GetComparison(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.fundService.GetComparison())
}

// GetFund handles GET requests to retrieve the details of a single fund.
//
// Endpoint: GET /api/fund/{fundId}
// Response: 200 OK with view.Detail
// Error: 400 Bad Request if the fund ID is invalid
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	id, ok := requestFundID(w, r)
	if !ok {
		return
	}

	detail, err := h.fundService.GetFundDetail(id)
	if err != nil {
		respondFundError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// GetFundChart handles GET requests to retrieve the chart geometry of a fund.
// The theme defaults to the client's active theme.
//
// Endpoint: GET /api/fund/{fundId}/chart?width=&theme=
// Response: 200 OK with view.Chart
// Error: 400 Bad Request if the fund ID, width or theme is invalid
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) GetFundChart(w http.ResponseWriter, r *http.Request) {
	chart, ok := h.chart(w, r)
	if !ok {
		return
	}
	response.RespondJSON(w, http.StatusOK, chart)
}

// GetFundChartPNG handles GET requests to retrieve a fund's chart as an image.
//
// Endpoint: GET /api/fund/{fundId}/chart.png?width=&theme=
// Response: 200 OK with image/png
// Error: 400 Bad Request if the fund ID, width or theme is invalid
// Error: 404 Not Found if the fund does not exist
// Error: 422 Unprocessable Entity if the fund has fewer than two months
func (h *FundHandler) GetFundChartPNG(w http.ResponseWriter, r *http.Request) {
	chart, ok := h.chart(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := chartimg.Render(&buf, chart)
	if errors.Is(err, chartimg.ErrNoPoints) || errors.Is(err, chartimg.ErrTooFewPoints) {
		response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrFailedToRenderChart.Error(), err)
		return
	}
	if err != nil {
		log.Printf("failed to render chart png: %v", err)
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRenderChart.Error(), err.Error())
		return
	}

	response.RespondBytes(w, http.StatusOK, chartimg.ContentType, buf.Bytes())
}

func (h *FundHandler) chart(w http.ResponseWriter, r *http.Request) (view.Chart, bool) {
	id, ok := requestFundID(w, r)
	if !ok {
		return view.Chart{}, false
	}

	defaults := request.ChartOptions{Width: h.chartContainerWidth, Theme: h.activeTheme(r)}
	query := r.URL.Query()
	opts, err := request.ParseChartOptions(query.Get("width"), query.Get("theme"), defaults)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid chart options", err)
		return view.Chart{}, false
	}

	chart, err := h.fundService.GetFundChart(id, opts.Theme, opts.Width)
	if err != nil {
		respondFundError(w, err)
		return view.Chart{}, false
	}
	return chart, true
}

// activeTheme returns the theme of the requesting client, or light when the
// request has no session.
func (h *FundHandler) activeTheme(r *http.Request) model.Theme {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return model.ThemeLight
	}
	var theme model.Theme
	//nolint:errcheck // the callback never fails
	sess.Do(func(s *session.Session) error {
		theme = s.Controller.State().Theme
		return nil
	})
	return theme
}
