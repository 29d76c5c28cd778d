package service

import (
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/repository"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/view"
)

// FundService handles fund-related business logic operations.
// It serves the rendered card, table, detail and chart views of the catalog
// and acts as the fund source of every dashboard controller.
type FundService struct {
	fundRepo *repository.FundRepository
}

// NewFundService creates a new FundService with the provided repository dependencies.
func NewFundService(fundRepo *repository.FundRepository) *FundService {
	return &FundService{
		fundRepo: fundRepo,
	}
}

// GetFund retrieves a single fund record.
// Returns apperrors.ErrFundNotFound if the ID is not in the catalog.
func (s *FundService) GetFund(id int) (model.FundRecord, error) {
	return s.fundRepo.GetFund(id)
}

// GetAllFunds retrieves all fund records in display order.
func (s *FundService) GetAllFunds() []model.FundRecord {
	return s.fundRepo.GetAllFunds()
}

// GetFundCards returns the rendered fund cards in catalog order.
func (s *FundService) GetFundCards() []view.Card {
	return view.RenderCards(s.fundRepo.GetAllFunds())
}

// GetComparison returns the rendered comparison table rows in catalog order.
func (s *FundService) GetComparison() []view.TableRow {
	return view.RenderTable(s.fundRepo.GetAllFunds())
}

// GetFundDetail returns the rendered details section of one fund.
func (s *FundService) GetFundDetail(id int) (view.Detail, error) {
	fund, err := s.fundRepo.GetFund(id)
	if err != nil {
		return view.Detail{}, err
	}
	return view.RenderDetail(fund), nil
}

// GetFundChart returns the chart geometry for one fund's monthly returns,
// sized to the given container width and coloured for theme.
func (s *FundService) GetFundChart(id int, theme model.Theme, containerWidth int) (view.Chart, error) {
	fund, err := s.fundRepo.GetFund(id)
	if err != nil {
		return view.Chart{}, err
	}
	return view.RenderChart(fund.MonthlySummary, theme, containerWidth), nil
}
