package repository

import (
	"fmt"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

// FundRepository provides read access to the fund catalog.
// Records are held in memory and handed out as copies.
type FundRepository struct {
	funds []model.FundRecord
	byID  map[int]int
}

// NewFundRepository creates a FundRepository over the given records.
// The records are copied; their order is the display order.
func NewFundRepository(funds []model.FundRecord) *FundRepository {
	r := &FundRepository{
		funds: make([]model.FundRecord, len(funds)),
		byID:  make(map[int]int, len(funds)),
	}
	for i, f := range funds {
		r.funds[i] = f.Clone()
		r.byID[f.ID] = i
	}
	return r
}

// GetAllFunds retrieves all funds in catalog order.
// Returns an empty slice if the catalog is empty.
func (r *FundRepository) GetAllFunds() []model.FundRecord {
	funds := make([]model.FundRecord, len(r.funds))
	for i, f := range r.funds {
		funds[i] = f.Clone()
	}
	return funds
}

// GetFund retrieves a single fund by ID.
// Returns apperrors.ErrFundNotFound if the ID is not in the catalog.
func (r *FundRepository) GetFund(id int) (model.FundRecord, error) {
	i, ok := r.byID[id]
	if !ok {
		return model.FundRecord{}, fmt.Errorf("%w: %d", apperrors.ErrFundNotFound, id)
	}
	return r.funds[i].Clone(), nil
}
