package repository_test

import (
	"errors"
	"testing"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/repository"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/testutil"
)

func TestFundRepository(t *testing.T) {
	a := testutil.NewFund().WithID(5).WithName("A").WithReturns(1, 2).Build()
	b := testutil.NewFund().WithID(2).WithName("B").WithReturns(-1).Build()
	repo := repository.NewFundRepository([]model.FundRecord{a, b})

	t.Run("keeps insertion order", func(t *testing.T) {
		funds := repo.GetAllFunds()
		if len(funds) != 2 || funds[0].ID != 5 || funds[1].ID != 2 {
			t.Errorf("Unexpected order: %+v", funds)
		}
	})

	t.Run("returns copies", func(t *testing.T) {
		funds := repo.GetAllFunds()
		funds[0].MonthlySummary[0].MonthlyReturn = 99

		again, err := repo.GetFund(5)
		if err != nil {
			t.Fatalf("GetFund() returned unexpected error: %v", err)
		}
		if again.MonthlySummary[0].MonthlyReturn != 1 {
			t.Errorf("Expected stored record to be unchanged, got %v", again.MonthlySummary[0].MonthlyReturn)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetFund(3)
		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})
}
