package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/repository"
)

// FundBuilder provides a fluent interface for building fund records.
//
// Example usage:
//
//	fund := testutil.NewFund().
//	    WithID(7).
//	    WithValues(10000, 9500).
//	    WithReturns(1.2, -0.4).
//	    Build()
type FundBuilder struct {
	fund model.FundRecord
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		fund: model.FundRecord{
			ID:                  1,
			Name:                "Test Fund",
			Category:            "Equity",
			ShortDescription:    "A fund used in tests.",
			FullDescription:     "A fund used in tests with a longer description.",
			StartValue:          10000,
			CurrentValue:        10500,
			RiskLevel:           model.RiskMedium,
			ExpenseRatio:        0.5,
			AUM:                 1000,
			InvestmentHorizon:   "3-5 years",
			InvestmentObjective: "Test growth",
			VolatilityNote:      "Moderate",
			SuitableFor:         "Testers",
		},
	}
}

func (b *FundBuilder) WithID(id int) *FundBuilder {
	b.fund.ID = id
	return b
}

func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.fund.Name = name
	return b
}

func (b *FundBuilder) WithValues(start, current float64) *FundBuilder {
	b.fund.StartValue = start
	b.fund.CurrentValue = current
	return b
}

func (b *FundBuilder) WithRiskLevel(level model.RiskLevel) *FundBuilder {
	b.fund.RiskLevel = level
	return b
}

// WithReturns sets the monthly summary, one entry per return, labelled with
// consecutive months of 2025.
func (b *FundBuilder) WithReturns(returns ...float64) *FundBuilder {
	b.fund.MonthlySummary = make([]model.MonthEntry, len(returns))
	for i, r := range returns {
		b.fund.MonthlySummary[i] = model.MonthEntry{
			Month:         time.Month(i%12+1).String() + " 2025",
			Summary:       fmt.Sprintf("Month %d summary.", i+1),
			MonthlyReturn: r,
		}
	}
	return b
}

func (b *FundBuilder) Build() model.FundRecord {
	return b.fund.Clone()
}

// PreferenceBuilder provides a fluent interface for creating stored preferences.
//
// Example usage:
//
//	pref := testutil.NewPreference().
//	    WithValue("dark").
//	    UpdatedAt(time.Now().Add(-48 * time.Hour)).
//	    Build(t, db)
type PreferenceBuilder struct {
	pref model.Preference
}

// NewPreference creates a PreferenceBuilder for a theme preference of a
// random client, updated now.
func NewPreference() *PreferenceBuilder {
	return &PreferenceBuilder{
		pref: model.Preference{
			ClientID:  uuid.New().String(),
			Key:       model.PreferenceKeyTheme,
			Value:     string(model.ThemeLight),
			UpdatedAt: time.Now().UTC(),
		},
	}
}

func (b *PreferenceBuilder) WithClientID(clientID string) *PreferenceBuilder {
	b.pref.ClientID = clientID
	return b
}

func (b *PreferenceBuilder) WithKey(key string) *PreferenceBuilder {
	b.pref.Key = key
	return b
}

func (b *PreferenceBuilder) WithValue(value string) *PreferenceBuilder {
	b.pref.Value = value
	return b
}

func (b *PreferenceBuilder) UpdatedAt(at time.Time) *PreferenceBuilder {
	b.pref.UpdatedAt = at
	return b
}

// Build stores the preference and returns it.
func (b *PreferenceBuilder) Build(t *testing.T, db *sql.DB) model.Preference {
	t.Helper()

	repo := repository.NewPreferenceRepository(db)
	if err := repo.SetPreference(context.Background(), b.pref); err != nil {
		t.Fatalf("Failed to create preference: %v", err)
	}
	return b.pref
}
