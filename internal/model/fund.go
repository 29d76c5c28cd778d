package model

import "strings"

// RiskLevel is the qualitative risk label of a fund.
type RiskLevel string

// Risk levels used by the catalog.
const (
	RiskLow        RiskLevel = "Low"
	RiskMedium     RiskLevel = "Medium"
	RiskMediumHigh RiskLevel = "Medium-High"
	RiskHigh       RiskLevel = "High"
)

// ValidRiskLevels lists the closed set of risk labels.
var ValidRiskLevels = map[RiskLevel]bool{
	RiskLow:        true,
	RiskMedium:     true,
	RiskMediumHigh: true,
	RiskHigh:       true,
}

// StyleKey derives the CSS-like key of a risk level: lowercased with the
// first hyphen removed ("Medium-High" becomes "mediumhigh").
func (r RiskLevel) StyleKey() string {
	return strings.Replace(strings.ToLower(string(r)), "-", "", 1)
}

// FundRecord represents a fund from the catalog.
// StartValue and CurrentValue are six months apart and share a currency unit.
// AUM is expressed in millions.
type FundRecord struct {
	ID                  int          `json:"id"`
	Name                string       `json:"name"`
	Category            string       `json:"category"`
	ShortDescription    string       `json:"shortDescription"`
	FullDescription     string       `json:"fullDescription"`
	StartValue          float64      `json:"startValue"`
	CurrentValue        float64      `json:"currentValue"`
	RiskLevel           RiskLevel    `json:"riskLevel"`
	ExpenseRatio        float64      `json:"expenseRatio"`
	AUM                 float64      `json:"aum"`
	InvestmentHorizon   string       `json:"investmentHorizon"`
	InvestmentObjective string       `json:"investmentObjective"`
	VolatilityNote      string       `json:"volatilityNote"`
	SuitableFor         string       `json:"suitableFor"`
	MonthlySummary      []MonthEntry `json:"monthlySummary"`
}

// MonthEntry is one month of a fund's performance narrative.
type MonthEntry struct {
	Month         string  `json:"month"`
	Summary       string  `json:"summary"`
	MonthlyReturn float64 `json:"monthlyReturn"`
}

// Abbreviation returns the month part of the label ("Aug 2025" becomes "Aug").
func (m MonthEntry) Abbreviation() string {
	abbr, _, _ := strings.Cut(m.Month, " ")
	return abbr
}

// Clone returns a deep copy of the record so callers cannot mutate the catalog.
func (f FundRecord) Clone() FundRecord {
	months := make([]MonthEntry, len(f.MonthlySummary))
	copy(months, f.MonthlySummary)
	f.MonthlySummary = months
	return f
}

// Returns extracts the ordered monthly returns.
func (f FundRecord) Returns() []float64 {
	returns := make([]float64, len(f.MonthlySummary))
	for i, m := range f.MonthlySummary {
		returns[i] = m.MonthlyReturn
	}
	return returns
}
