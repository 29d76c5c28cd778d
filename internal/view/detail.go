package view

import (
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/analytics"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/format"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

// Detail is the expanded view of a single fund.
type Detail struct {
	FundID            int            `json:"fundId"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	RiskBadgeText     string         `json:"riskBadge"`
	RiskBadgeClass    string         `json:"riskBadgeClass"`
	RiskKey           string         `json:"riskKey"`
	Objective         string         `json:"objective"`
	Description       string         `json:"description"`
	StartValueText    string         `json:"startValue"`
	CurrentValueText  string         `json:"currentValue"`
	Growth            float64        `json:"growth"`
	GrowthText        string         `json:"growthText"`
	GrowthClass       string         `json:"growthClass"`
	BestMonth         MonthHighlight `json:"bestMonth"`
	WorstMonth        MonthHighlight `json:"worstMonth"`
	AUMText           string         `json:"aum"`
	ExpenseRatioText  string         `json:"expenseRatio"`
	InvestmentHorizon string         `json:"investmentHorizon"`
	Volatility        string         `json:"volatility"`
	Suitability       string         `json:"suitability"`
	Months            []MonthRow     `json:"months"`
}

// MonthHighlight names a month together with its formatted return.
type MonthHighlight struct {
	Month      string `json:"month"`
	ReturnText string `json:"returnText"`
}

// MonthRow is one line of the monthly breakdown.
type MonthRow struct {
	Month       string `json:"month"`
	ReturnText  string `json:"returnText"`
	ReturnClass string `json:"returnClass"`
	Summary     string `json:"summary"`
}

// RenderDetail builds the detail panel for a fund.
// The fund must have at least one monthly entry.
func RenderDetail(f model.FundRecord) Detail {
	growth := analytics.GrowthPercentage(f.StartValue, f.CurrentValue)
	best, worst := analytics.FindExtremalMonths(f.MonthlySummary)
	riskKey := f.RiskLevel.StyleKey()

	return Detail{
		FundID:            f.ID,
		Name:              f.Name,
		Category:          f.Category,
		RiskBadgeText:     string(f.RiskLevel) + " Risk",
		RiskBadgeClass:    "risk-badge " + riskKey,
		RiskKey:           riskKey,
		Objective:         f.InvestmentObjective,
		Description:       f.FullDescription,
		StartValueText:    format.Currency(f.StartValue),
		CurrentValueText:  format.Currency(f.CurrentValue),
		Growth:            growth,
		GrowthText:        format.Percentage(growth),
		GrowthClass:       signClass(growth, "growth", "negative"),
		BestMonth:         highlight(best),
		WorstMonth:        highlight(worst),
		AUMText:           format.AUM(f.AUM),
		ExpenseRatioText:  format.ExpenseRatio(f.ExpenseRatio),
		InvestmentHorizon: f.InvestmentHorizon,
		Volatility:        f.VolatilityNote,
		Suitability:       f.SuitableFor,
		Months:            RenderMonthlySummary(f.MonthlySummary),
	}
}

// RenderMonthlySummary builds one row per month, in order.
func RenderMonthlySummary(entries []model.MonthEntry) []MonthRow {
	rows := make([]MonthRow, len(entries))
	for i, m := range entries {
		rows[i] = MonthRow{
			Month:       m.Month,
			ReturnText:  format.Percentage(m.MonthlyReturn),
			ReturnClass: signClass(m.MonthlyReturn, "positive", "negative"),
			Summary:     m.Summary,
		}
	}
	return rows
}

func highlight(m model.MonthEntry) MonthHighlight {
	return MonthHighlight{Month: m.Month, ReturnText: format.Percentage(m.MonthlyReturn)}
}
