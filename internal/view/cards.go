package view

import (
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/analytics"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/format"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

// Card is the summary tile of a fund in the fund list.
type Card struct {
	FundID            int     `json:"fundId"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	ShortDescription  string  `json:"shortDescription"`
	SixMonthReturn    float64 `json:"sixMonthReturn"`
	ReturnText        string  `json:"returnText"`
	ReturnClass       string  `json:"returnClass"`
	RiskLevel         string  `json:"riskLevel"`
	RiskKey           string  `json:"riskKey"`
	RiskClass         string  `json:"riskClass"`
	ExpenseRatioText  string  `json:"expenseRatio"`
	AUMText           string  `json:"aum"`
	InvestmentHorizon string  `json:"investmentHorizon"`
}

// TableRow is a fund's row in the comparison table.
type TableRow struct {
	FundID            int     `json:"fundId"`
	Name              string  `json:"name"`
	SixMonthReturn    float64 `json:"sixMonthReturn"`
	ReturnText        string  `json:"returnText"`
	ReturnClass       string  `json:"returnClass"`
	RiskLevel         string  `json:"riskLevel"`
	RiskKey           string  `json:"riskKey"`
	ExpenseRatioText  string  `json:"expenseRatio"`
	AUMText           string  `json:"aum"`
	InvestmentHorizon string  `json:"investmentHorizon"`
}

// RenderCards builds one card per fund, in catalog order.
func RenderCards(funds []model.FundRecord) []Card {
	cards := make([]Card, len(funds))
	for i, f := range funds {
		growth := analytics.GrowthPercentage(f.StartValue, f.CurrentValue)
		riskKey := f.RiskLevel.StyleKey()
		cards[i] = Card{
			FundID:            f.ID,
			Name:              f.Name,
			Category:          f.Category,
			ShortDescription:  f.ShortDescription,
			SixMonthReturn:    growth,
			ReturnText:        format.Percentage(growth),
			ReturnClass:       signClass(growth, "return-positive", "return-negative"),
			RiskLevel:         string(f.RiskLevel),
			RiskKey:           riskKey,
			RiskClass:         "risk-" + riskKey,
			ExpenseRatioText:  format.ExpenseRatio(f.ExpenseRatio),
			AUMText:           format.AUM(f.AUM),
			InvestmentHorizon: f.InvestmentHorizon,
		}
	}
	return cards
}

// RenderTable builds one comparison row per fund, in catalog order.
func RenderTable(funds []model.FundRecord) []TableRow {
	rows := make([]TableRow, len(funds))
	for i, f := range funds {
		growth := analytics.GrowthPercentage(f.StartValue, f.CurrentValue)
		rows[i] = TableRow{
			FundID:            f.ID,
			Name:              f.Name,
			SixMonthReturn:    growth,
			ReturnText:        format.Percentage(growth),
			ReturnClass:       signClass(growth, "positive", "negative"),
			RiskLevel:         string(f.RiskLevel),
			RiskKey:           f.RiskLevel.StyleKey(),
			ExpenseRatioText:  format.ExpenseRatio(f.ExpenseRatio),
			AUMText:           format.AUM(f.AUM),
			InvestmentHorizon: f.InvestmentHorizon,
		}
	}
	return rows
}

func signClass(value float64, positive, negative string) string {
	if value >= 0 {
		return positive
	}
	return negative
}
