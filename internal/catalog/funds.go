package catalog

import "github.com/ndewijer/Investment-Fund-Dashboard/internal/model"

var funds = []model.FundRecord{
	{
		ID:                  1,
		Name:                "Equity Fund",
		Category:            "Equity",
		ShortDescription:    "High-growth stock investments for long-term wealth building",
		FullDescription:     "This equity fund focuses on large-cap and mid-cap stocks across diverse sectors including technology, healthcare, and consumer goods. Designed for investors seeking capital appreciation over a 5-10 year horizon with moderate to high risk tolerance.",
		StartValue:          10000,
		CurrentValue:        11250,
		RiskLevel:           model.RiskHigh,
		ExpenseRatio:        0.75,
		AUM:                 2450,
		InvestmentHorizon:   "Long Term (7+ years)",
		InvestmentObjective: "To achieve long-term capital appreciation by investing primarily in a diversified portfolio of equity securities of companies with strong growth potential. The fund targets a mix of large-cap and mid-cap stocks across technology, healthcare, financial services, and consumer discretionary sectors.",
		VolatilityNote:      "This fund exhibits higher volatility compared to balanced or debt funds. Expect price fluctuations of ±15-25% annually. Suitable for investors with strong risk appetite and long investment horizons.",
		SuitableFor:         "Aggressive investors aged 25-45 with stable income, long-term wealth creation goals, and ability to withstand market volatility. Not suitable for retirees or conservative investors seeking stable income.",
		MonthlySummary: []model.MonthEntry{
			{Month: "Aug 2025", Summary: "Strong start with tech sector gains driving 3.2% growth", MonthlyReturn: 3.2},
			{Month: "Sep 2025", Summary: "Consolidation phase with minor 0.5% dip due to market volatility", MonthlyReturn: -0.5},
			{Month: "Oct 2025", Summary: "Recovery momentum with healthcare stocks leading 2.8% increase", MonthlyReturn: 2.8},
			{Month: "Nov 2025", Summary: "Steady growth of 1.9% supported by positive earnings reports", MonthlyReturn: 1.9},
			{Month: "Dec 2025", Summary: "Year-end rally pushing portfolio up 4.1% on strong consumer spending", MonthlyReturn: 4.1},
			{Month: "Jan 2026", Summary: "Slight correction of 1.2% as investors took profits after strong Q4", MonthlyReturn: -1.2},
		},
	},
	{
		ID:                  2,
		Name:                "Debt Fund",
		Category:            "Debt",
		ShortDescription:    "Stable income through government and corporate bonds",
		FullDescription:     "A conservative debt fund investing primarily in AAA-rated government securities and high-quality corporate bonds. Ideal for risk-averse investors seeking steady returns with capital preservation. Portfolio duration is maintained between 3-5 years to balance yield and interest rate risk.",
		StartValue:          10000,
		CurrentValue:        10320,
		RiskLevel:           model.RiskLow,
		ExpenseRatio:        0.45,
		AUM:                 5280,
		InvestmentHorizon:   "Short to Medium Term (1-3 years)",
		InvestmentObjective: "To generate regular income and preserve capital by investing in high-quality debt instruments including government securities, AAA-rated corporate bonds, and money market instruments. The fund maintains a balanced duration profile to minimize interest rate risk while optimizing yield.",
		VolatilityNote:      "Low volatility fund with minimal principal risk. Expected annual fluctuations of ±2-4%. Primary risk is interest rate changes affecting bond prices. Suitable for conservative investors prioritizing capital safety.",
		SuitableFor:         "Conservative investors, retirees seeking steady income, individuals with short to medium-term financial goals (1-3 years), and those looking to park surplus funds with minimal risk exposure.",
		MonthlySummary: []model.MonthEntry{
			{Month: "Aug 2025", Summary: "Stable performance with 0.5% return from bond coupon payments", MonthlyReturn: 0.5},
			{Month: "Sep 2025", Summary: "Minor gains of 0.4% as interest rates remained steady", MonthlyReturn: 0.4},
			{Month: "Oct 2025", Summary: "Slight uptick of 0.6% from new government securities allocation", MonthlyReturn: 0.6},
			{Month: "Nov 2025", Summary: "Consistent 0.5% growth maintaining steady income trajectory", MonthlyReturn: 0.5},
			{Month: "Dec 2025", Summary: "Strong month with 0.7% gain from corporate bond additions", MonthlyReturn: 0.7},
			{Month: "Jan 2026", Summary: "Modest 0.5% increase reflecting stable bond market conditions", MonthlyReturn: 0.5},
		},
	},
	{
		ID:                  3,
		Name:                "Hybrid Fund",
		Category:            "Hybrid",
		ShortDescription:    "Balanced mix of stocks and bonds for moderate growth",
		FullDescription:     "This balanced hybrid fund maintains a 60:40 equity-to-debt ratio, providing growth potential while managing downside risk. The equity portion focuses on blue-chip stocks, while the debt component invests in investment-grade bonds. Suitable for investors seeking moderate returns with controlled volatility.",
		StartValue:          10000,
		CurrentValue:        10680,
		RiskLevel:           model.RiskMedium,
		ExpenseRatio:        0.65,
		AUM:                 3850,
		InvestmentHorizon:   "Medium Term (3-5 years)",
		InvestmentObjective: "To provide balanced growth and income by maintaining a strategic allocation between equity (60%) and debt (40%) instruments. The fund dynamically rebalances to maintain target allocation while capitalizing on market opportunities in both asset classes.",
		VolatilityNote:      "Moderate volatility with balanced risk profile. Expected annual fluctuations of ±8-12%. The debt component cushions equity market downturns, making this suitable for investors seeking growth with reduced volatility compared to pure equity funds.",
		SuitableFor:         "Moderate risk investors aged 30-55, first-time mutual fund investors, those seeking balanced exposure to equity and debt, and investors with medium-term financial goals like children's education or home downpayment.",
		MonthlySummary: []model.MonthEntry{
			{Month: "Aug 2025", Summary: "Balanced gains of 1.8% with equity portion outperforming bonds", MonthlyReturn: 1.8},
			{Month: "Sep 2025", Summary: "Minor fluctuation showing 0.2% growth as equity and debt balanced out", MonthlyReturn: 0.2},
			{Month: "Oct 2025", Summary: "Solid 1.5% increase driven by both asset classes performing well", MonthlyReturn: 1.5},
			{Month: "Nov 2025", Summary: "Steady uptrend of 1.2% reflecting diversification benefits", MonthlyReturn: 1.2},
			{Month: "Dec 2025", Summary: "Best month with 2.3% gain from equity rally and bond stability", MonthlyReturn: 2.3},
			{Month: "Jan 2026", Summary: "Slight pullback of 0.2% as equity portion corrected slightly", MonthlyReturn: -0.2},
		},
	},
	{
		ID:                  4,
		Name:                "Index Fund",
		Category:            "Index",
		ShortDescription:    "Low-cost tracking of major market indices",
		FullDescription:     "A passive index fund that mirrors the performance of the S&P 500 index with minimal tracking error. Offers broad market exposure across 500 leading U.S. companies with extremely low expense ratios. Perfect for long-term investors who believe in market efficiency and want to match benchmark returns.",
		StartValue:          10000,
		CurrentValue:        11080,
		RiskLevel:           model.RiskMediumHigh,
		ExpenseRatio:        0.15,
		AUM:                 8920,
		InvestmentHorizon:   "Long Term (5+ years)",
		InvestmentObjective: "To replicate the performance of the S&P 500 index by investing in the same stocks in proportional weights. The fund employs passive management with minimal trading, resulting in low costs and tax efficiency. Ideal for investors seeking broad U.S. equity market exposure.",
		VolatilityNote:      "Moderate-to-high volatility reflecting overall U.S. stock market movements. Expected annual fluctuations of ±12-18%. No active management to reduce downside risk, but diversification across 500 companies mitigates individual stock risk.",
		SuitableFor:         "Cost-conscious long-term investors, those believing in passive investing philosophy, retirement savers (401k/IRA), and investors seeking diversified U.S. equity exposure without active management fees.",
		MonthlySummary: []model.MonthEntry{
			{Month: "Aug 2025", Summary: "Index rose 2.8% tracking broad market gains across sectors", MonthlyReturn: 2.8},
			{Month: "Sep 2025", Summary: "Flat performance at 0.1% mirroring market consolidation", MonthlyReturn: 0.1},
			{Month: "Oct 2025", Summary: "Strong rebound of 2.5% following positive economic indicators", MonthlyReturn: 2.5},
			{Month: "Nov 2025", Summary: "Continued momentum with 1.7% gain matching S&P 500 benchmark", MonthlyReturn: 1.7},
			{Month: "Dec 2025", Summary: "Robust 3.2% increase driven by year-end market optimism", MonthlyReturn: 3.2},
			{Month: "Jan 2026", Summary: "Minor correction of 0.8% aligning with overall market pullback", MonthlyReturn: -0.8},
		},
	},
}
