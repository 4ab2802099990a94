package template

// Variable describes one placeholder identifier for the template editor.
type Variable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VariableGroup groups related placeholder identifiers.
type VariableGroup struct {
	Group     string     `json:"group"`
	Variables []Variable `json:"variables"`
}

// Variables returns the full placeholder catalog, grouped for display.
func Variables() []VariableGroup {
	return []VariableGroup{
		{
			Group: "Client Information",
			Variables: []Variable{
				{Name: "clientName", Description: "Client Name"},
				{Name: "timePeriod", Description: "Time Period (Trailing Year)"},
			},
		},
		{
			Group: "Asset Allocation",
			Variables: []Variable{
				{Name: "usStockPercentage", Description: "US Stock %"},
				{Name: "nonUsStockPercentage", Description: "Non US Stock %"},
				{Name: "cashPercentage", Description: "Cash %"},
				{Name: "bondPercentage", Description: "Bond %"},
				{Name: "otherPercentage", Description: "Other %"},
				{Name: "totalEquityPercentage", Description: "Total Equity % (US + Non-US Stock)"},
				{Name: "totalFixedIncomePercentage", Description: "Total Fixed Income % (Cash + Bond)"},
				{Name: "totalBondCashDollars", Description: "Total Bond + Cash ($, rounded to nearest $1000)"},
			},
		},
		{
			Group: "Trailing Year Performance",
			Variables: []Variable{
				{Name: "trailingYearReturn", Description: "Time Weighted Return %"},
				{Name: "trailingYearBenchmark", Description: "Benchmark Return %"},
			},
		},
		{
			Group: "YTD Performance",
			Variables: []Variable{
				{Name: "ytdReturn", Description: "YTD Time Weighted Return %"},
				{Name: "ytdBenchmark", Description: "YTD Benchmark Return %"},
			},
		},
	}
}
