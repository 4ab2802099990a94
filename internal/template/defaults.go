package template

import "github.com/kingvictorvector/portfolio-note-generator/internal/models"

// DefaultActiveTemplate is the built-in active template used when
// nothing has been saved. Existing deployments depend on this exact
// text, including placeholder order.
const DefaultActiveTemplate = `Portfolio review for {{clientName}} covering the period {{timePeriod}}.

Asset Allocation:
- US Stock: {{usStockPercentage}}%
- Non US Stock: {{nonUsStockPercentage}}%
- Cash: {{cashPercentage}}%
- Bond: {{bondPercentage}}%
- Other: {{otherPercentage}}%

Performance Summary (Trailing Year):
- Time Weighted Return: {{trailingYearReturn}}%
- Benchmark Return: {{trailingYearBenchmark}}%

Performance Summary (YTD):
- Time Weighted Return: {{ytdReturn}}%
- Benchmark Return: {{ytdBenchmark}}%`

// DefaultQuickTemplates returns the three built-in quick templates used
// when nothing has been saved.
func DefaultQuickTemplates() map[string]models.QuickTemplate {
	return map[string]models.QuickTemplate{
		"simple": {
			Name: "Simple Summary",
			Content: `Portfolio review for {{clientName}} covering {{timePeriod}}.

Asset Allocation:
- US Stock: {{usStockPercentage}}%
- Non US Stock: {{nonUsStockPercentage}}%
- Cash: {{cashPercentage}}%
- Bond: {{bondPercentage}}%
- Other: {{otherPercentage}}%

Performance Summary:
- Trailing Year Return: {{trailingYearReturn}}%
- YTD Return: {{ytdReturn}}%`,
		},
		"detailed": {
			Name: "Detailed Analysis",
			Content: `COMPREHENSIVE PORTFOLIO REVIEW
Client: {{clientName}}
Period: {{timePeriod}}

ASSET ALLOCATION BREAKDOWN:
• US Equities: {{usStockPercentage}}% of portfolio
• International Equities: {{nonUsStockPercentage}}% of portfolio
• Fixed Income: {{bondPercentage}}% of portfolio
• Cash & Equivalents: {{cashPercentage}}% of portfolio
• Alternative Investments: {{otherPercentage}}% of portfolio

PERFORMANCE ANALYSIS:
Trailing Year Performance:
• Portfolio Return: {{trailingYearReturn}}%
• Benchmark Return: {{trailingYearBenchmark}}%

Year-to-Date Performance:
• Portfolio Return: {{ytdReturn}}%
• Benchmark Return: {{ytdBenchmark}}%`,
		},
		"performance": {
			Name: "Performance Focus",
			Content: `PERFORMANCE SUMMARY - {{clientName}}
Reporting Period: {{timePeriod}}

KEY METRICS:
Trailing Year:
• Portfolio: {{trailingYearReturn}}%
• Benchmark: {{trailingYearBenchmark}}%

YTD:
• Portfolio: {{ytdReturn}}%
• Benchmark: {{ytdBenchmark}}%

ASSET MIX:
Equity: {{usStockPercentage}}% US + {{nonUsStockPercentage}}% International
Fixed Income: {{bondPercentage}}%
Cash: {{cashPercentage}}%
Other: {{otherPercentage}}%`,
		},
	}
}
