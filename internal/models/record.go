// Package models defines data structures for the note generator
package models

// Canonical asset allocation labels, in display order.
const (
	AssetUSStock    = "US Stock"
	AssetNonUSStock = "Non US Stock"
	AssetCash       = "Cash"
	AssetBond       = "Bond"
	AssetOther      = "Other"
)

// AssetLabels lists the canonical asset labels in display order.
var AssetLabels = []string{
	AssetUSStock,
	AssetNonUSStock,
	AssetCash,
	AssetBond,
	AssetOther,
}

// PerformanceBlock holds return figures for one reporting period.
// Values are normalized decimal text (no thousands separators); an
// empty string means the figure was not found in the source text.
type PerformanceBlock struct {
	TimePeriod         string `json:"time_period,omitempty"`
	TimeWeightedReturn string `json:"time_weighted_return"`
	BenchmarkReturn    string `json:"benchmark_return"`
}

// StructuredRecord is the assembled set of client and portfolio facts
// extracted from a report. It is immutable once assembled: every consumer
// receives it by value and no component mutates it after assembly.
type StructuredRecord struct {
	ClientName string `json:"client_name"`
	TimePeriod string `json:"time_period"`

	TrailingYear PerformanceBlock `json:"trailing_year"`
	YTD          PerformanceBlock `json:"ytd"`

	// AssetAllocation maps canonical asset labels to percentage values as
	// normalized decimal text. Labels missing from the source are absent.
	AssetAllocation map[string]string `json:"asset_allocation"`

	// TotalPortfolioValue defaults to 1,000,000 when unparseable or absent.
	TotalPortfolioValue float64 `json:"total_portfolio_value"`
}

// QuickTemplate is a named, independently saved template variant.
type QuickTemplate struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}
