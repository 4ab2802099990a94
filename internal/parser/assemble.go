package parser

import (
	"strconv"

	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

// DefaultPortfolioValue is used when no portfolio value can be parsed
// from any source.
const DefaultPortfolioValue = 1_000_000

// AssembleInput carries raw extractor outputs (or already-typed
// manual-entry values) for record assembly.
type AssembleInput struct {
	ClientName      string
	TimePeriod      string
	TrailingYear    PerformanceTriple
	YTD             PerformanceTriple
	AssetAllocation map[string]string

	// TotalPortfolioValue is a caller-supplied figure. A value embedded
	// in the trailing-year performance table overrides it: the table is
	// the more trustworthy source.
	TotalPortfolioValue string
}

// AssembleRecord combines extractor outputs into one structured record.
// Assembly is a pure function of its input; no component downstream
// depends on whether the fields came from manual entry or OCR.
func AssembleRecord(in AssembleInput) models.StructuredRecord {
	alloc := make(map[string]string, len(in.AssetAllocation))
	for label, pct := range in.AssetAllocation {
		alloc[label] = pct
	}

	value := in.TotalPortfolioValue
	if in.TrailingYear.PortfolioValue != "" {
		value = in.TrailingYear.PortfolioValue
	}

	return models.StructuredRecord{
		ClientName: in.ClientName,
		TimePeriod: in.TimePeriod,
		TrailingYear: models.PerformanceBlock{
			TimePeriod:         in.TimePeriod,
			TimeWeightedReturn: in.TrailingYear.Return,
			BenchmarkReturn:    in.TrailingYear.Benchmark,
		},
		YTD: models.PerformanceBlock{
			TimeWeightedReturn: in.YTD.Return,
			BenchmarkReturn:    in.YTD.Benchmark,
		},
		AssetAllocation:     alloc,
		TotalPortfolioValue: parsePortfolioValue(value),
	}
}

// parsePortfolioValue parses a portfolio value, falling back to the
// default when the text is absent or unparseable.
func parsePortfolioValue(raw string) float64 {
	v, err := strconv.ParseFloat(NormalizeNumber(raw), 64)
	if err != nil || v <= 0 {
		return DefaultPortfolioValue
	}
	return v
}
