// Package template renders structured records into final note text.
// Substitution works over a closed catalog of placeholder identifiers;
// unknown placeholders pass through as literal text.
package template

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
	"github.com/kingvictorvector/portfolio-note-generator/internal/interfaces"
	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

// placeholderRe matches {{name}} tokens. Substitution is a single pass:
// a substituted value is never itself re-scanned for placeholders.
var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Derived holds the computed fields available to templates alongside the
// record's own fields.
type Derived struct {
	TotalEquityPct       string
	TotalFixedIncomePct  string
	TotalBondCashDollars string
}

// ComputeDerived computes the derived template fields from a record.
// Malformed or absent percentages count as zero. The bond+cash dollar
// figure is rounded percent sum first, then fraction of value, then to
// the nearest 1000 — the three-step order is load-bearing for numeric
// parity with existing notes.
func ComputeDerived(record models.StructuredRecord) Derived {
	usStock := parsePctOrZero(record.AssetAllocation[models.AssetUSStock])
	nonUSStock := parsePctOrZero(record.AssetAllocation[models.AssetNonUSStock])
	cash := parsePctOrZero(record.AssetAllocation[models.AssetCash])
	bond := parsePctOrZero(record.AssetAllocation[models.AssetBond])

	bondCashPct := cash + bond
	dollars := math.Round(bondCashPct/100*record.TotalPortfolioValue/1000) * 1000

	return Derived{
		TotalEquityPct:       common.FormatPct(usStock + nonUSStock),
		TotalFixedIncomePct:  common.FormatPct(bondCashPct),
		TotalBondCashDollars: common.FormatDollars(dollars),
	}
}

// placeholderValues maps every catalog identifier to its value for one
// record. Identifiers are case-sensitive; a lookup miss during
// substitution leaves the placeholder untouched.
func placeholderValues(record models.StructuredRecord) map[string]string {
	derived := ComputeDerived(record)
	return map[string]string{
		"clientName":                 record.ClientName,
		"timePeriod":                 record.TrailingYear.TimePeriod,
		"usStockPercentage":          record.AssetAllocation[models.AssetUSStock],
		"nonUsStockPercentage":       record.AssetAllocation[models.AssetNonUSStock],
		"cashPercentage":             record.AssetAllocation[models.AssetCash],
		"bondPercentage":             record.AssetAllocation[models.AssetBond],
		"otherPercentage":            record.AssetAllocation[models.AssetOther],
		"totalEquityPercentage":      derived.TotalEquityPct,
		"totalFixedIncomePercentage": derived.TotalFixedIncomePct,
		"totalBondCashDollars":       derived.TotalBondCashDollars,
		"trailingYearReturn":         record.TrailingYear.TimeWeightedReturn,
		"trailingYearBenchmark":      record.TrailingYear.BenchmarkReturn,
		"ytdReturn":                  record.YTD.TimeWeightedReturn,
		"ytdBenchmark":               record.YTD.BenchmarkReturn,
	}
}

// Render substitutes every catalog placeholder in tpl with the record's
// field or derived value. Missing fields substitute as empty strings.
// An empty or whitespace-only template falls back to the default note.
func Render(record models.StructuredRecord, tpl string) string {
	if strings.TrimSpace(tpl) == "" {
		return RenderDefault(record)
	}

	values := placeholderValues(record)
	return placeholderRe.ReplaceAllStringFunc(tpl, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}

// RenderDefault builds the fixed-structure note used when no template is
// configured. Asset bullets appear only for labels present on the
// record; performance bullets always appear, with absent figures
// rendering as empty strings.
func RenderDefault(record models.StructuredRecord) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Portfolio review for **%s** covering the period **%s**.\n",
		record.ClientName, record.TrailingYear.TimePeriod))

	sb.WriteString("\n**Asset Allocation:**\n")
	for _, label := range models.AssetLabels {
		if pct, ok := record.AssetAllocation[label]; ok {
			sb.WriteString(fmt.Sprintf("- %s: %s%%\n", label, pct))
		}
	}

	sb.WriteString("\n**Performance Summary (Trailing Year):**\n")
	sb.WriteString(fmt.Sprintf("- Time Weighted Return: %s%%\n", record.TrailingYear.TimeWeightedReturn))
	sb.WriteString(fmt.Sprintf("- Benchmark Return: %s%%\n", record.TrailingYear.BenchmarkReturn))

	sb.WriteString("\n**Performance Summary (YTD):**\n")
	sb.WriteString(fmt.Sprintf("- Time Weighted Return: %s%%\n", record.YTD.TimeWeightedReturn))
	sb.WriteString(fmt.Sprintf("- Benchmark Return: %s%%\n", record.YTD.BenchmarkReturn))

	return sb.String()
}

// RenderByID renders using the quick template identified by templateID.
// When templateID is empty or unknown, it falls back to the store's
// active template (which itself falls back to the built-in default).
func RenderByID(ctx context.Context, record models.StructuredRecord, templateID string, store interfaces.TemplateStore) string {
	if templateID != "" {
		if qt, ok := store.LoadQuickTemplates(ctx)[templateID]; ok {
			return Render(record, qt.Content)
		}
	}
	return Render(record, store.LoadActiveTemplate(ctx))
}

// parsePctOrZero parses a normalized decimal percentage, treating
// malformed or absent text as zero.
func parsePctOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
