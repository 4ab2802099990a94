// Package parser extracts client and portfolio facts from free-form
// report text. All extractors are total functions: a miss is reported
// as an empty value, never as an error.
package parser

import (
	"regexp"
	"strings"

	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

// numberRe matches a signed run of digits with optional thousands
// separators and decimal point. Runs must contain at least one digit.
var numberRe = regexp.MustCompile(`-?\d[\d,.]*`)

// timePeriodRe matches a "D/D/YYYY to D/D/YYYY" date range.
var timePeriodRe = regexp.MustCompile(`(?i)\d{1,2}/\d{1,2}/\d{4}\s*to\s*\d{1,2}/\d{1,2}/\d{4}`)

// manualAssetRes holds one independent pattern per canonical label for
// manual-entry text. Each label is scanned on its own, so labels may
// match out of document order.
var manualAssetRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(models.AssetLabels))
	for _, label := range models.AssetLabels {
		res[label] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[^\d]*([\d.]+)`)
	}
	return res
}()

// PerformanceTriple holds the three trailing numeric columns of a
// performance table: return %, benchmark %, and total portfolio value.
type PerformanceTriple struct {
	Return         string
	Benchmark      string
	PortfolioValue string
}

// ExtractLabeledValue locates the first case-insensitive occurrence of
// label in text, then returns the first number that follows it anywhere
// in the remaining text — the search crosses line breaks. Returns ""
// when the label is absent or no number follows it.
func ExtractLabeledValue(text, label string) string {
	if label == "" {
		return ""
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(label))
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(label):]
	return strings.TrimSpace(numberRe.FindString(rest))
}

// ExtractTimePeriod finds the first "D/D/YYYY to D/D/YYYY" date range in
// text. Returns "" when no complete range is present; a partial range
// never matches.
func ExtractTimePeriod(text string) string {
	return strings.TrimSpace(timePeriodRe.FindString(text))
}

// ExtractPerformanceTriple scans text for every numeric token and
// interprets the last three, in order, as return %, benchmark %, and
// total portfolio value. Performance tables carry unreliable labels but
// reliable column order, so position beats label matching here. Fewer
// than three numbers means all three fields come back empty.
func ExtractPerformanceTriple(text string) PerformanceTriple {
	numbers := numberRe.FindAllString(text, -1)
	if len(numbers) < 3 {
		return PerformanceTriple{}
	}
	n := len(numbers)
	return PerformanceTriple{
		Return:         NormalizeNumber(numbers[n-3]),
		Benchmark:      NormalizeNumber(numbers[n-2]),
		PortfolioValue: NormalizeNumber(numbers[n-1]),
	}
}

// ExtractAssetAllocation scans manual-entry text for each canonical
// asset label independently, taking the first number that follows the
// literal label. Labels absent from the text are absent from the map.
func ExtractAssetAllocation(text string) map[string]string {
	assets := make(map[string]string)
	for _, label := range models.AssetLabels {
		m := manualAssetRes[label].FindStringSubmatch(text)
		if m != nil {
			assets[label] = NormalizeNumber(m[1])
		}
	}
	return assets
}
