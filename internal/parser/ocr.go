package parser

import (
	"regexp"
	"strings"

	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

// labelVariant pairs a canonical asset label with a pattern tolerating
// common OCR misreads of that label. The table is consumed by one shared
// matching routine so the normalization rules live in a single place.
//
// Order matters: "Non US Stock" precedes "US Stock" because the US Stock
// variants also match inside the longer label.
type labelVariant struct {
	canonical string
	pattern   *regexp.Regexp
}

var ocrAssetVariants = []labelVariant{
	{models.AssetNonUSStock, regexp.MustCompile(`(?i)(Non|on)\s*US\s*St\w*k`)},
	{models.AssetUSStock, regexp.MustCompile(`(?i)(US|U S|OU\S*)\s*St\w*k`)},
	{models.AssetCash, regexp.MustCompile(`(?i)(Cash|Sch)`)},
	{models.AssetBond, regexp.MustCompile(`(?i)Bond`)},
	{models.AssetOther, regexp.MustCompile(`(?i)Othe\w*`)},
}

// ocrAssetScanRe matches <label-variant> <number> pairs in one combined
// pass over the whole text.
var ocrAssetScanRe = regexp.MustCompile(`(?i)(US\s*Stock|Non\s*US\s*Stock|Cash|Bond|Other|Sch|Othe\w*)\s*([\d,.]+)`)

// ocrTimePeriodRe anchors on the "Time Period" label and tolerates the
// digit 0 substituted for the letter o in "to", plus the second date's
// day/month being merged into one token (e.g. "69/2025").
var ocrTimePeriodRe = regexp.MustCompile(`(?i)Time Period:.*?(\d{1,2}/\d{1,2}/\d{4}.*?t[o0]\s*\d{1,2}/?\d{1,2}/\d{4})`)

// ocrClientNameRe matches the "Prepared for:" header line, dropping any
// trailing page or account digits.
var ocrClientNameRe = regexp.MustCompile(`(?i)Prepared for:\s*([A-Z,&\s]+?)(?:\s\d)?\n`)

// OCRExtraction holds the fields recoverable from a full OCR text block.
type OCRExtraction struct {
	ClientName      string
	TimePeriod      string
	AssetAllocation map[string]string
}

// ExtractClientNameOCR returns the client name from a "Prepared for:"
// header, or "" when absent.
func ExtractClientNameOCR(text string) string {
	m := ocrClientNameRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractTimePeriodOCR finds a date range near a "Time Period" label,
// tolerating OCR artifacts in the separator and second date.
func ExtractTimePeriodOCR(text string) string {
	m := ocrTimePeriodRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractAssetAllocationOCR runs one combined ordered scan for
// <label-variant> <number> pairs across the whole text. Each canonical
// label resolves at most once: the first match in document order wins.
// Values pass through OCR decimal-point reconstruction.
func ExtractAssetAllocationOCR(text string) map[string]string {
	assets := make(map[string]string)
	for _, m := range ocrAssetScanRe.FindAllStringSubmatch(text, -1) {
		canonical, ok := canonicalAssetLabel(m[1])
		if !ok {
			continue
		}
		if _, seen := assets[canonical]; seen {
			continue
		}
		decoded := DecodeOCRPercentage(m[2])
		if decoded == "" {
			continue
		}
		assets[canonical] = decoded
	}
	return assets
}

// ExtractOCRText pulls every recoverable field from a full OCR text
// block.
func ExtractOCRText(text string) OCRExtraction {
	return OCRExtraction{
		ClientName:      ExtractClientNameOCR(text),
		TimePeriod:      ExtractTimePeriodOCR(text),
		AssetAllocation: ExtractAssetAllocationOCR(text),
	}
}

// canonicalAssetLabel normalizes a matched label variant (e.g. "Sch",
// "OU Steck") to its canonical asset label.
func canonicalAssetLabel(matched string) (string, bool) {
	for _, v := range ocrAssetVariants {
		if v.pattern.MatchString(matched) {
			return v.canonical, true
		}
	}
	return "", false
}
