package parser

import "strings"

// NormalizeNumber strips thousands separators and surrounding space from
// a matched digit run. The result is the normalized decimal text stored
// on the record.
func NormalizeNumber(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
}

// DecodeOCRPercentage reconstructs the decimal point OCR engines drop
// from percentage cells (e.g. "6540" for 65.40, "08" for 0.8).
// Percentage cells print at most two decimal digits, which fixes the
// insertion point:
//   - a decimal point already present parses as-is
//   - more than two digits: the last two become the fractional part
//   - exactly two digits: the last one becomes the fractional part
//   - a single digit is the whole value
func DecodeOCRPercentage(raw string) string {
	cleaned := NormalizeNumber(raw)
	if cleaned == "" {
		return ""
	}

	sign := ""
	if strings.HasPrefix(cleaned, "-") {
		sign = "-"
		cleaned = cleaned[1:]
	}

	if strings.Contains(cleaned, ".") {
		return sign + cleaned
	}

	switch {
	case len(cleaned) > 2:
		return sign + cleaned[:len(cleaned)-2] + "." + cleaned[len(cleaned)-2:]
	case len(cleaned) == 2:
		return sign + cleaned[:1] + "." + cleaned[1:]
	default:
		return sign + cleaned
	}
}
