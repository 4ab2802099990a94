package common

import (
	"fmt"
	"strings"
)

// FormatDollars formats a dollar amount with comma separators and no cents.
// Amounts in this system are always whole dollars (rounded to the nearest
// thousand upstream).
func FormatDollars(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v + 0.5)

	s := fmt.Sprintf("%d", whole)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}

	if negative {
		return "-" + s
	}
	return s
}

// FormatPct formats a percentage with one decimal place.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
