package eligibility

import (
	"strconv"
	"strings"
)

// ParseNumericAnswer extracts a number from a free-text answer.
// Candidates write salary expectations like "$8,500", "8 500 €" or
// "8500,50", so currency symbols and spacing are stripped and a comma
// is accepted as either a thousands or a decimal separator.
func ParseNumericAnswer(answer string) (float64, bool) {
	var b strings.Builder
	for _, r := range answer {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	if strings.Contains(cleaned, ",") {
		if strings.Contains(cleaned, ".") {
			// Both present: commas are thousands separators.
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else if strings.Count(cleaned, ",") == 1 && len(cleaned)-strings.Index(cleaned, ",") <= 3 {
			// A single trailing comma group of 1-2 digits is a decimal comma.
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// formatNumber renders a bound or value without trailing zero noise.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
