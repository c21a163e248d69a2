package rendering

import "strings"

// CleanText prepares free text for the PDF core fonts: whitespace runs
// collapse to one space and common symbols outside Windows-1252 are
// replaced by ASCII equivalents.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range strings.Join(strings.Fields(text), " ") {
		switch r {
		case '→':
			result.WriteString("->")
		case '←':
			result.WriteString("<-")
		case '≥':
			result.WriteString(">=")
		case '≤':
			result.WriteString("<=")
		case '✓', '✔':
			result.WriteString("+")
		case '\u200b', '\ufeff':
			// zero-width characters are dropped
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
