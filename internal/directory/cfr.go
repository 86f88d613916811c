package directory

import (
	"strconv"
	"strings"
)

// CfrParts returns the part numbers 1..n
func CfrParts(n int) []int {
	parts := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, i)
	}
	return parts
}

// MatchCfrPart reports whether part matches the search text. When the text
// contains digits only those digits are compared against the part number;
// otherwise "47", "part 47" and "cfr part 47" are all accepted forms.
func MatchCfrPart(part int, text string) bool {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return true
	}

	partText := strconv.Itoa(part)
	if digits := digitsOf(q); digits != "" {
		return strings.Contains(partText, digits)
	}

	return strings.Contains(partText, q) ||
		strings.Contains("part "+partText, q) ||
		strings.Contains("cfr part "+partText, q)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
