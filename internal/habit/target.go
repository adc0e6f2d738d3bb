package habit

import "unicode"

// ParseTarget extracts the first embedded integer from a habit's free-text
// annual target (e.g. "500 km in the year" -> 500). The second return is
// false when the string holds no digits; such habits have no computable
// projection rather than an error.
func ParseTarget(target string) (int, bool) {
	value := 0
	inNumber := false

	for _, r := range target {
		if unicode.IsDigit(r) {
			value = value*10 + int(r-'0')
			inNumber = true
			continue
		}
		if inNumber {
			break
		}
	}

	if !inNumber || value <= 0 {
		return 0, false
	}
	return value, true
}
