package stepper

import "strconv"

// ParseDecimal parses text as a plain decimal number: one optional leading
// sign, ASCII digits, at most one '.' separator, at least one digit.
// Grouping separators, exponents, whitespace, and locale-specific forms are
// rejected with a FormatError.
func ParseDecimal(text string) (float64, error) {
	if !isPlainDecimal(text) {
		return 0, &FormatError{Text: text}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &FormatError{Text: text}
	}
	return v, nil
}

func isPlainDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	seenSep := false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !seenSep:
			seenSep = true
		default:
			return false
		}
	}
	return digits > 0
}

// FormatDecimal renders v using the shortest plain-decimal representation
// that round-trips through ParseDecimal. No fixed fraction-digit padding,
// no exponent form.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
