package cli

import "strings"

// FormatPhone normalizes a Ukrainian phone number into +380-XX-XXX-XX-XX
// form. Non-digits are stripped; a leading 0 is promoted to the 380 country
// prefix. Partial input formats as far as the digits go, so the submit form
// can re-format after every keystroke.
func FormatPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if !strings.HasPrefix(d, "380") && strings.HasPrefix(d, "0") {
		d = "38" + d
	}

	var result strings.Builder
	if len(d) > 0 {
		result.WriteString("+" + slice(d, 0, 3))
	}
	if len(d) > 3 {
		result.WriteString("-" + slice(d, 3, 5))
	}
	if len(d) > 5 {
		result.WriteString("-" + slice(d, 5, 8))
	}
	if len(d) > 8 {
		result.WriteString("-" + slice(d, 8, 10))
	}
	if len(d) > 10 {
		result.WriteString("-" + slice(d, 10, 12))
	}
	return result.String()
}

// slice returns s[from:to] clamped to the string length.
func slice(s string, from, to int) string {
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
