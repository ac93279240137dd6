package checkout

import (
	"regexp"
	"strings"
)

var (
	nonDigits    = regexp.MustCompile(`\D`)
	cardDigitRun = regexp.MustCompile(`\d{4,16}`)
)

// FormatCardNumber normalizes keystroke input into the display form used by
// the card field: digits grouped in runs of four separated by single spaces.
// Input with fewer than four digits passes through ungrouped so partial
// entry degrades gracefully.
func FormatCardNumber(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	run := cardDigitRun.FindString(digits)
	if run == "" {
		return digits
	}

	var b strings.Builder
	for i := 0; i < len(run); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(run[i])
	}
	return b.String()
}

// FormatExpiry normalizes keystroke input into MM/YY: a slash lands after
// the first two digits and the result is capped at five characters. Input
// shorter than two digits is returned unchanged.
func FormatExpiry(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}
