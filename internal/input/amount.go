package input

import (
	"strconv"
	"strings"
)

// MaxAmount is the largest amount accepted from user input, 2^53-1.
const MaxAmount = 1<<53 - 1

// ParseFormattedNumber reads an amount typed with "." thousands separators,
// e.g. "5.000.000". Leading spaces and a sign are accepted and anything after
// the leading digits is ignored. It returns 0 when there are no digits or the
// magnitude exceeds MaxAmount.
func ParseFormattedNumber(s string) int64 {
	s = strings.TrimLeft(strings.ReplaceAll(s, ".", ""), " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n > MaxAmount || n < -MaxAmount {
		return 0
	}
	return n
}
