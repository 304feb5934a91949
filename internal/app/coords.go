package app

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// parseCoord reads a coordinate the way C's atol does: leading whitespace,
// an optional sign, then as many decimal digits as follow. Trailing junk is
// ignored and input without digits yields 0. Out-of-range values saturate.
func parseCoord(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if neg {
		return -n
	}
	return n
}
