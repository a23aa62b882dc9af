package domain

import (
	"fmt"
	"strconv"
)

// requestNumberWidth is the minimum width of a request number. Numbers
// beyond 9999 grow naturally.
const requestNumberWidth = 4

// FormatRequestNumber renders n zero-padded to at least four digits.
func FormatRequestNumber(n int64) string {
	return fmt.Sprintf("%0*d", requestNumberWidth, n)
}

// ParseRequestNumber parses a stored request number. Empty, signed, or
// non-decimal values are rejected rather than treated as zero.
func ParseRequestNumber(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("parse request number: empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("parse request number %q: not a decimal", s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse request number %q: %w", s, err)
	}
	return n, nil
}

// CompareRequestNumbers orders request numbers numerically. Both inputs are
// assumed to be canonical (no extra leading zeros beyond the padding).
func CompareRequestNumbers(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
