// Package bsdate validates and compares Bikram Sambat (BS) calendar date
// strings. Dates are treated as opaque ordering keys of the shape YYYY-MM-DD;
// no conversion to or from the Gregorian calendar happens here.
package bsdate

import "strconv"

// Valid reports whether s has the YYYY-MM-DD shape with a plausible BS month
// and day. BS months can run to 32 days, so the day range is 1..32.
func Valid(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil || year < 1900 || year > 2300 {
		return false
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil || day < 1 || day > 32 {
		return false
	}
	return true
}

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
// Zero-padded YYYY-MM-DD strings order lexicographically.
func Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
