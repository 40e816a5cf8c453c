// Package pricing holds the price display formatting and the derived
// price rule used by the flight scheduling forms.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a price with thousands separators and no forced decimal
// places. Zero, negative and non-finite values render as an empty string so
// the input placeholder stays visible.
func Format(v float64) string {
	if !(v > 0) || math.IsInf(v, 0) {
		return ""
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	return addThousandsSeparator(intPart, ",") + fracPart
}

// Parse strips everything except digits and periods and parses the rest as
// a float. A second period ends the number, so "1.2.3" parses as 1.2 —
// only the leading numeric run is authoritative. Empty or non-numeric
// input yields 0.
func Parse(s string) float64 {
	var b strings.Builder
	seenPeriod := false
loop:
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenPeriod {
				break loop
			}
			seenPeriod = true
			b.WriteByte('.')
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Derive computes the suggested flight price from the aircraft hourly rate
// and the operator-typed duration. ok is false when either input is absent
// or unusable; callers then leave the existing price untouched.
func Derive(hourlyRate float64, duration string) (price float64, ok bool) {
	if !(hourlyRate > 0) || math.IsInf(hourlyRate, 0) {
		return 0, false
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(duration), 64)
	if err != nil || !(d > 0) || math.IsInf(d, 0) {
		return 0, false
	}

	price = hourlyRate * d
	if !(price > 0) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
