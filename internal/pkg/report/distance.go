package report

import "strings"

// NearDistanceKm separates local from travelling visitors.
const NearDistanceKm = 50

// IsNear reports whether a distance cell is at most NearDistanceKm.
// Only the leading integer counts ("42.7" is 42). Cells without one,
// like the "-" of foreign entries, are far.
func IsNear(distance string) bool {
	km, ok := leadingInt(distance)
	return ok && km <= NearDistanceKm
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
		if n > 1_000_000 {
			break
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
