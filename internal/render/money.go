package render

import (
	"strconv"
	"strings"
)

// FormatINR groups digits the Indian way: 1234567 -> 12,34,567.
func FormatINR(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := groupIndian(strconv.FormatInt(n, 10))
	if neg {
		return "-" + s
	}
	return s
}

// FormatINRDecimal is FormatINR with two decimal places.
func FormatINRDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	out := groupIndian(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
