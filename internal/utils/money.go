package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads user-entered money/KM text into a float64.
// Commas (thousand separators), a leading rupee marker and stray spaces are
// stripped. Empty or unparsable text resolves to 0; the ledger treats a typo
// as "no amount", it never blocks the caller.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	if lower := strings.ToLower(s); strings.HasPrefix(lower, "rs") {
		s = strings.TrimPrefix(s[2:], ".")
	}
	replacer := strings.NewReplacer(",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatAmount renders a derived value the way the ledger grid shows it:
// rounded to the nearest integer, zero as "0".
func FormatAmount(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatInt(int64(math.Round(f)), 10)
}

// RoundMoney keeps consistent rounding for derived monetary fields.
func RoundMoney(x float64) float64 {
	return math.Round(x)
}

// FormatRupees renders an amount with the Indian digit grouping used on
// printed reports, e.g. 150000 -> "Rs 1,50,000".
func FormatRupees(f float64) string {
	n := int64(math.Round(f))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + "Rs " + groupIndian(n)
}

// groupIndian applies lakh/crore grouping: last three digits, then pairs.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	tail := str[len(str)-3:]
	var out strings.Builder
	if len(head)%2 == 1 {
		out.WriteByte(head[0])
		out.WriteByte(',')
		head = head[1:]
	}
	for i := 0; i < len(head); i += 2 {
		out.WriteString(head[i : i+2])
		out.WriteByte(',')
	}
	out.WriteString(tail)
	return out.String()
}
