package domain

import (
	"fmt"
	"math"
	"strconv"
)

// FormatUSD renders a monetary amount as whole-dollar currency with
// thousands separators, e.g. 160000 -> "$160,000", -10000 -> "-$10,000".
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0"
	}
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return fmt.Sprintf("%s$%s", sign, string(out))
}
