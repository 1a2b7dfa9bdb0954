package view

import (
	"math"
	"strconv"
)

// FormatCLP renders an amount the way the reports print money: sign, dollar
// symbol, rounded to whole pesos with dots as thousands separators.
func FormatCLP(n float64) string {
	sign := ""
	if n < 0 {
		sign = "-"
	}
	abs := strconv.FormatInt(int64(math.Abs(math.Round(n))), 10)

	var out []byte
	for i, d := range []byte(abs) {
		if i > 0 && (len(abs)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return sign + "$" + string(out)
}
