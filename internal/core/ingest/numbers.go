package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseCLP converts a raw cell value into a CLP amount. Spreadsheet cells
// arrive either as already-typed numbers or as locale-formatted text like
// "$1.234.567": dots are thousands separators, the comma is the decimal
// separator and a currency symbol may prefix the value. Anything empty,
// unparseable or non-finite maps to 0; a single bad cell must never abort a
// load.
//
// Accounting parentheses notation is not supported: "(1.000)" keeps its
// parentheses after symbol stripping and parses to 0.
func ParseCLP(cell any) float64 {
	switch v := cell.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseCLPString(v)
	default:
		return parseCLPString(fmt.Sprint(cell))
	}
}

func parseCLPString(val string) float64 {
	s := strings.TrimSpace(val)
	if s == "" || s == "$" {
		return 0
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.Join(strings.Fields(s), "")

	// thousands dots out, decimal comma in
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
