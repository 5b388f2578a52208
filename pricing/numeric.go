package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces free-form numeric input (query params, spreadsheet
// cells, hand-typed fields) to a decimal. Anything that does not parse is 0:
// malformed input must never reach the derivation functions as NaN/Inf would
// in a float pipeline.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ratioPercent is the uniformly zero-guarded percentage n/d*100, rounded to
// two decimal places. The guard applies at every call site, not just some.
func ratioPercent(n, d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return Round2(n.Div(d).Mul(hundred))
}
