package pricing

import (
	"marine-trading-backend/db/models"

	"github.com/shopspring/decimal"
)

// Direction selects which side of a conversion is being produced. KRW is
// always the local currency; the document's settlement currency is "global".
type Direction int

const (
	ToLocal   Direction = iota // foreign -> KRW
	ToForeign                  // KRW -> foreign
)

var (
	hundred = decimal.NewFromInt(100)
	ten     = decimal.NewFromInt(10)
)

// FormDefaultRates is the fallback rate table used when a document carries no
// exchange rate of its own (form defaults on the editing screens).
//
// ProfitReferenceRates is a second, deliberately different table: profit and
// profit rate are always reported against these fixed internal reference
// rates, regardless of the rate the document was quoted at. The two tables
// have never been reconciled by the business; do not unify them.
var FormDefaultRates = map[models.CurrencyType]decimal.Decimal{
	models.CurrencyUSD: decimal.NewFromInt(1050),
	models.CurrencyEUR: decimal.NewFromInt(1150),
	models.CurrencyINR: decimal.NewFromInt(14),
}

var ProfitReferenceRates = map[models.CurrencyType]decimal.Decimal{
	models.CurrencyUSD: decimal.NewFromInt(1400),
	models.CurrencyEUR: decimal.NewFromInt(1500),
	models.CurrencyINR: decimal.NewFromInt(16),
}

// Round2 rounds a monetary value half-up to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundKRW rounds a KRW value to the nearest whole won.
func RoundKRW(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Convert converts an amount between KRW and the foreign currency using a
// single scalar rate (KRW per one unit of foreign currency). The result is
// rounded to two decimal places. A non-positive rate yields zero rather than
// a panic; callers are expected to resolve a usable rate first.
func Convert(amount, rate decimal.Decimal, direction Direction) decimal.Decimal {
	if direction == ToLocal {
		return Round2(amount.Mul(rate))
	}
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return Round2(amount.Div(rate))
}

// ResolveRate returns the document's own rate when it is positive, otherwise
// the form default for its currency type. JPY has no default in either table,
// so an unset JPY rate resolves to zero and conversions yield zero.
func ResolveRate(rate decimal.Decimal, currencyType models.CurrencyType) decimal.Decimal {
	if rate.IsPositive() {
		return rate
	}
	return FormDefaultRates[currencyType]
}

// ProfitReferenceRate returns the fixed internal reference rate used for
// profit display.
func ProfitReferenceRate(currencyType models.CurrencyType) decimal.Decimal {
	return ProfitReferenceRates[currencyType]
}
