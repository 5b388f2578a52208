package pricing

import (
	"testing"

	"marine-trading-backend/db/models"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		rate      string
		direction Direction
		want      string
	}{
		{"to local", "12.5", "1000", ToLocal, "12500"},
		{"to local rounds half up", "1.2345", "10", ToLocal, "12.35"},
		{"to foreign", "12000", "1000", ToForeign, "12"},
		{"to foreign rounds", "10000", "1150", ToForeign, "8.7"},
		{"zero rate to foreign guarded", "12000", "0", ToForeign, "0"},
		{"negative rate to foreign guarded", "12000", "-5", ToForeign, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(dec(t, tt.amount), dec(t, tt.rate), tt.direction)
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("Convert(%s, %s) = %s, want %s", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	// toLocal(toForeign(x, rate), rate) must land within 0.01 of x.
	tolerance := dec(t, "0.01")
	tests := []struct {
		amount string
		rate   string
	}{
		{"10000", "1000"},
		{"12345", "1050"},
		{"999999", "1150"},
		{"7", "14"},
		{"250000", "1400"},
	}

	for _, tt := range tests {
		amount := dec(t, tt.amount)
		rate := dec(t, tt.rate)
		back := Convert(Convert(amount, rate, ToForeign), rate, ToLocal)
		diff := back.Sub(amount).Abs()
		// One cent of the foreign currency can be worth more than 0.01 KRW,
		// so compare against the rate-scaled tolerance.
		limit := tolerance.Mul(rate)
		if diff.GreaterThan(limit) {
			t.Errorf("round trip of %s at rate %s drifted by %s (limit %s)", tt.amount, tt.rate, diff, limit)
		}
	}
}

func TestResolveRate(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		currency models.CurrencyType
		want     string
	}{
		{"document rate wins", "1325.5", models.CurrencyUSD, "1325.5"},
		{"usd fallback", "0", models.CurrencyUSD, "1050"},
		{"eur fallback", "0", models.CurrencyEUR, "1150"},
		{"inr fallback", "0", models.CurrencyINR, "14"},
		{"jpy has no default", "0", models.CurrencyJPY, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRate(dec(t, tt.rate), tt.currency)
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("ResolveRate(%s, %s) = %s, want %s", tt.rate, tt.currency, got, tt.want)
			}
		})
	}
}

func TestDefaultRateTablesStayDistinct(t *testing.T) {
	// The form-default and profit-reference tables are separate business
	// constants; a refactor must not collapse them into one.
	for _, currency := range []models.CurrencyType{models.CurrencyUSD, models.CurrencyEUR, models.CurrencyINR} {
		if FormDefaultRates[currency].Equal(ProfitReferenceRates[currency]) {
			t.Errorf("form default and profit reference rates for %s are identical", currency)
		}
	}
	if !ProfitReferenceRate(models.CurrencyUSD).Equal(dec(t, "1400")) {
		t.Errorf("USD profit reference rate = %s, want 1400", ProfitReferenceRate(models.CurrencyUSD))
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{" 1,234.56 ", "1234.56"},
		{"-42", "-42"},
		{"", "0"},
		{"abc", "0"},
		{"12..5", "0"},
		{"NaN", "0"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.in)
		if !got.Equal(dec(t, tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
