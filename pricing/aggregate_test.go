package pricing

import (
	"testing"

	"marine-trading-backend/db/models"

	"github.com/shopspring/decimal"
)

// orderItems builds the worked example used across the aggregation tests:
// one ITEM row, purchase 10,000 KRW, qty 2, margin 20%, rate 1000.
func orderItems(t *testing.T) []models.LineItem {
	t.Helper()
	item := pricedItem(t, "2", "0", "20")
	item = DeriveLineItem(item, FieldPurchasePriceKRW, dec(t, "10000"), dec(t, "1000"))
	return []models.LineItem{item}
}

func TestAggregateEndToEnd(t *testing.T) {
	totals := Aggregate(orderItems(t), nil, decimal.Zero, models.CurrencyUSD)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"total_sales_amount_krw", totals.TotalSalesAmountKRW, "24000"},
		{"sales_amount_krw", totals.SalesAmountKRW, "24000"},
		{"purchase_amount_krw", totals.PurchaseAmountKRW, "20000"},
		{"margin_amount_krw", totals.MarginAmountKRW, "4000"},
		{"sales_margin_rate", totals.SalesMarginRate, "16.67"},
		{"purchase_margin_rate", totals.PurchaseMarginRate, "20"},
		// Profit runs against the fixed USD reference rate (1400), not the
		// document rate: 24 * 1400 - 20000.
		{"profit", totals.Profit, "13600"},
		{"profit_rate", totals.ProfitRate, "40.48"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(t, c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestAggregateIgnoresStructuralRows(t *testing.T) {
	items := orderItems(t)
	withStructural := append([]models.LineItem{
		{ItemType: models.ItemTypeMaker},
		{ItemType: models.ItemTypeType},
	}, items...)
	withStructural = append(withStructural, models.LineItem{ItemType: models.ItemTypeDesc})

	plain := Aggregate(items, nil, decimal.Zero, models.CurrencyUSD)
	mixed := Aggregate(withStructural, nil, decimal.Zero, models.CurrencyUSD)

	if !plain.TotalSalesAmountKRW.Equal(mixed.TotalSalesAmountKRW) ||
		!plain.PurchaseAmountGlobal.Equal(mixed.PurchaseAmountGlobal) ||
		!plain.Profit.Equal(mixed.Profit) {
		t.Errorf("structural rows changed totals: %+v vs %+v", plain, mixed)
	}
}

func TestAggregateDiscountAndCharge(t *testing.T) {
	charges := []models.InvCharge{
		{CustomCharge: "BANK CHARGE", ChargePriceKRW: dec(t, "1000"), ChargePriceGlobal: dec(t, "1")},
	}

	totals := Aggregate(orderItems(t), charges, dec(t, "10"), models.CurrencyUSD)

	if !totals.DiscountedSalesKRW.Equal(dec(t, "21600")) {
		t.Errorf("discounted_sales_krw = %s, want 21600", totals.DiscountedSalesKRW)
	}
	if !totals.TotalSalesAmountKRW.Equal(dec(t, "22600")) {
		t.Errorf("total_sales_amount_krw = %s, want 22600", totals.TotalSalesAmountKRW)
	}
	// Margin stays pre-discount, pre-charge.
	if !totals.MarginAmountKRW.Equal(dec(t, "4000")) {
		t.Errorf("margin_amount_krw = %s, want 4000", totals.MarginAmountKRW)
	}
}

func TestAggregateZeroGuards(t *testing.T) {
	// Empty document: every rate must be 0, never a division error.
	totals := Aggregate(nil, nil, decimal.Zero, models.CurrencyUSD)
	for name, v := range map[string]decimal.Decimal{
		"sales_margin_rate":    totals.SalesMarginRate,
		"purchase_margin_rate": totals.PurchaseMarginRate,
		"profit_rate":          totals.ProfitRate,
	} {
		if !v.IsZero() {
			t.Errorf("%s = %s, want 0 on empty document", name, v)
		}
	}

	// Sales with no purchase side: purchase margin rate guards to 0.
	item := pricedItem(t, "1", "0", "0")
	item = DeriveLineItem(item, FieldSalesPriceKRW, dec(t, "5000"), dec(t, "1000"))
	totals = Aggregate([]models.LineItem{item}, nil, decimal.Zero, models.CurrencyUSD)
	if !totals.PurchaseMarginRate.IsZero() {
		t.Errorf("purchase_margin_rate = %s, want 0 with zero purchase amount", totals.PurchaseMarginRate)
	}
	if !totals.SalesMarginRate.Equal(dec(t, "100")) {
		t.Errorf("sales_margin_rate = %s, want 100", totals.SalesMarginRate)
	}
}

func TestApplyCreditNotes(t *testing.T) {
	charges := []models.InvCharge{
		{CustomCharge: "FREIGHT", ChargePriceKRW: dec(t, "5000"), ChargePriceGlobal: dec(t, "5")},
		// Manual entry on a credit note must be overridden.
		{CustomCharge: models.CreditNoteCharge, ChargePriceKRW: dec(t, "999"), ChargePriceGlobal: dec(t, "9.99")},
	}

	out := ApplyCreditNotes(charges, dec(t, "1000000"), dec(t, "952.38"))

	if !out[0].ChargePriceKRW.Equal(dec(t, "5000")) {
		t.Errorf("plain charge rewritten: %s", out[0].ChargePriceKRW)
	}
	if !out[1].ChargePriceKRW.Equal(dec(t, "100000")) {
		t.Errorf("credit note krw = %s, want 100000", out[1].ChargePriceKRW)
	}
	if !out[1].ChargePriceGlobal.Equal(dec(t, "95.24")) {
		t.Errorf("credit note global = %s, want 95.24", out[1].ChargePriceGlobal)
	}
}

func TestDeriveCharge(t *testing.T) {
	rate := dec(t, "1000")

	charge := models.InvCharge{CustomCharge: "FREIGHT"}
	charge = DeriveCharge(charge, FieldChargePriceKRW, dec(t, "15000"), rate)
	if !charge.ChargePriceGlobal.Equal(dec(t, "15")) {
		t.Errorf("charge_price_global = %s, want 15", charge.ChargePriceGlobal)
	}

	charge = DeriveCharge(charge, FieldChargePriceGlobal, dec(t, "7.5"), rate)
	if !charge.ChargePriceKRW.Equal(dec(t, "7500")) {
		t.Errorf("charge_price_krw = %s, want 7500", charge.ChargePriceKRW)
	}

	// Credit notes ignore manual edits; only ApplyCreditNotes sets them.
	note := models.InvCharge{CustomCharge: models.CreditNoteCharge, ChargePriceKRW: dec(t, "100000")}
	note = DeriveCharge(note, FieldChargePriceKRW, dec(t, "1"), rate)
	if !note.ChargePriceKRW.Equal(dec(t, "100000")) {
		t.Errorf("credit note accepted manual edit: %s", note.ChargePriceKRW)
	}
}
