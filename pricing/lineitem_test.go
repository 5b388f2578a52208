package pricing

import (
	"testing"

	"marine-trading-backend/db/models"

	"github.com/shopspring/decimal"
)

func pricedItem(t *testing.T, qty, purchaseKRW, margin string) models.LineItem {
	t.Helper()
	return models.LineItem{
		ItemType:         models.ItemTypeItem,
		Qty:              dec(t, qty),
		PurchasePriceKRW: dec(t, purchaseKRW),
		Margin:           dec(t, margin),
	}
}

func TestDeriveLineItemEndToEnd(t *testing.T) {
	// purchase 10,000 KRW, qty 2, margin 20%, rate 1000
	item := pricedItem(t, "2", "0", "20")
	rate := dec(t, "1000")

	item = DeriveLineItem(item, FieldPurchasePriceKRW, dec(t, "10000"), rate)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"purchase_price_global", item.PurchasePriceGlobal, "10"},
		{"sales_price_krw", item.SalesPriceKRW, "12000"},
		{"sales_price_global", item.SalesPriceGlobal, "12"},
		{"sales_amount_krw", item.SalesAmountKRW, "24000"},
		{"sales_amount_global", item.SalesAmountGlobal, "24"},
		{"purchase_amount_krw", item.PurchaseAmountKRW, "20000"},
		{"purchase_amount_global", item.PurchaseAmountGlobal, "20"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(t, c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestDeriveLineItemMarginInvariant(t *testing.T) {
	// After any single-field edit, sales_price_krw must stay within 1 KRW of
	// purchase_price_krw * (1 + margin/100).
	rate := dec(t, "1000")
	oneKRW := decimal.NewFromInt(1)

	tests := []struct {
		name  string
		field Field
		value string
	}{
		{"edit purchase krw", FieldPurchasePriceKRW, "15000"},
		{"edit purchase global", FieldPurchasePriceGlobal, "15"},
		{"edit sales krw", FieldSalesPriceKRW, "13000"},
		{"edit sales global", FieldSalesPriceGlobal, "13"},
		{"edit margin", FieldMargin, "35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := pricedItem(t, "3", "10000", "20")
			item = DeriveLineItem(item, FieldPurchasePriceKRW, dec(t, "10000"), rate)
			item = DeriveLineItem(item, tt.field, dec(t, tt.value), rate)

			factor := decimal.NewFromInt(1).Add(item.Margin.Div(decimal.NewFromInt(100)))
			expected := RoundKRW(item.PurchasePriceKRW.Mul(factor))
			diff := item.SalesPriceKRW.Sub(expected).Abs()
			if diff.GreaterThan(oneKRW) {
				t.Errorf("sales_price_krw %s deviates from %s by %s (margin %s, purchase %s)",
					item.SalesPriceKRW, expected, diff, item.Margin, item.PurchasePriceKRW)
			}
		})
	}
}

func TestDeriveLineItemZeroPurchaseGuard(t *testing.T) {
	// A sales edit on a row with no purchase price must yield margin 0, not a
	// division blow-up, and the amounts must still derive cleanly.
	item := pricedItem(t, "2", "0", "0")
	item = DeriveLineItem(item, FieldSalesPriceGlobal, dec(t, "50"), dec(t, "1000"))

	if !item.Margin.IsZero() {
		t.Errorf("margin = %s, want 0 for zero purchase price", item.Margin)
	}
	if !item.SalesPriceKRW.Equal(dec(t, "50000")) {
		t.Errorf("sales_price_krw = %s, want 50000", item.SalesPriceKRW)
	}
	if !item.SalesAmountKRW.Equal(dec(t, "100000")) {
		t.Errorf("sales_amount_krw = %s, want 100000", item.SalesAmountKRW)
	}
}

func TestDeriveLineItemAmountDerivation(t *testing.T) {
	// All four amounts are always round2(price * qty).
	rate := dec(t, "1150")
	item := pricedItem(t, "7", "0", "12.5")
	item = DeriveLineItem(item, FieldPurchasePriceKRW, dec(t, "3333"), rate)

	pairs := []struct {
		name   string
		price  decimal.Decimal
		amount decimal.Decimal
	}{
		{"sales krw", item.SalesPriceKRW, item.SalesAmountKRW},
		{"sales global", item.SalesPriceGlobal, item.SalesAmountGlobal},
		{"purchase krw", item.PurchasePriceKRW, item.PurchaseAmountKRW},
		{"purchase global", item.PurchasePriceGlobal, item.PurchaseAmountGlobal},
	}
	for _, p := range pairs {
		want := Round2(p.price.Mul(item.Qty))
		if !p.amount.Equal(want) {
			t.Errorf("%s amount = %s, want %s", p.name, p.amount, want)
		}
	}
}

func TestDeriveLineItemNegativeQtyCoerced(t *testing.T) {
	item := pricedItem(t, "2", "10000", "20")
	item = DeriveLineItem(item, FieldQty, dec(t, "-3"), dec(t, "1000"))
	if !item.Qty.IsZero() {
		t.Errorf("qty = %s, want 0 after negative input", item.Qty)
	}
}

func TestNormalizeRowZeroesStructuralRows(t *testing.T) {
	remark := "see attached drawing"
	tests := []struct {
		name string
		item models.LineItem
	}{
		{"maker row", models.LineItem{ItemType: models.ItemTypeMaker, SalesPriceKRW: decimal.NewFromInt(5000), Qty: decimal.NewFromInt(1)}},
		{"desc row", models.LineItem{ItemType: models.ItemTypeDesc, PurchaseAmountKRW: decimal.NewFromInt(7000)}},
		{"remark on item row", models.LineItem{ItemType: models.ItemTypeItem, ItemRemark: &remark, SalesPriceKRW: decimal.NewFromInt(5000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRow(tt.item)
			for name, v := range map[string]decimal.Decimal{
				"qty":                 got.Qty,
				"sales_price_krw":     got.SalesPriceKRW,
				"sales_amount_krw":    got.SalesAmountKRW,
				"purchase_amount_krw": got.PurchaseAmountKRW,
				"margin":              got.Margin,
			} {
				if !v.IsZero() {
					t.Errorf("%s = %s, want 0 on non-priced row", name, v)
				}
			}
		})
	}
}

func TestApplyExchangeRateKeepsKRWAuthoritative(t *testing.T) {
	rate := dec(t, "1000")
	item := pricedItem(t, "2", "0", "20")
	item = DeriveLineItem(item, FieldPurchasePriceKRW, dec(t, "10000"), rate)

	maker := models.LineItem{ItemType: models.ItemTypeMaker}
	items := ApplyExchangeRate([]models.LineItem{item, maker}, dec(t, "1200"))

	got := items[0]
	if !got.PurchasePriceKRW.Equal(dec(t, "10000")) || !got.SalesPriceKRW.Equal(dec(t, "12000")) {
		t.Fatalf("KRW prices rewritten by rate change: purchase %s, sales %s", got.PurchasePriceKRW, got.SalesPriceKRW)
	}
	if !got.SalesPriceGlobal.Equal(dec(t, "10")) {
		t.Errorf("sales_price_global = %s, want 10 at rate 1200", got.SalesPriceGlobal)
	}
	if !got.PurchasePriceGlobal.Equal(dec(t, "8.33")) {
		t.Errorf("purchase_price_global = %s, want 8.33 at rate 1200", got.PurchasePriceGlobal)
	}
	if !got.SalesAmountGlobal.Equal(dec(t, "20")) {
		t.Errorf("sales_amount_global = %s, want 20", got.SalesAmountGlobal)
	}
}

func TestRenumberRows(t *testing.T) {
	items := []models.LineItem{
		{ItemType: models.ItemTypeMaker, Position: 9},
		{ItemType: models.ItemTypeItem, Position: 4},
		{ItemType: models.ItemTypeDesc, Position: 2},
		{ItemType: models.ItemTypeItem, Position: 7},
	}

	out := RenumberRows(items)

	wantPositions := []int{1, 2, 3, 4}
	wantItemNos := []int{0, 1, 0, 2}
	for i := range out {
		if out[i].Position != wantPositions[i] {
			t.Errorf("row %d position = %d, want %d", i, out[i].Position, wantPositions[i])
		}
		if out[i].ItemNo != wantItemNos[i] {
			t.Errorf("row %d item_no = %d, want %d", i, out[i].ItemNo, wantItemNos[i])
		}
	}
}
