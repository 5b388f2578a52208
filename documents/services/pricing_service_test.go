package services

import (
	"testing"

	"marine-trading-backend/db/models"
	"marine-trading-backend/pricing"

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

func sampleItems(t *testing.T) []models.LineItem {
	t.Helper()
	item := models.LineItem{
		ItemType: models.ItemTypeItem,
		Qty:      dec(t, "2"),
		Margin:   dec(t, "20"),
	}
	item = pricing.DeriveLineItem(item, pricing.FieldPurchasePriceKRW, dec(t, "10000"), dec(t, "1000"))
	return []models.LineItem{
		{ItemType: models.ItemTypeMaker, PartCode: "YANMAR"},
		item,
	}
}

func TestRecalculateDocument(t *testing.T) {
	charges := []models.InvCharge{
		{CustomCharge: "FREIGHT", ChargePriceKRW: dec(t, "1000")},
		{CustomCharge: models.CreditNoteCharge, ChargePriceKRW: dec(t, "5")},
	}

	result := RecalculateDocument(sampleItems(t), charges, dec(t, "10"), dec(t, "1000"), models.CurrencyUSD)

	// Renumbering: structural row keeps position 1 but no item number.
	if result.Items[0].ItemNo != 0 || result.Items[0].Position != 1 {
		t.Errorf("structural row numbering = pos %d, no %d", result.Items[0].Position, result.Items[0].ItemNo)
	}
	if result.Items[1].ItemNo != 1 {
		t.Errorf("item row item_no = %d, want 1", result.Items[1].ItemNo)
	}

	// Freight charge's foreign side is re-derived from KRW at the rate.
	if !result.Charges[0].ChargePriceGlobal.Equal(dec(t, "1")) {
		t.Errorf("freight global = %s, want 1", result.Charges[0].ChargePriceGlobal)
	}

	// Credit note is forced to 10% of discounted sales (24000 * 0.9 = 21600).
	if !result.Charges[1].ChargePriceKRW.Equal(dec(t, "2160")) {
		t.Errorf("credit note krw = %s, want 2160", result.Charges[1].ChargePriceKRW)
	}

	// Final total = 21600 + 1000 + 2160.
	if !result.Totals.TotalSalesAmountKRW.Equal(dec(t, "24760")) {
		t.Errorf("total_sales_amount_krw = %s, want 24760", result.Totals.TotalSalesAmountKRW)
	}
}

func TestRecalculateDocumentFallsBackToDefaultRate(t *testing.T) {
	// No document rate: USD falls back to the 1050 form default.
	item := models.LineItem{ItemType: models.ItemTypeItem, Qty: dec(t, "1")}
	item = pricing.DeriveLineItem(item, pricing.FieldPurchasePriceKRW, dec(t, "10500"), dec(t, "1050"))
	charges := []models.InvCharge{{CustomCharge: "FREIGHT", ChargePriceKRW: dec(t, "1050")}}

	result := RecalculateDocument([]models.LineItem{item}, charges, decimal.Zero, decimal.Zero, models.CurrencyUSD)

	if !result.Charges[0].ChargePriceGlobal.Equal(dec(t, "1")) {
		t.Errorf("charge global = %s, want 1 at default USD rate", result.Charges[0].ChargePriceGlobal)
	}
}

func TestRecalculateDocumentRederivesGlobalFromKRW(t *testing.T) {
	// A client sending a global price that disagrees with the KRW side must
	// not get it persisted; the global side is always recomputed at the rate.
	item := models.LineItem{
		ItemType:            models.ItemTypeItem,
		Qty:                 dec(t, "2"),
		PurchasePriceKRW:    dec(t, "10000"),
		PurchasePriceGlobal: dec(t, "88"),
		SalesPriceKRW:       dec(t, "12000"),
		SalesPriceGlobal:    dec(t, "99"),
	}

	result := RecalculateDocument([]models.LineItem{item}, nil, decimal.Zero, dec(t, "1000"), models.CurrencyUSD)

	got := result.Items[0]
	if !got.SalesPriceKRW.Equal(dec(t, "12000")) || !got.PurchasePriceKRW.Equal(dec(t, "10000")) {
		t.Fatalf("KRW prices rewritten: purchase %s, sales %s", got.PurchasePriceKRW, got.SalesPriceKRW)
	}
	if !got.SalesPriceGlobal.Equal(dec(t, "12")) {
		t.Errorf("sales_price_global = %s, want 12 at rate 1000", got.SalesPriceGlobal)
	}
	if !got.PurchasePriceGlobal.Equal(dec(t, "10")) {
		t.Errorf("purchase_price_global = %s, want 10 at rate 1000", got.PurchasePriceGlobal)
	}
	if !result.Totals.TotalSalesAmountGlobal.Equal(dec(t, "24")) {
		t.Errorf("total_sales_amount_global = %s, want 24", result.Totals.TotalSalesAmountGlobal)
	}
}

func TestRecalculateDocumentAppliesNewRate(t *testing.T) {
	// Saving with a changed rate re-prices the global side; KRW stays put.
	result := RecalculateDocument(sampleItems(t), nil, decimal.Zero, dec(t, "1200"), models.CurrencyUSD)

	item := result.Items[1]
	if !item.SalesPriceKRW.Equal(dec(t, "12000")) {
		t.Errorf("sales_price_krw = %s, want 12000 after rate change", item.SalesPriceKRW)
	}
	if !item.SalesPriceGlobal.Equal(dec(t, "10")) {
		t.Errorf("sales_price_global = %s, want 10 at rate 1200", item.SalesPriceGlobal)
	}
}
