package pricing

import (
	"marine-trading-backend/db/models"

	"github.com/shopspring/decimal"
)

// FinalTotals is the derived, read-only document-level aggregate. It is
// recomputed from the line items and charges on every change and never
// persisted; only its inputs are.
type FinalTotals struct {
	// Plain sums over ITEM rows, before discount and charges.
	SalesAmountKRW       decimal.Decimal `json:"sales_amount_krw"`
	SalesAmountGlobal    decimal.Decimal `json:"sales_amount_global"`
	PurchaseAmountKRW    decimal.Decimal `json:"purchase_amount_krw"`
	PurchaseAmountGlobal decimal.Decimal `json:"purchase_amount_global"`

	// Sales after the document discount, before charges.
	DiscountedSalesKRW    decimal.Decimal `json:"discounted_sales_krw"`
	DiscountedSalesGlobal decimal.Decimal `json:"discounted_sales_global"`

	// Final totals: discounted sales plus all charge lines.
	TotalSalesAmountKRW    decimal.Decimal `json:"total_sales_amount_krw"`
	TotalSalesAmountGlobal decimal.Decimal `json:"total_sales_amount_global"`

	// Margin is pre-discount and pre-charge, distinct from the final totals.
	MarginAmountKRW    decimal.Decimal `json:"margin_amount_krw"`
	MarginAmountGlobal decimal.Decimal `json:"margin_amount_global"`

	SalesMarginRate    decimal.Decimal `json:"sales_margin_rate"`
	PurchaseMarginRate decimal.Decimal `json:"purchase_margin_rate"`

	// Profit is reported against the fixed internal reference rate for the
	// document's currency, not the document's own quoted rate.
	Profit     decimal.Decimal `json:"profit"`
	ProfitRate decimal.Decimal `json:"profit_rate"`
}

// Aggregate rolls per-line amounts up into document totals. Only ITEM rows
// participate; structural rows contribute nothing whether present or not.
// Charges are taken at face value (run ApplyCreditNotes first when the charge
// list may contain credit-note lines).
func Aggregate(items []models.LineItem, charges []models.InvCharge, discountPercent decimal.Decimal, currencyType models.CurrencyType) FinalTotals {
	var t FinalTotals

	for _, item := range items {
		if !item.ItemType.IsPriced() {
			continue
		}
		t.SalesAmountKRW = t.SalesAmountKRW.Add(item.SalesAmountKRW)
		t.SalesAmountGlobal = t.SalesAmountGlobal.Add(item.SalesAmountGlobal)
		t.PurchaseAmountKRW = t.PurchaseAmountKRW.Add(item.PurchaseAmountKRW)
		t.PurchaseAmountGlobal = t.PurchaseAmountGlobal.Add(item.PurchaseAmountGlobal)
	}

	t.DiscountedSalesKRW = t.SalesAmountKRW
	t.DiscountedSalesGlobal = t.SalesAmountGlobal
	if !discountPercent.IsZero() {
		keep := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
		t.DiscountedSalesKRW = Round2(t.SalesAmountKRW.Mul(keep))
		t.DiscountedSalesGlobal = Round2(t.SalesAmountGlobal.Mul(keep))
	}

	t.TotalSalesAmountKRW = t.DiscountedSalesKRW
	t.TotalSalesAmountGlobal = t.DiscountedSalesGlobal
	for _, charge := range charges {
		t.TotalSalesAmountKRW = t.TotalSalesAmountKRW.Add(charge.ChargePriceKRW)
		t.TotalSalesAmountGlobal = t.TotalSalesAmountGlobal.Add(charge.ChargePriceGlobal)
	}

	t.MarginAmountKRW = t.SalesAmountKRW.Sub(t.PurchaseAmountKRW)
	t.MarginAmountGlobal = t.SalesAmountGlobal.Sub(t.PurchaseAmountGlobal)
	t.SalesMarginRate = ratioPercent(t.MarginAmountKRW, t.SalesAmountKRW)
	t.PurchaseMarginRate = ratioPercent(t.MarginAmountKRW, t.PurchaseAmountKRW)

	reference := ProfitReferenceRate(currencyType)
	referenceSales := t.SalesAmountGlobal.Mul(reference)
	t.Profit = Round2(referenceSales.Sub(t.PurchaseAmountKRW))
	t.ProfitRate = ratioPercent(t.Profit, referenceSales)

	return t
}

// DeriveCharge applies an edit to one currency side of a charge line and
// recomputes the other side through the converter. Credit-note lines ignore
// manual edits entirely; their amounts are forced by ApplyCreditNotes.
func DeriveCharge(charge models.InvCharge, field Field, value decimal.Decimal, rate decimal.Decimal) models.InvCharge {
	if charge.IsCreditNote() {
		return charge
	}
	switch field {
	case FieldChargePriceKRW:
		charge.ChargePriceKRW = RoundKRW(value)
		charge.ChargePriceGlobal = Convert(charge.ChargePriceKRW, rate, ToForeign)
	case FieldChargePriceGlobal:
		charge.ChargePriceGlobal = Round2(value)
		charge.ChargePriceKRW = RoundKRW(Convert(value, rate, ToLocal))
	}
	return charge
}

const (
	FieldChargePriceKRW    Field = "charge_price_krw"
	FieldChargePriceGlobal Field = "charge_price_global"
)

// ApplyCreditNotes forces every "CREDIT NOTE" charge to 10% of the document's
// sales totals (KRW to the nearest won, global to two decimals), overriding
// whatever was entered by hand. Callers obtain the sales totals from a first
// Aggregate pass over the items (DiscountedSales*), then aggregate again with
// the returned charge list.
func ApplyCreditNotes(charges []models.InvCharge, salesKRW, salesGlobal decimal.Decimal) []models.InvCharge {
	out := make([]models.InvCharge, len(charges))
	for i, charge := range charges {
		if charge.IsCreditNote() {
			charge.ChargePriceKRW = RoundKRW(salesKRW.Div(ten))
			charge.ChargePriceGlobal = Round2(salesGlobal.Div(ten))
		}
		out[i] = charge
	}
	return out
}
