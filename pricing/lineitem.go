package pricing

import (
	"marine-trading-backend/db/models"

	"github.com/shopspring/decimal"
)

// Field names an editable pricing field of a line item. The deriver
// dispatches on which field the user just changed.
type Field string

const (
	FieldQty                 Field = "qty"
	FieldPurchasePriceKRW    Field = "purchase_price_krw"
	FieldPurchasePriceGlobal Field = "purchase_price_global"
	FieldSalesPriceKRW       Field = "sales_price_krw"
	FieldSalesPriceGlobal    Field = "sales_price_global"
	FieldMargin              Field = "margin"
)

// DeriveLineItem applies one field edit to a line item and recomputes every
// dependent field so the KRW and global values of each price never drift
// apart. The returned item is a modified copy; the input is not touched.
//
// Rate is the resolved document exchange rate (see ResolveRate). Edits to a
// purchase price or to the margin re-apply the margin to produce the sales
// prices; edits to a sales price recompute the margin from the purchase price
// on the same currency side, with a zero purchase price yielding a margin of
// 0 rather than a division blow-up.
func DeriveLineItem(item models.LineItem, field Field, value decimal.Decimal, rate decimal.Decimal) models.LineItem {
	if !item.ItemType.IsPriced() {
		ZeroPricing(&item)
		return item
	}

	switch field {
	case FieldQty:
		if value.IsNegative() {
			value = decimal.Zero
		}
		item.Qty = value

	case FieldPurchasePriceGlobal:
		item.PurchasePriceGlobal = Round2(value)
		item.PurchasePriceKRW = RoundKRW(Convert(value, rate, ToLocal))
		applyMargin(&item, rate)

	case FieldPurchasePriceKRW:
		item.PurchasePriceKRW = RoundKRW(value)
		item.PurchasePriceGlobal = Convert(item.PurchasePriceKRW, rate, ToForeign)
		applyMargin(&item, rate)

	case FieldSalesPriceGlobal:
		item.SalesPriceGlobal = Round2(value)
		item.SalesPriceKRW = RoundKRW(Convert(value, rate, ToLocal))
		item.Margin = marginPercent(item.SalesPriceGlobal, item.PurchasePriceGlobal)

	case FieldSalesPriceKRW:
		item.SalesPriceKRW = RoundKRW(value)
		item.SalesPriceGlobal = Convert(item.SalesPriceKRW, rate, ToForeign)
		item.Margin = marginPercent(item.SalesPriceKRW, item.PurchasePriceKRW)

	case FieldMargin:
		item.Margin = Round2(value)
		applyMargin(&item, rate)
	}

	recomputeAmounts(&item)
	return item
}

// applyMargin derives both sales prices from the purchase price and the
// current margin percentage. KRW is computed first, then the global price is
// taken from it so the two sides stay consistent.
func applyMargin(item *models.LineItem, rate decimal.Decimal) {
	factor := decimal.NewFromInt(1).Add(item.Margin.Div(hundred))
	item.SalesPriceKRW = RoundKRW(item.PurchasePriceKRW.Mul(factor))
	item.SalesPriceGlobal = Convert(item.SalesPriceKRW, rate, ToForeign)
}

func marginPercent(sales, purchase decimal.Decimal) decimal.Decimal {
	return ratioPercent(sales.Sub(purchase), purchase)
}

func recomputeAmounts(item *models.LineItem) {
	item.SalesAmountKRW = Round2(item.SalesPriceKRW.Mul(item.Qty))
	item.SalesAmountGlobal = Round2(item.SalesPriceGlobal.Mul(item.Qty))
	item.PurchaseAmountKRW = Round2(item.PurchasePriceKRW.Mul(item.Qty))
	item.PurchaseAmountGlobal = Round2(item.PurchasePriceGlobal.Mul(item.Qty))
}

// ZeroPricing clears every price, amount and margin field. Structural rows
// (MAKER/TYPE/DESC/DASH) and rows carrying a free-text item remark never show
// pricing.
func ZeroPricing(item *models.LineItem) {
	item.Qty = decimal.Zero
	item.PurchasePriceKRW = decimal.Zero
	item.PurchasePriceGlobal = decimal.Zero
	item.SalesPriceKRW = decimal.Zero
	item.SalesPriceGlobal = decimal.Zero
	item.PurchaseAmountKRW = decimal.Zero
	item.PurchaseAmountGlobal = decimal.Zero
	item.SalesAmountKRW = decimal.Zero
	item.SalesAmountGlobal = decimal.Zero
	item.Margin = decimal.Zero
}

// NormalizeRow enforces the structural-row rules on a single row: non-ITEM
// rows and ITEM rows with a non-empty remark carry no pricing, priced rows
// get their amounts recomputed from price and qty.
func NormalizeRow(item models.LineItem) models.LineItem {
	if !item.ItemType.IsPriced() || (item.ItemRemark != nil && *item.ItemRemark != "") {
		ZeroPricing(&item)
		return item
	}
	recomputeAmounts(&item)
	return item
}

// ApplyExchangeRate re-derives every priced row after a document-level rate
// change. KRW prices are authoritative and are never rewritten here; only the
// foreign-currency prices and all four amounts are recomputed.
func ApplyExchangeRate(items []models.LineItem, rate decimal.Decimal) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, item := range items {
		if item.ItemType.IsPriced() {
			item.PurchasePriceGlobal = Convert(item.PurchasePriceKRW, rate, ToForeign)
			item.SalesPriceGlobal = Convert(item.SalesPriceKRW, rate, ToForeign)
			recomputeAmounts(&item)
		}
		out[i] = item
	}
	return out
}

// RenumberRows rewrites the ordering keys after an insert, delete or reorder:
// Position is contiguous and 1-based over all rows, ItemNo counts ITEM rows
// only (structural rows show no number).
func RenumberRows(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	itemNo := 0
	for i, item := range items {
		item.Position = i + 1
		if item.ItemType.IsPriced() {
			itemNo++
			item.ItemNo = itemNo
		} else {
			item.ItemNo = 0
		}
		out[i] = item
	}
	return out
}
