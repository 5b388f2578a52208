package services

import (
	"marine-trading-backend/db/models"
	"marine-trading-backend/pricing"

	"github.com/shopspring/decimal"
)

// RecalcResult carries everything a recompute produces: the normalized,
// renumbered item list, the charge list with credit notes re-derived, and the
// document totals. Totals are derived-only and never persisted.
type RecalcResult struct {
	Items   []models.LineItem   `json:"item_detail_list"`
	Charges []models.InvCharge  `json:"inv_charge_list"`
	Totals  pricing.FinalTotals `json:"final_totals"`
}

// RecalculateDocument is the single server-side recompute path, run on every
// Save and on the stateless recalculate endpoint. It normalizes each row
// (structural rows lose their pricing), re-derives the global side of every
// priced row and charge from its KRW side at the resolved rate, renumbers,
// forces credit-note charges to 10% of sales, and aggregates. KRW is
// authoritative throughout: a client cannot persist a KRW/global pair that
// disagrees at the document's rate, and sending a new rate re-prices the
// global side of the whole document.
func RecalculateDocument(
	items []models.LineItem,
	charges []models.InvCharge,
	discount decimal.Decimal,
	rate decimal.Decimal,
	currencyType models.CurrencyType,
) RecalcResult {
	resolved := pricing.ResolveRate(rate, currencyType)

	normalized := make([]models.LineItem, len(items))
	for i, item := range items {
		normalized[i] = pricing.NormalizeRow(item)
	}
	normalized = pricing.ApplyExchangeRate(normalized, resolved)
	normalized = pricing.RenumberRows(normalized)

	// First pass without charges gives the sales totals credit notes hang on.
	pre := pricing.Aggregate(normalized, nil, discount, currencyType)

	derived := make([]models.InvCharge, len(charges))
	for i, charge := range charges {
		// KRW is authoritative on Save, same as on a rate change.
		derived[i] = pricing.DeriveCharge(charge, pricing.FieldChargePriceKRW, charge.ChargePriceKRW, resolved)
	}
	derived = pricing.ApplyCreditNotes(derived, pre.DiscountedSalesKRW, pre.DiscountedSalesGlobal)

	return RecalcResult{
		Items:   normalized,
		Charges: derived,
		Totals:  pricing.Aggregate(normalized, derived, discount, currencyType),
	}
}
