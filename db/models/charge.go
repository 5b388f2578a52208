package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditNoteCharge is the charge label with forced derivation: its amount is
// always 10% of the document's total sales amount, overriding manual entry.
const CreditNoteCharge = "CREDIT NOTE"

// InvCharge is an ad-hoc monetary adjustment on a document's totals (freight,
// bank charge, credit note deduction). Charges have an implicit quantity of 1.
type InvCharge struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`

	CustomCharge      string          `gorm:"not null" json:"custom_charge"`
	ChargePriceKRW    decimal.Decimal `gorm:"type:decimal(18,2)" json:"charge_price_krw"`
	ChargePriceGlobal decimal.Decimal `gorm:"type:decimal(18,2)" json:"charge_price_global"`
	ChargeRemark      *string         `gorm:"type:text" json:"charge_remark"`
}

// IsCreditNote reports whether this charge uses the forced 10%-of-sales
// derivation.
func (c *InvCharge) IsCreditNote() bool {
	return c.CustomCharge == CreditNoteCharge
}
