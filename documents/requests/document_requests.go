package requests

import (
	"errors"
	"fmt"

	"marine-trading-backend/db/models"
	"marine-trading-backend/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DocumentEditRequest is the wholesale Save payload: the edited header plus
// the full item and charge lists. The server re-derives pricing and
// renumbering before anything is persisted.
type DocumentEditRequest struct {
	DocumentType models.DocumentType `json:"document_type"`
	RefNumber    string              `json:"ref_number"`
	RefSubject   string              `json:"ref_subject"`
	Remark       *string             `json:"remark"`

	CurrencyType models.CurrencyType `json:"currency_type"`
	Currency     decimal.Decimal     `json:"currency"`
	Discount     decimal.Decimal     `json:"discount"`

	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	SupplierID *uuid.UUID `json:"supplier_id,omitempty"`
	VesselID   *uuid.UUID `json:"vessel_id,omitempty"`

	ExtraInfo datatypes.JSON `json:"extra_info,omitempty"`

	ItemDetailList []models.LineItem  `json:"item_detail_list"`
	InvChargeList  []models.InvCharge `json:"inv_charge_list"`

	CreatedBy string `json:"created_by"`
}

var validDocumentTypes = map[models.DocumentType]bool{
	models.DocumentInquiry:   true,
	models.DocumentOffer:     true,
	models.DocumentOrder:     true,
	models.DocumentInvoice:   true,
	models.DocumentLogistics: true,
}

var validCurrencyTypes = map[models.CurrencyType]bool{
	models.CurrencyUSD: true,
	models.CurrencyEUR: true,
	models.CurrencyINR: true,
	models.CurrencyJPY: true,
}

func (r *DocumentEditRequest) Validate() error {
	if !validDocumentTypes[r.DocumentType] {
		return fmt.Errorf("unknown document type %q", r.DocumentType)
	}
	if r.RefNumber == "" {
		return errors.New("ref_number is required")
	}
	if !validCurrencyTypes[r.CurrencyType] {
		return fmt.Errorf("unknown currency type %q", r.CurrencyType)
	}
	if r.Currency.IsNegative() {
		return errors.New("currency rate must not be negative")
	}
	if r.Discount.IsNegative() || r.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("discount must be between 0 and 100")
	}
	if r.CreatedBy == "" {
		return errors.New("created_by is required")
	}
	return nil
}

// DeriveItemRequest is the stateless per-keystroke derivation call: one line
// item, the field the user just edited, and its new value.
type DeriveItemRequest struct {
	Item         models.LineItem     `json:"item"`
	EditedField  pricing.Field       `json:"edited_field"`
	NewValue     decimal.Decimal     `json:"new_value"`
	Currency     decimal.Decimal     `json:"currency"`
	CurrencyType models.CurrencyType `json:"currency_type"`
}

var derivableFields = map[pricing.Field]bool{
	pricing.FieldQty:                 true,
	pricing.FieldPurchasePriceKRW:    true,
	pricing.FieldPurchasePriceGlobal: true,
	pricing.FieldSalesPriceKRW:       true,
	pricing.FieldSalesPriceGlobal:    true,
	pricing.FieldMargin:              true,
}

func (r *DeriveItemRequest) Validate() error {
	if !derivableFields[r.EditedField] {
		return fmt.Errorf("field %q is not derivable", r.EditedField)
	}
	if !validCurrencyTypes[r.CurrencyType] {
		return fmt.Errorf("unknown currency type %q", r.CurrencyType)
	}
	return nil
}

// RecalculateRequest is the stateless totals call used while editing: the
// current item and charge lists plus discount and rate in, FinalTotals out.
type RecalculateRequest struct {
	ItemDetailList []models.LineItem   `json:"item_detail_list"`
	InvChargeList  []models.InvCharge  `json:"inv_charge_list"`
	Discount       decimal.Decimal     `json:"discount"`
	Currency       decimal.Decimal     `json:"currency"`
	CurrencyType   models.CurrencyType `json:"currency_type"`
}

func (r *RecalculateRequest) Validate() error {
	if !validCurrencyTypes[r.CurrencyType] {
		return fmt.Errorf("unknown currency type %q", r.CurrencyType)
	}
	if r.Discount.IsNegative() || r.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("discount must be between 0 and 100")
	}
	return nil
}
