package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DocumentType identifies where a document sits in the trading lifecycle.
type DocumentType string

const (
	DocumentInquiry   DocumentType = "INQUIRY"
	DocumentOffer     DocumentType = "OFFER"
	DocumentOrder     DocumentType = "ORDER"
	DocumentInvoice   DocumentType = "INVOICE"
	DocumentLogistics DocumentType = "LOGISTICS"
)

// CurrencyType is the document's foreign settlement currency. KRW is always
// the local side of every conversion.
type CurrencyType string

const (
	CurrencyUSD CurrencyType = "USD"
	CurrencyEUR CurrencyType = "EUR"
	CurrencyINR CurrencyType = "INR"
	CurrencyJPY CurrencyType = "JPY"
)

// Document is one inquiry/offer/order/invoice/logistics record. The item
// table and charge list hang off it; the server is the system of record and
// editing clients send the whole document back on Save.
type Document struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;" json:"id"`
	DocumentType DocumentType `gorm:"type:varchar(20);not null;index" json:"document_type"`
	RefNumber    string       `gorm:"not null;index" json:"ref_number"`

	CurrencyType CurrencyType    `gorm:"type:varchar(10);not null;default:'USD'" json:"currency_type"`
	Currency     decimal.Decimal `gorm:"type:decimal(18,6)" json:"currency"` // foreign -> KRW multiplier
	Discount     decimal.Decimal `gorm:"type:decimal(8,4)" json:"discount"`  // percent, optional

	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id"`
	VesselID   *uuid.UUID `gorm:"type:uuid;index" json:"vessel_id"`

	Customer *Company `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Supplier *Company `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Vessel   *Vessel  `gorm:"foreignKey:VesselID" json:"vessel,omitempty"`

	RefSubject string  `json:"ref_subject"`
	Remark     *string `gorm:"type:text" json:"remark"`

	// Pass-through header payload the pricing core never inspects
	// (delivery terms, packing, forwarder details, etc.).
	ExtraInfo datatypes.JSON `json:"extra_info,omitempty"`

	Items   []LineItem  `gorm:"foreignKey:DocumentID" json:"items,omitempty"`
	Charges []InvCharge `gorm:"foreignKey:DocumentID" json:"charges,omitempty"`

	CreatedBy string         `gorm:"not null" json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
