package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType distinguishes priced rows from the structural rows that group or
// annotate them inside a document's item table.
type ItemType string

const (
	ItemTypeItem  ItemType = "ITEM"
	ItemTypeMaker ItemType = "MAKER"
	ItemTypeType  ItemType = "TYPE"
	ItemTypeDesc  ItemType = "DESC"
	ItemTypeDash  ItemType = "DASH"
)

// IsPriced reports whether rows of this type carry pricing. Only ITEM rows
// enter price math and sequential item numbering.
func (t ItemType) IsPriced() bool {
	return t == ItemTypeItem
}

// LineItem is one row of a document's item table. KRW and global prices for
// the same semantic value must never drift apart: every edit path re-derives
// the other currency from the one just edited (see the pricing package).
type LineItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`

	ItemType ItemType `gorm:"type:varchar(10);not null;default:'ITEM'" json:"item_type"`
	Position int      `gorm:"not null" json:"position"` // 1-based, contiguous over all rows
	ItemNo   int      `json:"item_no"`                  // sequential over ITEM rows only, 0 otherwise

	PartCode   string  `json:"part_code"`
	ItemName   string  `json:"item_name"`
	Unit       string  `json:"unit"`
	ItemRemark *string `gorm:"type:text" json:"item_remark"`

	Qty decimal.Decimal `gorm:"type:decimal(15,2)" json:"qty"`

	PurchasePriceKRW    decimal.Decimal `gorm:"type:decimal(18,2)" json:"purchase_price_krw"`
	PurchasePriceGlobal decimal.Decimal `gorm:"type:decimal(18,2)" json:"purchase_price_global"`
	SalesPriceKRW       decimal.Decimal `gorm:"type:decimal(18,2)" json:"sales_price_krw"`
	SalesPriceGlobal    decimal.Decimal `gorm:"type:decimal(18,2)" json:"sales_price_global"`

	PurchaseAmountKRW    decimal.Decimal `gorm:"type:decimal(18,2)" json:"purchase_amount_krw"`
	PurchaseAmountGlobal decimal.Decimal `gorm:"type:decimal(18,2)" json:"purchase_amount_global"`
	SalesAmountKRW       decimal.Decimal `gorm:"type:decimal(18,2)" json:"sales_amount_krw"`
	SalesAmountGlobal    decimal.Decimal `gorm:"type:decimal(18,2)" json:"sales_amount_global"`

	Margin decimal.Decimal `gorm:"type:decimal(8,2)" json:"margin"` // percent
}
