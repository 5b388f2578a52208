package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate is one quoted foreign->KRW rate. Exactly one rate per currency
// code is active at a time; creating a new rate deactivates the previous one.
type ExchangeRate struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	CurrencyCode CurrencyType    `gorm:"type:varchar(10);not null;index" json:"currency_code"`
	Rate         decimal.Decimal `gorm:"type:decimal(18,6)" json:"rate"` // KRW per one unit of foreign currency
	Active       bool            `json:"active"`
	CreatedBy    string          `gorm:"not null" json:"created_by"`
	UpdatedBy    *string         `json:"updated_by"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at"`
	ValidFrom    time.Time       `json:"valid_from"`
	ValidTo      *time.Time      `json:"valid_to"` // null while the rate is active
}
