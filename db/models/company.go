package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRole classifies the trading relationship.
type CompanyRole string

const (
	CompanyCustomer CompanyRole = "CUSTOMER"
	CompanySupplier CompanyRole = "SUPPLIER"
	CompanyBoth     CompanyRole = "BOTH"
)

// Company is a customer or supplier party referenced by documents.
type Company struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyName string      `gorm:"not null;index" json:"company_name"`
	Role        CompanyRole `gorm:"type:varchar(10);not null;default:'CUSTOMER'" json:"role"`

	Country     *string `json:"country"`
	Address     *string `gorm:"type:text" json:"address"`
	ContactName *string `json:"contact_name"`
	Email       *string `gorm:"index" json:"email"`
	Phone       *string `json:"phone"`

	Vessels []Vessel `gorm:"foreignKey:CompanyID" json:"vessels,omitempty"`

	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedBy string         `gorm:"not null" json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Vessel is a ship operated by a customer; orders and invoices attach to the
// vessel the parts are shipped for.
type Vessel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VesselName string    `gorm:"not null;index" json:"vessel_name"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	IMONumber *string `gorm:"index" json:"imo_number"`
	Flag      *string `json:"flag"`

	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedBy string         `gorm:"not null" json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
