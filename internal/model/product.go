package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StockStatus is the availability of a product derived from its quantity and reorder level.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "Out of Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusInStock    StockStatus = "In Stock"
)

type Product struct {
	ID           int             `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SKU          string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Name         string          `gorm:"type:varchar(100);index;not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Category     string          `gorm:"type:varchar(50);index" json:"category"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity     int             `gorm:"not null;default:0" json:"quantity"`
	ReorderLevel int             `gorm:"not null;default:0" json:"reorder_level"`

	// Supplier is the supplier's name; it is not checked against the supplier list.
	Supplier string `gorm:"type:varchar(100);index" json:"supplier"`

	Audit
}

// StockStatus classifies the product. Out of stock wins over low stock because a
// quantity of zero is also at or below any reorder level.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.Quantity == 0:
		return StatusOutOfStock
	case p.Quantity <= p.ReorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsLowStock reports whether the product is due for restocking (out of stock included).
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// Value is the stock valuation price × quantity.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// NewProductInput is the payload for adding a product.
type NewProductInput struct {
	SKU          string          `json:"sku" validate:"required,max=50"`
	Name         string          `json:"name" validate:"required,max=100"`
	Description  string          `json:"description"`
	Category     string          `json:"category" validate:"required,max=50"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	ReorderLevel int             `json:"reorder_level" validate:"gte=0"`
	Supplier     string          `json:"supplier" validate:"max=100"`

	Actor string `json:"-"` // operator recorded in the audit fields
}

func (in *NewProductInput) Normalize() {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Supplier = strings.TrimSpace(in.Supplier)
}

// ProductUpdate carries the fields to merge into an existing product. Nil fields are left untouched.
type ProductUpdate struct {
	SKU          *string          `json:"sku,omitempty" validate:"omitnil,min=1,max=50"`
	Name         *string          `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Description  *string          `json:"description,omitempty"`
	Category     *string          `json:"category,omitempty" validate:"omitnil,min=1,max=50"`
	Price        *decimal.Decimal `json:"price,omitempty" validate:"omitnil,gte=0"`
	Quantity     *int             `json:"quantity,omitempty" validate:"omitnil,gte=0"`
	ReorderLevel *int             `json:"reorder_level,omitempty" validate:"omitnil,gte=0"`
	Supplier     *string          `json:"supplier,omitempty" validate:"omitnil,max=100"`

	Actor string `json:"-"` // operator recorded in the audit fields
}

func (u *ProductUpdate) Normalize() {
	trim(u.SKU)
	trim(u.Name)
	trim(u.Category)
	trim(u.Supplier)
}

// Apply merges the set fields into p.
func (u ProductUpdate) Apply(p *Product) {
	if u.SKU != nil {
		p.SKU = *u.SKU
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.ReorderLevel != nil {
		p.ReorderLevel = *u.ReorderLevel
	}
	if u.Supplier != nil {
		p.Supplier = *u.Supplier
	}
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
