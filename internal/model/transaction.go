package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxStockIn  TransactionType = "Stock In"
	TxStockOut TransactionType = "Stock Out"
)

// DateLayout is the calendar date format used for transaction dates.
const DateLayout = "2006-01-02"

// ParseTransactionType accepts the display names as well as the short forms
// "in"/"out" used by query strings and the CLI.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock in", "stock_in", "stockin", "in":
		return TxStockIn, true
	case "stock out", "stock_out", "stockout", "out":
		return TxStockOut, true
	}
	return "", false
}

// Transaction is an immutable record of a stock movement. Total is a snapshot of
// quantity × unit price taken when the transaction was posted.
type Transaction struct {
	ID          int             `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ProductName string          `gorm:"type:varchar(100);index;not null" json:"product_name"`
	Type        TransactionType `gorm:"column:transaction_type;type:varchar(20);not null" json:"transaction_type"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
	Date        string          `gorm:"type:varchar(10);index" json:"date"`
	Notes       string          `gorm:"type:text" json:"notes"`

	// StockApplied is false when no product matched ProductName at posting time.
	StockApplied bool `gorm:"not null;default:false" json:"stock_applied"`

	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by,omitempty"`
}

type NewTransactionInput struct {
	ProductName string          `json:"product_name" validate:"required"`
	Type        TransactionType `json:"transaction_type" validate:"required,oneof='Stock In' 'Stock Out'"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"price" validate:"gt=0"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes       string          `json:"notes"`

	// Set by the caller from the authenticated operator, never from the request body.
	Actor string `json:"-"`
}

func (in *NewTransactionInput) Normalize() {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Date = strings.TrimSpace(in.Date)
	if t, ok := ParseTransactionType(string(in.Type)); ok {
		in.Type = t
	}
}
