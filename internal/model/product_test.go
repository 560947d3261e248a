package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		reorder  int
		want     StockStatus
	}{
		{"zero quantity is out of stock", 0, 10, StatusOutOfStock},
		{"zero quantity with zero reorder level", 0, 0, StatusOutOfStock},
		{"below reorder level", 5, 15, StatusLowStock},
		{"at reorder level", 10, 10, StatusLowStock},
		{"above reorder level", 25, 10, StatusInStock},
		{"one unit with zero reorder level", 1, 0, StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Quantity: tt.quantity, ReorderLevel: tt.reorder}
			assert.Equal(t, tt.want, p.StockStatus())
			assert.Equal(t, tt.quantity <= tt.reorder, p.IsLowStock())
		})
	}
}

func TestProductValue(t *testing.T) {
	p := Product{Price: decimal.RequireFromString("29.99"), Quantity: 5}
	assert.Equal(t, "149.95", p.Value().StringFixed(2))
}

func TestProductUpdateApply(t *testing.T) {
	p := Product{ID: 1, SKU: "PROD-001", Name: "Laptop Computer", Quantity: 25, Supplier: "Tech Supplies Inc"}
	name := "Laptop Pro"
	qty := 0

	ProductUpdate{Name: &name, Quantity: &qty}.Apply(&p)

	assert.Equal(t, "Laptop Pro", p.Name)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, "PROD-001", p.SKU)
	assert.Equal(t, "Tech Supplies Inc", p.Supplier)
}

func TestParseTransactionType(t *testing.T) {
	for in, want := range map[string]TransactionType{
		"Stock In":  TxStockIn,
		"in":        TxStockIn,
		"STOCK_OUT": TxStockOut,
		" out ":     TxStockOut,
		"StockIn":   TxStockIn,
		"stockout":  TxStockOut,
	} {
		got, ok := ParseTransactionType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseTransactionType("transfer")
	assert.False(t, ok)
}

func TestDefaultRolePrivileges(t *testing.T) {
	admin := DefaultRole(RoleAdmin)
	assert.Len(t, admin.Privileges, len(DefaultPrivileges))

	clerk := User{Role: DefaultRole(RoleClerk)}
	assert.True(t, clerk.HasPrivilege(PrivTransactionCreate))
	assert.True(t, clerk.HasPrivilege(PrivReportExport))
	assert.False(t, clerk.HasPrivilege(PrivProductDelete))
}
