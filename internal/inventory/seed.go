package inventory

import (
	"time"

	"go-inventory-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// SeedActor is recorded as creator of the demo records.
const SeedActor = "system"

// DemoData returns the sample catalogue the application starts with when no
// database state exists. Audit timestamps are set to at.
func DemoData(at time.Time) Snapshot {
	audit := model.Audit{}
	audit.Stamp(SeedActor, at)

	products := []model.Product{
		{
			ID:           1,
			SKU:          "PROD-001",
			Name:         "Laptop Computer",
			Description:  "High-performance business laptop",
			Category:     "Electronics",
			Price:        decimal.RequireFromString("999.99"),
			Quantity:     25,
			ReorderLevel: 10,
			Supplier:     "Tech Supplies Inc",
			Audit:        audit,
		},
		{
			ID:           2,
			SKU:          "PROD-002",
			Name:         "Office Chair",
			Description:  "Ergonomic office chair with lumbar support",
			Category:     "Furniture",
			Price:        decimal.RequireFromString("299.99"),
			Quantity:     15,
			ReorderLevel: 5,
			Supplier:     "Office Furnishings Co",
			Audit:        audit,
		},
		{
			ID:           3,
			SKU:          "PROD-003",
			Name:         "Wireless Mouse",
			Description:  "Bluetooth wireless optical mouse",
			Category:     "Electronics",
			Price:        decimal.RequireFromString("29.99"),
			Quantity:     5,
			ReorderLevel: 15,
			Supplier:     "Tech Supplies Inc",
			Audit:        audit,
		},
	}

	suppliers := []model.Supplier{
		{
			ID:            1,
			Name:          "Tech Supplies Inc",
			ContactPerson: "John Smith",
			Email:         "john@techsupplies.com",
			Phone:         "+1-555-0123",
			Address:       "123 Tech Street, Silicon Valley, CA",
			Audit:         audit,
		},
		{
			ID:            2,
			Name:          "Office Furnishings Co",
			ContactPerson: "Sarah Johnson",
			Email:         "sarah@officefurnishings.com",
			Phone:         "+1-555-0456",
			Address:       "456 Business Ave, New York, NY",
			Audit:         audit,
		},
	}

	transactions := []model.Transaction{
		demoTransaction(1, "Laptop Computer", model.TxStockIn, 10, "999.99", "2025-07-07", "Received new shipment"),
		demoTransaction(2, "Office Chair", model.TxStockOut, 2, "299.99", "2025-07-06", "Sale to customer"),
	}

	return Snapshot{Products: products, Suppliers: suppliers, Transactions: transactions}
}

func demoTransaction(id int, product string, t model.TransactionType, qty int, price, date, notes string) model.Transaction {
	unit := decimal.RequireFromString(price)
	created, _ := time.Parse(model.DateLayout, date)
	return model.Transaction{
		ID:           id,
		ProductName:  product,
		Type:         t,
		Quantity:     qty,
		UnitPrice:    unit,
		Total:        unit.Mul(decimal.NewFromInt(int64(qty))),
		Date:         date,
		Notes:        notes,
		StockApplied: true,
		CreatedAt:    created,
		CreatedBy:    SeedActor,
	}
}

// NewDemoStore builds a store preloaded with DemoData.
func NewDemoStore(opts ...Option) *Store {
	s := NewStore(opts...)
	s.Load(DemoData(s.now()))
	return s
}
