package inventory

import (
	"go-inventory-tracker/internal/model"

	"github.com/shopspring/decimal"
)

type ProductValuation struct {
	Product    model.Product   `json:"product"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type InventoryReport struct {
	ProductCount  int                `json:"product_count"`
	TotalQuantity int                `json:"total_quantity"`
	TotalValue    decimal.Decimal    `json:"total_value"`
	Items         []ProductValuation `json:"items"`
}

type LowStockItem struct {
	Product model.Product     `json:"product"`
	Status  model.StockStatus `json:"status"`
}

type LowStockReport struct {
	Count int            `json:"count"`
	Items []LowStockItem `json:"items"`
}

type SupplierSummary struct {
	Supplier     model.Supplier  `json:"supplier"`
	ProductCount int             `json:"product_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

type SupplierReport struct {
	Suppliers []SupplierSummary `json:"suppliers"`
}

// TypeTotal aggregates the transactions of one type.
type TypeTotal struct {
	Type     model.TransactionType `json:"transaction_type"`
	Count    int                   `json:"count"`
	Quantity int                   `json:"quantity"`
	Total    decimal.Decimal       `json:"total"`
}

type TransactionReport struct {
	TransactionCount int                 `json:"transaction_count"`
	StockIn          TypeTotal           `json:"stock_in"`
	StockOut         TypeTotal           `json:"stock_out"`
	Transactions     []model.Transaction `json:"transactions"`
}

func (s *Store) InventoryReport() InventoryReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := InventoryReport{
		ProductCount: len(s.products),
		TotalValue:   decimal.Zero,
		Items:        make([]ProductValuation, 0, len(s.products)),
	}
	for _, p := range s.products {
		v := p.Value()
		r.TotalQuantity += p.Quantity
		r.TotalValue = r.TotalValue.Add(v)
		r.Items = append(r.Items, ProductValuation{Product: p, TotalValue: v})
	}
	return r
}

func (s *Store) LowStockReport() LowStockReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	low := s.lowStock()
	r := LowStockReport{Count: len(low), Items: make([]LowStockItem, 0, len(low))}
	for _, p := range low {
		r.Items = append(r.Items, LowStockItem{Product: p, Status: p.StockStatus()})
	}
	return r
}

// SupplierReport summarises, per supplier, the products naming it and their value.
// Products whose supplier no longer exists do not appear.
func (s *Store) SupplierReport() SupplierReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := SupplierReport{Suppliers: make([]SupplierSummary, 0, len(s.suppliers))}
	for _, sup := range s.suppliers {
		sum := SupplierSummary{Supplier: sup, TotalValue: decimal.Zero}
		for _, p := range s.productsSuppliedBy(sup.Name) {
			sum.ProductCount++
			sum.TotalValue = sum.TotalValue.Add(p.Value())
		}
		r.Suppliers = append(r.Suppliers, sum)
	}
	return r
}

func (s *Store) TransactionReport() TransactionReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := TransactionReport{
		TransactionCount: len(s.transactions),
		StockIn:          TypeTotal{Type: model.TxStockIn, Total: decimal.Zero},
		StockOut:         TypeTotal{Type: model.TxStockOut, Total: decimal.Zero},
		Transactions:     cloneOrEmpty(s.transactions),
	}
	for _, t := range s.transactions {
		var tt *TypeTotal
		switch t.Type {
		case model.TxStockIn:
			tt = &r.StockIn
		case model.TxStockOut:
			tt = &r.StockOut
		default:
			continue
		}
		tt.Count++
		tt.Quantity += t.Quantity
		tt.Total = tt.Total.Add(t.Total)
	}
	return r
}
