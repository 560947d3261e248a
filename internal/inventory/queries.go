package inventory

import (
	"slices"
	"strings"

	"go-inventory-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// CategoryQuantity is one slice of the category breakdown chart.
type CategoryQuantity struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Stats are the dashboard counters, computed under a single read lock.
type Stats struct {
	TotalProducts     int             `json:"total_products"`
	TotalValue        decimal.Decimal `json:"total_value"`
	LowStockItems     int             `json:"low_stock_items"`
	OutOfStockItems   int             `json:"out_of_stock"`
	TotalSuppliers    int             `json:"total_suppliers"`
	TransactionsToday int             `json:"transactions_today"`
}

// Stats computes the dashboard counters; today is a date in model.DateLayout.
func (s *Store) Stats(today string) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		TotalProducts:  len(s.products),
		TotalValue:     s.totalValue(),
		TotalSuppliers: len(s.suppliers),
	}
	for _, p := range s.products {
		if p.IsLowStock() {
			st.LowStockItems++
		}
		if p.Quantity == 0 {
			st.OutOfStockItems++
		}
	}
	for _, t := range s.transactions {
		if t.Date == today {
			st.TransactionsToday++
		}
	}
	return st
}

func (s *Store) TotalProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// TotalInventoryValue is Σ price × quantity over all products, recomputed on every call.
func (s *Store) TotalInventoryValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalValue()
}

// LowStockCount counts products at or below their reorder level, out of stock included.
func (s *Store) LowStockCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.products {
		if p.IsLowStock() {
			n++
		}
	}
	return n
}

func (s *Store) OutOfStockCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.products {
		if p.Quantity == 0 {
			n++
		}
	}
	return n
}

func (s *Store) SupplierCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.suppliers)
}

// LowStockProducts lists the products at or below their reorder level.
func (s *Store) LowStockProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lowStock()
}

// CategoryBreakdown sums quantities per category, in first-seen category order.
func (s *Store) CategoryBreakdown() []CategoryQuantity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []CategoryQuantity{}
	index := map[string]int{}
	for _, p := range s.products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, CategoryQuantity{Category: p.Category})
		}
		out[i].Quantity += p.Quantity
	}
	return out
}

// Categories lists the distinct product categories in first-seen order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []string{}
	for _, p := range s.products {
		if !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	return out
}

// TopStockedProducts returns up to n products by descending quantity; ties keep
// insertion order.
func (s *Store) TopStockedProducts(n int) []model.Product {
	s.mu.RLock()
	sorted := cloneOrEmpty(s.products)
	s.mu.RUnlock()

	slices.SortStableFunc(sorted, func(a, b model.Product) int { return b.Quantity - a.Quantity })
	return sorted[:clamp(n, len(sorted))]
}

// RecentTransactions returns the last n transactions, newest first.
func (s *Store) RecentTransactions(n int) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n = clamp(n, len(s.transactions))
	out := make([]model.Transaction, 0, n)
	for i := len(s.transactions) - 1; i >= len(s.transactions)-n; i-- {
		out = append(out, s.transactions[i])
	}
	return out
}

// FilterProducts matches search case-insensitively against name, SKU and
// description, and category exactly. Empty arguments match everything.
func (s *Store) FilterProducts(search, category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	out := []model.Product{}
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.SKU), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterTransactions matches type and date exactly. Empty arguments match everything.
func (s *Store) FilterTransactions(t model.TransactionType, date string) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Transaction{}
	for _, tx := range s.transactions {
		if t != "" && tx.Type != t {
			continue
		}
		if date != "" && tx.Date != date {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func (s *Store) totalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.Value())
	}
	return total
}

func (s *Store) lowStock() []model.Product {
	out := []model.Product{}
	for _, p := range s.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	return min(n, length)
}
