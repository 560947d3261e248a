// Package inventory holds the in-memory inventory: products, suppliers and the
// stock transactions posted against them, together with the aggregates derived
// from them for dashboards and reports.
package inventory

import (
	"slices"
	"sync"
	"time"

	"go-inventory-tracker/internal/model"
)

// Store owns the three collections. It is safe for concurrent use; every exported
// method is atomic with respect to the others. Values handed out are copies.
type Store struct {
	mu           sync.RWMutex
	products     []model.Product
	suppliers    []model.Supplier
	transactions []model.Transaction

	now    func() time.Time
	strict bool
}

type Option func(*Store)

// WithClock replaces time.Now, used for audit timestamps and default transaction dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithStrictProductLookup makes PostTransaction fail with a NotFoundError when no
// product has the posted name, instead of recording the movement without touching stock.
func WithStrictProductLookup(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot is a point-in-time copy of all collections.
type Snapshot struct {
	Products     []model.Product     `json:"products"`
	Suppliers    []model.Supplier    `json:"suppliers"`
	Transactions []model.Transaction `json:"transactions"`
}

// Load replaces the store contents, e.g. with records read from the database.
func (s *Store) Load(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = slices.Clone(snap.Products)
	s.suppliers = slices.Clone(snap.Suppliers)
	s.transactions = slices.Clone(snap.Transactions)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Products:     cloneOrEmpty(s.products),
		Suppliers:    cloneOrEmpty(s.suppliers),
		Transactions: cloneOrEmpty(s.transactions),
	}
}

// IsEmpty reports whether the store holds no records at all.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products) == 0 && len(s.suppliers) == 0 && len(s.transactions) == 0
}

// nextID is max existing id + 1, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int) int {
	highest := 0
	for _, item := range items {
		if v := id(item); v > highest {
			highest = v
		}
	}
	return highest + 1
}

func cloneOrEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return slices.Clone(items)
}
