package inventory

import (
	"math"
	"slices"

	"go-inventory-tracker/internal/model"

	"github.com/shopspring/decimal"
)

func transactionID(t model.Transaction) int { return t.ID }

// Posting is the outcome of posting a transaction. Product holds the product as it
// is after the movement, or nil when no product matched the transaction's name.
type Posting struct {
	Transaction model.Transaction
	Product     *model.Product
}

// PostTransaction records a stock movement and applies it to the product of the
// same name. Stock In adds the quantity; Stock Out subtracts it, never going below
// zero. Without a matching product the transaction is still recorded and stock is
// left alone, unless the store was built WithStrictProductLookup.
func (s *Store) PostTransaction(in model.NewTransactionInput) (model.Transaction, error) {
	posting, err := s.Post(in)
	return posting.Transaction, err
}

// Post is PostTransaction that also returns the product the movement was applied to.
func (s *Store) Post(in model.NewTransactionInput) (Posting, error) {
	in.Normalize()
	if err := validateInput(&in); err != nil {
		return Posting{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productByName(in.ProductName)
	if i < 0 && s.strict {
		return Posting{}, &NotFoundError{Entity: "product", Name: in.ProductName}
	}
	if i >= 0 && in.Type == model.TxStockIn && in.Quantity > math.MaxInt-s.products[i].Quantity {
		return Posting{}, &ValidationError{Field: "quantity", Rule: "overflow"}
	}

	now := s.now()
	date := in.Date
	if date == "" {
		date = now.Format(model.DateLayout)
	}

	tx := model.Transaction{
		ID:           nextID(s.transactions, transactionID),
		ProductName:  in.ProductName,
		Type:         in.Type,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		Total:        in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Date:         date,
		Notes:        in.Notes,
		StockApplied: i >= 0,
		CreatedAt:    now,
		CreatedBy:    in.Actor,
	}
	s.transactions = append(s.transactions, tx)

	posting := Posting{Transaction: tx}
	if i >= 0 {
		p := &s.products[i]
		applyMovement(p, tx.Type, tx.Quantity)
		p.Touch(in.Actor, now)
		product := *p
		posting.Product = &product
	}
	return posting, nil
}

func applyMovement(p *model.Product, t model.TransactionType, qty int) {
	switch t {
	case model.TxStockIn:
		p.Quantity += qty
	case model.TxStockOut:
		p.Quantity = max(0, p.Quantity-qty)
	}
}

func (s *Store) GetTransaction(id int) (model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.transactions, func(t model.Transaction) bool { return t.ID == id })
	if i < 0 {
		return model.Transaction{}, &NotFoundError{Entity: "transaction", ID: id}
	}
	return s.transactions[i], nil
}

// Transactions returns all transactions in posting order.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.transactions)
}
