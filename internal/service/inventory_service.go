package service

import (
	"fmt"
	"log"
	"sync"

	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/ws"
)

// Broadcaster receives change events; *ws.Hub implements it.
type Broadcaster interface {
	Publish(e ws.Event)
}

// Operator identifies who performed a change.
type Operator struct {
	ID    string
	Name  string
	Email string
}

// actor is the value written to CreatedBy/UpdatedBy.
func (o Operator) actor() string {
	if o.Email != "" {
		return o.Email
	}
	if o.Name != "" {
		return o.Name
	}
	return inventory.SeedActor
}

func (o Operator) displayName() string {
	if o.Name != "" {
		return o.Name
	}
	return o.actor()
}

func (o Operator) wsActor() *ws.Actor {
	return &ws.Actor{ID: o.ID, Name: o.displayName(), Email: o.Email}
}

type InventoryService interface {
	CreateProduct(in model.NewProductInput, op Operator) (model.Product, error)
	UpdateProduct(id int, u model.ProductUpdate, op Operator) (model.Product, error)
	DeleteProduct(id int, op Operator) error
	GetProduct(id int) (model.Product, error)
	ListProducts(search, category string) []model.Product
	Categories() []string
	NextSKU() string

	CreateSupplier(in model.NewSupplierInput, op Operator) (model.Supplier, error)
	UpdateSupplier(id int, u model.SupplierUpdate, op Operator) (model.Supplier, error)
	DeleteSupplier(id int, op Operator) error
	GetSupplier(id int) (model.Supplier, error)
	ListSuppliers() []model.Supplier

	RecordTransaction(in model.NewTransactionInput, op Operator) (model.Transaction, error)
	GetTransaction(id int) (model.Transaction, error)
	ListTransactions(txType model.TransactionType, date string) []model.Transaction
}

type inventoryService struct {
	// mu orders writes so the database mirror applies them in store order.
	mu    sync.Mutex
	store *inventory.Store
	repo  repository.InventoryRepository // nil when running memory-only
	hub   Broadcaster
}

func NewInventoryService(store *inventory.Store, repo repository.InventoryRepository, hub Broadcaster) InventoryService {
	return &inventoryService{
		store: store,
		repo:  repo,
		hub:   hub,
	}
}

// persist mirrors a successful change to the database. The in-memory store
// stays authoritative, so failures are only logged.
func (s *inventoryService) persist(what string, fn func(repository.InventoryRepository) error) {
	if s.repo == nil {
		return
	}
	if err := fn(s.repo); err != nil {
		log.Printf("Warning: failed to persist %s: %v", what, err)
	}
}

func (s *inventoryService) publish(e ws.Event) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(e)
}

func (s *inventoryService) CreateProduct(in model.NewProductInput, op Operator) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.Actor = op.actor()
	product, err := s.store.AddProduct(in)
	if err != nil {
		return model.Product{}, err
	}

	s.persist("product", func(r repository.InventoryRepository) error { return r.SaveProduct(&product) })
	s.publish(ws.Event{
		Type:    "stock_update",
		Action:  "product_created",
		Payload: product,
		User:    op.wsActor(),
		Message: fmt.Sprintf("%s created product '%s'", op.displayName(), product.Name),
	})
	return product, nil
}

func (s *inventoryService) UpdateProduct(id int, u model.ProductUpdate, op Operator) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.store.GetProduct(id)
	if err != nil {
		return model.Product{}, err
	}

	u.Actor = op.actor()
	product, err := s.store.UpdateProduct(id, u)
	if err != nil {
		return model.Product{}, err
	}

	s.persist("product", func(r repository.InventoryRepository) error { return r.SaveProduct(&product) })
	s.publish(ws.Event{
		Type:   "stock_update",
		Action: "product_updated",
		Payload: map[string]interface{}{
			"product":   product,
			"old_stock": old.Quantity,
			"new_stock": product.Quantity,
		},
		User:    op.wsActor(),
		Message: fmt.Sprintf("%s updated product '%s'", op.displayName(), product.Name),
	})
	return product, nil
}

func (s *inventoryService) DeleteProduct(id int, op Operator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.store.GetProduct(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteProduct(id); err != nil {
		return err
	}

	s.persist("product deletion", func(r repository.InventoryRepository) error { return r.DeleteProduct(id) })
	s.publish(ws.Event{
		Type:    "stock_update",
		Action:  "product_deleted",
		Payload: map[string]interface{}{"id": id, "sku": product.SKU, "name": product.Name},
		User:    op.wsActor(),
		Message: fmt.Sprintf("%s deleted product '%s'", op.displayName(), product.Name),
	})
	return nil
}

func (s *inventoryService) GetProduct(id int) (model.Product, error) {
	return s.store.GetProduct(id)
}

func (s *inventoryService) ListProducts(search, category string) []model.Product {
	if search == "" && category == "" {
		return s.store.Products()
	}
	return s.store.FilterProducts(search, category)
}

func (s *inventoryService) Categories() []string {
	return s.store.Categories()
}

func (s *inventoryService) NextSKU() string {
	return s.store.NextSKU()
}

func (s *inventoryService) CreateSupplier(in model.NewSupplierInput, op Operator) (model.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.Actor = op.actor()
	supplier, err := s.store.AddSupplier(in)
	if err != nil {
		return model.Supplier{}, err
	}

	s.persist("supplier", func(r repository.InventoryRepository) error { return r.SaveSupplier(&supplier) })
	s.publish(ws.Event{
		Type:    "supplier_update",
		Action:  "supplier_created",
		Payload: supplier,
		User:    op.wsActor(),
		Message: fmt.Sprintf("%s added supplier '%s'", op.displayName(), supplier.Name),
	})
	return supplier, nil
}

func (s *inventoryService) UpdateSupplier(id int, u model.SupplierUpdate, op Operator) (model.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Actor = op.actor()
	supplier, err := s.store.UpdateSupplier(id, u)
	if err != nil {
		return model.Supplier{}, err
	}

	s.persist("supplier", func(r repository.InventoryRepository) error { return r.SaveSupplier(&supplier) })
	s.publish(ws.Event{
		Type:    "supplier_update",
		Action:  "supplier_updated",
		Payload: supplier,
		User:    op.wsActor(),
		Message: fmt.Sprintf("%s updated supplier '%s'", op.displayName(), supplier.Name),
	})
	return supplier, nil
}

func (s *inventoryService) DeleteSupplier(id int, op Operator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, err := s.store.GetSupplier(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteSupplier(id); err != nil {
		return err
	}

	s.persist("supplier deletion", func(r repository.InventoryRepository) error { return r.DeleteSupplier(id) })
	s.publish(ws.Event{
		Type:    "supplier_update",
		Action:  "supplier_deleted",
		Payload: map[string]interface{}{"id": id, "name": supplier.Name},
		User:    op.wsActor(),
		Message: fmt.Sprintf("%s deleted supplier '%s'", op.displayName(), supplier.Name),
	})
	return nil
}

func (s *inventoryService) GetSupplier(id int) (model.Supplier, error) {
	return s.store.GetSupplier(id)
}

func (s *inventoryService) ListSuppliers() []model.Supplier {
	return s.store.Suppliers()
}

func (s *inventoryService) RecordTransaction(in model.NewTransactionInput, op Operator) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.Actor = op.actor()
	posting, err := s.store.Post(in)
	if err != nil {
		return model.Transaction{}, err
	}
	tx := posting.Transaction

	if posting.Product == nil {
		log.Printf("Warning: transaction %d references unknown product %q, stock not changed", tx.ID, tx.ProductName)
	}
	s.persist("transaction", func(r repository.InventoryRepository) error {
		return r.RecordTransaction(&tx, posting.Product)
	})

	verb := "added"
	if tx.Type == model.TxStockOut {
		verb = "removed"
	}
	payload := map[string]interface{}{"transaction": tx}
	if posting.Product != nil {
		payload["new_stock"] = posting.Product.Quantity
		payload["status"] = posting.Product.StockStatus()
	}
	s.publish(ws.Event{
		Type:    "stock_update",
		Action:  "transaction_created",
		Payload: payload,
		User:    op.wsActor(),
		Message: fmt.Sprintf("%s %s %d units of '%s' (%s)", op.displayName(), verb, tx.Quantity, tx.ProductName, tx.Type),
	})
	return tx, nil
}

func (s *inventoryService) GetTransaction(id int) (model.Transaction, error) {
	return s.store.GetTransaction(id)
}

func (s *inventoryService) ListTransactions(txType model.TransactionType, date string) []model.Transaction {
	if txType == "" && date == "" {
		return s.store.Transactions()
	}
	return s.store.FilterTransactions(txType, date)
}
