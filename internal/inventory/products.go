package inventory

import (
	"fmt"
	"slices"

	"go-inventory-tracker/internal/model"
)

func productID(p model.Product) int { return p.ID }

// AddProduct validates in and appends a new product with the next free id.
func (s *Store) AddProduct(in model.NewProductInput) (model.Product, error) {
	in.Normalize()
	if err := validateInput(&in); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skuTaken(in.SKU, 0) {
		return model.Product{}, &ValidationError{Field: "sku", Rule: "unique"}
	}

	p := model.Product{
		ID:           nextID(s.products, productID),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Price:        in.Price,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Supplier:     in.Supplier,
	}
	p.Stamp(in.Actor, s.now())
	s.products = append(s.products, p)
	return p, nil
}

// UpdateProduct merges the set fields of u into product id.
func (s *Store) UpdateProduct(id int, u model.ProductUpdate) (model.Product, error) {
	u.Normalize()
	if err := validateInput(&u); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Entity: "product", ID: id}
	}
	if u.SKU != nil && s.skuTaken(*u.SKU, id) {
		return model.Product{}, &ValidationError{Field: "sku", Rule: "unique"}
	}

	u.Apply(&s.products[i])
	s.products[i].Touch(u.Actor, s.now())
	return s.products[i], nil
}

// DeleteProduct removes product id. Transactions naming it and its supplier are untouched.
func (s *Store) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return &NotFoundError{Entity: "product", ID: id}
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

func (s *Store) GetProduct(id int) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.productIndex(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Entity: "product", ID: id}
	}
	return s.products[i], nil
}

// ProductByName resolves a product the way transactions reference it.
func (s *Store) ProductByName(name string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.productByName(name)
	if i < 0 {
		return model.Product{}, &NotFoundError{Entity: "product", Name: name}
	}
	return s.products[i], nil
}

// Products returns all products in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.products)
}

// NextSKU suggests a SKU for a new product: PROD- followed by the product count plus one.
func (s *Store) NextSKU() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("PROD-%03d", len(s.products)+1)
}

func (s *Store) productIndex(id int) int {
	return slices.IndexFunc(s.products, func(p model.Product) bool { return p.ID == id })
}

// productByName is the single place products are joined by name. The first
// product carrying the name wins. Returns -1 when none does.
func (s *Store) productByName(name string) int {
	return slices.IndexFunc(s.products, func(p model.Product) bool { return p.Name == name })
}

// skuTaken reports whether another product than exceptID already uses sku.
func (s *Store) skuTaken(sku string, exceptID int) bool {
	return slices.ContainsFunc(s.products, func(p model.Product) bool {
		return p.SKU == sku && p.ID != exceptID
	})
}
