package inventory

import (
	"slices"

	"go-inventory-tracker/internal/model"
)

func supplierID(s model.Supplier) int { return s.ID }

// AddSupplier validates in and appends a new supplier with the next free id.
// Names are not checked for uniqueness.
func (s *Store) AddSupplier(in model.NewSupplierInput) (model.Supplier, error) {
	in.Normalize()
	if err := validateInput(&in); err != nil {
		return model.Supplier{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sup := model.Supplier{
		ID:            nextID(s.suppliers, supplierID),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
	}
	sup.Stamp(in.Actor, s.now())
	s.suppliers = append(s.suppliers, sup)
	return sup, nil
}

// UpdateSupplier merges the set fields of u into supplier id. Renaming a supplier
// does not rename the supplier field of its products.
func (s *Store) UpdateSupplier(id int, u model.SupplierUpdate) (model.Supplier, error) {
	u.Normalize()
	if err := validateInput(&u); err != nil {
		return model.Supplier{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.supplierIndex(id)
	if i < 0 {
		return model.Supplier{}, &NotFoundError{Entity: "supplier", ID: id}
	}
	u.Apply(&s.suppliers[i])
	s.suppliers[i].Touch(u.Actor, s.now())
	return s.suppliers[i], nil
}

// DeleteSupplier removes supplier id. Products keep their supplier name as an
// orphaned reference.
func (s *Store) DeleteSupplier(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.supplierIndex(id)
	if i < 0 {
		return &NotFoundError{Entity: "supplier", ID: id}
	}
	s.suppliers = slices.Delete(s.suppliers, i, i+1)
	return nil
}

func (s *Store) GetSupplier(id int) (model.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.supplierIndex(id)
	if i < 0 {
		return model.Supplier{}, &NotFoundError{Entity: "supplier", ID: id}
	}
	return s.suppliers[i], nil
}

func (s *Store) Suppliers() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.suppliers)
}

func (s *Store) supplierIndex(id int) int {
	return slices.IndexFunc(s.suppliers, func(sup model.Supplier) bool { return sup.ID == id })
}

// productsSuppliedBy is the single place products are joined to a supplier by name.
func (s *Store) productsSuppliedBy(name string) []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if p.Supplier == name {
			out = append(out, p)
		}
	}
	return out
}
