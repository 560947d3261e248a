package model

import "strings"

type Supplier struct {
	ID            int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string `gorm:"type:varchar(100);index;not null" json:"name"`
	ContactPerson string `gorm:"type:varchar(100)" json:"contact_person"`
	Email         string `gorm:"type:varchar(100)" json:"email"`
	Phone         string `gorm:"type:varchar(20)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`

	Audit
}

type NewSupplierInput struct {
	Name          string `json:"name" validate:"required,max=100"`
	ContactPerson string `json:"contact_person" validate:"max=100"`
	Email         string `json:"email" validate:"omitempty,email,max=100"`
	Phone         string `json:"phone" validate:"max=20"`
	Address       string `json:"address"`

	Actor string `json:"-"` // operator recorded in the audit fields
}

func (in *NewSupplierInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
}

type SupplierUpdate struct {
	Name          *string `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	ContactPerson *string `json:"contact_person,omitempty" validate:"omitnil,max=100"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone         *string `json:"phone,omitempty" validate:"omitnil,max=20"`
	Address       *string `json:"address,omitempty"`

	Actor string `json:"-"` // operator recorded in the audit fields
}

func (u *SupplierUpdate) Normalize() {
	trim(u.Name)
	trim(u.Email)
}

// Apply merges the set fields into s.
func (u SupplierUpdate) Apply(s *Supplier) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.ContactPerson != nil {
		s.ContactPerson = *u.ContactPerson
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
}
