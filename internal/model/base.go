package model

import "time"

// Audit holds the standard audit trail shared by products and suppliers.
type Audit struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Audit User Tracking
	CreatedBy string `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	UpdatedBy string `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
}

// Stamp fills the creation and update fields for a new record.
func (a *Audit) Stamp(actor string, at time.Time) {
	a.CreatedAt = at
	a.UpdatedAt = at
	a.CreatedBy = actor
	a.UpdatedBy = actor
}

// Touch marks the record as modified.
func (a *Audit) Touch(actor string, at time.Time) {
	a.UpdatedAt = at
	a.UpdatedBy = actor
}
