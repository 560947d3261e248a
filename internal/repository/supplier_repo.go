package repository

import (
	"go-inventory-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SupplierRepository interface {
	FindAll() ([]model.Supplier, error)
	Save(supplier *model.Supplier) error
	Delete(id int) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("id ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Save(supplier *model.Supplier) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(supplier).Error
}

func (r *supplierRepo) Delete(id int) error {
	return r.db.Delete(&model.Supplier{}, id).Error
}
