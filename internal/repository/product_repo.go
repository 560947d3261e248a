package repository

import (
	"go-inventory-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	FindAll() ([]model.Product, error)
	Save(product *model.Product) error
	Delete(id int) error
	UpdateStock(tx *gorm.DB, id int, newStock int, updatedBy string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

// Save inserts the product or overwrites the row with the same id.
func (r *productRepo) Save(product *model.Product) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(product).Error
}

func (r *productRepo) Delete(id int) error {
	return r.db.Delete(&model.Product{}, id).Error
}

// UpdateStock takes a *gorm.DB (tx) so it can run inside a transaction
func (r *productRepo) UpdateStock(tx *gorm.DB, id int, newStock int, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   newStock,
			"updated_by": updatedBy,
		}).Error
}
