package repository

import (
	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/model"

	"gorm.io/gorm"
)

// InventoryRepository mirrors the in-memory store into SQL so state survives restarts.
type InventoryRepository interface {
	LoadAll() (inventory.Snapshot, error)
	ReplaceAll(snap inventory.Snapshot) error
	SaveProduct(product *model.Product) error
	DeleteProduct(id int) error
	SaveSupplier(supplier *model.Supplier) error
	DeleteSupplier(id int) error
	RecordTransaction(transaction *model.Transaction, product *model.Product) error
	StockMovement(startDate, endDate string) ([]StockMovementData, error)
}

type inventoryRepo struct {
	db           *gorm.DB
	products     ProductRepository
	suppliers    SupplierRepository
	transactions TransactionRepository
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{
		db:           db,
		products:     NewProductRepo(db),
		suppliers:    NewSupplierRepo(db),
		transactions: NewTransactionRepo(db),
	}
}

// AutoMigrate creates or updates the mirror tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Product{}, &model.Supplier{}, &model.Transaction{})
}

func (r *inventoryRepo) LoadAll() (inventory.Snapshot, error) {
	var snap inventory.Snapshot
	var err error
	if snap.Products, err = r.products.FindAll(); err != nil {
		return snap, err
	}
	if snap.Suppliers, err = r.suppliers.FindAll(); err != nil {
		return snap, err
	}
	if snap.Transactions, err = r.transactions.FindAll(); err != nil {
		return snap, err
	}
	return snap, nil
}

// ReplaceAll wipes the mirror and writes snap in a single transaction.
func (r *inventoryRepo) ReplaceAll(snap inventory.Snapshot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []interface{}{&model.Transaction{}, &model.Product{}, &model.Supplier{}} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}
		if len(snap.Products) > 0 {
			if err := tx.Create(&snap.Products).Error; err != nil {
				return err
			}
		}
		if len(snap.Suppliers) > 0 {
			if err := tx.Create(&snap.Suppliers).Error; err != nil {
				return err
			}
		}
		if len(snap.Transactions) > 0 {
			if err := tx.Create(&snap.Transactions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *inventoryRepo) SaveProduct(product *model.Product) error {
	return r.products.Save(product)
}

func (r *inventoryRepo) DeleteProduct(id int) error {
	return r.products.Delete(id)
}

func (r *inventoryRepo) SaveSupplier(supplier *model.Supplier) error {
	return r.suppliers.Save(supplier)
}

func (r *inventoryRepo) DeleteSupplier(id int) error {
	return r.suppliers.Delete(id)
}

// RecordTransaction inserts the transaction and, when product is non-nil,
// writes its new quantity in the same DB transaction.
func (r *inventoryRepo) RecordTransaction(transaction *model.Transaction, product *model.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.transactions.Create(tx, transaction); err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		return r.products.UpdateStock(tx, product.ID, product.Quantity, product.UpdatedBy)
	})
}

func (r *inventoryRepo) StockMovement(startDate, endDate string) ([]StockMovementData, error) {
	return r.transactions.GetStockMovement(startDate, endDate)
}
