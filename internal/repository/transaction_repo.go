package repository

import (
	"go-inventory-tracker/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindAll() ([]model.Transaction, error)
	Create(tx *gorm.DB, transaction *model.Transaction) error
	GetStockMovement(startDate, endDate string) ([]StockMovementData, error)
}

// StockMovementData is the per-day inbound/outbound quantity used by the movement chart
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// FindAll returns transactions in posting order.
func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Order("id ASC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

// GetStockMovement aggregates quantities per day between two dates (inclusive, YYYY-MM-DD).
func (r *transactionRepo) GetStockMovement(startDate, endDate string) ([]StockMovementData, error) {
	results := []StockMovementData{}

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			date,
			COALESCE(SUM(CASE WHEN transaction_type = ? THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN transaction_type = ? THEN quantity ELSE 0 END), 0) as outbound
		`, model.TxStockIn, model.TxStockOut).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("date").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}
