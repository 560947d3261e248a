package inventory

import (
	"math"
	"testing"

	"go-inventory-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostStockInIncreasesQuantity(t *testing.T) {
	s := newTestStore(t)

	tx, err := s.PostTransaction(model.NewTransactionInput{
		ProductName: "Laptop Computer",
		Type:        model.TxStockIn,
		Quantity:    10,
		UnitPrice:   dec("999.99"),
		Notes:       "Restock",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, tx.ID)
	assert.Equal(t, "9999.90", tx.Total.StringFixed(2))
	assert.Equal(t, "2025-07-08", tx.Date)
	assert.True(t, tx.StockApplied)

	laptop, err := s.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 35, laptop.Quantity)

	all := s.Transactions()
	require.Len(t, all, 3)
	assert.Equal(t, tx, all[2])
}

func TestPostStockOutClampsAtZero(t *testing.T) {
	s := newTestStore(t)

	posting, err := s.Post(model.NewTransactionInput{
		ProductName: "Wireless Mouse",
		Type:        model.TxStockOut,
		Quantity:    100,
		UnitPrice:   dec("29.99"),
	})
	require.NoError(t, err)

	require.NotNil(t, posting.Product)
	assert.Equal(t, 0, posting.Product.Quantity)
	assert.Equal(t, "2999.00", posting.Transaction.Total.StringFixed(2))

	mouse, err := s.GetProduct(3)
	require.NoError(t, err)
	assert.Equal(t, 0, mouse.Quantity)
	assert.Equal(t, model.StatusOutOfStock, mouse.StockStatus())
}

func TestPostStockOutWithinStock(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PostTransaction(model.NewTransactionInput{
		ProductName: "Office Chair",
		Type:        model.TxStockOut,
		Quantity:    4,
		UnitPrice:   dec("299.99"),
	})
	require.NoError(t, err)

	chair, err := s.GetProduct(2)
	require.NoError(t, err)
	assert.Equal(t, 11, chair.Quantity)
}

func TestPostUsesExplicitDateAndShortType(t *testing.T) {
	s := newTestStore(t)

	tx, err := s.PostTransaction(model.NewTransactionInput{
		ProductName: "Office Chair",
		Type:        "in",
		Quantity:    1,
		UnitPrice:   dec("299.99"),
		Date:        "2025-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TxStockIn, tx.Type)
	assert.Equal(t, "2025-06-30", tx.Date)
}

func TestPostUnknownProductIsRecordedWithoutStockChange(t *testing.T) {
	s := newTestStore(t)
	before := s.Products()

	posting, err := s.Post(model.NewTransactionInput{
		ProductName: "Discontinued Gadget",
		Type:        model.TxStockIn,
		Quantity:    3,
		UnitPrice:   dec("10"),
	})
	require.NoError(t, err)

	assert.False(t, posting.Transaction.StockApplied)
	assert.Nil(t, posting.Product)
	assert.Equal(t, before, s.Products())
	assert.Len(t, s.Transactions(), 3)
}

func TestPostUnknownProductStrict(t *testing.T) {
	s := newTestStore(t, WithStrictProductLookup(true))

	_, err := s.PostTransaction(model.NewTransactionInput{
		ProductName: "Discontinued Gadget",
		Type:        model.TxStockIn,
		Quantity:    3,
		UnitPrice:   dec("10"),
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Discontinued Gadget", nf.Name)
	assert.Len(t, s.Transactions(), 2)
}

func TestPostValidation(t *testing.T) {
	valid := model.NewTransactionInput{ProductName: "Office Chair", Type: model.TxStockIn, Quantity: 1, UnitPrice: dec("1")}

	tests := []struct {
		name   string
		mutate func(*model.NewTransactionInput)
		field  string
	}{
		{"missing product", func(in *model.NewTransactionInput) { in.ProductName = "" }, "product_name"},
		{"missing type", func(in *model.NewTransactionInput) { in.Type = "" }, "transaction_type"},
		{"unknown type", func(in *model.NewTransactionInput) { in.Type = "Transfer" }, "transaction_type"},
		{"zero quantity", func(in *model.NewTransactionInput) { in.Quantity = 0 }, "quantity"},
		{"negative quantity", func(in *model.NewTransactionInput) { in.Quantity = -2 }, "quantity"},
		{"zero price", func(in *model.NewTransactionInput) { in.UnitPrice = dec("0") }, "price"},
		{"bad date", func(in *model.NewTransactionInput) { in.Date = "yesterday" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			in := valid
			tt.mutate(&in)

			_, err := s.PostTransaction(in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Len(t, s.Transactions(), 2)
		})
	}
}

func TestTransactionTotalIsNotRecomputed(t *testing.T) {
	s := newTestStore(t)

	tx, err := s.PostTransaction(model.NewTransactionInput{
		ProductName: "Office Chair", Type: model.TxStockIn, Quantity: 2, UnitPrice: dec("299.99"),
	})
	require.NoError(t, err)

	_, err = s.UpdateProduct(2, model.ProductUpdate{Price: ptr(dec("349.99"))})
	require.NoError(t, err)

	stored, err := s.GetTransaction(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "599.98", stored.Total.StringFixed(2))
}

func TestDeleteProductKeepsTransactions(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.DeleteProduct(1))

	tx, err := s.GetTransaction(1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Computer", tx.ProductName)

	_, err = s.GetTransaction(77)
	assert.True(t, IsNotFound(err))
}

func TestPostStockInRejectsQuantityOverflow(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PostTransaction(model.NewTransactionInput{
		ProductName: "Laptop Computer",
		Type:        model.TxStockIn,
		Quantity:    math.MaxInt,
		UnitPrice:   dec("1"),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity", ve.Field)
	assert.Equal(t, "overflow", ve.Rule)

	laptop, err := s.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 25, laptop.Quantity)
	assert.Equal(t, 1, s.LowStockCount())
	assert.Len(t, s.Transactions(), 2)

	// the largest quantity that still fits is accepted
	_, err = s.PostTransaction(model.NewTransactionInput{
		ProductName: "Laptop Computer",
		Type:        model.TxStockIn,
		Quantity:    math.MaxInt - 25,
		UnitPrice:   dec("1"),
	})
	require.NoError(t, err)
	laptop, err = s.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, laptop.Quantity)
}
