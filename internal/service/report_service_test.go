package service

import (
	"bytes"
	"testing"

	"go-inventory-tracker/internal/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReports() *reportService {
	return &reportService{store: newDemoStore(), now: clock}
}

func TestGenerateEveryKind(t *testing.T) {
	s := newReports()
	for _, kind := range ReportKinds {
		t.Run(kind, func(t *testing.T) {
			r, err := s.Generate(kind)
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	r, err := s.Generate(ReportLowStock)
	require.NoError(t, err)
	assert.Equal(t, 1, r.(inventory.LowStockReport).Count)
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := newReports().Generate("profit")
	assert.ErrorIs(t, err, ErrUnknownReport)

	_, err = newReports().PDF("profit")
	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestInventoryTable(t *testing.T) {
	tbl, err := newReports().Table(ReportInventory)
	require.NoError(t, err)

	assert.Equal(t, "Inventory Report", tbl.Title)
	assert.Equal(t, fixedNow, tbl.GeneratedAt)
	assert.Contains(t, tbl.Summary, "Total value: $29649.55")
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"PROD-003", "Wireless Mouse", "Electronics", "5", "$29.99", "$149.95", "Low Stock"}, tbl.Rows[2])
}

func TestSupplierTable(t *testing.T) {
	tbl, err := newReports().Table(ReportSupplier)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "$25149.70", tbl.Rows[0][5])
	assert.Equal(t, "$4499.85", tbl.Rows[1][5])
}

func TestTransactionTable(t *testing.T) {
	tbl, err := newReports().Table(ReportTransaction)
	require.NoError(t, err)

	assert.Contains(t, tbl.Summary, "Stock In: 1 (10 units, $9999.90)")
	assert.Contains(t, tbl.Summary, "Stock Out: 1 (2 units, $599.98)")
	assert.Len(t, tbl.Rows, 2)
}

func TestReportPDF(t *testing.T) {
	for _, kind := range ReportKinds {
		out, err := newReports().PDF(kind)
		require.NoError(t, err, kind)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), kind)
	}
}
