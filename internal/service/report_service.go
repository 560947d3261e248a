package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/report"

	"github.com/shopspring/decimal"
)

var ErrUnknownReport = errors.New("unknown report type")

// Report kinds accepted by ReportService.
const (
	ReportInventory   = "inventory"
	ReportLowStock    = "low-stock"
	ReportSupplier    = "supplier"
	ReportTransaction = "transaction"
)

var ReportKinds = []string{ReportInventory, ReportLowStock, ReportSupplier, ReportTransaction}

type ReportService interface {
	Generate(kind string) (interface{}, error)
	Table(kind string) (report.Table, error)
	PDF(kind string) ([]byte, error)
}

type reportService struct {
	store *inventory.Store
	now   func() time.Time
}

func NewReportService(store *inventory.Store) ReportService {
	return &reportService{store: store, now: time.Now}
}

// Generate returns the typed report for kind.
func (s *reportService) Generate(kind string) (interface{}, error) {
	switch kind {
	case ReportInventory:
		return s.store.InventoryReport(), nil
	case ReportLowStock:
		return s.store.LowStockReport(), nil
	case ReportSupplier:
		return s.store.SupplierReport(), nil
	case ReportTransaction:
		return s.store.TransactionReport(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
}

func (s *reportService) Table(kind string) (report.Table, error) {
	var t report.Table
	switch kind {
	case ReportInventory:
		t = inventoryTable(s.store.InventoryReport())
	case ReportLowStock:
		t = lowStockTable(s.store.LowStockReport())
	case ReportSupplier:
		t = supplierTable(s.store.SupplierReport())
	case ReportTransaction:
		t = transactionTable(s.store.TransactionReport())
	default:
		return report.Table{}, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
	}
	t.GeneratedAt = s.now()
	return t, nil
}

func (s *reportService) PDF(kind string) ([]byte, error) {
	t, err := s.Table(kind)
	if err != nil {
		return nil, err
	}
	return report.RenderPDF(t)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func inventoryTable(r inventory.InventoryReport) report.Table {
	t := report.Table{
		Title: "Inventory Report",
		Summary: []string{
			fmt.Sprintf("Products: %d", r.ProductCount),
			fmt.Sprintf("Units in stock: %d", r.TotalQuantity),
			"Total value: " + money(r.TotalValue),
		},
		Headers: []string{"SKU", "Name", "Category", "Quantity", "Unit Price", "Value", "Status"},
		Align:   []string{"L", "L", "L", "R", "R", "R", "L"},
	}
	for _, item := range r.Items {
		p := item.Product
		t.Rows = append(t.Rows, []string{
			p.SKU, p.Name, p.Category, strconv.Itoa(p.Quantity), money(p.Price), money(item.TotalValue), string(p.StockStatus()),
		})
	}
	return t
}

func lowStockTable(r inventory.LowStockReport) report.Table {
	t := report.Table{
		Title:   "Low Stock Report",
		Summary: []string{fmt.Sprintf("Items at or below reorder level: %d", r.Count)},
		Headers: []string{"SKU", "Name", "Quantity", "Reorder Level", "Supplier", "Status"},
		Align:   []string{"L", "L", "R", "R", "L", "L"},
	}
	for _, item := range r.Items {
		p := item.Product
		t.Rows = append(t.Rows, []string{
			p.SKU, p.Name, strconv.Itoa(p.Quantity), strconv.Itoa(p.ReorderLevel), p.Supplier, string(item.Status),
		})
	}
	return t
}

func supplierTable(r inventory.SupplierReport) report.Table {
	t := report.Table{
		Title:   "Supplier Report",
		Summary: []string{fmt.Sprintf("Suppliers: %d", len(r.Suppliers))},
		Headers: []string{"Supplier", "Contact", "Email", "Phone", "Products", "Value"},
		Align:   []string{"L", "L", "L", "L", "R", "R"},
	}
	for _, sum := range r.Suppliers {
		sup := sum.Supplier
		t.Rows = append(t.Rows, []string{
			sup.Name, sup.ContactPerson, sup.Email, sup.Phone, strconv.Itoa(sum.ProductCount), money(sum.TotalValue),
		})
	}
	return t
}

func transactionTable(r inventory.TransactionReport) report.Table {
	t := report.Table{
		Title: "Transaction Report",
		Summary: []string{
			fmt.Sprintf("Transactions: %d", r.TransactionCount),
			fmt.Sprintf("Stock In: %d (%d units, %s)", r.StockIn.Count, r.StockIn.Quantity, money(r.StockIn.Total)),
			fmt.Sprintf("Stock Out: %d (%d units, %s)", r.StockOut.Count, r.StockOut.Quantity, money(r.StockOut.Total)),
		},
		Headers: []string{"Date", "Product", "Type", "Quantity", "Unit Price", "Total", "Notes"},
		Align:   []string{"L", "L", "L", "R", "R", "R", "L"},
	}
	for _, tx := range r.Transactions {
		t.Rows = append(t.Rows, []string{
			tx.Date, tx.ProductName, string(tx.Type), strconv.Itoa(tx.Quantity), money(tx.UnitPrice), money(tx.Total), tx.Notes,
		})
	}
	return t
}
