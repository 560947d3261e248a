package model

// Privilege represents a permission that can be granted to an operator
type Privilege struct {
	Code string `json:"code"` // e.g., "product:create"
	Name string `json:"name"` // e.g., "Create Product"
}

const (
	PrivProductCreate     = "product:create"
	PrivProductUpdate     = "product:update"
	PrivProductDelete     = "product:delete"
	PrivSupplierCreate    = "supplier:create"
	PrivSupplierUpdate    = "supplier:update"
	PrivSupplierDelete    = "supplier:delete"
	PrivTransactionCreate = "transaction:create"
	PrivReportExport      = "report:export"
)

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// Product management
	{Code: PrivProductCreate, Name: "Create Product"},
	{Code: PrivProductUpdate, Name: "Update Product"},
	{Code: PrivProductDelete, Name: "Delete Product"},
	// Supplier management
	{Code: PrivSupplierCreate, Name: "Create Supplier"},
	{Code: PrivSupplierUpdate, Name: "Update Supplier"},
	{Code: PrivSupplierDelete, Name: "Delete Supplier"},
	// Stock movements
	{Code: PrivTransactionCreate, Name: "Post Transaction"},
	// Reports
	{Code: PrivReportExport, Name: "Export Report"},
}
