package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/internal/ws"
	"go-inventory-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, authEnabled bool) *fiber.App {
	t.Helper()
	store := inventory.NewDemoStore()
	admin, err := service.NewOperator("admin@example.com", "admin123", "Administrator", model.RoleAdmin)
	require.NoError(t, err)
	clerk, err := service.NewOperator("clerk@example.com", "clerk123", "Clerk", model.RoleClerk)
	require.NoError(t, err)

	return New(Deps{
		AppName:     "test",
		AuthEnabled: authEnabled,
		Inventory:   service.NewInventoryService(store, nil, ws.NewHub()),
		Dashboard:   service.NewDashboardService(store, nil),
		Reports:     service.NewReportService(store),
		Auth:        service.NewAuthService(jwt.NewManager("test-secret", time.Hour), admin, clerk),
		Hub:         ws.NewHub(),
	})
}

func do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, body := do(t, app, "POST", "/api/v1/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, 200, resp.StatusCode, string(body))
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Token
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := newTestApp(t, true)
	resp, _ := do(t, app, "POST", "/api/v1/auth/login", "", map[string]string{"email": "admin@example.com", "password": "nope"})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	app := newTestApp(t, true)
	resp, _ := do(t, app, "GET", "/api/v1/products", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestProductCRUD(t *testing.T) {
	app := newTestApp(t, true)
	token := login(t, app, "admin@example.com", "admin123")

	resp, body := do(t, app, "GET", "/api/v1/products/next-sku", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"sku":"PROD-004"}`, string(body))

	resp, body = do(t, app, "POST", "/api/v1/products", token, map[string]interface{}{
		"sku": "PROD-004", "name": "Standing Desk", "category": "Furniture",
		"price": 450.5, "quantity": 3, "reorder_level": 1, "supplier": "Office Furnishings Co",
	})
	require.Equal(t, 201, resp.StatusCode, string(body))

	resp, body = do(t, app, "GET", "/api/v1/products/4", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	var p model.Product
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "Standing Desk", p.Name)
	assert.Equal(t, "450.5", p.Price.String())
	assert.Equal(t, "admin@example.com", p.CreatedBy)

	resp, _ = do(t, app, "PUT", "/api/v1/products/4", token, map[string]interface{}{"quantity": 0})
	require.Equal(t, 200, resp.StatusCode)

	resp, body = do(t, app, "GET", "/api/v1/products?category=Furniture", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	var furniture []model.Product
	require.NoError(t, json.Unmarshal(body, &furniture))
	require.Len(t, furniture, 2)
	assert.Equal(t, model.StatusOutOfStock, furniture[1].StockStatus())

	resp, _ = do(t, app, "DELETE", "/api/v1/products/4", token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = do(t, app, "DELETE", "/api/v1/products/4", token, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateProductValidation(t *testing.T) {
	app := newTestApp(t, true)
	token := login(t, app, "admin@example.com", "admin123")

	tests := []struct {
		name  string
		body  map[string]interface{}
		field string
	}{
		{"missing name", map[string]interface{}{"sku": "X-1", "category": "Misc", "price": 1}, "name"},
		{"negative price", map[string]interface{}{"sku": "X-1", "name": "Thing", "category": "Misc", "price": -1}, "price"},
		{"duplicate sku", map[string]interface{}{"sku": "PROD-001", "name": "Thing", "category": "Misc", "price": 1}, "sku"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, app, "POST", "/api/v1/products", token, tt.body)
			require.Equal(t, 400, resp.StatusCode)
			var out map[string]string
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.field, out["field"])
		})
	}
}

func TestClerkCanPostButNotEditCatalogue(t *testing.T) {
	app := newTestApp(t, true)
	token := login(t, app, "clerk@example.com", "clerk123")

	resp, _ := do(t, app, "DELETE", "/api/v1/products/1", token, nil)
	assert.Equal(t, 403, resp.StatusCode)

	resp, body := do(t, app, "POST", "/api/v1/transactions", token, map[string]interface{}{
		"product_name": "Wireless Mouse", "transaction_type": "out", "quantity": 100, "price": 29.99,
	})
	require.Equal(t, 201, resp.StatusCode, string(body))

	resp, body = do(t, app, "GET", "/api/v1/products/3", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	var mouse model.Product
	require.NoError(t, json.Unmarshal(body, &mouse))
	assert.Equal(t, 0, mouse.Quantity)

	resp, body = do(t, app, "GET", "/api/v1/transactions?type=out", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	var outs []model.Transaction
	require.NoError(t, json.Unmarshal(body, &outs))
	assert.Len(t, outs, 2)
}

func TestTransactionValidationAndLookup(t *testing.T) {
	app := newTestApp(t, false)

	resp, _ := do(t, app, "POST", "/api/v1/transactions", "", map[string]interface{}{
		"product_name": "Laptop Computer", "transaction_type": "Stock In", "quantity": 0, "price": 10,
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = do(t, app, "GET", "/api/v1/transactions/1", "", nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = do(t, app, "GET", "/api/v1/transactions/99", "", nil)
	assert.Equal(t, 404, resp.StatusCode)
	resp, _ = do(t, app, "GET", "/api/v1/transactions?type=sideways", "", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSupplierRoutes(t *testing.T) {
	app := newTestApp(t, false)

	resp, body := do(t, app, "POST", "/api/v1/suppliers", "", map[string]interface{}{"name": "Paper Mill", "email": "not-an-email"})
	require.Equal(t, 400, resp.StatusCode, string(body))

	resp, _ = do(t, app, "POST", "/api/v1/suppliers", "", map[string]interface{}{"name": "Paper Mill", "email": "orders@papermill.test"})
	require.Equal(t, 201, resp.StatusCode)

	resp, _ = do(t, app, "PUT", "/api/v1/suppliers/3", "", map[string]interface{}{"contact_person": "Lee"})
	require.Equal(t, 200, resp.StatusCode)

	resp, body = do(t, app, "GET", "/api/v1/suppliers/3", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	var s model.Supplier
	require.NoError(t, json.Unmarshal(body, &s))
	assert.Equal(t, "Lee", s.ContactPerson)

	resp, _ = do(t, app, "DELETE", "/api/v1/suppliers/3", "", nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = do(t, app, "GET", "/api/v1/suppliers/abc", "", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDashboardRoutes(t *testing.T) {
	app := newTestApp(t, false)

	resp, body := do(t, app, "GET", "/api/v1/dashboard/stats", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, "29649.55", stats["total_value"])
	assert.EqualValues(t, 1, stats["low_stock_items"])

	resp, body = do(t, app, "GET", "/api/v1/dashboard/recent?limit=1", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	var recent []model.Transaction
	require.NoError(t, json.Unmarshal(body, &recent))
	assert.Len(t, recent, 1)

	resp, _ = do(t, app, "GET", "/api/v1/dashboard/charts", "", nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = do(t, app, "GET", "/api/v1/categories", "", nil)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestReportRoutes(t *testing.T) {
	app := newTestApp(t, false)

	resp, body := do(t, app, "GET", "/api/v1/reports/low-stock", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), "Wireless Mouse")

	resp, body = do(t, app, "GET", "/api/v1/reports/inventory/pdf", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, _ = do(t, app, "GET", "/api/v1/reports/profit", "", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	app := newTestApp(t, false)
	resp, _ := do(t, app, "GET", "/ws", "", nil)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
