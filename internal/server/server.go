package server

import (
	"go-inventory-tracker/internal/handler"
	"go-inventory-tracker/internal/middleware"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Deps struct {
	AppName     string
	AuthEnabled bool
	// RequestLog enables the per-request access log.
	RequestLog bool

	Inventory service.InventoryService
	Dashboard service.DashboardService
	Reports   service.ReportService
	Auth      service.AuthService
	Hub       *ws.Hub
}

// New wires handlers and middleware into a Fiber app.
func New(d Deps) *fiber.App {
	invHandler := handler.NewInventoryHandler(d.Inventory)
	supHandler := handler.NewSupplierHandler(d.Inventory)
	dashHandler := handler.NewDashboardHandler(d.Dashboard)
	reportHandler := handler.NewReportHandler(d.Reports)
	authHandler := handler.NewAuthHandler(d.Auth)

	app := fiber.New(fiber.Config{
		AppName: d.AppName,
	})

	if d.RequestLog {
		app.Use(logger.New()) // Logging request
	}
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	guard := middleware.Anonymous()
	if d.AuthEnabled {
		guard = middleware.RequireAuth(d.Auth)
	}
	protected := api.Group("", guard)

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/charts", dashHandler.GetCharts)
	protected.Get("/dashboard/recent", dashHandler.GetRecentActivity)
	protected.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// Products
	protected.Get("/products", invHandler.GetProducts)
	protected.Get("/products/next-sku", invHandler.GetNextSKU)
	protected.Get("/products/:id", invHandler.GetProduct)
	protected.Post("/products", middleware.RequirePrivilege(model.PrivProductCreate), invHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequirePrivilege(model.PrivProductUpdate), invHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePrivilege(model.PrivProductDelete), invHandler.DeleteProduct)
	protected.Get("/categories", invHandler.GetCategories)

	// Suppliers
	protected.Get("/suppliers", supHandler.GetSuppliers)
	protected.Get("/suppliers/:id", supHandler.GetSupplier)
	protected.Post("/suppliers", middleware.RequirePrivilege(model.PrivSupplierCreate), supHandler.CreateSupplier)
	protected.Put("/suppliers/:id", middleware.RequirePrivilege(model.PrivSupplierUpdate), supHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", middleware.RequirePrivilege(model.PrivSupplierDelete), supHandler.DeleteSupplier)

	// Transactions
	protected.Get("/transactions", invHandler.GetTransactions)
	protected.Get("/transactions/:id", invHandler.GetTransaction)
	protected.Post("/transactions", middleware.RequirePrivilege(model.PrivTransactionCreate), invHandler.CreateTransaction)

	// Reports
	protected.Get("/reports/:type", reportHandler.GetReport)
	protected.Get("/reports/:type/pdf", middleware.RequirePrivilege(model.PrivReportExport), reportHandler.GetReportPDF)

	// WebSocket Route
	if d.Hub != nil {
		hub := d.Hub
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(func(c *websocket.Conn) {
			if !hub.Join(c) {
				return
			}
			defer hub.Leave(c)

			for {
				// Keep alive loop
				if _, _, err := c.ReadMessage(); err != nil {
					break
				}
			}
		}))
	}

	return app
}
