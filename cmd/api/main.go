package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-inventory-tracker/internal/config"
	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/server"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/internal/ws"
	"go-inventory-tracker/pkg/database"
	"go-inventory-tracker/pkg/jwt"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database (optional mirror of the in-memory store)
	var repo repository.InventoryRepository
	if cfg.DBDriver != "" {
		db, err := database.ConnectDB(cfg.DBDriver, cfg.DatabaseURL, cfg.DBVerbose)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := repository.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		repo = repository.NewInventoryRepo(db)
	} else {
		log.Println("DB_DRIVER not set, running with in-memory inventory only")
	}

	// 3. Load or seed inventory
	store := inventory.NewStore(inventory.WithStrictProductLookup(cfg.StrictTransactions))
	if err := service.LoadInventory(store, repo, cfg.SeedDemoData); err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}

	// 4. Setup WebSocket Hub
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wsHub := ws.NewHub()
	go wsHub.Run(ctx)

	// 5. Dependency Injection (Wiring Layers)
	if cfg.AuthEnabled && cfg.UsesDefaultSecret() {
		log.Println("Warning: JWT_SECRET not set, using the development default")
	}
	authService := service.NewAuthService(jwt.NewManager(cfg.JWTSecret, 24*time.Hour), seedOperators(cfg)...)

	app := server.New(server.Deps{
		AppName:     cfg.AppName,
		AuthEnabled: cfg.AuthEnabled,
		RequestLog:  true,
		Inventory:   service.NewInventoryService(store, repo, wsHub),
		Dashboard:   service.NewDashboardService(store, repo),
		Reports:     service.NewReportService(store),
		Auth:        authService,
		Hub:         wsHub,
	})

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	cancel()

	log.Println("Server exited")
}

// seedOperators creates the admin (and optional clerk) accounts from configuration.
func seedOperators(cfg config.Config) []model.User {
	var users []model.User

	admin, err := service.NewOperator(cfg.AdminEmail, cfg.AdminPassword, "Administrator", model.RoleAdmin)
	if err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
	} else {
		users = append(users, admin)
		log.Printf("✅ Admin operator ready: %s", admin.Email)
	}

	if cfg.ClerkEmail != "" && cfg.ClerkPassword != "" {
		clerk, err := service.NewOperator(cfg.ClerkEmail, cfg.ClerkPassword, "Stock Clerk", model.RoleClerk)
		if err != nil {
			log.Printf("Warning: Failed to hash clerk password: %v", err)
		} else {
			users = append(users, clerk)
			log.Printf("✅ Clerk operator ready: %s", clerk.Email)
		}
	}
	return users
}
