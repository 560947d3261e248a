package commands

import (
	"fmt"
	"os"

	"go-inventory-tracker/internal/config"
	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/pkg/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// options are the global flags shared by every command.
type options struct {
	driver  string
	dbURL   string
	verbose bool
}

// NewRootCmd builds the inventoryctl command tree.
func NewRootCmd() *cobra.Command {
	_ = godotenv.Load()
	cfg := config.Load()
	opts := &options{}

	root := &cobra.Command{
		Use:   "inventoryctl",
		Short: "Inspect and report on the inventory from the terminal",
		Long: `inventoryctl reads the same inventory the API serves.

Without --driver it works on the built-in demo catalogue in memory; with
--driver postgres|sqlite it loads the mirrored state from that database.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.driver, "driver", cfg.DBDriver, "Database driver: postgres, sqlite or empty for the in-memory demo data")
	root.PersistentFlags().StringVar(&opts.dbURL, "db", cfg.DatabaseURL, "Database connection URL or sqlite file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log SQL statements")

	root.AddCommand(
		newStatsCmd(opts),
		newProductsCmd(opts),
		newReportCmd(opts),
		newMovementCmd(opts),
		newSeedCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) repository() (repository.InventoryRepository, error) {
	if o.driver == "" {
		return nil, nil
	}
	db, err := database.ConnectDB(o.driver, o.dbURL, o.verbose)
	if err != nil {
		return nil, err
	}
	if err := repository.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return repository.NewInventoryRepo(db), nil
}

// load returns a store filled from the database, or the demo data when no driver is set.
func (o *options) load() (*inventory.Store, repository.InventoryRepository, error) {
	repo, err := o.repository()
	if err != nil {
		return nil, nil, err
	}
	store := inventory.NewStore()
	if err := service.LoadInventory(store, repo, repo == nil); err != nil {
		return nil, nil, err
	}
	return store, repo, nil
}
