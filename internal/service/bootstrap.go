package service

import (
	"log"
	"time"

	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/repository"
)

// LoadInventory fills store with the mirrored state. When there is no state yet
// (or no repository) and seed is set, the demo catalogue is loaded and written back.
func LoadInventory(store *inventory.Store, repo repository.InventoryRepository, seed bool) error {
	if repo != nil {
		snap, err := repo.LoadAll()
		if err != nil {
			return err
		}
		if len(snap.Products) > 0 || len(snap.Suppliers) > 0 || len(snap.Transactions) > 0 {
			store.Load(snap)
			log.Printf("Loaded %d products, %d suppliers, %d transactions from database",
				len(snap.Products), len(snap.Suppliers), len(snap.Transactions))
			return nil
		}
	}

	if !seed {
		return nil
	}

	demo := inventory.DemoData(time.Now())
	store.Load(demo)
	if repo != nil {
		if err := repo.ReplaceAll(demo); err != nil {
			return err
		}
	}
	log.Println("✅ Demo inventory data seeded")
	return nil
}
