package service

import (
	"sync"
	"testing"
	"time"

	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/ws"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2025, 7, 8, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fakeHub struct {
	mu     sync.Mutex
	events []ws.Event
}

func (h *fakeHub) Publish(e ws.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *fakeHub) actions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.events))
	for i, e := range h.events {
		out[i] = e.Action
	}
	return out
}

func (h *fakeHub) last() ws.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.events[len(h.events)-1]
}

func newDemoStore() *inventory.Store {
	return inventory.NewDemoStore(inventory.WithClock(clock))
}

func setupRepo(t *testing.T) repository.InventoryRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewInventoryRepo(db)
}
