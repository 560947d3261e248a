package service

import (
	"sort"
	"time"

	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
)

const (
	topStockedLimit     = 5
	defaultRecentLimit  = 5
	defaultMovementDays = 7
)

// StockBar is one bar of the top-stocked chart.
type StockBar struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Charts struct {
	CategoryBreakdown []inventory.CategoryQuantity `json:"category_breakdown"`
	TopStocked        []StockBar                   `json:"top_stocked"`
}

type DashboardService interface {
	GetDashboardStats() inventory.Stats
	GetCharts() Charts
	GetRecentActivity(limit int) []model.Transaction
	GetStockMovement(days int) ([]repository.StockMovementData, error)
}

type dashboardService struct {
	store *inventory.Store
	repo  repository.InventoryRepository
	now   func() time.Time
}

func NewDashboardService(store *inventory.Store, repo repository.InventoryRepository) DashboardService {
	return &dashboardService{store: store, repo: repo, now: time.Now}
}

func (s *dashboardService) GetDashboardStats() inventory.Stats {
	return s.store.Stats(s.now().Format(model.DateLayout))
}

func (s *dashboardService) GetCharts() Charts {
	top := s.store.TopStockedProducts(topStockedLimit)
	bars := make([]StockBar, len(top))
	for i, p := range top {
		bars[i] = StockBar{Name: p.Name, Quantity: p.Quantity}
	}
	return Charts{
		CategoryBreakdown: s.store.CategoryBreakdown(),
		TopStocked:        bars,
	}
}

func (s *dashboardService) GetRecentActivity(limit int) []model.Transaction {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.store.RecentTransactions(limit)
}

// GetStockMovement sums inbound and outbound quantities per day over the last
// days days, today included.
func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	if days <= 0 {
		days = defaultMovementDays
	}
	endDate := s.now()
	startDate := endDate.AddDate(0, 0, -(days - 1))
	start, end := startDate.Format(model.DateLayout), endDate.Format(model.DateLayout)

	if s.repo != nil {
		return s.repo.StockMovement(start, end)
	}

	byDate := map[string]*repository.StockMovementData{}
	for _, tx := range s.store.Transactions() {
		if tx.Date < start || tx.Date > end {
			continue
		}
		d, ok := byDate[tx.Date]
		if !ok {
			d = &repository.StockMovementData{Date: tx.Date}
			byDate[tx.Date] = d
		}
		switch tx.Type {
		case model.TxStockIn:
			d.Inbound += tx.Quantity
		case model.TxStockOut:
			d.Outbound += tx.Quantity
		}
	}

	out := make([]repository.StockMovementData, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
