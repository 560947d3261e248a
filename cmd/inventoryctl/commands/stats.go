package commands

import (
	"time"

	"go-inventory-tracker/internal/model"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.load()
			if err != nil {
				return err
			}
			s := store.Stats(time.Now().Format(model.DateLayout))
			w := cmd.OutOrStdout()
			field(w, "Total products", s.TotalProducts)
			field(w, "Total value", "$"+s.TotalValue.StringFixed(2))
			field(w, "Low stock items", s.LowStockItems)
			field(w, "Out of stock", s.OutOfStockItems)
			field(w, "Suppliers", s.TotalSuppliers)
			field(w, "Transactions today", s.TransactionsToday)
			return nil
		},
	}
}
