package commands

import (
	"fmt"
	"strconv"

	"go-inventory-tracker/internal/report"

	"github.com/spf13/cobra"
)

func newProductsCmd(opts *options) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.load()
			if err != nil {
				return err
			}
			products := store.FilterProducts(search, category)

			t := report.Table{
				Title:   "Products",
				Summary: []string{fmt.Sprintf("%d matching", len(products))},
				Headers: []string{"ID", "SKU", "Name", "Category", "Qty", "Price", "Status"},
				Align:   []string{"R", "L", "L", "L", "R", "R", "L"},
			}
			for _, p := range products {
				t.Rows = append(t.Rows, []string{
					strconv.Itoa(p.ID), p.SKU, p.Name, p.Category, strconv.Itoa(p.Quantity), p.Price.StringFixed(2), string(p.StockStatus()),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderText(t))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match name, SKU or description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Exact category")
	return cmd
}
