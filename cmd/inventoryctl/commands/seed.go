package commands

import (
	"errors"
	"time"

	"go-inventory-tracker/internal/inventory"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo catalogue into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			if repo == nil {
				return errors.New("seed needs a database: pass --driver and --db")
			}

			w := cmd.OutOrStdout()
			snap, err := repo.LoadAll()
			if err != nil {
				return err
			}
			if !force && (len(snap.Products) > 0 || len(snap.Suppliers) > 0 || len(snap.Transactions) > 0) {
				warning(w, "Database already holds %d products; use --force to replace them", len(snap.Products))
				return nil
			}

			demo := inventory.DemoData(time.Now())
			if err := repo.ReplaceAll(demo); err != nil {
				return err
			}
			success(w, "Seeded %d products, %d suppliers, %d transactions",
				len(demo.Products), len(demo.Suppliers), len(demo.Transactions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace existing data")
	return cmd
}
