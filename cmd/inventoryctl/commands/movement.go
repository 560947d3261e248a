package commands

import (
	"fmt"
	"strconv"

	"go-inventory-tracker/internal/report"
	"go-inventory-tracker/internal/service"

	"github.com/spf13/cobra"
)

func newMovementCmd(opts *options) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "movement",
		Short: "Show inbound and outbound units per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, repo, err := opts.load()
			if err != nil {
				return err
			}
			rows, err := service.NewDashboardService(store, repo).GetStockMovement(days)
			if err != nil {
				return err
			}

			t := report.Table{
				Title:   "Stock Movement",
				Summary: []string{fmt.Sprintf("Last %d days", days)},
				Headers: []string{"Date", "Inbound", "Outbound"},
				Align:   []string{"L", "R", "R"},
			}
			for _, r := range rows {
				t.Rows = append(t.Rows, []string{r.Date, strconv.Itoa(r.Inbound), strconv.Itoa(r.Outbound)})
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderText(t))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Number of days, today included")
	return cmd
}
