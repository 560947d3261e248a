package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go-inventory-tracker/internal/report"
	"go-inventory-tracker/internal/service"

	"github.com/spf13/cobra"
)

func newReportCmd(opts *options) *cobra.Command {
	var pdfPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "report <" + strings.Join(service.ReportKinds, "|") + ">",
		Short:     "Print a report or export it as PDF",
		Args:      cobra.ExactArgs(1),
		ValidArgs: service.ReportKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.load()
			if err != nil {
				return err
			}
			reports := service.NewReportService(store)
			kind := args[0]
			w := cmd.OutOrStdout()

			if asJSON {
				r, err := reports.Generate(kind)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}

			if pdfPath != "" {
				pdf, err := reports.PDF(kind)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", pdfPath, err)
				}
				success(w, "Wrote %s (%d bytes)", pdfPath, len(pdf))
				return nil
			}

			t, err := reports.Table(kind)
			if err != nil {
				return err
			}
			fmt.Fprint(w, report.RenderText(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write the report as PDF to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
