// Package report renders tabular inventory reports as PDF documents and
// terminal tables.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jung-kurt/gofpdf"
)

// Table is the format-neutral shape of a report.
type Table struct {
	Title       string     `json:"title"`
	GeneratedAt time.Time  `json:"generated_at"`
	Summary     []string   `json:"summary"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	// Align holds "L", "C" or "R" per column; missing entries default to "L".
	Align []string `json:"-"`
}

func (t Table) align(col int) string {
	if col < len(t.Align) && t.Align[col] != "" {
		return t.Align[col]
	}
	return "L"
}

const (
	pageWidth   = 190.0 // A4 portrait minus 10mm margins
	rowHeight   = 8.0
	titleHeight = 10.0
	margin      = 10.0
)

// RenderPDF lays t out on A4 pages, repeating the header row on every page.
func RenderPDF(t Table) ([]byte, error) {
	pdf := layout(t)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func layout(t Table) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(t.Title, true)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	// Core fonts are cp1252; text goes through the translator before it is drawn or measured.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, titleHeight, tr(t.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated "+t.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	for _, line := range t.Summary {
		pdf.CellFormat(0, 7, tr(line), "", 1, "L", false, 0, "")
	}
	if len(t.Summary) > 0 {
		pdf.Ln(4)
	}

	if len(t.Headers) == 0 {
		return pdf
	}
	width := pageWidth / float64(len(t.Headers))

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range t.Headers {
			ln := 0
			if i == len(t.Headers)-1 {
				ln = 1
			}
			pdf.CellFormat(width, rowHeight, fit(pdf, tr(h), width), "1", ln, "C", true, 0, "")
		}
		pdf.SetFont("Arial", "", 10)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, row := range t.Rows {
		if pdf.GetY()+rowHeight > pageHeight-margin {
			pdf.AddPage()
			header()
		}
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			ln := 0
			if i == len(t.Headers)-1 {
				ln = 1
			}
			pdf.CellFormat(width, rowHeight, fit(pdf, tr(cell), width), "1", ln, t.align(i), false, 0, "")
		}
	}
	return pdf
}

// fit shortens s with an ellipsis until it fits in a cell of width w.
// s is already cp1252, one byte per glyph.
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	const pad = 2.0
	if pdf.GetStringWidth(s) <= w-pad {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w-pad {
		s = s[:len(s)-1]
	}
	return s + "..."
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// RenderText draws t as a bordered terminal table.
func RenderText(t Table) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title))
	b.WriteString("\n")
	for _, line := range t.Summary {
		b.WriteString(summaryStyle.Render(line))
		b.WriteString("\n")
	}
	if len(t.Headers) == 0 {
		return b.String()
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if t.align(col) == "R" {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		})
	b.WriteString(tbl.String())
	b.WriteString("\n")
	return b.String()
}
