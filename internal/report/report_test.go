package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(rows int) Table {
	t := Table{
		Title:       "Inventory Report",
		GeneratedAt: time.Date(2025, 7, 8, 9, 30, 0, 0, time.UTC),
		Summary:     []string{"Products: 3", "Total value: 29649.55"},
		Headers:     []string{"SKU", "Name", "Quantity", "Value"},
		Align:       []string{"L", "L", "R", "R"},
	}
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("PROD-%03d", i+1), "Wireless Mouse", "5", "149.95"})
	}
	return t
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(sampleTable(3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderPDFPaginates(t *testing.T) {
	assert.Equal(t, 1, layout(sampleTable(1)).PageCount())
	assert.Greater(t, layout(sampleTable(200)).PageCount(), 1)
}

func TestRenderPDFWithoutRows(t *testing.T) {
	out, err := RenderPDF(Table{Title: "Low Stock Report", Summary: []string{"No items"}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderPDFEncodesAccentedText(t *testing.T) {
	tbl := sampleTable(0)
	tbl.Rows = [][]string{{"PROD-004", "Café Table", "2", "300.00"}}

	pdf := layout(tbl)
	pdf.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	assert.Contains(t, buf.String(), "Caf\xe9 Table")
	assert.NotContains(t, buf.String(), "CafÃ")
}

func TestFitTruncatesTranslatedText(t *testing.T) {
	pdf := layout(sampleTable(0))
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	long := tr("Crème brûlée dessert plates, porcelain, set of twelve")
	got := fit(pdf, long, 30)
	assert.True(t, len(got) < len(long))
	assert.True(t, bytes.HasSuffix([]byte(got), []byte("...")))
	assert.LessOrEqual(t, pdf.GetStringWidth(got), 28.0)
	assert.Equal(t, "Cr\xe8", got[:3])
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleTable(2))
	assert.Contains(t, out, "Inventory Report")
	assert.Contains(t, out, "Total value: 29649.55")
	assert.Contains(t, out, "PROD-002")
	assert.Contains(t, out, "Quantity")
}
