// Package document renders assembled reports as PDF and XLSX files.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	colItem  = 100.0
	colQty   = 30.0
	colTotal = 50.0
	rowH     = 8.0
)

// Title is the heading used for both the document and the email subject.
func Title(r *entity.Report) string {
	return fmt.Sprintf("%s report %s", titleCase(r.Period), r.Date)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// RenderPDF draws the item table and the revenue, expenses and profit summary.
func RenderPDF(r *entity.Report) ([]byte, error) {
	return renderPDF(r, true)
}

// renderPDF draws text with the core Helvetica font, so UTF-8 input is
// translated to cp1252 first. Runes outside cp1252 print as '.'.
func renderPDF(r *entity.Report, compress bool) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(Title(r), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr(Title(r)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colItem, rowH, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, rowH, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, rowH, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if len(r.Items) == 0 {
		pdf.CellFormat(colItem+colQty+colTotal, rowH, "No sales in this period", "1", 1, "C", false, 0, "")
	}
	for _, it := range r.Items {
		pdf.CellFormat(colItem, rowH, tr(it.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, rowH, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, rowH, money(it.Total), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	summary := []struct {
		label string
		value decimal.Decimal
	}{
		{"Revenue", r.Revenue},
		{"Expenses", r.Expenses},
		{"Profit", r.Profit()},
	}
	for _, s := range summary {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(colItem+colQty, rowH, s.label, "", 0, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(colTotal, rowH, money(s.value), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("can't render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
