package receipt

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"paystubs/internal/domain/labels"
	"paystubs/internal/domain/payroll"
)

// brandCompany gets the branded header image; everyone else gets the
// default one.
const brandCompany = "atdev"

const (
	headerImageX     = 10
	headerImageY     = 10
	headerImageWidth = 40
)

// Composer renders one payroll record into a single-page PDF receipt.
type Composer struct {
	imageDir string
	grid     Grid
}

func NewComposer(imageDir string) *Composer {
	return &Composer{imageDir: imageDir, grid: DefaultGrid}
}

// Compose renders the receipt for one record and returns the PDF bytes.
func (c *Composer) Compose(companyName string, record payroll.Record, countryCode string) ([]byte, error) {
	set := labels.Resolve(countryCode)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	c.drawHeaderImage(pdf, companyName)

	width, height := pdf.GetPageSize()
	left, top, _, _ := pdf.GetMargins()
	page := Page{Width: width, Height: height, MarginLeft: left, MarginTop: top}

	for _, cell := range buildCells(set, record) {
		rect, err := c.grid.Place(cell, page)
		if err != nil {
			return nil, err
		}
		style := ""
		if cell.Bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 12)
		pdf.SetXY(rect.X, rect.Y)
		pdf.MultiCell(rect.W, rect.H, cell.Text, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Composer) drawHeaderImage(pdf *gofpdf.Fpdf, companyName string) {
	name := "default.png"
	if strings.EqualFold(strings.TrimSpace(companyName), brandCompany) {
		name = "atdev.png"
	}
	path := filepath.Join(c.imageDir, name)
	if _, err := os.Stat(path); err != nil {
		slog.Warn("header image missing, skipping", "path", path)
		return
	}
	// Zero height keeps the image's aspect ratio.
	pdf.Image(path, headerImageX, headerImageY, headerImageWidth, 0, false, "", 0, "")
}

// buildCells is the declarative payslip form: fixed grid coordinates,
// bold labels, plain values. The discounts heading sits in the last
// column only, so every cell stays inside the 6-column grid.
func buildCells(set labels.Set, record payroll.Record) []Cell {
	return []Cell{
		{Col: 3, Row: 1, ColSpan: 2, Text: set.Title, Bold: true},
		{Col: 6, Row: 4, Text: set.Discounts, Bold: true},
		{Col: 2, Row: 5, ColSpan: 2, Text: set.GrossSalary, Bold: true},
		{Col: 2, Row: 6, ColSpan: 2, Text: set.GrossPayment, Bold: true},
		{Col: 2, Row: 7, ColSpan: 2, Text: set.NetPayment, Bold: true},
		{Col: 4, Row: 5, ColSpan: 2, Text: set.SFS, Bold: true},
		{Col: 4, Row: 6, ColSpan: 2, Text: set.AFP, Bold: true},
		{Col: 4, Row: 7, ColSpan: 2, Text: set.ISR, Bold: true},
		{Col: 4, Row: 8, ColSpan: 2, Text: set.Other, Bold: true},
		{Col: 4, Row: 9, ColSpan: 2, Text: set.Total, Bold: true},

		{Col: 5, Row: 1, Text: record.Period},
		{Col: 3, Row: 2, ColSpan: 3, Text: record.FullName},
		{Col: 3, Row: 3, Text: record.Position},
		{Col: 3, Row: 5, Text: formatAmount(record.GrossSalary)},
		{Col: 3, Row: 6, Text: formatAmount(record.GrossPayment)},
		{Col: 3, Row: 7, Text: formatAmount(record.NetPayment)},
		{Col: 6, Row: 5, Text: formatAmount(record.SocialDiscountAmount)},
		{Col: 6, Row: 6, Text: formatAmount(record.HealthDiscountAmount)},
		{Col: 6, Row: 7, Text: formatAmount(record.TaxesDiscountAmount)},
		{Col: 6, Row: 8, Text: formatAmount(record.OtherDiscountAmount)},
		{Col: 6, Row: 9, Text: formatAmount(record.TotalDiscounts())},
	}
}

// formatAmount renders a value the way the legacy receipts did: the
// shortest decimal representation, with at least one decimal place
// (250 prints as "250.0").
func formatAmount(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}
