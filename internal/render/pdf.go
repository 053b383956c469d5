package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/elivatehq/planner/internal/branding"
	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/document"
)

// A4 content area in points with the original layout's 40pt margins.
const (
	pdfMargin    = 40.0
	pdfPageWidth = 595.28
	pdfBodyWidth = pdfPageWidth - 2*pdfMargin
	pdfLine      = 15.0
)

// PDF renders documents as single-page-flow A4 PDFs in Helvetica.
type PDF struct {
	brand branding.Branding
}

// NewPDF returns a PDF renderer styled with the given branding.
func NewPDF(b branding.Branding) *PDF {
	return &PDF{brand: b}
}

// printMoney uses the ASCII currency code; the naira glyph is not in the
// core font set.
func printMoney(m document.MoneyValue) string {
	return calc.FormatCode(m.Amount, m.Currency)
}

// Render renders the document to PDF bytes.
func (p *PDF) Render(doc *document.Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pr, pg, pb := branding.RGB(p.brand.Theme.Primary)

	// header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(pr, pg, pb)
	pdf.CellFormat(pdfBodyWidth, 24, tr(doc.Team), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(pdfBodyWidth, pdfLine, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	for _, m := range doc.Meta {
		pdf.CellFormat(pdfBodyWidth, 12, tr(m), "", 1, "L", false, 0, "")
	}
	pdf.SetDrawColor(pr, pg, pb)
	pdf.SetLineWidth(2)
	y := pdf.GetY() + 6
	pdf.Line(pdfMargin, y, pdfPageWidth-pdfMargin, y)
	pdf.SetY(y + 10)

	for _, blk := range doc.Blocks {
		switch v := blk.(type) {
		case document.Heading:
			p.heading(pdf, tr, v)
		case document.KeyValue:
			p.keyValue(pdf, tr, v)
		case document.Paragraph:
			p.paragraph(pdf, tr, v)
		case document.List:
			p.list(pdf, tr, v)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s pdf: %w", doc.Type, err)
	}
	return buf.Bytes(), nil
}

func (p *PDF) heading(pdf *fpdf.Fpdf, tr func(string) string, h document.Heading) {
	pr, pg, pb := branding.RGB(p.brand.Theme.Primary)
	size := 13.0
	if h.Level > 1 {
		size = 11
	}
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", size)
	pdf.SetTextColor(pr, pg, pb)
	pdf.CellFormat(pdfBodyWidth, pdfLine, tr(h.Text), "", 1, "L", false, 0, "")
}

func (p *PDF) keyValue(pdf *fpdf.Fpdf, tr func(string) string, kv document.KeyValue) {
	half := pdfBodyWidth / 2
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(half, 13, tr(kv.Label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(half, 13, tr(kv.Value.Render(printMoney)), "", 1, "R", false, 0, "")
}

func (p *PDF) paragraph(pdf *fpdf.Fpdf, tr func(string) string, par document.Paragraph) {
	if par.Label != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(pdfBodyWidth, 12, tr(par.Label), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(15, 23, 42)
	pdf.MultiCell(pdfBodyWidth, 14, tr(orAbsent(par.Text)), "", "L", false)
	pdf.Ln(2)
}

func (p *PDF) list(pdf *fpdf.Fpdf, tr func(string) string, l document.List) {
	if l.Label != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(pdfBodyWidth, 12, tr(l.Label), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(15, 23, 42)
	if len(l.Items) == 0 {
		pdf.CellFormat(pdfBodyWidth, 13, tr(listEmpty(l)), "", 1, "L", false, 0, "")
		return
	}
	for _, item := range l.Items {
		pdf.MultiCell(pdfBodyWidth, 13, tr("• "+item), "", "L", false)
	}
	pdf.Ln(2)
}
