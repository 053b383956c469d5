package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elivatehq/planner/internal/branding"
	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/document"
	"github.com/elivatehq/planner/internal/plan"
)

func sampleDoc() *document.Document {
	y := plan.DefaultYearly()
	y.Vision.Statement = "A year of focused growth."
	y.Vision.TotalIncomeGoal = plan.NewMoney(5_000_000)
	y.Fiverr.IncomeGoal = plan.NewMoney(30_000)
	y.Ipas.Activities[0] = "Prospect 5 people"
	c := plan.DefaultCalculations()
	return document.BuildYearly("ELIVATE NETWORK", y, c, "ELV001", 2026)
}

func TestTextRenderContent(t *testing.T) {
	out, err := NewText(branding.Default()).Render(sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		"ELIVATE NETWORK",
		"Goal Plan 2026",
		"Member ID: ELV001",
		"A year of focused growth.",
		"₦5,000,000",
		"$30,000",
		"• Prospect 5 people",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestTextRenderAbsentPlaceholders(t *testing.T) {
	doc := document.BuildMonthly("T", plan.DefaultMonthly(), plan.DefaultCalculations(), "ELV001")
	out, err := NewText(branding.Default()).Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), document.Absent) {
		t.Error("absent values should render as the placeholder")
	}
}

func TestPDFRenderProducesPDF(t *testing.T) {
	out, err := NewPDF(branding.Default()).Render(sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", out[:min(8, len(out))])
	}
	if len(out) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestPDFRenderAllDocumentTypes(t *testing.T) {
	y := plan.DefaultYearly()
	c := plan.DefaultCalculations()
	docs := []*document.Document{
		document.BuildYearly("T", y, c, "ELV001", 2026),
		document.BuildMonthly("T", plan.DefaultMonthly(), c, "ELV001"),
		document.BuildGoalCard("T", y, c, "ELV001", 2026),
	}
	r := NewPDF(branding.Default())
	for _, doc := range docs {
		if _, err := r.Render(doc); err != nil {
			t.Errorf("Render(%s): %v", doc.Type, err)
		}
	}
}

// The preview and the print backend must agree on every digit; only the
// currency notation differs.
func TestBackendsShareDigits(t *testing.T) {
	symbol := calc.Format(5_000_000, calc.NGN)
	code := calc.FormatCode(5_000_000, calc.NGN)
	if strings.TrimPrefix(symbol, "₦") != strings.TrimPrefix(code, "NGN ") {
		t.Errorf("digit mismatch: %q vs %q", symbol, code)
	}
}
