// Package render provides the two backends over the document model: a
// lipgloss terminal renderer for the on-screen preview and an fpdf
// renderer for the printed document. Both consume the same block tree.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elivatehq/planner/internal/branding"
	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/document"
)

const previewWidth = 72

// Text renders documents as styled terminal output.
type Text struct {
	brand branding.Branding

	team    lipgloss.Style
	title   lipgloss.Style
	meta    lipgloss.Style
	heading lipgloss.Style
	sub     lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	body    lipgloss.Style
	rule    lipgloss.Style
}

// NewText returns a terminal renderer styled with the given branding.
func NewText(b branding.Branding) *Text {
	muted := lipgloss.Color("245")
	return &Text{
		brand:   b,
		team:    lipgloss.NewStyle().Bold(true).Foreground(b.PrimaryColor()),
		title:   lipgloss.NewStyle().Foreground(b.StrongColor()),
		meta:    lipgloss.NewStyle().Foreground(muted),
		heading: lipgloss.NewStyle().Bold(true).Foreground(b.PrimaryColor()).MarginTop(1),
		sub:     lipgloss.NewStyle().Foreground(b.SoftColor()),
		label:   lipgloss.NewStyle().Foreground(muted).Width(28),
		value:   lipgloss.NewStyle().Bold(true),
		body:    lipgloss.NewStyle().Width(previewWidth).PaddingLeft(2),
		rule:    lipgloss.NewStyle().Foreground(b.PrimaryColor()),
	}
}

func previewMoney(m document.MoneyValue) string {
	return calc.Format(m.Amount, m.Currency)
}

// Render renders the document as terminal markup. It never fails; the
// error return satisfies the export pipeline's renderer contract.
func (t *Text) Render(doc *document.Document) ([]byte, error) {
	var b strings.Builder

	b.WriteString(t.team.Render(doc.Team) + "\n")
	b.WriteString(t.title.Render(doc.Title) + "\n")
	for _, m := range doc.Meta {
		b.WriteString(t.meta.Render(m) + "\n")
	}
	b.WriteString(t.rule.Render(strings.Repeat("─", previewWidth)) + "\n")

	for _, blk := range doc.Blocks {
		switch v := blk.(type) {
		case document.Heading:
			style := t.heading
			if v.Level > 1 {
				style = t.sub
			}
			b.WriteString(style.Render(v.Text) + "\n")
		case document.KeyValue:
			row := lipgloss.JoinHorizontal(lipgloss.Top,
				t.label.Render(v.Label),
				t.value.Render(v.Value.Render(previewMoney)),
			)
			b.WriteString(row + "\n")
		case document.Paragraph:
			if v.Label != "" {
				b.WriteString(t.meta.Render(v.Label) + "\n")
			}
			b.WriteString(t.body.Render(orAbsent(v.Text)) + "\n")
		case document.List:
			if v.Label != "" {
				b.WriteString(t.meta.Render(v.Label) + "\n")
			}
			if len(v.Items) == 0 {
				b.WriteString(t.body.Render(listEmpty(v)) + "\n")
				continue
			}
			for _, item := range v.Items {
				b.WriteString(t.body.Render("• "+item) + "\n")
			}
		}
	}

	return []byte(b.String()), nil
}

func orAbsent(s string) string {
	if s == "" {
		return document.Absent
	}
	return s
}

func listEmpty(l document.List) string {
	if l.Empty != "" {
		return l.Empty
	}
	return document.Absent
}
