// Package document defines the single internal model for exportable
// documents. Builders assemble one block tree per logical document; the
// render backends consume that tree, so the preview and the printed PDF
// can never drift apart in content.
package document

import "github.com/elivatehq/planner/internal/calc"

// Type identifies a logical document. The value doubles as the document
// slug in generated filenames.
type Type string

const (
	TypeYearlyPlan  Type = "Yearly-Plan"
	TypeMonthlyPlan Type = "Monthly-Plan"
	TypeGoalCard    Type = "Goal-Card"
)

// Document is one renderable document: a branded header plus a flat
// sequence of blocks.
type Document struct {
	Type   Type
	Team   string
	Title  string
	Name   string // per-document name component of the export filename
	Meta   []string
	Blocks []Block
}

// Block is one content block. The concrete types are Heading, KeyValue,
// Paragraph, and List.
type Block interface {
	block()
}

// Heading starts a section. Level 1 headings open top-level sections;
// level 2 headings label sub-groups within one.
type Heading struct {
	Text  string
	Level int
}

// KeyValue is a label/value row.
type KeyValue struct {
	Label string
	Value Value
}

// Paragraph is free text, optionally labeled. Empty text renders as the
// absent placeholder.
type Paragraph struct {
	Label string
	Text  string
}

// List is a bulleted list. Empty is shown when no items survive
// filtering; when Empty is blank the absent placeholder is used.
type List struct {
	Label string
	Items []string
	Empty string
}

func (Heading) block()   {}
func (KeyValue) block()  {}
func (Paragraph) block() {}
func (List) block()      {}

// MoneyValue is a typed monetary amount inside a value. It stays
// unformatted until a render backend chooses its currency notation.
type MoneyValue struct {
	Amount   float64
	Currency calc.Currency
}

// Segment is one piece of a value: either literal text or money.
type Segment struct {
	Text  string
	Money *MoneyValue
}

// Value is the content of a KeyValue row. A value with no segments is
// absent and renders as the placeholder.
type Value struct {
	Segments []Segment
}

// Absent is the placeholder both backends render for missing values.
const Absent = "—"

// Text returns a plain-text value. An empty string yields an absent
// value.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Segments: []Segment{{Text: s}}}
}

// Money returns a typed money value.
func Money(amount float64, c calc.Currency) Value {
	return Value{Segments: []Segment{{Money: &MoneyValue{Amount: amount, Currency: c}}}}
}

// Join concatenates values, inserting sep between non-absent neighbors.
// Absent parts contribute the placeholder so positional values like
// "minimum | realistic | dream" keep their slots.
func Join(sep string, parts ...Value) Value {
	var out Value
	for i, p := range parts {
		if i > 0 {
			out.Segments = append(out.Segments, Segment{Text: sep})
		}
		if len(p.Segments) == 0 {
			out.Segments = append(out.Segments, Segment{Text: Absent})
			continue
		}
		out.Segments = append(out.Segments, p.Segments...)
	}
	return out
}

// Render flattens the value to a string, formatting each money segment
// with the backend's formatter. Absent values become the placeholder.
func (v Value) Render(formatMoney func(MoneyValue) string) string {
	if len(v.Segments) == 0 {
		return Absent
	}
	var s string
	for _, seg := range v.Segments {
		if seg.Money != nil {
			s += formatMoney(*seg.Money)
			continue
		}
		s += seg.Text
	}
	return s
}
