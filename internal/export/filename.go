package export

import (
	"strings"

	"github.com/elivatehq/planner/internal/document"
)

// Filename derives the deterministic download name:
// <Team>-<DocType>-<Name>.pdf with every non-alphanumeric character in
// the team and name parts replaced by a hyphen.
func Filename(doc *document.Document) string {
	return sanitize(doc.Team) + "-" + string(doc.Type) + "-" + sanitize(doc.Name) + ".pdf"
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
