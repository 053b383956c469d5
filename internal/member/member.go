// Package member gates entry to the planner. IDs are checked against a
// fixed team allow-list plus any extra IDs supplied by configuration.
package member

import "strings"

var allowed = map[string]struct{}{
	"ELV001": {},
	"ELV002": {},
	"ELV003": {},
	"ELV004": {},
	"ELV010": {},
	"ELV123": {},
}

// Gate validates member IDs.
type Gate struct {
	extra map[string]struct{}
}

// NewGate returns a gate that accepts the built-in allow-list plus the
// given extra IDs. Extra IDs are normalized the same way input is.
func NewGate(extra []string) *Gate {
	g := &Gate{extra: make(map[string]struct{}, len(extra))}
	for _, id := range extra {
		g.extra[Normalize(id)] = struct{}{}
	}
	return g
}

// Normalize trims surrounding whitespace and uppercases the ID. Matching
// is always performed on the normalized form.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Allow reports whether the given raw ID may enter.
func (g *Gate) Allow(id string) bool {
	n := Normalize(id)
	if n == "" {
		return false
	}
	if _, ok := allowed[n]; ok {
		return true
	}
	_, ok := g.extra[n]
	return ok
}
