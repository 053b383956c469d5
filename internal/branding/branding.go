// Package branding holds the team label and color themes applied to the
// wizard UI and generated documents.
package branding

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTeam is the team label used when nothing else is configured.
const DefaultTeam = "ELIVATE NETWORK"

// DefaultTheme is the theme key used when the requested key is unknown.
const DefaultTheme = "green"

// Theme is one named brand color pairing. Primary drives headings and
// accents; Light is the soft background tint.
type Theme struct {
	Key     string
	Name    string
	Primary string
	Light   string
}

var themes = map[string]Theme{
	"green":   {Key: "green", Name: "Green", Primary: "#15803d", Light: "#f0fdf4"},
	"blue":    {Key: "blue", Name: "Blue", Primary: "#1e40af", Light: "#eff6ff"},
	"purple":  {Key: "purple", Name: "Purple", Primary: "#7e22ce", Light: "#faf5ff"},
	"orange":  {Key: "orange", Name: "Orange", Primary: "#c2410c", Light: "#fff7ed"},
	"red":     {Key: "red", Name: "Red", Primary: "#b91c1c", Light: "#fef2f2"},
	"teal":    {Key: "teal", Name: "Teal", Primary: "#0f766e", Light: "#f0fdfa"},
	"pink":    {Key: "pink", Name: "Pink", Primary: "#db2777", Light: "#fdf2f8"},
	"indigo":  {Key: "indigo", Name: "Indigo", Primary: "#4338ca", Light: "#eef2ff"},
	"cyan":    {Key: "cyan", Name: "Cyan", Primary: "#0891b2", Light: "#ecfeff"},
	"amber":   {Key: "amber", Name: "Amber", Primary: "#d97706", Light: "#fffbeb"},
	"emerald": {Key: "emerald", Name: "Emerald", Primary: "#059669", Light: "#ecfdf5"},
	"violet":  {Key: "violet", Name: "Violet", Primary: "#7c3aed", Light: "#f5f3ff"},
}

// All returns every theme sorted by key.
func All() []Theme {
	out := make([]Theme, 0, len(themes))
	for _, t := range themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ByKey returns the theme for the given key, falling back to the default
// when the key is unknown or empty.
func ByKey(key string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(key))]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// Known reports whether key names a theme.
func Known(key string) bool {
	_, ok := themes[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// Branding is the resolved team label plus theme, the only branding state
// the rest of the program consumes.
type Branding struct {
	Team  string
	Theme Theme
}

// Default returns the out-of-the-box branding.
func Default() Branding {
	return Branding{Team: DefaultTeam, Theme: ByKey(DefaultTheme)}
}

// Resolve builds a Branding from possibly-empty overrides. An empty team
// keeps the default label; an unknown theme key falls back to the default
// theme.
func Resolve(team, themeKey string) Branding {
	b := Default()
	if t := strings.TrimSpace(team); t != "" {
		b.Team = t
	}
	b.Theme = ByKey(themeKey)
	return b
}

// PrimaryColor returns the primary brand color for lipgloss styles.
func (b Branding) PrimaryColor() lipgloss.Color {
	return lipgloss.Color(b.Theme.Primary)
}

// StrongColor returns the primary darkened for emphasis.
func (b Branding) StrongColor() lipgloss.Color {
	return lipgloss.Color(Darken(b.Theme.Primary))
}

// SoftColor returns the primary lightened for soft accents.
func (b Branding) SoftColor() lipgloss.Color {
	return lipgloss.Color(Lighten(b.Theme.Primary))
}

// Darken returns hex scaled toward black by 25%.
func Darken(hex string) string {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return hex
	}
	scale := func(c int) int { return int(float64(c)*0.75 + 0.5) }
	return formatHex(scale(r), scale(g), scale(b))
}

// Lighten returns hex moved 25% of the way toward white.
func Lighten(hex string) string {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return hex
	}
	lift := func(c int) int {
		v := int(float64(c) + float64(255-c)*0.25 + 0.5)
		if v > 255 {
			v = 255
		}
		return v
	}
	return formatHex(lift(r), lift(g), lift(b))
}

// RGB decomposes a hex color into channel values, black on bad input.
func RGB(hex string) (r, g, b int) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

func parseHex(hex string) (r, g, b int, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("branding: bad hex color %q", hex)
	}
	parse := func(s string) (int, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return int(v), err
	}
	if r, err = parse(h[0:2]); err != nil {
		return 0, 0, 0, fmt.Errorf("branding: bad hex color %q", hex)
	}
	if g, err = parse(h[2:4]); err != nil {
		return 0, 0, 0, fmt.Errorf("branding: bad hex color %q", hex)
	}
	if b, err = parse(h[4:6]); err != nil {
		return 0, 0, 0, fmt.Errorf("branding: bad hex color %q", hex)
	}
	return r, g, b, nil
}

func formatHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
