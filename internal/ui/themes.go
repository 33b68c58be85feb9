package ui

import (
	"fmt"
	"os"
	"slices"
	"sync/atomic"
)

// ThemeAuto picks the dark palette unless colors are disabled.
const ThemeAuto = "auto"

// Theme maps the color roles of the report to ANSI escape sequences.
// Every field is empty in NoColorTheme.
type Theme struct {
	Name string
	// Primary highlights strategy names and headings.
	Primary string
	// Secondary is used for segment and pool counts.
	Secondary string
	// Success marks prime verdicts and completed checks.
	Success string
	// Warning is used for timeouts and strategy disagreement.
	Warning string
	// Error marks failed checks.
	Error string
	// Info is used for durations and environment details.
	Info string

	Bold      string
	Underline string
	Reset     string
}

func fg256(code int) string { return fmt.Sprintf("\033[38;5;%dm", code) }

// palette builds a colored theme from 256-color codes, one per role in the
// order primary, secondary, success, warning, error, info.
func palette(name string, codes [6]int) Theme {
	return Theme{
		Name:      name,
		Primary:   fg256(codes[0]),
		Secondary: fg256(codes[1]),
		Success:   fg256(codes[2]),
		Warning:   fg256(codes[3]),
		Error:     fg256(codes[4]),
		Info:      fg256(codes[5]),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}
}

var (
	// DarkTheme uses bright colors for dark terminal backgrounds.
	DarkTheme = palette("dark", [6]int{39, 245, 82, 220, 196, 141})
	// LightTheme uses deeper colors for light terminal backgrounds.
	LightTheme = palette("light", [6]int{27, 240, 28, 130, 124, 54})
	// NoColorTheme disables every escape sequence.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	active atomic.Pointer[Theme]
)

func init() {
	Apply(DarkTheme)
}

// ThemeNames returns the selectable theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupTheme returns the theme registered under name.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// GetCurrentTheme returns the active theme. Safe for concurrent use.
func GetCurrentTheme() Theme {
	return *active.Load()
}

// Apply makes t the active theme and returns the one it replaces.
func Apply(t Theme) Theme {
	previous := active.Swap(&t)
	if previous == nil {
		return t
	}
	return *previous
}

// InitTheme activates the theme selected by name, or ThemeAuto. The
// noColor flag and a NO_COLOR environment variable (https://no-color.org/)
// both override the selection. Unknown names fall back to DarkTheme.
func InitTheme(name string, noColor bool) Theme {
	if noColor || os.Getenv("NO_COLOR") != "" {
		Apply(NoColorTheme)
		return NoColorTheme
	}
	t, ok := LookupTheme(name)
	if !ok {
		t = DarkTheme
	}
	Apply(t)
	return t
}
