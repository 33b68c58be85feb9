// Package ui provides theme and color support for the primecheck command line.
// It defines ANSI color schemes, the Color* accessors used by the presenters
// and the lipgloss style of the verdict badge.
package ui
