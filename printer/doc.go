// Package printer renders a sequence of engine.Result values for
// display. Plain uses only fmt; Styled additionally colors by
// distance band using github.com/charmbracelet/lipgloss.
package printer
