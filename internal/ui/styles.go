package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used for console output.

var (
	passColor = lipgloss.Color("46")  // Green
	failColor = lipgloss.Color("196") // Red
)

// Console renders status markers for a specific output. Colors are only
// emitted when that output is a color-capable terminal.
type Console struct {
	passStyle lipgloss.Style
	failStyle lipgloss.Style
}

// NewConsole creates a Console bound to w. noColor forces plain text.
func NewConsole(w io.Writer, noColor bool) *Console {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return newConsole(r)
}

func newConsole(r *lipgloss.Renderer) *Console {
	return &Console{
		passStyle: r.NewStyle().Foreground(passColor).Bold(true),
		failStyle: r.NewStyle().Foreground(failColor).Bold(true),
	}
}

func (c *Console) Pass(text string) string {
	return c.passStyle.Render(text)
}

func (c *Console) Fail(text string) string {
	return c.failStyle.Render(text)
}
