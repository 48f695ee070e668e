package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer caches the glamour renderer for one wrap width and the
// last rendered document.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer

	input  string
	output string
}

// render falls back to the raw text when glamour cannot render.
func (m *markdownRenderer) render(input string, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if width <= 0 {
		width = 70
	}

	if m.renderer == nil || m.width != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithWordWrap(width),
			glamour.WithStandardStyle("dark"),
		)
		if err != nil {
			return input
		}
		m.renderer = renderer
		m.width = width
		m.input, m.output = "", ""
	}

	if m.output != "" && m.input == input {
		return m.output
	}

	rendered, err := m.renderer.Render(input)
	if err != nil {
		return input
	}
	m.input = input
	m.output = strings.Trim(rendered, "\n")
	return m.output
}
