package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	choosing := []string{
		"  j/k, up/down   Move through styles",
		"  Enter          Ask for a question",
		"  s              Settings",
		"  q              Quit",
	}

	viewing := []string{
		"  r              Generate a new question",
		"  + / up         More creative",
		"  - / down       Less creative",
		"  c              Copy the question again",
		"  n, Esc         Start over",
	}

	sections := []struct {
		title string
		lines []string
	}{
		{"Choosing a style", choosing},
		{"Viewing a question", viewing},
	}

	for _, sec := range sections {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(sec.title)))
		b.WriteString("\n")
		box := styleBox.
			Width(50).
			Render(strings.Join(sec.lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
		b.WriteString("\n\n")
	}

	note := styleSubtitle.Render("Creativity changes apply to the next question you generate.")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, note))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
