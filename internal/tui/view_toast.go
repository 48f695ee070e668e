package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/icebreaker/internal/question"
)

func (a *App) renderToast() string {
	t := a.state.toast
	if t == nil {
		return ""
	}

	color := colorSuccess
	icon := "[ok]"
	if t.kind == question.Failure {
		color = colorError
		icon = "[!]"
	}

	title := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + t.title)
	lines := []string{title}
	if t.message != "" {
		lines = append(lines, truncate(t.message, 200))
	}
	if t.kind == question.Failure {
		for _, hint := range suggestionsFor(t.message) {
			lines = append(lines, styleSubtitle.Render(hint))
		}
	}

	box := styleBox.
		Width(min(60, a.width-4)).
		BorderForeground(color).
		Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box)
}

func (a *App) renderProviderError() string {
	lines := []string{
		lipgloss.NewStyle().Foreground(colorError).Bold(true).Render("Cannot reach " + a.state.config.Provider),
		truncate(a.state.providerError.Error(), 200),
	}
	for _, hint := range suggestionsFor(a.state.providerError.Error()) {
		lines = append(lines, styleSubtitle.Render(hint))
	}

	box := styleBox.
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box)
}

// suggestionsFor returns hints based on error text.
func suggestionsFor(errMsg string) []string {
	errLower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(errLower, "api key") || strings.Contains(errLower, "401") || strings.Contains(errLower, "unauthorized"):
		return []string{
			"Check your API key in ~/.config/icebreaker/config.yaml",
			"Or press [s] to open settings",
		}
	case strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429"):
		return []string{
			"You've hit the API rate limit",
			"Wait a moment and try again",
		}
	case strings.Contains(errLower, "ollama"):
		return []string{
			"Make sure Ollama is running: ollama serve",
			"Or switch to a cloud provider in settings",
		}
	case strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") || strings.Contains(errLower, "timeout"):
		return []string{
			"Check your internet connection",
			"Or try using Ollama for offline mode",
		}
	case strings.Contains(errLower, "clipboard"):
		return []string{
			"Install xclip, xsel or wl-clipboard to enable copying",
		}
	}
	return nil
}
