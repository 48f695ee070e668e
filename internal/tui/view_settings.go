package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/icebreaker/internal/config"
)

func maskKey(k string) string {
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}

func (a *App) renderSettings() string {
	var b strings.Builder
	cfg := a.state.config

	title := styleTitle.Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	providerName := cfg.Provider
	if p := config.GetProvider(cfg.Provider); p != nil {
		providerName = p.Name
	}

	status := "connecting"
	switch {
	case a.state.providerError != nil:
		status = "unavailable"
	case a.state.providerReady:
		status = "ready"
	}

	configLines := []string{
		fmt.Sprintf("  Provider:   %s (%s)", providerName, status),
		fmt.Sprintf("  Model:      %s", cfg.Model),
		fmt.Sprintf("  API Key:    %s", maskKey(cfg.APIKey)),
		fmt.Sprintf("  Creativity: %s", a.state.session.Creativity()),
	}
	if cfg.BaseURL != "" {
		configLines = append(configLines, fmt.Sprintf("  Base URL:   %s", cfg.BaseURL))
	}

	configBox := styleBox.
		Width(50).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	path := a.state.configPath
	if path == "" {
		path, _ = config.ConfigPath()
	}
	hint := styleSubtitle.Render("Edit " + path + " for models and base URLs")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, hint))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[r] Run setup again  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
