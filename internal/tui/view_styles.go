package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/icebreaker/internal/question"
)

// styleItem implements list.DefaultItem for the catalog.
type styleItem struct {
	style question.Style
}

func (i styleItem) Title() string       { return i.style.Icon + "  " + i.style.Name }
func (i styleItem) Description() string { return i.style.Description }
func (i styleItem) FilterValue() string { return i.style.Name }

func newStyleList() list.Model {
	styles := question.Styles()
	items := make([]list.Item, len(styles))
	for i, s := range styles {
		items[i] = styleItem{style: s}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorPrimary).
		BorderForeground(colorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#9CA3AF")).
		BorderForeground(colorPrimary)

	l := list.New(items, delegate, 60, 14)
	l.Title = "Choose a question style..."
	l.Styles.Title = styleTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

func (a *App) renderStyles() string {
	var b strings.Builder

	listBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.styleList.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	if a.state.providerError != nil {
		b.WriteString(a.renderProviderError())
		b.WriteString("\n\n")
	} else if !a.state.providerReady {
		connecting := styleSubtitle.Render("Connecting to " + a.state.config.Provider + "...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, connecting))
		b.WriteString("\n\n")
	}

	if t := a.renderToast(); t != "" {
		b.WriteString(t)
		b.WriteString("\n\n")
	}

	creativity := tag("Creativity", a.state.session.Creativity().String(), colorLevelTag)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, creativity))
	b.WriteString("\n\n")

	var status string
	if a.state.providerError != nil {
		status = styleStatusBar.Render("[r] Retry  [s] Settings  [?] Help  [q] Quit")
	} else {
		status = styleStatusBar.Render("[j/k] Navigate  [Enter] Ask  [s] Settings  [?] Help  [q] Quit")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
