package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/icebreaker/internal/question"
)

func (a *App) renderQuestion() string {
	var b strings.Builder
	snap := a.state.session.Snapshot()
	width := min(70, a.width-4)

	title := styleTitle.Render("Ice Breaker Question")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var body string
	switch {
	case snap.Question != "":
		body = a.state.markdown.render(question.Markdown(snap.Style, snap.Question), width-4)
	case snap.Loading:
		body = styleSubtitle.Render("Thinking of a " + strings.ToLower(snap.Style) + " question...")
	default:
		body = styleSubtitle.Render("No question yet. Press [r] to try again.")
	}

	border := colorPrimary
	if snap.Loading {
		border = colorSecondary
	}
	box := styleBox.
		Width(width).
		BorderForeground(border).
		Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	meta := lipgloss.JoinHorizontal(lipgloss.Top,
		tag("Type", snap.Style, colorTypeTag),
		"   ",
		tag("Creativity", snap.Creativity.String(), colorLevelTag),
	)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, meta))
	b.WriteString("\n\n")

	if snap.Loading {
		loading := a.state.spinner.View() + styleSubtitle.Render(" Generating...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, loading))
		b.WriteString("\n\n")
	}

	if t := a.renderToast(); t != "" {
		b.WriteString(t)
		b.WriteString("\n\n")
	}

	var status string
	if snap.Loading {
		status = styleStatusBar.Render("[n] Start over  [q] Quit")
	} else {
		status = styleStatusBar.Render("[r] Generate new  [n] Start over  [+/-] Creativity  [c] Copy  [q] Quit")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
