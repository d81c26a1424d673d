package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/focus/internal/models"
	"github.com/tgienger/focus/internal/ui/styles"
)

// FocusSentence reports the raw elapsed seconds
func FocusSentence(seconds int) string {
	return fmt.Sprintf("You've been focused for %d seconds", seconds)
}

// RenderSession renders the timer panel
func RenderSession(s *styles.Styles, formattedTime string, seconds, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.PanelTitle.Render("Focus Session"),
		s.TimerValue.Render(formattedTime),
		s.TitleMuted.Render(FocusSentence(seconds)),
	)
	return s.Panel.Width(max(width-2, 20)).Align(lipgloss.Center).Render(content)
}

// RenderStats renders the total and completed counters side by side
func RenderStats(s *styles.Styles, stats models.Stats, width int) string {
	half := max((width-4)/2, 12)

	total := lipgloss.JoinVertical(lipgloss.Center,
		s.StatTotal.Render(fmt.Sprint(stats.Total)),
		s.StatLabel.Render("Total Tasks"),
	)
	completed := lipgloss.JoinVertical(lipgloss.Center,
		s.StatCompleted.Render(fmt.Sprint(stats.Completed)),
		s.StatLabel.Render("Completed"),
	)

	cell := lipgloss.NewStyle().Width(half).Align(lipgloss.Center)
	return lipgloss.JoinHorizontal(lipgloss.Top, cell.Render(total), cell.Render(completed))
}

// RenderHeader renders the app title and the theme indicator
func RenderHeader(s *styles.Styles, isDark bool, width int) string {
	title := s.Title.Render("Focus Tracker")

	// Shows the mode a toggle would switch to
	icon := "☾"
	if isDark {
		icon = "☀"
	}
	toggle := s.ThemeIcon.Render(icon) + " " + s.HelpKey.Render("ctrl+t")

	gap := max(width-lipgloss.Width(title)-lipgloss.Width(toggle)-2, 2)
	return title + lipgloss.NewStyle().Width(gap).Render("") + toggle
}
