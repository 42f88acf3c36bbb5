package tui

import (
	"fmt"
	"strings"

	"aisle/internal/cli"
	"aisle/internal/tui/components"
	"aisle/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needLogin && a.loginForm != nil {
		return a.viewLogin()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	return fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  aisle needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
}

func (a App) viewLogin() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(titleStyle.Render("aisle · wedding planner"))
	b.WriteString("\n\n")
	if a.errLine != "" {
		b.WriteString(" ")
		b.WriteString(errStyle.Render(a.errLine))
		b.WriteString("\n\n")
	}
	b.WriteString(a.loginForm.View())
	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o b g", "Jump to tab"},
		{"tab", "Next tab"},
		{"j k", "Navigate lists"},
		{"space", "Toggle selection"},
		{"/", "Search guests"},
		{"esc", "Clear search"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-7s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	plan := a.sess.Plan()

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	name := "(no plan)"
	if plan != nil {
		name = plan.Name
	}
	header := " " + titleStyle.Render(name) + dimStyle.Render("  ·  aisle")

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.viewOverview()
	case tabBudget:
		content = a.viewBudget()
	case tabGuests:
		content = a.viewGuests()
	}

	status := a.syn.Status()

	errLine := a.errLine
	if errLine == "" {
		errLine = status.LastError
	}
	errRow := ""
	if errLine != "" {
		errRow = " " + errStyle.Render(errLine) + "\n"
	}

	syncAge := ""
	if !status.LastSynced.IsZero() || !status.LastPulled.IsZero() {
		last := status.LastSynced
		if status.LastPulled.After(last) {
			last = status.LastPulled
		}
		syncAge = cli.FormatAge(last)
	}
	if status.Dirty {
		syncAge = "pending"
	}

	body := header + "\n\n" +
		components.RenderTabBar(a.activeTab, a.width) + "\n\n" +
		content + "\n" + errRow

	// Pin the status bar to the bottom of the terminal
	bodyHeight := lipgloss.Height(body)
	pad := a.height - bodyHeight - 1
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}

	return body + components.RenderStatusBar(a.width, syncAge)
}
