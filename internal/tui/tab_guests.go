package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aisle/internal/budget"
	"aisle/internal/cli"
	"aisle/internal/model"
	"aisle/internal/session"
	"aisle/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// guestsState tracks cursor and search state in the guest list.
type guestsState struct {
	cursor      int
	searching   bool
	searchQuery string
	searchInput textinput.Model
}

// guestSavedMsg reports the result of a guest write to the datastore.
type guestSavedMsg struct {
	err error
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "guest name..."
	ti.Prompt = "/"
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// filteredGuests applies the search query to the guest list.
func (a App) filteredGuests() []model.Guest {
	guests := a.sess.Guests()
	q := strings.ToLower(a.guests.searchQuery)
	if q == "" {
		return guests
	}
	var out []model.Guest
	for _, g := range guests {
		if strings.Contains(strings.ToLower(g.Name), q) ||
			strings.Contains(strings.ToLower(g.Group), q) {
			out = append(out, g)
		}
	}
	return out
}

func (a App) updateGuests(key string) (tea.Model, tea.Cmd) {
	guests := a.filteredGuests()

	switch key {
	case "/":
		a.guests.searching = true
		a.guests.searchInput = newSearchInput()
		a.guests.searchInput.Focus()
		return a, a.guests.searchInput.Cursor.BlinkCmd()
	case "esc":
		if a.guests.searchQuery != "" {
			a.guests.searchQuery = ""
			a.guests.cursor = 0
		}
	case "j", "down":
		if a.guests.cursor < len(guests)-1 {
			a.guests.cursor++
		}
	case "k", "up":
		if a.guests.cursor > 0 {
			a.guests.cursor--
		}
	case " ", "space":
		if a.guests.cursor < len(guests) {
			g := guests[a.guests.cursor]
			next := !g.Selected
			return a, toggleGuestCmd(a.sess, g.ID, next)
		}
	}
	return a, nil
}

func (a App) updateGuestsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.guests.searching = false
		a.guests.searchQuery = strings.TrimSpace(a.guests.searchInput.Value())
		a.guests.cursor = 0
		return a, nil
	case "esc":
		a.guests.searching = false
		a.guests.searchQuery = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.guests.searchInput, cmd = a.guests.searchInput.Update(msg)
	return a, cmd
}

// toggleGuestCmd flips a guest's attending flag. Guest updates go to the
// datastore first and apply locally only on success, so the write runs
// off the update loop.
func toggleGuestCmd(sess *session.Session, guestID string, selected bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := sess.UpdateGuest(ctx, guestID, session.GuestPatch{Selected: &selected})
		return guestSavedMsg{err: err}
	}
}

func (a App) viewGuests() string {
	t := theme.Active
	all := a.sess.Guests()
	guests := a.filteredGuests()

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	if a.guests.searching {
		b.WriteString(" " + a.guests.searchInput.View() + "\n\n")
	} else if a.guests.searchQuery != "" {
		fmt.Fprintf(&b, " %s %s  %s\n\n",
			mutedStyle.Render("Filter:"),
			cursorStyle.Render(a.guests.searchQuery),
			dimStyle.Render("[esc]clear"))
	}

	if len(all) == 0 {
		b.WriteString(dimStyle.Render("  No guests yet. Add one with `aisle guest add`."))
		return b.String()
	}
	if len(guests) == 0 {
		b.WriteString(dimStyle.Render("  No guests match."))
		return b.String()
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	offStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	visible := a.height - 14
	if visible < 4 {
		visible = 4
	}
	offset := 0
	if a.guests.cursor >= visible {
		offset = a.guests.cursor - visible + 1
	}

	for i := offset; i < len(guests) && i < offset+visible; i++ {
		g := guests[i]

		cursor := "  "
		if i == a.guests.cursor {
			cursor = cursorStyle.Render("> ")
		}

		style := nameStyle
		if !g.Selected {
			style = offStyle
		}

		group := ""
		if g.Group != "" {
			group = mutedStyle.Render("  " + g.Group)
		}

		fmt.Fprintf(&b, " %s%s %s%s  %s\n",
			cursor,
			style.Render(cli.Checkbox(g.Selected)),
			style.Render(g.Name),
			group,
			mutedStyle.Render(cli.FormatCount(g.Occupancy)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "   %s %s",
		mutedStyle.Render("Attending:"),
		cursorStyle.Render(cli.FormatCount(budget.GuestCount(all))))

	groups := budget.GuestsByGroup(all)
	if len(groups) > 1 {
		var parts []string
		for _, gc := range groups {
			parts = append(parts, fmt.Sprintf("%s %d", gc.Group, gc.Count))
		}
		b.WriteString(mutedStyle.Render("  (" + strings.Join(parts, ", ") + ")"))
	}
	b.WriteString("\n")

	return b.String()
}
