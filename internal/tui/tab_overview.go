package tui

import (
	"fmt"
	"strings"

	"aisle/internal/budget"
	"aisle/internal/cli"
	"aisle/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewOverview() string {
	t := theme.Active
	plan := a.sess.Plan()
	guests := a.sess.Guests()

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Width(44)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	sum := budget.Breakdown(budget.SelectedItems(plan))

	var bb strings.Builder
	bb.WriteString(accentStyle.Render("Budget"))
	bb.WriteString("\n\n")
	fmt.Fprintf(&bb, "%s  %s\n", labelStyle.Render("Total costs"), valueStyle.Render(cli.FormatRupiah(sum.Total)))
	fmt.Fprintf(&bb, "%s         %s\n", labelStyle.Render("Paid"), greenStyle.Render(cli.FormatRupiah(sum.Paid)))
	fmt.Fprintf(&bb, "%s    %s", labelStyle.Render("Remaining"), accentStyle.Render(cli.FormatRupiah(sum.Remaining)))
	budgetCard := cardStyle.Render(bb.String())

	var gb strings.Builder
	gb.WriteString(accentStyle.Render("Guests"))
	gb.WriteString("\n\n")
	fmt.Fprintf(&gb, "%s    %s\n", labelStyle.Render("Attending"), valueStyle.Render(cli.FormatCount(budget.GuestCount(guests))))
	fmt.Fprintf(&gb, "%s      %s", labelStyle.Render("On list"), valueStyle.Render(fmt.Sprintf("%d", len(guests))))
	guestCard := cardStyle.Render(gb.String())

	nVendors, nSelected := 0, 0
	if plan != nil {
		nVendors = len(plan.Vendors)
		for _, v := range plan.Vendors {
			if v.Selected {
				nSelected++
			}
		}
	}

	var vb strings.Builder
	vb.WriteString(accentStyle.Render("Vendors"))
	vb.WriteString("\n\n")
	fmt.Fprintf(&vb, "%s     %s\n", labelStyle.Render("Booked in"), valueStyle.Render(fmt.Sprintf("%d of %d", nSelected, nVendors)))

	status := a.syn.Status()
	fmt.Fprintf(&vb, "%s  %s", labelStyle.Render("Last synced"), valueStyle.Render(cli.FormatAge(status.LastSynced)))
	vendorCard := cardStyle.Render(vb.String())

	if a.width >= 96 {
		top := lipgloss.JoinHorizontal(lipgloss.Top, budgetCard, " ", guestCard)
		return lipgloss.JoinVertical(lipgloss.Left, top, vendorCard)
	}
	return lipgloss.JoinVertical(lipgloss.Left, budgetCard, guestCard, vendorCard)
}
