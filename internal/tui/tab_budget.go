package tui

import (
	"fmt"
	"strings"

	"aisle/internal/budget"
	"aisle/internal/cli"
	"aisle/internal/model"
	"aisle/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// budgetState tracks cursor position in the vendor tree.
type budgetState struct {
	cursor int
}

type rowKind int

const (
	rowVendor rowKind = iota
	rowTag
	rowItem
)

// budgetRow is one visible line of the flattened vendor tree.
type budgetRow struct {
	kind     rowKind
	vendorID string
	tagID    string
	itemID   string
	label    string
	amount   float64
	selected bool
}

// budgetRows flattens the plan tree into display order: each vendor,
// then its tags, then each tag's items.
func budgetRows(plan *model.WeddingPlan) []budgetRow {
	if plan == nil {
		return nil
	}
	var rows []budgetRow
	for _, v := range plan.Vendors {
		rows = append(rows, budgetRow{
			kind:     rowVendor,
			vendorID: v.ID,
			label:    v.Name,
			amount:   budget.VendorTotal(v),
			selected: v.Selected,
		})
		for _, t := range v.Tags {
			rows = append(rows, budgetRow{
				kind:     rowTag,
				vendorID: v.ID,
				tagID:    t.ID,
				label:    t.Name,
				amount:   budget.TagTotal(t),
				selected: t.Selected,
			})
			for _, it := range t.Items {
				rows = append(rows, budgetRow{
					kind:     rowItem,
					vendorID: v.ID,
					tagID:    t.ID,
					itemID:   it.ID,
					label:    it.Name,
					amount:   it.Total(),
					selected: it.Selected,
				})
			}
		}
	}
	return rows
}

func (a App) updateBudget(key string) (tea.Model, tea.Cmd) {
	rows := budgetRows(a.sess.Plan())

	switch key {
	case "j", "down":
		if a.budget.cursor < len(rows)-1 {
			a.budget.cursor++
		}
	case "k", "up":
		if a.budget.cursor > 0 {
			a.budget.cursor--
		}
	case " ", "space":
		if a.budget.cursor < len(rows) {
			row := rows[a.budget.cursor]
			switch row.kind {
			case rowVendor:
				a.sess.ToggleVendor(row.vendorID)
			case rowTag:
				a.sess.ToggleTag(row.vendorID, row.tagID)
			case rowItem:
				a.sess.ToggleItem(row.vendorID, row.tagID, row.itemID)
			}
		}
	}
	return a, nil
}

func (a App) viewBudget() string {
	t := theme.Active
	plan := a.sess.Plan()
	rows := budgetRows(plan)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	if len(rows) == 0 {
		return dimStyle.Render("  No vendors yet. Add one with `aisle vendor add`.")
	}

	vendorStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	tagStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	itemStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.Green)
	offStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Keep the cursor inside the visible window
	visible := a.height - 12
	if visible < 4 {
		visible = 4
	}
	offset := 0
	if a.budget.cursor >= visible {
		offset = a.budget.cursor - visible + 1
	}

	var b strings.Builder
	for i := offset; i < len(rows) && i < offset+visible; i++ {
		row := rows[i]

		cursor := "  "
		if i == a.budget.cursor {
			cursor = cursorStyle.Render("> ")
		}

		indent := strings.Repeat("  ", int(row.kind))
		style := vendorStyle
		switch row.kind {
		case rowTag:
			style = tagStyle
		case rowItem:
			style = itemStyle
		}
		if !row.selected {
			style = offStyle
		}

		amount := amountStyle.Render(cli.FormatRupiah(row.amount))
		if !row.selected {
			amount = offStyle.Render(cli.FormatRupiah(row.amount))
		}

		fmt.Fprintf(&b, " %s%s%s %s  %s\n",
			cursor, indent,
			style.Render(cli.Checkbox(row.selected)),
			style.Render(row.label),
			amount)
	}

	sum := budget.Breakdown(budget.SelectedItems(plan))
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	b.WriteString("\n")
	fmt.Fprintf(&b, "   %s %s   %s %s   %s %s\n",
		labelStyle.Render("Costs:"), amountStyle.Render(cli.FormatRupiah(sum.Total)),
		labelStyle.Render("Paid:"), amountStyle.Render(cli.FormatRupiah(sum.Paid)),
		labelStyle.Render("Remaining:"), cursorStyle.Render(cli.FormatRupiah(sum.Remaining)))

	return b.String()
}
