package cmd

import (
	"fmt"

	"aisle/internal/budget"
	"aisle/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the budget total and cost/paid/remaining breakdown",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	plan := pc.sess.Plan()
	total := budget.Calculate(plan)
	breakdown := budget.Breakdown(budget.SelectedItems(plan))

	fmt.Println()
	fmt.Println(cli.RenderTitle(plan.Name))
	fmt.Println()

	rows := [][]string{
		{"Budget total", cli.FormatRupiah(total)},
		{"---"},
		{"Costs", cli.FormatRupiah(breakdown.Total)},
		{"Paid", cli.FormatRupiah(breakdown.Paid)},
		{"Remaining", cli.FormatRupiah(breakdown.Remaining)},
	}

	for _, v := range plan.Vendors {
		if !v.Selected {
			continue
		}
		rows = append(rows, []string{"  " + v.Name, cli.FormatRupiah(budget.VendorTotal(v))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: rows,
	}))
	return nil
}
