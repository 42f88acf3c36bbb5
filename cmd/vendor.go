package cmd

import (
	"fmt"

	"aisle/internal/budget"
	"aisle/internal/cli"
	"aisle/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagVendorName   string
	flagVendorManual float64
	flagVendorUseSum bool
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage vendors",
}

var vendorAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a vendor",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorAdd,
}

var vendorListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List vendors with their totals",
	RunE:  runVendorList,
}

var vendorSetCmd = &cobra.Command{
	Use:   "set <vendor-id>",
	Short: "Update a vendor's name, manual total, or sum mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorSet,
}

var vendorRemoveCmd = &cobra.Command{
	Use:   "rm <vendor-id>",
	Short: "Delete a vendor and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorRemove,
}

var vendorToggleCmd = &cobra.Command{
	Use:   "toggle <vendor-id>",
	Short: "Flip a vendor's selection, cascading to its tags and items",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorToggle,
}

func init() {
	vendorSetCmd.Flags().StringVar(&flagVendorName, "name", "", "New vendor name")
	vendorSetCmd.Flags().Float64Var(&flagVendorManual, "manual-total", 0, "Manual total amount")
	vendorSetCmd.Flags().BoolVar(&flagVendorUseSum, "use-sum", true, "Sum tags instead of using the manual total")

	vendorCmd.AddCommand(vendorAddCmd)
	vendorCmd.AddCommand(vendorListCmd)
	vendorCmd.AddCommand(vendorSetCmd)
	vendorCmd.AddCommand(vendorRemoveCmd)
	vendorCmd.AddCommand(vendorToggleCmd)
	rootCmd.AddCommand(vendorCmd)
}

func runVendorAdd(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	id := pc.sess.AddVendor(args[0])
	fmt.Printf("  Added vendor %q (id %s)\n", args[0], id)
	return nil
}

func runVendorList(cmd *cobra.Command, _ []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	plan := pc.sess.Plan()
	if len(plan.Vendors) == 0 {
		fmt.Println("  No vendors yet. Add one with `aisle vendor add`.")
		return nil
	}

	rows := make([][]string, 0, len(plan.Vendors))
	for _, v := range plan.Vendors {
		mode := "sum"
		if !v.UseSum {
			mode = "manual"
		}
		rows = append(rows, []string{
			cli.Checkbox(v.Selected) + " " + v.Name,
			v.ID,
			mode,
			fmt.Sprintf("%d", len(v.Tags)),
			cli.FormatRupiah(budget.VendorTotal(v)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   plan.Name,
		Headers: []string{"Vendor", "ID", "Mode", "Tags", "Total"},
		Rows:    rows,
	}))
	return nil
}

func runVendorSet(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	var patch session.VendorPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &flagVendorName
	}
	if cmd.Flags().Changed("manual-total") {
		patch.ManualTotal = &flagVendorManual
	}
	if cmd.Flags().Changed("use-sum") {
		patch.UseSum = &flagVendorUseSum
	}

	pc.sess.UpdateVendor(args[0], patch)
	fmt.Println("  Updated.")
	return nil
}

func runVendorRemove(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	pc.sess.DeleteVendor(args[0])
	fmt.Println("  Removed.")
	return nil
}

func runVendorToggle(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	pc.sess.ToggleVendor(args[0])
	printBudgetLine(pc.sess)
	return nil
}

func printBudgetLine(sess *session.Session) {
	fmt.Printf("  Budget: %s\n", cli.FormatRupiah(budget.Calculate(sess.Plan())))
}
