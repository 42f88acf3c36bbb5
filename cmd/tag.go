package cmd

import (
	"fmt"

	"aisle/internal/budget"
	"aisle/internal/cli"
	"aisle/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagTagName   string
	flagTagManual float64
	flagTagUseSum bool
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage cost categories under a vendor",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <vendor-id> <name>",
	Short: "Add a cost category",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagAdd,
}

var tagListCmd = &cobra.Command{
	Use:   "ls <vendor-id>",
	Short: "List a vendor's cost categories",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagList,
}

var tagSetCmd = &cobra.Command{
	Use:   "set <vendor-id> <tag-id>",
	Short: "Update a category's name, manual total, or sum mode",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagSet,
}

var tagRemoveCmd = &cobra.Command{
	Use:   "rm <vendor-id> <tag-id>",
	Short: "Delete a category and its items",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagRemove,
}

var tagToggleCmd = &cobra.Command{
	Use:   "toggle <vendor-id> <tag-id>",
	Short: "Flip a category's selection, cascading to its items",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagToggle,
}

func init() {
	tagSetCmd.Flags().StringVar(&flagTagName, "name", "", "New category name")
	tagSetCmd.Flags().Float64Var(&flagTagManual, "manual-total", 0, "Manual total amount")
	tagSetCmd.Flags().BoolVar(&flagTagUseSum, "use-sum", true, "Sum items instead of using the manual total")

	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagSetCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagToggleCmd)
	rootCmd.AddCommand(tagCmd)
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	id := pc.sess.AddTag(args[0], args[1])
	if id == "" {
		return fmt.Errorf("vendor %s not found", args[0])
	}
	fmt.Printf("  Added category %q (id %s)\n", args[1], id)
	return nil
}

func runTagList(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	vendor := pc.sess.Plan().FindVendor(args[0])
	if vendor == nil {
		return fmt.Errorf("vendor %s not found", args[0])
	}

	if len(vendor.Tags) == 0 {
		fmt.Println("  No categories yet.")
		return nil
	}

	rows := make([][]string, 0, len(vendor.Tags))
	for _, t := range vendor.Tags {
		mode := "sum"
		if !t.UseSum {
			mode = "manual"
		}
		rows = append(rows, []string{
			cli.Checkbox(t.Selected) + " " + t.Name,
			t.ID,
			mode,
			fmt.Sprintf("%d", len(t.Items)),
			cli.FormatRupiah(budget.TagTotal(t)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   vendor.Name,
		Headers: []string{"Category", "ID", "Mode", "Items", "Total"},
		Rows:    rows,
	}))
	return nil
}

func runTagSet(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	var patch session.TagPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &flagTagName
	}
	if cmd.Flags().Changed("manual-total") {
		patch.ManualTotal = &flagTagManual
	}
	if cmd.Flags().Changed("use-sum") {
		patch.UseSum = &flagTagUseSum
	}

	pc.sess.UpdateTag(args[0], args[1], patch)
	fmt.Println("  Updated.")
	return nil
}

func runTagRemove(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	pc.sess.DeleteTag(args[0], args[1])
	fmt.Println("  Removed.")
	return nil
}

func runTagToggle(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	pc.sess.ToggleTag(args[0], args[1])
	printBudgetLine(pc.sess)
	return nil
}
