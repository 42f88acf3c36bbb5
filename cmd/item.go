package cmd

import (
	"fmt"

	"aisle/internal/cli"
	"aisle/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagItemName  string
	flagItemCount float64
	flagItemPrice float64
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage line items under a category",
	Long: "Manage line items. An item contributes count*price to its category;\n" +
		"record a payment already made by entering a negative price.",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <vendor-id> <tag-id> <name>",
	Short: "Add a line item",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemAdd,
}

var itemListCmd = &cobra.Command{
	Use:   "ls <vendor-id> <tag-id>",
	Short: "List a category's line items",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemList,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <vendor-id> <tag-id> <item-id>",
	Short: "Update an item's name, count, or price",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemSet,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "rm <vendor-id> <tag-id> <item-id>",
	Short: "Delete a line item",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemRemove,
}

var itemToggleCmd = &cobra.Command{
	Use:   "toggle <vendor-id> <tag-id> <item-id>",
	Short: "Flip an item's selection, re-deriving its category and vendor",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemToggle,
}

func init() {
	itemAddCmd.Flags().Float64Var(&flagItemCount, "count", 1, "Quantity")
	itemAddCmd.Flags().Float64Var(&flagItemPrice, "price", 0, "Unit price (negative records a payment)")

	itemSetCmd.Flags().StringVar(&flagItemName, "name", "", "New item name")
	itemSetCmd.Flags().Float64Var(&flagItemCount, "count", 1, "Quantity")
	itemSetCmd.Flags().Float64Var(&flagItemPrice, "price", 0, "Unit price")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemSetCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	itemCmd.AddCommand(itemToggleCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	id := pc.sess.AddItem(args[0], args[1], args[2], flagItemCount, flagItemPrice)
	if id == "" {
		return fmt.Errorf("vendor %s or category %s not found", args[0], args[1])
	}
	fmt.Printf("  Added item %q (id %s)\n", args[2], id)
	return nil
}

func runItemList(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	vendor := pc.sess.Plan().FindVendor(args[0])
	if vendor == nil {
		return fmt.Errorf("vendor %s not found", args[0])
	}
	tag := vendor.FindTag(args[1])
	if tag == nil {
		return fmt.Errorf("category %s not found", args[1])
	}

	if len(tag.Items) == 0 {
		fmt.Println("  No items yet.")
		return nil
	}

	rows := make([][]string, 0, len(tag.Items))
	for _, i := range tag.Items {
		rows = append(rows, []string{
			cli.Checkbox(i.Selected) + " " + i.Name,
			i.ID,
			fmt.Sprintf("%g", i.Count),
			cli.FormatRupiah(i.Price),
			cli.FormatRupiah(i.Total()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   vendor.Name + " / " + tag.Name,
		Headers: []string{"Item", "ID", "Count", "Price", "Total"},
		Rows:    rows,
	}))
	return nil
}

func runItemSet(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	var patch session.ItemPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &flagItemName
	}
	if cmd.Flags().Changed("count") {
		patch.Count = &flagItemCount
	}
	if cmd.Flags().Changed("price") {
		patch.Price = &flagItemPrice
	}

	pc.sess.UpdateItem(args[0], args[1], args[2], patch)
	fmt.Println("  Updated.")
	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	pc.sess.DeleteItem(args[0], args[1], args[2])
	fmt.Println("  Removed.")
	return nil
}

func runItemToggle(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	pc.sess.ToggleItem(args[0], args[1], args[2])
	printBudgetLine(pc.sess)
	return nil
}
