package cmd

import (
	"fmt"

	"aisle/internal/budget"
	"aisle/internal/cli"
	"aisle/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagGuestOccupancy int
	flagGuestGroup     string
	flagGuestName      string
	flagGuestSelected  bool
)

var guestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Manage the guest list",
}

var guestAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a guest",
	Args:  cobra.ExactArgs(1),
	RunE:  runGuestAdd,
}

var guestListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List guests with the head count per group",
	RunE:  runGuestList,
}

var guestSetCmd = &cobra.Command{
	Use:   "set <guest-id>",
	Short: "Update a guest",
	Args:  cobra.ExactArgs(1),
	RunE:  runGuestSet,
}

var guestRemoveCmd = &cobra.Command{
	Use:   "rm <guest-id>",
	Short: "Delete a guest",
	Args:  cobra.ExactArgs(1),
	RunE:  runGuestRemove,
}

func init() {
	guestAddCmd.Flags().IntVar(&flagGuestOccupancy, "occupancy", 1, "How many people this guest brings")
	guestAddCmd.Flags().StringVar(&flagGuestGroup, "group", "", "Group label like Family or Work Friends")

	guestSetCmd.Flags().StringVar(&flagGuestName, "name", "", "New guest name")
	guestSetCmd.Flags().IntVar(&flagGuestOccupancy, "occupancy", 1, "How many people this guest brings")
	guestSetCmd.Flags().StringVar(&flagGuestGroup, "group", "", "Group label")
	guestSetCmd.Flags().BoolVar(&flagGuestSelected, "selected", true, "Count toward the head count")

	guestCmd.AddCommand(guestAddCmd)
	guestCmd.AddCommand(guestListCmd)
	guestCmd.AddCommand(guestSetCmd)
	guestCmd.AddCommand(guestRemoveCmd)
	rootCmd.AddCommand(guestCmd)
}

func runGuestAdd(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	occupancy := flagGuestOccupancy
	if occupancy < 1 {
		occupancy = 1
	}

	if err := pc.sess.AddGuest(cmd.Context(), args[0], occupancy, flagGuestGroup); err != nil {
		return fmt.Errorf("adding guest: %w", err)
	}
	fmt.Printf("  Added %s (%s)\n", args[0], cli.FormatCount(occupancy))
	return nil
}

func runGuestList(cmd *cobra.Command, _ []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	guests := pc.sess.Guests()
	if len(guests) == 0 {
		fmt.Println("  No guests yet. Add one with `aisle guest add`.")
		return nil
	}

	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, []string{
			cli.Checkbox(g.Selected) + " " + g.Name,
			g.ID,
			g.Group,
			fmt.Sprintf("%d", g.Occupancy),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Guests · %s attending", cli.FormatCount(budget.GuestCount(guests))),
		Headers: []string{"Guest", "ID", "Group", "Occupancy"},
		Rows:    rows,
	}))

	groups := budget.GuestsByGroup(guests)
	if len(groups) > 1 {
		fmt.Println()
		for _, g := range groups {
			label := g.Group
			if label == "" {
				label = "(no group)"
			}
			fmt.Printf("  %-20s %s\n", label, cli.FormatCount(g.Count))
		}
	}
	return nil
}

func runGuestSet(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	var patch session.GuestPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &flagGuestName
	}
	if cmd.Flags().Changed("occupancy") {
		patch.Occupancy = &flagGuestOccupancy
	}
	if cmd.Flags().Changed("group") {
		patch.Group = &flagGuestGroup
	}
	if cmd.Flags().Changed("selected") {
		patch.Selected = &flagGuestSelected
	}

	if err := pc.sess.UpdateGuest(cmd.Context(), args[0], patch); err != nil {
		return fmt.Errorf("updating guest: %w", err)
	}
	fmt.Println("  Updated.")
	return nil
}

func runGuestRemove(cmd *cobra.Command, args []string) error {
	pc, err := openPlan(cmd.Context())
	if err != nil {
		return err
	}
	defer pc.close(cmd.Context())

	if err := pc.sess.DeleteGuest(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting guest: %w", err)
	}
	fmt.Println("  Removed.")
	return nil
}
