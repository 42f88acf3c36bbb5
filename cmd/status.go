package cmd

import (
	"fmt"

	"aisle/internal/budget"
	"aisle/internal/cli"
	"aisle/internal/config"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the open plan and datastore",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	login, ok := config.LoadLogin()
	if !ok {
		fmt.Println("  No plan open. Run `aisle login` or `aisle create`.")
		return nil
	}

	cfg := loadConfig()
	fmt.Printf("  Plan: %s (id %s)\n", login.PlanName, login.PlanID)
	if cfg.Datastore.Path == "" {
		fmt.Println("  Datastore: in-memory (nothing persists)")
	} else {
		fmt.Printf("  Datastore: %s\n", cfg.Datastore.Path)
	}

	pc, err := openPlan(cmd.Context())
	if err != nil {
		fmt.Printf("  Reachable: no (%v)\n", err)
		return nil
	}
	defer pc.close(cmd.Context())

	plan := pc.sess.Plan()
	guests := pc.sess.Guests()
	fmt.Println("  Reachable: yes")
	fmt.Printf("  Vendors: %d, Guests: %s\n", len(plan.Vendors), cli.FormatCount(budget.GuestCount(guests)))
	fmt.Printf("  Budget: %s\n", cli.FormatRupiah(budget.Calculate(plan)))
	return nil
}
