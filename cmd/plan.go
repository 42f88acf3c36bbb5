package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"aisle/internal/config"
	"aisle/internal/session"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new wedding plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Open a plan by name and passcode",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var openCmd = &cobra.Command{
	Use:   "open <plan-id>",
	Short: "Open a plan by id and passcode",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the open plan",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(logoutCmd)
}

// askPasscode returns --passcode, prompting when it was not given.
func askPasscode() (string, error) {
	if flagPasscode != "" {
		return flagPasscode, nil
	}

	fmt.Print("  Passcode: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading passcode: %w", err)
	}

	passcode := strings.TrimSpace(line)
	if passcode == "" {
		return "", errors.New("passcode must not be empty")
	}
	return passcode, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	passcode, err := askPasscode()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess := session.New(store)
	plan := sess.CreatePlan(cmd.Context(), name, passcode)

	if err := config.SaveLogin(config.Login{PlanID: plan.ID, PlanName: plan.Name, Passcode: passcode}); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}

	fmt.Printf("  Created plan %q (id %s)\n", plan.Name, plan.ID)
	fmt.Println("  Share the name and passcode with anyone who should edit it.")
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	name := args[0]
	passcode, err := askPasscode()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess := session.New(store)
	if !sess.Login(cmd.Context(), name, passcode) {
		return errors.New("invalid plan name or passcode")
	}

	plan := sess.Plan()
	if err := config.SaveLogin(config.Login{PlanID: plan.ID, PlanName: plan.Name, Passcode: passcode}); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}

	fmt.Printf("  Opened plan %q (%d vendors, %d guests)\n",
		plan.Name, len(plan.Vendors), len(sess.Guests()))
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	planID := args[0]
	passcode, err := askPasscode()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess := session.New(store)
	if !sess.Open(cmd.Context(), planID, passcode) {
		return errors.New("invalid plan id or passcode")
	}

	plan := sess.Plan()
	if err := config.SaveLogin(config.Login{PlanID: plan.ID, PlanName: plan.Name, Passcode: passcode}); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}

	fmt.Printf("  Opened plan %q\n", plan.Name)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	if err := config.ClearLogin(); err != nil {
		return fmt.Errorf("clearing login: %w", err)
	}
	fmt.Println("  Logged out.")
	return nil
}
