package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"aisle/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)
	cfg := loadConfig()

	fmt.Println()
	fmt.Println("  Welcome to aisle!")
	fmt.Println()

	// 1. Datastore path
	fmt.Println("  1. Datastore path")
	fmt.Println("     The SQLite file shared by everyone planning this wedding.")
	fmt.Printf("     Current: %s\n", cfg.Datastore.Path)
	fmt.Print("     > ")
	path, _ := reader.ReadString('\n')
	if path = strings.TrimSpace(path); path != "" {
		cfg.Datastore.Path = path
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	fmt.Println("     (1) Blush [default]")
	fmt.Println("     (2) Sage")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "sage"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "blush"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Next: `aisle create <name>` or `aisle login <name>`.")
	fmt.Println()
	return nil
}
