package cmd

import (
	"context"
	"fmt"

	"aisle/internal/config"
	"aisle/internal/session"
	"aisle/internal/syncer"
	"aisle/internal/tui"
	"aisle/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive dashboard",
	Long: `Launch the full-screen dashboard. Local edits are pushed to the
datastore after a short quiet period and remote changes are pulled in
periodically, so two terminals on the same plan stay in step.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sess := session.New(store)
	if login, ok := config.LoadLogin(); ok {
		// A stale login falls through to the in-app form
		sess.Open(cmd.Context(), login.PlanID, login.Passcode)
	}

	syn := syncer.New(store, sess, syncConfig(cfg))
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = syn.Run(ctx)
	}()

	app := tui.NewApp(sess, syn)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, runErr := p.Run()

	// Run's shutdown path flushes pending edits; wait for it before the
	// deferred store close.
	cancel()
	<-done

	if runErr != nil {
		return fmt.Errorf("dashboard error: %w", runErr)
	}
	return nil
}
