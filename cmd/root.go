// Package cmd implements the aisle command line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"aisle/internal/config"
	"aisle/internal/remote"
	"aisle/internal/session"
	"aisle/internal/syncer"
	"aisle/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	flagDBPath   string
	flagPasscode string
)

var rootCmd = &cobra.Command{
	Use:   "aisle",
	Short: "Wedding budget and guest list planner",
	Long:  "Track wedding vendors, cost categories, line items, and guests from the terminal.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	logging.Setup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Datastore path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagPasscode, "passcode", "p", "", "Plan passcode")
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	if flagDBPath != "" {
		cfg.Datastore.Path = flagDBPath
	}
	return cfg
}

// openStore opens the configured datastore backend.
func openStore(cfg config.Config) (remote.Datastore, error) {
	if cfg.Datastore.Path == "" {
		return remote.NewMemory(), nil
	}
	return remote.Open(cfg.Datastore.Path)
}

// planContext holds everything a one-shot plan command needs.
type planContext struct {
	cfg   config.Config
	store remote.Datastore
	sess  *session.Session
	sync  *syncer.Syncer
}

// openPlan opens the datastore and the saved plan. The returned context
// must be finished with close (which flushes pending changes).
func openPlan(ctx context.Context) (*planContext, error) {
	login, ok := config.LoadLogin()
	if !ok {
		return nil, errors.New("no plan open; run `aisle login` or `aisle create` first")
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	sess := session.New(store)
	if !sess.Open(ctx, login.PlanID, login.Passcode) {
		_ = store.Close()
		return nil, fmt.Errorf("plan %q could not be opened; check the passcode or run `aisle login` again", login.PlanName)
	}

	return &planContext{
		cfg:   cfg,
		store: store,
		sess:  sess,
		sync:  syncer.New(store, sess, syncConfig(cfg)),
	}, nil
}

// close flushes any pending plan change and releases the datastore.
func (pc *planContext) close(ctx context.Context) {
	flushCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Drain the change signal; a one-shot command pushed at most once.
	select {
	case <-pc.sess.Changed():
		if err := pc.sync.Flush(flushCtx); err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: changes not saved to datastore: %v\n", err)
		}
	default:
	}

	_ = pc.store.Close()
}

func syncConfig(cfg config.Config) syncer.Config {
	return syncer.Config{
		PushDebounce: time.Duration(cfg.Sync.PushDebounceMs) * time.Millisecond,
		PullInterval: time.Duration(cfg.Sync.PullIntervalSec) * time.Second,
	}
}
