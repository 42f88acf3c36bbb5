package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// loginValues holds the login form answers.
type loginValues struct {
	mode     string // "open" or "create"
	name     string
	passcode string
}

func newLoginForm(v *loginValues) *huh.Form {
	v.mode = "open"
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Wedding plan").
				Options(
					huh.NewOption("Open an existing plan", "open"),
					huh.NewOption("Create a new plan", "create"),
				).
				Value(&v.mode),
			huh.NewInput().
				Title("Plan name").
				Value(&v.name).
				Validate(requireValue("plan name")),
			huh.NewInput().
				Title("Passcode").
				EchoMode(huh.EchoModePassword).
				Value(&v.passcode).
				Validate(requireValue("passcode")),
		),
	)
}

func requireValue(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}
