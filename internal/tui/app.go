// Package tui provides the interactive Bubble Tea dashboard for aisle.
package tui

import (
	"context"
	"time"

	"aisle/internal/config"
	"aisle/internal/session"
	"aisle/internal/syncer"
	"aisle/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	tabOverview = iota
	tabBudget
	tabGuests
)

const minTerminalWidth = 60

// App is the root Bubble Tea model.
type App struct {
	sess *session.Session
	syn  *syncer.Syncer

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	errLine   string

	// Login form, shown until a plan is open
	needLogin bool
	loginForm *huh.Form
	loginVals loginValues

	// Per-tab state
	budget budgetState
	guests guestsState
}

// NewApp creates a new dashboard model. When the session has no open
// plan, the app starts on the login form.
func NewApp(sess *session.Session, syn *syncer.Syncer) App {
	a := App{
		sess:      sess,
		syn:       syn,
		needLogin: sess.Plan() == nil,
	}
	if a.needLogin {
		a.loginForm = newLoginForm(&a.loginVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if a.loginForm != nil {
		cmds = append(cmds, a.loginForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.loginForm != nil {
			a.loginForm = a.loginForm.WithWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Login form intercepts all keys until it resolves
		if a.needLogin && a.loginForm != nil {
			return a.updateLoginForm(msg)
		}

		// Guest search intercepts all keys while typing
		if a.activeTab == tabGuests && a.guests.searching {
			return a.updateGuestsSearch(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabBudget:
			return a.updateBudget(key)
		case tabGuests:
			return a.updateGuests(key)
		}
		return a, nil

	case tickMsg:
		// Pulls swap the plan behind our back; the tick keeps the view
		// and the sync age in the status bar fresh.
		return a, tickCmd()

	case loginDoneMsg:
		if msg.ok {
			a.needLogin = false
			a.loginForm = nil
			a.errLine = ""
		} else {
			a.errLine = msg.reason
			a.loginVals = loginValues{}
			a.loginForm = newLoginForm(&a.loginVals)
			return a, a.loginForm.Init()
		}
		return a, nil

	case guestSavedMsg:
		if msg.err != nil {
			a.errLine = msg.err.Error()
		} else {
			a.errLine = ""
		}
		return a, nil
	}

	// Forward unhandled messages to the login form (cursor blinks, etc.)
	if a.needLogin && a.loginForm != nil {
		return a.updateLoginForm(msg)
	}

	return a, nil
}

func (a App) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loginForm = f
	}

	if a.loginForm.State == huh.StateCompleted {
		vals := a.loginVals
		return a, loginCmd(a.sess, vals)
	}

	if a.loginForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

type loginDoneMsg struct {
	ok     bool
	reason string
}

func loginCmd(sess *session.Session, vals loginValues) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		plan := sess.Plan()
		switch vals.mode {
		case "create":
			plan = sess.CreatePlan(ctx, vals.name, vals.passcode)
		default:
			if !sess.Login(ctx, vals.name, vals.passcode) {
				return loginDoneMsg{reason: "no plan matches that name and passcode"}
			}
			plan = sess.Plan()
		}
		if plan == nil {
			return loginDoneMsg{reason: "could not open plan"}
		}

		// Remember the plan so one-shot commands work without logging in
		_ = config.SaveLogin(config.Login{
			PlanID:   plan.ID,
			PlanName: plan.Name,
			Passcode: plan.Passcode,
		})
		return loginDoneMsg{ok: true}
	}
}

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
