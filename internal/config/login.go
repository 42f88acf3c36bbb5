package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Login is the remembered plan access saved by `aisle login` so one-shot
// commands can reopen the plan without prompting. The passcode is stored
// as entered; it gates convenience, not security.
type Login struct {
	PlanID   string `toml:"plan_id"`
	PlanName string `toml:"plan_name"`
	Passcode string `toml:"passcode"`
}

// LoginPath returns the path of the saved login file.
func LoginPath() string {
	return filepath.Join(ConfigDir(), "login.toml")
}

// LoadLogin reads the saved login. ok is false when none is saved.
func LoadLogin() (Login, bool) {
	var l Login
	data, err := os.ReadFile(LoginPath())
	if err != nil {
		return l, false
	}
	if err := toml.Unmarshal(data, &l); err != nil {
		return l, false
	}
	return l, l.PlanID != ""
}

// SaveLogin writes the login file with owner-only permissions.
func SaveLogin(l Login) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(LoginPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating login file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(l)
}

// ClearLogin removes the saved login, if any.
func ClearLogin() error {
	err := os.Remove(LoginPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
