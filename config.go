package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ---------------------------------------------------------------------------
// Keybinding configuration (TOML-based)
// ---------------------------------------------------------------------------

// keybindingsFile is the top-level TOML structure.
type keybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

const keybindingsVersion = 1

const defaultKeybindingsTOML = `# Lockwatch keybindings
# Each action maps to one or more key names understood by the terminal
# (e.g. "ctrl+t", "shift+tab", "enter", "esc").

version = 1

[bindings]
quit = ["ctrl+c"]
submit = ["enter"]
toggle_mask = ["ctrl+t"]
menu = ["esc"]
next_field = ["tab", "down"]
prev_field = ["shift+tab", "up"]
`

func defaultKeybindings() map[string][]string {
	return map[string][]string{
		"quit":        {"ctrl+c"},
		"submit":      {"enter"},
		"toggle_mask": {"ctrl+t"},
		"menu":        {"esc"},
		"next_field":  {"tab", "down"},
		"prev_field":  {"shift+tab", "up"},
	}
}

// configDir returns the directory for lockwatch config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "lockwatch"), nil
}

// keybindingsPath returns the full path to the keybindings.toml file.
func keybindingsPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "keybindings.toml"), nil
}

// parseKeybindings decodes the TOML body and rejects unknown action names
// so a typo cannot silently orphan a binding.
func parseKeybindings(data []byte) (map[string][]string, error) {
	var file keybindingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keybindings: %w", err)
	}
	if file.Version != 0 && file.Version != keybindingsVersion {
		return nil, fmt.Errorf("unsupported keybindings version %d", file.Version)
	}
	known := defaultKeybindings()
	for action := range file.Bindings {
		if _, ok := known[action]; !ok {
			return nil, fmt.Errorf("unknown action %q in keybindings", action)
		}
	}
	merged := defaultKeybindings()
	for action, keys := range file.Bindings {
		if len(keys) > 0 {
			merged[action] = keys
		}
	}
	return merged, nil
}

// loadKeybindings loads bindings from the config file, writing the default
// file when missing. An unreadable or invalid file is reset to defaults:
// startup must never fail on bad bindings.
func loadKeybindings() (map[string][]string, error) {
	path, err := keybindingsPath()
	if err != nil {
		return defaultKeybindings(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return defaultKeybindings(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultKeybindingsTOML), 0o644); wErr != nil {
			return defaultKeybindings(), fmt.Errorf("write default keybindings: %w", wErr)
		}
		return defaultKeybindings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaultKeybindings(), fmt.Errorf("read keybindings: %w", err)
	}
	bindings, err := parseKeybindings(data)
	if err != nil {
		// Reset to defaults rather than refusing to start.
		if wErr := os.WriteFile(path, []byte(defaultKeybindingsTOML), 0o644); wErr != nil {
			return defaultKeybindings(), fmt.Errorf("reset keybindings: %w", wErr)
		}
		return defaultKeybindings(), nil
	}
	return bindings, nil
}
