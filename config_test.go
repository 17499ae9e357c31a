package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseKeybindingsValid(t *testing.T) {
	data := []byte(`version = 1

[bindings]
toggle_mask = ["ctrl+p"]
`)
	bindings, err := parseKeybindings(data)
	if err != nil {
		t.Fatalf("parseKeybindings: %v", err)
	}
	if got := bindings["toggle_mask"]; len(got) != 1 || got[0] != "ctrl+p" {
		t.Errorf("toggle_mask = %v, want [ctrl+p]", got)
	}
	// untouched actions keep their defaults
	if got := bindings["quit"]; len(got) != 1 || got[0] != "ctrl+c" {
		t.Errorf("quit = %v, want default [ctrl+c]", got)
	}
}

func TestParseKeybindingsRejectsUnknownAction(t *testing.T) {
	data := []byte(`version = 1

[bindings]
toggle_maskz = ["ctrl+p"]
`)
	if _, err := parseKeybindings(data); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestLoadKeybindingsWritesDefaultFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	bindings, err := loadKeybindings()
	if err != nil {
		t.Fatalf("loadKeybindings: %v", err)
	}
	if got := bindings["submit"]; len(got) != 1 || got[0] != "enter" {
		t.Errorf("submit = %v, want default [enter]", got)
	}
	path := filepath.Join(xdg, "lockwatch", "keybindings.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default keybindings file not written: %v", err)
	}
}

func TestLoadKeybindingsResetsInvalidFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "lockwatch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	invalid := []byte(`version = 1

[bindings]
submitz = ["ctrl+r"]
`)
	if err := os.WriteFile(filepath.Join(dir, "keybindings.toml"), invalid, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	bindings, err := loadKeybindings()
	if err != nil {
		t.Fatalf("expected reset to defaults, got error: %v", err)
	}
	if got := bindings["submit"]; len(got) != 1 || got[0] != "enter" {
		t.Errorf("submit = %v, want default after reset", got)
	}

	// The file on disk must now hold the defaults.
	data, err := os.ReadFile(filepath.Join(dir, "keybindings.toml"))
	if err != nil {
		t.Fatalf("read reset file: %v", err)
	}
	reset, err := parseKeybindings(data)
	if err != nil {
		t.Fatalf("reset file does not parse: %v", err)
	}
	if got := reset["quit"]; len(got) != 1 || got[0] != "ctrl+c" {
		t.Errorf("reset quit = %v, want [ctrl+c]", got)
	}
}

func TestNewKeyMapFallsBackOnMissingActions(t *testing.T) {
	km := newKeyMap(map[string][]string{"quit": {"ctrl+q"}})
	if keys := km.Quit.Keys(); len(keys) != 1 || keys[0] != "ctrl+q" {
		t.Errorf("quit keys = %v, want [ctrl+q]", keys)
	}
	if keys := km.Submit.Keys(); len(keys) != 1 || keys[0] != "enter" {
		t.Errorf("submit keys = %v, want default [enter]", keys)
	}
}
