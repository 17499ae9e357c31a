package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit       key.Binding
	Submit     key.Binding
	ToggleMask key.Binding
	Menu       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
}

// newKeyMap builds the key map from loaded bindings; missing actions fall
// back to defaults so a partial file still yields a complete map.
func newKeyMap(bindings map[string][]string) keyMap {
	keys := func(action string) []string {
		if b, ok := bindings[action]; ok && len(b) > 0 {
			return b
		}
		return defaultKeybindings()[action]
	}
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys(keys("quit")...), key.WithHelp("ctrl+c", "quit")),
		Submit:     key.NewBinding(key.WithKeys(keys("submit")...), key.WithHelp("enter", "submit")),
		ToggleMask: key.NewBinding(key.WithKeys(keys("toggle_mask")...), key.WithHelp("ctrl+t", "show/hide password")),
		Menu:       key.NewBinding(key.WithKeys(keys("menu")...), key.WithHelp("esc", "menu")),
		NextField:  key.NewBinding(key.WithKeys(keys("next_field")...), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys(keys("prev_field")...), key.WithHelp("shift+tab", "prev field")),
	}
}

func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Submit, k.ToggleMask, k.Menu, k.NextField, k.Quit}
}
