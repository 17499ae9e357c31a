package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lockwatch/internal/config"
)

type model struct {
	cfg  config.Config
	keys keyMap
	auth *responder

	width  int
	height int

	screen  int
	focus   int
	form    form
	menubar menubar

	// alert is the lockout notification; nil when no lockout is shown.
	// Each alert owns at most one live countdown tick stream, keyed by
	// its id.
	alert *lockAlert

	flashes []flash
	status  string
}

func newModel(cfg config.Config, keys keyMap) model {
	return model{
		cfg:     cfg,
		keys:    keys,
		auth:    newResponder(cfg.Demo),
		screen:  screenLogin,
		focus:   focusForm,
		form:    loginForm(),
		menubar: newMenubar(),
		status:  "Enter your credentials. Press esc for the menu.",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}
