package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type flashLevel int

const (
	flashInfo flashLevel = iota
	flashSuccess
	flashWarning
	flashError
)

// flash is a transient notification. Every flash self-removes after the
// configured timeout; the id keys the expiry timer to this instance.
type flash struct {
	id    uuid.UUID
	level flashLevel
	text  string
}

// pushFlash appends a flash and returns the command that expires it.
func (m *model) pushFlash(level flashLevel, text string) tea.Cmd {
	f := flash{id: uuid.New(), level: level, text: text}
	m.flashes = append(m.flashes, f)
	return flashExpireCmd(f.id, m.cfg.UI.FlashTimeout())
}

// removeFlash drops the flash with the given id, if still present.
func (m *model) removeFlash(id uuid.UUID) {
	for i, f := range m.flashes {
		if f.id == id {
			m.flashes = append(m.flashes[:i], m.flashes[i+1:]...)
			return
		}
	}
}
