package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "Lockwatch"

// Screens
const (
	screenLogin = iota
	screenRegister
)

// Focus zones
const (
	focusForm = iota
	focusMenubar
)

// authOutcome classifies a responder answer.
type authOutcome int

const (
	authOK authOutcome = iota
	authBadCredentials
	authLocked
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

// authResultMsg carries the responder's answer to a submit attempt.
type authResultMsg struct {
	outcome authOutcome
	message string
}

// flashExpiredMsg removes the flash with the given id. Expiry for an id no
// longer present is ignored, so a stale timer cannot remove a newer flash.
type flashExpiredMsg struct {
	id uuid.UUID
}

// countdownTickMsg advances the lockout countdown identified by id. Ticks
// carrying an id that no longer matches the live alert are discarded.
type countdownTickMsg struct {
	id uuid.UUID
}

// menuHideMsg closes any open dropdown if gen still matches the menubar's
// pending-hide generation; re-entering the menubar bumps the generation
// and makes the pending hide stale.
type menuHideMsg struct {
	gen int
}

// countdownTickCmd schedules the next one-second tick for the alert id.
func countdownTickCmd(id uuid.UUID) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{id: id}
	})
}

// flashExpireCmd schedules removal of a flash after d.
func flashExpireCmd(id uuid.UUID, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

// menuHideCmd schedules a dropdown hide for the given generation.
func menuHideCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return menuHideMsg{gen: gen}
	})
}
