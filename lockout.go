package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lockwatch/internal/lockout"
)

type alertCategory int

const (
	alertLocked alertCategory = iota
	alertSuccess
)

const unlockedNotice = "Account unlocked. You can try logging in again."

// lockAlert is the lockout notification. While its category is locked the
// login form's submit is intercepted client-side. cd is nil when the
// message carried no parseable duration; the raw text then stays visible
// as a static alert (designed fallback, not an error).
type lockAlert struct {
	id       uuid.UUID
	text     string
	category alertCategory
	cd       *lockout.Countdown
}

// beginLockout installs the lockout alert for a rendered server message
// and, when a positive duration parses out of it, starts the countdown
// and returns the first tick command. The alert id keys the tick stream:
// a replaced alert makes in-flight ticks stale.
func (m *model) beginLockout(message string) tea.Cmd {
	alert := &lockAlert{id: uuid.New(), text: message, category: alertLocked}
	m.alert = alert

	res := lockout.ParseDuration(message)
	if res.Kind == lockout.MatchNone {
		return nil
	}
	cd, err := lockout.Start(res.Seconds)
	if err != nil {
		// A duration that parses to zero means the lock has already run
		// out; the alert must not gate the form, or the client wedges
		// with no way to clear it.
		alert.category = alertSuccess
		alert.text = unlockedNotice
		return nil
	}
	alert.cd = cd
	return countdownTickCmd(alert.id)
}

// locked reports whether submission is currently gated.
func (m *model) locked() bool {
	return m.alert != nil && m.alert.category == alertLocked
}

// handleCountdownTick advances the live countdown. This is the single
// cancellation point: once the countdown stops, no further tick is
// scheduled, and stale ids are dropped so a stray tick after expiry can
// never touch the terminal state.
func (m model) handleCountdownTick(msg countdownTickMsg) (model, tea.Cmd) {
	alert := m.alert
	if alert == nil || alert.cd == nil || alert.id != msg.id {
		return m, nil
	}
	if alert.cd.Tick() {
		return m, countdownTickCmd(alert.id)
	}
	if alert.cd.State() == lockout.StateExpired && alert.category == alertLocked {
		alert.category = alertSuccess
		alert.text = unlockedNotice
	}
	return m, nil
}
