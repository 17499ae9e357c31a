package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lockwatch/internal/config"
)

// responder is a scripted stand-in for the backend: it checks the demo
// credential, counts failures, and renders the same flash messages a
// server would. State is in-memory only and dies with the process. It is
// the authority on the lock — the countdown widget is advisory UI.
type responder struct {
	email        string
	password     string
	maxAttempts  int
	lockDuration time.Duration

	failures    int
	lockedUntil time.Time
	now         func() time.Time
}

func newResponder(cfg config.DemoConfig) *responder {
	return &responder{
		email:        cfg.Email,
		password:     cfg.Password,
		maxAttempts:  cfg.MaxAttempts,
		lockDuration: time.Duration(cfg.LockoutSeconds) * time.Second,
		now:          time.Now,
	}
}

// Attempt answers one login attempt.
func (r *responder) Attempt(email, password string) authResultMsg {
	now := r.now()
	if now.Before(r.lockedUntil) {
		return authResultMsg{
			outcome: authLocked,
			message: lockoutMessage(r.lockedUntil.Sub(now)),
		}
	}
	if strings.EqualFold(strings.TrimSpace(email), r.email) && password == r.password {
		r.failures = 0
		return authResultMsg{outcome: authOK, message: "Login successful! Welcome back."}
	}
	r.failures++
	if r.failures >= r.maxAttempts {
		r.failures = 0
		r.lockedUntil = now.Add(r.lockDuration)
		return authResultMsg{
			outcome: authLocked,
			message: lockoutMessage(r.lockDuration),
		}
	}
	return authResultMsg{outcome: authBadCredentials, message: "Invalid email or password. Please try again."}
}

// lockoutMessage renders the remaining lock time the way the server
// templates do; the countdown parser consumes exactly these shapes.
func lockoutMessage(remaining time.Duration) string {
	secs := int(remaining.Round(time.Second).Seconds())
	if secs < 0 {
		secs = 0
	}
	if secs >= 60 {
		return fmt.Sprintf("Too many failed attempts. Account locked. Try again in %d minute(s) and %d second(s).", secs/60, secs%60)
	}
	return fmt.Sprintf("Too many failed attempts. Account locked. Try again in %d second(s).", secs)
}

// attemptCmd runs the credential check off the update loop.
func attemptCmd(r *responder, email, password string) tea.Cmd {
	return func() tea.Msg {
		return r.Attempt(email, password)
	}
}
