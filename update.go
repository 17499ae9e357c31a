package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lockwatch/internal/validate"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case flashExpiredMsg:
		m.removeFlash(msg.id)
		return m, nil

	case countdownTickMsg:
		return m.handleCountdownTick(msg)

	case menuHideMsg:
		m.menubar.hideIfStale(msg.gen)
		return m, nil

	case authResultMsg:
		return m.handleAuthResult(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.focus == focusMenubar {
			return m.handleMenubarKey(msg)
		}
		return m.handleFormKey(msg)
	}

	cmd := m.form.update(msg)
	return m, cmd
}

func (m model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	switch msg.outcome {
	case authOK:
		m.alert = nil
		m.form.reset()
		m.status = "Signed in."
		cmd := m.pushFlash(flashSuccess, msg.message)
		return m, cmd
	case authLocked:
		m.status = "Account locked."
		cmd := m.beginLockout(msg.message)
		return m, cmd
	default:
		m.status = "Login failed."
		cmd := m.pushFlash(flashError, msg.message)
		return m, cmd
	}
}

func (m model) handleMenubarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Menu):
		return m.leaveMenubar()
	case key.Matches(msg, m.keys.Submit):
		return m.activateMenuItem()
	}
	switch msg.String() {
	case "left":
		m.menubar.moveCursor(-1)
	case "right":
		m.menubar.moveCursor(1)
	case "up":
		m.menubar.moveItem(-1)
	case "down":
		m.menubar.moveItem(1)
	}
	return m, nil
}

// leaveMenubar returns focus to the form. The open dropdown is not hidden
// immediately: a delayed hide is scheduled, and re-entering the menubar
// before it fires makes it stale.
func (m model) leaveMenubar() (tea.Model, tea.Cmd) {
	gen := m.menubar.leave()
	m.focus = focusForm
	m.form.refocus()
	return m, menuHideCmd(gen, m.cfg.UI.MenuHideDelay())
}

func (m model) activateMenuItem() (tea.Model, tea.Cmd) {
	item, ok := m.menubar.selected()
	if !ok {
		return m, nil
	}
	m.menubar.closeAll()
	m.focus = focusForm

	var cmd tea.Cmd
	switch item.id {
	case "login":
		m.screen = screenLogin
		m.form = loginForm()
	case "register":
		m.screen = screenRegister
		m.form = registerForm()
	case "about":
		cmd = m.pushFlash(flashInfo, appName+" — a login front-end with a lockout countdown.")
	case "shortcuts":
		cmd = m.pushFlash(flashInfo, "tab: next field, ctrl+t: show/hide password, esc: menu, enter: submit")
	}
	m.form.refocus()
	return m, cmd
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Menu):
		m.focus = focusMenubar
		m.form.blur()
		m.menubar.enter()
		m.menubar.openMenu(m.menubar.cursor)
		return m, nil
	case key.Matches(msg, m.keys.ToggleMask):
		m.form.toggleMask()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}
	cmd := m.form.update(msg)
	return m, cmd
}

// submit runs client-side validation and, for the login screen, forwards
// the attempt to the responder. While the lockout alert is in the locked
// category the submit is intercepted and only a transient warning is
// shown; the responder would reject it anyway.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.screen == screenRegister {
		if !m.form.validate(m.cfg.UI.MinPasswordLen) {
			return m, nil
		}
		m.screen = screenLogin
		m.form = loginForm()
		m.status = "Account created."
		cmd := m.pushFlash(flashSuccess, "Registration successful! Please login.")
		return m, cmd
	}

	if m.locked() {
		cmd := m.pushFlash(flashWarning, "Account is locked. Please wait for the countdown to finish.")
		return m, cmd
	}
	if !m.form.validate(m.cfg.UI.MinPasswordLen) {
		return m, nil
	}

	email := m.form.value(0)
	password := m.form.value(1)

	var cmds []tea.Cmd
	if sugg, ok := validate.SuggestDomain(email); ok {
		cmds = append(cmds, m.pushFlash(flashInfo, "Did you mean "+sugg+"?"))
	}
	m.status = "Checking credentials..."
	cmds = append(cmds, attemptCmd(m.auth, email, password))
	return m, tea.Batch(cmds...)
}
