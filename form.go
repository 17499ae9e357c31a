package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lockwatch/internal/validate"
)

// fieldSpec describes one form field and the rule it is checked against.
// companion indexes the field a KindConfirm check compares to.
type fieldSpec struct {
	label       string
	placeholder string
	kind        validate.Kind
	companion   int
	mask        bool
}

// form is a vertical stack of text inputs with per-field error lines.
// Masked fields start hidden; toggleMask flips every masked field between
// the masked and plaintext echo, a pure view-state change.
type form struct {
	title  string
	specs  []fieldSpec
	inputs []textinput.Model
	errs   []string
	focus  int
	masked bool
}

func newForm(title string, specs []fieldSpec) form {
	inputs := make([]textinput.Model, 0, len(specs))
	for i, spec := range specs {
		inp := textinput.New()
		inp.Placeholder = spec.placeholder
		inp.Prompt = "> "
		inp.CharLimit = 254
		if spec.mask {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return form{
		title:  title,
		specs:  specs,
		inputs: inputs,
		errs:   make([]string, len(specs)),
		masked: true,
	}
}

func loginForm() form {
	return newForm("Sign in", []fieldSpec{
		{label: "Email", placeholder: "you@example.com", kind: validate.KindEmail},
		{label: "Password", placeholder: "password", kind: validate.KindPassword, mask: true},
	})
}

func registerForm() form {
	return newForm("Create account", []fieldSpec{
		{label: "Username", placeholder: "username", kind: validate.KindUsername},
		{label: "Email", placeholder: "you@example.com", kind: validate.KindEmail},
		{label: "Password", placeholder: "at least 8 characters", kind: validate.KindPassword, mask: true},
		{label: "Confirm password", placeholder: "repeat password", kind: validate.KindConfirm, companion: 2, mask: true},
	})
}

// value returns the trimmed-at-source value of field i.
func (f *form) value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].Value()
}

// validate runs every field check and records messages, using minPassword
// as the configured password minimum. It reports whether the whole form
// passed.
func (f *form) validate(minPassword int) bool {
	ok := true
	for i, spec := range f.specs {
		res := validate.Check(spec.kind, f.inputs[i].Value(), f.value(spec.companion), minPassword)
		if res.Valid {
			f.errs[i] = ""
			continue
		}
		f.errs[i] = res.Message
		ok = false
	}
	return ok
}

// clearErrors wipes all per-field messages.
func (f *form) clearErrors() {
	for i := range f.errs {
		f.errs[i] = ""
	}
}

// reset blanks every input and error.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.clearErrors()
	f.setFocus(0)
}

// toggleMask flips masked fields between hidden and plaintext echo.
// Flipping twice restores the original state.
func (f *form) toggleMask() {
	f.masked = !f.masked
	for i, spec := range f.specs {
		if !spec.mask {
			continue
		}
		if f.masked {
			f.inputs[i].EchoMode = textinput.EchoPassword
		} else {
			f.inputs[i].EchoMode = textinput.EchoNormal
		}
	}
}

// setFocus moves input focus to field i.
func (f *form) setFocus(i int) {
	if len(f.inputs) == 0 {
		return
	}
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

// blur removes focus from every input (menubar has focus).
func (f *form) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// refocus restores focus to the current field.
func (f *form) refocus() {
	f.setFocus(f.focus)
}

// update routes a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
