package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	menuTitleStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle).
			Padding(0, 1)

	menuTitleActiveStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Background(colorSurface0).
				Bold(true).
				Padding(0, 1)

	menuPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1)

	menuItemActiveStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	formTitleStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	alertLockedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorError).
				Foreground(colorText).
				Padding(0, 1)

	alertSuccessStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSuccess).
				Foreground(colorText).
				Padding(0, 1)

	countdownLabelStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	progressFillStyle  = lipgloss.NewStyle().Foreground(colorPeach)
	progressEmptyStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	flashInfoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	flashSuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	flashWarningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	flashErrorStyle   = lipgloss.NewStyle().Foreground(colorError)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)
)

const alertWidth = 60

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		m.renderHeader(),
	}
	if panel := m.renderMenuPanel(); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, "")
	if alert := m.renderAlert(); alert != "" {
		sections = append(sections, alert, "")
	}
	sections = append(sections, m.renderForm())
	if flashes := m.renderFlashes(); flashes != "" {
		sections = append(sections, "", flashes)
	}
	sections = append(sections,
		"",
		m.renderStatus(m.status),
		m.renderFooter(renderHelp(m.keys.helpBindings())),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) renderHeader() string {
	parts := []string{headerAppStyle.Render(appName), " "}
	for i, menu := range m.menubar.menus {
		style := menuTitleStyle
		if m.focus == focusMenubar && (i == m.menubar.cursor || i == m.menubar.open) {
			style = menuTitleActiveStyle
		}
		parts = append(parts, style.Render(menu.title))
	}
	line := strings.Join(parts, "")
	return headerBarStyle.Render(padRight(line, m.width-4))
}

func (m model) renderMenuPanel() string {
	open := m.menubar.open
	if open < 0 || open >= len(m.menubar.menus) {
		return ""
	}
	menu := m.menubar.menus[open]
	lines := make([]string, 0, len(menu.items))
	for i, item := range menu.items {
		style := menuItemStyle
		prefix := "  "
		if m.focus == focusMenubar && i == m.menubar.itemIdx {
			style = menuItemActiveStyle
			prefix = "> "
		}
		lines = append(lines, style.Render(prefix+item.label))
	}
	return menuPanelStyle.Render(strings.Join(lines, "\n"))
}

// renderAlert draws the lockout notification. While the countdown runs it
// carries a live remaining-time label and a proportional progress bar; at
// expiry the box is recolored to the success category.
func (m model) renderAlert() string {
	alert := m.alert
	if alert == nil {
		return ""
	}
	style := alertLockedStyle
	if alert.category == alertSuccess {
		style = alertSuccessStyle
	}

	width := min(alertWidth, m.width-4)
	lines := []string{alert.text}
	if alert.cd != nil && alert.category == alertLocked {
		lines = append(lines,
			"",
			countdownLabelStyle.Render("Time remaining: "+alert.cd.Label()),
			renderProgressBar(width-4, alert.cd.Fraction())+fmtPercent(alert.cd.Percent()),
		)
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func fmtPercent(p int) string {
	return fieldLabelStyle.Render(" " + padLeft(strconv.Itoa(p)+"%", 4))
}

// renderProgressBar fills width cells proportionally to fraction.
func renderProgressBar(width int, fraction float64) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return progressFillStyle.Render(strings.Repeat("█", filled)) +
		progressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func (m model) renderForm() string {
	lines := []string{formTitleStyle.Render(m.form.title), ""}
	for i, spec := range m.form.specs {
		lines = append(lines, fieldLabelStyle.Render(spec.label))
		lines = append(lines, m.form.inputs[i].View())
		if m.form.errs[i] != "" {
			lines = append(lines, fieldErrorStyle.Render(m.form.errs[i]))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m model) renderFlashes() string {
	if len(m.flashes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.flashes))
	for _, f := range m.flashes {
		style := flashInfoStyle
		switch f.level {
		case flashSuccess:
			style = flashSuccessStyle
		case flashWarning:
			style = flashWarningStyle
		case flashError:
			style = flashErrorStyle
		}
		lines = append(lines, style.Render(f.text))
	}
	return strings.Join(lines, "\n")
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}

func (m model) renderFooter(text string) string {
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	padded := padRight(flat, m.width-4)
	return footerStyle.Render(padded)
}

func (m model) renderStatus(text string) string {
	if m.width == 0 {
		return statusBarStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	padded := padRight(flat, m.width-4)
	return statusBarStyle.Render(padded)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
