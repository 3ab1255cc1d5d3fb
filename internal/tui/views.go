package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/grocer/internal/cli"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var bindings []key.Binding
	switch m.screen {
	case ScreenAdd:
		body = m.renderForm("Add Item")
		bindings = m.keymap.FormHelp()
	case ScreenRemove:
		body = m.renderForm("Remove Item")
		bindings = m.keymap.FormHelp()
	case ScreenReport:
		body = m.renderReport()
		bindings = m.keymap.ReportHelp()
	default:
		body = m.renderMenu()
		bindings = m.keymap.MenuHelp()
	}

	sections := []string{body}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.ShortHelpView(bindings))

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderMenu() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(cli.CartIcon + " Grocery Inventory"))
	b.WriteString("\n")

	for i, label := range menuItems {
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render("> " + line))
		} else {
			b.WriteString(m.theme.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")

	for i, input := range m.inputs {
		b.WriteString(m.theme.Label.Render(m.labels[i] + ":"))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderReport() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Inventory"))
	b.WriteString("\n")

	if m.report == nil {
		b.WriteString(m.theme.Subtitle.Render("Loading..."))
		return b.String()
	}

	b.WriteString(m.theme.Normal.Render(strings.Join(m.report, "\n")))
	return b.String()
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}

	text := m.status
	if icon := cli.Icon(m.statusTone); icon != "" {
		text = icon + " " + text
	}

	switch m.statusTone {
	case cli.ToneSuccess:
		return m.theme.StatusSuccess.Render(text)
	case cli.ToneWarning:
		return m.theme.StatusWarning.Render(text)
	case cli.ToneError:
		return m.theme.StatusError.Render(text)
	default:
		return m.theme.StatusInfo.Render(text)
	}
}
