// Package tuitest provides helpers for driving bubbletea models in tests.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"ctrl+c": tea.KeyCtrlC,
}

// Key builds the message for a named key ("enter", "esc", "tab", "up", "down",
// "ctrl+c"); anything else is typed as runes.
func Key(name string) tea.KeyMsg {
	if keyType, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: keyType}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Keys builds one message per name.
func Keys(names ...string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, Key(name))
	}
	return msgs
}

// Type builds one rune message per character of text.
func Type(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

// Form types each value followed by enter, filling a form top to bottom.
func Form(values ...string) []tea.Msg {
	var msgs []tea.Msg
	for _, value := range values {
		msgs = append(msgs, Type(value)...)
		msgs = append(msgs, Key("enter"))
	}
	return msgs
}

// Plain strips styling from a rendered view.
func Plain(view string) string {
	return ansi.Strip(view)
}

// InOrder reports whether every part appears in output, each after the previous one.
func InOrder(output string, parts ...string) bool {
	rest := output
	for _, part := range parts {
		_, after, found := strings.Cut(rest, part)
		if !found {
			return false
		}
		rest = after
	}
	return true
}
