// Package cli provides the interactive text menu and styled terminal output using lipgloss.
package cli

import "github.com/charmbracelet/lipgloss"

// Tone selects how a message is colored and which icon precedes it.
type Tone int

const (
	TonePlain Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
	ToneInfo
	TonePrompt
)

// CartIcon decorates titles and farewells.
const CartIcon = "🛒"

// LeafGreen is the primary accent color.
var LeafGreen = lipgloss.Color("#2E9E5B")

var toneStyles = map[Tone]lipgloss.Style{
	ToneSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
	ToneWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
	ToneError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	ToneInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1D3")),
	TonePrompt:  lipgloss.NewStyle().Bold(true).Foreground(LeafGreen),
}

var toneIcons = map[Tone]string{
	ToneSuccess: "✓",
	ToneWarning: "⚠️",
	ToneError:   "✗",
	ToneInfo:    "ℹ️",
}

// Styled renders text in the tone's color.
func Styled(tone Tone, text string) string {
	style, ok := toneStyles[tone]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Icon returns the icon for tone, or "" when it has none.
func Icon(tone Tone) string {
	return toneIcons[tone]
}

// Announce renders text in the tone's color, prefixed with its icon.
func Announce(tone Tone, text string) string {
	if icon := Icon(tone); icon != "" {
		text = icon + " " + text
	}
	return Styled(tone, text)
}
