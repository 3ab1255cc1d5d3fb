// Package themes provides color themes for the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Selected      lipgloss.Style
	Label         lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
}

// Palette is the set of colors a theme is built from.
type Palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	OnAccent lipgloss.Color
	Border   lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	Info     lipgloss.Color
}

// New builds a theme from p.
func New(p Palette) Theme {
	status := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.Accent).MarginBottom(1),
		Subtitle:   lipgloss.NewStyle().Foreground(p.Muted),
		Normal:     lipgloss.NewStyle().Foreground(p.Text),
		Selected:   lipgloss.NewStyle().Background(p.Accent).Foreground(p.OnAccent).Bold(true),
		Label:      lipgloss.NewStyle().Foreground(p.Muted).Width(10),
		RoundedBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(1, 2),

		StatusSuccess: status(p.Success),
		StatusWarning: status(p.Warning),
		StatusError:   status(p.Error),
		StatusInfo:    status(p.Info),
	}
}

// Default is the default theme.
var Default = New(Palette{
	Text:     "#fafafa",
	Muted:    "#a3a3a3",
	Accent:   "#2e9e5b",
	OnAccent: "#fafafa",
	Border:   "#404040",
	Success:  "#10b981",
	Warning:  "#f59e0b",
	Error:    "#ef4444",
	Info:     "#3b82f6",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = New(Palette{
	Text:     "#cdd6f4",
	Muted:    "#a6adc8",
	Accent:   "#a6e3a1",
	OnAccent: "#1e1e2e",
	Border:   "#45475a",
	Success:  "#a6e3a1",
	Warning:  "#f9e2af",
	Error:    "#f38ba8",
	Info:     "#89dceb",
})

// ByName returns the named theme, falling back to Default.
func ByName(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
