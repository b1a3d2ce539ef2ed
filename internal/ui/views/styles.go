package views

import (
	"github.com/Cyclone1070/pharmtui/internal/api"
	"github.com/Cyclone1070/pharmtui/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colors and styles used by every view.
type Theme struct {
	ColorPrimary  lipgloss.Color
	ColorMajor    lipgloss.Color
	ColorModerate lipgloss.Color
	ColorMinor    lipgloss.Color
	ColorMuted    lipgloss.Color

	HeaderStyle       lipgloss.Style
	SubtitleStyle     lipgloss.Style
	PanelStyle        lipgloss.Style
	FocusedPanelStyle lipgloss.Style
	TitleStyle        lipgloss.Style
	MutedStyle        lipgloss.Style
	ErrorStyle        lipgloss.Style
	ButtonStyle       lipgloss.Style
	BusyButtonStyle   lipgloss.Style
	CardTitleStyle    lipgloss.Style
	LabelStyle        lipgloss.Style
}

// NewTheme builds the theme from the configured colors.
func NewTheme(cfg config.UIConfig) Theme {
	t := Theme{
		ColorPrimary:  lipgloss.Color(cfg.ColorPrimary),
		ColorMajor:    lipgloss.Color(cfg.ColorMajor),
		ColorModerate: lipgloss.Color(cfg.ColorModerate),
		ColorMinor:    lipgloss.Color(cfg.ColorMinor),
		ColorMuted:    lipgloss.Color(cfg.ColorMuted),
	}

	t.HeaderStyle = lipgloss.NewStyle().Bold(true)
	t.SubtitleStyle = lipgloss.NewStyle().Foreground(t.ColorMuted)
	t.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.ColorMuted).
		Padding(0, 1)
	t.FocusedPanelStyle = t.PanelStyle.BorderForeground(t.ColorPrimary)
	t.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.ColorPrimary)
	t.MutedStyle = lipgloss.NewStyle().Foreground(t.ColorMuted)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.ColorMajor)
	t.ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(t.ColorPrimary).
		Padding(0, 1)
	t.BusyButtonStyle = t.ButtonStyle.Background(t.ColorMuted)
	t.CardTitleStyle = lipgloss.NewStyle().Bold(true)
	t.LabelStyle = lipgloss.NewStyle().Bold(true)

	return t
}

// DefaultTheme is the theme for the default configuration.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultConfig().UI)
}

// BadgeStyle returns the severity badge style. Unrecognized values share
// the muted treatment.
func (t Theme) BadgeStyle(s api.Severity) lipgloss.Style {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("16")).
		Padding(0, 1)

	switch s.Level() {
	case api.SeverityMajor:
		return base.Background(t.ColorMajor).Bold(true)
	case api.SeverityModerate:
		return base.Background(t.ColorModerate)
	case api.SeverityMinor:
		return base.Background(t.ColorMinor)
	default:
		return base.Background(t.ColorMuted)
	}
}
