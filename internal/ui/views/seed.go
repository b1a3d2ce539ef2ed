package views

import (
	"github.com/Cyclone1070/pharmtui/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderSeed renders the seed control: prompt, trigger and status line.
func RenderSeed(s models.State, outerWidth int, t Theme) string {
	p := s.Panels[models.PanelSeed]
	focused := s.Focused() == models.PanelSeed

	inner := max(outerWidth-panelFrame, 1)
	button := RenderButton(p, s.Spinner.View(), t)
	prompt := p.ID.Info().Title
	gap := max(inner-lipgloss.Width(prompt)-lipgloss.Width(button), 1)
	row := lipgloss.JoinHorizontal(lipgloss.Center, prompt, lipgloss.NewStyle().Width(gap).Render(""), button)

	sections := []string{row}
	if s.SeedStatus != "" {
		sections = append(sections, t.MutedStyle.Render(s.SeedStatus))
	}
	if p.Err != "" {
		sections = append(sections, t.ErrorStyle.Render("✗ "+p.Err))
	}

	style := t.PanelStyle
	if focused {
		style = t.FocusedPanelStyle
	}
	return style.Width(outerWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
