package views

import (
	"github.com/Cyclone1070/pharmtui/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultWidth is used until the first window size message arrives.
	DefaultWidth = 100
	// TwoColumnMinWidth is the narrowest terminal that gets the grid layout.
	TwoColumnMinWidth = 90
	columnGap         = 1
	// panelFrame is border plus horizontal padding.
	panelFrame = 4
)

// Columns returns how many panel columns fit in width.
func Columns(width int) int {
	if width >= TwoColumnMinWidth {
		return 2
	}
	return 1
}

// ColumnWidth returns the outer width of one grid panel.
func ColumnWidth(width int) int {
	if width <= 0 {
		width = DefaultWidth
	}
	cols := Columns(width)
	return (width - columnGap*(cols-1)) / cols
}

// PanelContentWidth is the usable width inside a panel's border.
func PanelContentWidth(width int, id models.PanelID) int {
	if width <= 0 {
		width = DefaultWidth
	}
	outer := ColumnWidth(width)
	if id == models.PanelSeed {
		outer = width
	}
	return max(outer-panelFrame, 1)
}

// RenderButton renders the trigger. A busy trigger shows the spinner and
// the busy label.
func RenderButton(p models.Panel, spinnerView string, t Theme) string {
	if p.Busy {
		return t.BusyButtonStyle.Render(spinnerView + " " + p.Label())
	}
	return t.ButtonStyle.Render(p.Label())
}

// RenderPanel renders a grid panel: title, input row, error line and results.
func RenderPanel(p models.Panel, focused bool, spinnerView string, outerWidth int, t Theme) string {
	info := p.ID.Info()

	sections := []string{t.TitleStyle.Render(info.Title)}
	if info.Subtitle != "" {
		sections = append(sections, t.SubtitleStyle.Render(info.Subtitle))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		p.Input.View(),
		" ",
		RenderButton(p, spinnerView, t),
	))
	if p.Err != "" {
		sections = append(sections, t.ErrorStyle.Render("✗ "+p.Err))
	}
	if p.Viewport.Height > 0 {
		sections = append(sections, "", p.Viewport.View())
	}

	style := t.PanelStyle
	if focused {
		style = t.FocusedPanelStyle
	}
	return style.Width(outerWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
