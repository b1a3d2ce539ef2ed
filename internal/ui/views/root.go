package views

import (
	"github.com/Cyclone1070/pharmtui/internal/ui/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const (
	AppTitle    = "Pharmacy Learning Toolkit"
	AppSubtitle = "Search drugs, simulate interactions, chat with AI, generate quizzes, and summarize research."
)

// gridPanels are laid out two per row in this order.
var gridPanels = []models.PanelID{
	models.PanelSearch,
	models.PanelInteractions,
	models.PanelChat,
	models.PanelQuiz,
	models.PanelResearch,
}

// RenderRoot renders the complete UI layout. When the full page does not
// fit the terminal height, only the focused panel is shown.
func RenderRoot(s models.State, keys help.KeyMap, t Theme) string {
	width := s.Width
	if width <= 0 {
		width = DefaultWidth
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		t.HeaderStyle.Render(AppTitle),
		t.SubtitleStyle.Render(AppSubtitle),
	)
	seed := RenderSeed(s, width, t)
	status := RenderStatus(s, keys, t)

	page := lipgloss.JoinVertical(lipgloss.Left, header, "", seed, RenderGrid(s, width, t), status)
	if s.Height <= 0 || lipgloss.Height(page) <= s.Height {
		return page
	}

	// Compact layout
	focused := s.Focused()
	body := seed
	if focused != models.PanelSeed {
		body = RenderPanel(s.Panels[focused], true, s.Spinner.View(), width, t)
	}
	return lipgloss.JoinVertical(lipgloss.Left, t.HeaderStyle.Render(AppTitle), body, status)
}

// RenderGrid renders the request panels in one or two columns.
func RenderGrid(s models.State, width int, t Theme) string {
	colWidth := ColumnWidth(width)
	cols := Columns(width)
	focused := s.Focused()
	spin := s.Spinner.View()

	var rows []string
	for i := 0; i < len(gridPanels); i += cols {
		var cells []string
		for j := i; j < i+cols && j < len(gridPanels); j++ {
			id := gridPanels[j]
			if len(cells) > 0 {
				cells = append(cells, lipgloss.NewStyle().Width(columnGap).Render(""))
			}
			cells = append(cells, RenderPanel(s.Panels[id], id == focused, spin, colWidth, t))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
