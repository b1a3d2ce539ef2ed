package views

import (
	"fmt"

	"github.com/Cyclone1070/pharmtui/internal/ui/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar: in-flight requests on the left,
// key help on the right.
func RenderStatus(s models.State, keys help.KeyMap, t Theme) string {
	busy := 0
	for _, p := range s.Panels {
		if p.Busy {
			busy++
		}
	}

	var left string
	switch busy {
	case 0:
		left = t.MutedStyle.Render("Ready")
	case 1:
		left = fmt.Sprintf("%s 1 request in flight", s.Spinner.View())
	default:
		left = fmt.Sprintf("%s %d requests in flight", s.Spinner.View(), busy)
	}

	if keys == nil {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", s.Help.View(keys))
}
