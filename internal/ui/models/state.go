package models

import (
	"github.com/Cyclone1070/pharmtui/internal/api"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// FocusOrder is the Tab order of the panels.
var FocusOrder = []PanelID{
	PanelSearch,
	PanelInteractions,
	PanelChat,
	PanelQuiz,
	PanelResearch,
	PanelSeed,
}

// State holds the complete UI state. Each panel owns its input, request
// state and current result; nothing is shared between panels.
type State struct {
	Width  int
	Height int

	Focus   int // index into FocusOrder
	Spinner spinner.Model
	Help    help.Model

	Panels [PanelCount]Panel

	// Current result set per panel, replaced wholesale on success.
	Drugs      []api.DrugRecord
	Pairs      []api.InteractionPair
	Reply      string
	HasReply   bool
	QuizItems  []api.QuizItem
	Summary    string
	SeedStatus string
}

// NewState creates the initial state with default inputs and the first panel focused.
func NewState(sp spinner.Model) State {
	s := State{
		Spinner: sp,
		Help:    help.New(),
	}
	for id := PanelID(0); id < PanelCount; id++ {
		s.Panels[id] = NewPanel(id)
	}
	s.Panels[FocusOrder[0]].Input.Focus()
	return s
}

// Panel returns the panel with the given id.
func (s *State) Panel(id PanelID) *Panel {
	return &s.Panels[id]
}

// Focused returns the id of the focused panel.
func (s State) Focused() PanelID {
	return FocusOrder[s.Focus]
}

// MoveFocus shifts focus by delta, wrapping around, and moves the text
// cursor to the newly focused input.
func (s *State) MoveFocus(delta int) tea.Cmd {
	s.Panels[s.Focused()].Input.Blur()
	n := len(FocusOrder)
	s.Focus = ((s.Focus+delta)%n + n) % n
	if p := s.Panel(s.Focused()); p.ID.Info().HasInput {
		return p.Input.Focus()
	}
	return nil
}
