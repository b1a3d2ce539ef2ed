package models

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// PanelID identifies one of the request panels.
type PanelID int

const (
	PanelSearch PanelID = iota
	PanelInteractions
	PanelChat
	PanelQuiz
	PanelResearch
	PanelSeed

	PanelCount
)

// PanelInfo is the static description of a panel.
type PanelInfo struct {
	Name         string
	Title        string
	Subtitle     string
	Placeholder  string
	DefaultInput string
	Action       string
	BusyAction   string
	HasInput     bool
}

var panelInfo = [PanelCount]PanelInfo{
	PanelSearch: {
		Name:        "search",
		Title:       "Drug database",
		Subtitle:    "Instant search across drugs",
		Placeholder: "Search drug, class, indication...",
		Action:      "Search",
		BusyAction:  "Searching...",
		HasInput:    true,
	},
	PanelInteractions: {
		Name:         "interactions",
		Title:        "Interaction simulator",
		Subtitle:     "Check pairwise interactions",
		Placeholder:  "Comma-separated drugs",
		DefaultInput: "warfarin, fluconazole, metoprolol",
		Action:       "Simulate",
		BusyAction:   "Running...",
		HasInput:     true,
	},
	PanelChat: {
		Name:         "chat",
		Title:        "Pharmacology chatbot",
		Subtitle:     "Answers with AI (if configured)",
		DefaultInput: "What is the mechanism of action of warfarin?",
		Action:       "Ask",
		BusyAction:   "Asking...",
		HasInput:     true,
	},
	PanelQuiz: {
		Name:         "quiz",
		Title:        "Quiz generator",
		Subtitle:     "Creates practice questions",
		DefaultInput: "Beta blockers",
		Action:       "Generate",
		BusyAction:   "Working...",
		HasInput:     true,
	},
	PanelResearch: {
		Name:         "research",
		Title:        "Research assistant",
		Subtitle:     "Summarizes literature",
		DefaultInput: "GLP-1 agonists for obesity",
		Action:       "Summarize",
		BusyAction:   "Summarizing...",
		HasInput:     true,
	},
	PanelSeed: {
		Name:       "seed",
		Title:      "Need demo data?",
		Action:     "Seed demo",
		BusyAction: "Seeding...",
	},
}

// Info returns the static description of the panel.
func (id PanelID) Info() PanelInfo {
	return panelInfo[id]
}

func (id PanelID) String() string {
	if id < 0 || id >= PanelCount {
		return "unknown"
	}
	return panelInfo[id].Name
}

// Panel is the per-panel request state: {idle, busy} plus a request token.
//
// Each Begin issues a new token. Only the result carrying the current token
// may settle the panel, so a late response from a superseded or aborted
// request never overwrites newer state.
type Panel struct {
	ID       PanelID
	Input    textinput.Model
	Viewport viewport.Model

	Busy bool
	Seq  uint64
	Err  string

	cancel context.CancelFunc
}

// NewPanel creates an idle panel with its default input.
func NewPanel(id PanelID) Panel {
	info := id.Info()
	p := Panel{ID: id, Viewport: viewport.New(40, 0)}
	if info.HasInput {
		ti := textinput.New()
		ti.Placeholder = info.Placeholder
		ti.SetValue(info.DefaultInput)
		ti.Prompt = "› "
		p.Input = ti
	}
	return p
}

// Label is the trigger label for the current state.
func (p Panel) Label() string {
	if p.Busy {
		return p.ID.Info().BusyAction
	}
	return p.ID.Info().Action
}

// Begin moves the panel to busy and returns the request context and token.
// Any request still outstanding is cancelled.
func (p *Panel) Begin(parent context.Context) (context.Context, uint64) {
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel
	p.Seq++
	p.Busy = true
	return ctx, p.Seq
}

// Settle moves the panel back to idle if token is current.
// It reports false for stale tokens, which callers must drop.
func (p *Panel) Settle(token uint64) bool {
	if token != p.Seq {
		return false
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.Busy = false
	return true
}

// Abort cancels the outstanding request and returns the panel to idle.
// The aborted request's token becomes stale.
func (p *Panel) Abort() bool {
	if !p.Busy {
		return false
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.Seq++
	p.Busy = false
	return true
}
