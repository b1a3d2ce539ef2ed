package ui

import (
	"context"

	"github.com/Cyclone1070/pharmtui/internal/config"
	"github.com/Cyclone1070/pharmtui/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// UI runs the panels as a Bubble Tea program.
type UI struct {
	program *tea.Program
	cancel  context.CancelFunc
}

// NewUI creates a new Bubble Tea UI. Extra program options are appended
// after the alternate screen option.
func NewUI(
	backend Backend,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	cfg *config.Config,
	logger *zap.Logger,
	opts ...tea.ProgramOption,
) *UI {
	ctx, cancel := context.WithCancel(context.Background())

	model := newBubbleTeaModel(ctx, backend, renderer, spinnerFactory, cfg, logger)

	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return &UI{
		program: tea.NewProgram(model, options...),
		cancel:  cancel,
	}
}

// Start runs the program until the user quits. Outstanding requests are
// cancelled on return.
func (u *UI) Start() error {
	defer u.cancel()
	_, err := u.program.Run()
	return err
}

// Quit stops a running program.
func (u *UI) Quit() {
	u.program.Quit()
}
