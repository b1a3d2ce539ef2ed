package ui

import (
	"context"
	"errors"

	"github.com/Cyclone1070/pharmtui/internal/api"
	"github.com/Cyclone1070/pharmtui/internal/config"
	"github.com/Cyclone1070/pharmtui/internal/ui/models"
	"github.com/Cyclone1070/pharmtui/internal/ui/services"
	"github.com/Cyclone1070/pharmtui/internal/ui/views"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// inputReserve is the room an input leaves for the prompt and trigger.
const inputReserve = 20

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State
	keys  KeyMap

	// Dependencies
	ctx      context.Context
	backend  Backend
	renderer services.MarkdownRenderer
	theme    views.Theme
	logger   *zap.Logger

	quizCount        int
	maxResultsHeight int
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// resultMsg carries a settled request back to the event loop.
type resultMsg struct {
	panel models.PanelID
	token uint64
	value any
	err   error
}

// newBubbleTeaModel creates a new Bubble Tea model. Requests derive their
// context from ctx.
func newBubbleTeaModel(
	ctx context.Context,
	backend Backend,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	cfg *config.Config,
	logger *zap.Logger,
) BubbleTeaModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinnerFactory()
	if d := cfg.TickInterval(); d > 0 {
		sp.Spinner.FPS = d
	}

	m := BubbleTeaModel{
		state:            models.NewState(sp),
		keys:             DefaultKeyMap(),
		ctx:              ctx,
		backend:          backend,
		renderer:         renderer,
		theme:            views.NewTheme(cfg.UI),
		logger:           logger,
		quizCount:        cfg.Quiz.Count,
		maxResultsHeight: cfg.UI.MaxResultsHeight,
	}
	m.resize()
	return m
}

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.state.Spinner.Tick)
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state, m.keys, m.theme)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Help.Width = msg.Width
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case resultMsg:
		return m.handleResult(msg), nil
	}

	// Cursor blink and other component messages go to the focused input.
	return m.updateInput(msg)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.state.Focused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.abortAll()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.state.MoveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.state.MoveFocus(-1)

	case key.Matches(msg, m.keys.Submit):
		return m.trigger(focused)

	case key.Matches(msg, m.keys.Seed):
		return m.trigger(models.PanelSeed)

	case key.Matches(msg, m.keys.Abort):
		if m.state.Panel(focused).Abort() {
			m.logger.Info("request aborted", zap.Stringer("panel", focused))
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.state.Panel(focused).Viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.state.Panel(focused).Viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.state.Panel(focused).Viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.state.Panel(focused).Viewport.ViewDown()
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused panel's input. Editing never
// issues a request.
func (m BubbleTeaModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	p := m.state.Panel(m.state.Focused())
	if !p.ID.Info().HasInput {
		return m, nil
	}
	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	return m, cmd
}

// trigger starts the request for a panel. It is a no-op while the panel is busy.
func (m BubbleTeaModel) trigger(id models.PanelID) (tea.Model, tea.Cmd) {
	p := m.state.Panel(id)
	if p.Busy {
		return m, nil
	}

	call := m.request(id, p.Input.Value())
	ctx, token := p.Begin(m.ctx)
	m.logger.Debug("request started", zap.Stringer("panel", id), zap.Uint64("token", token))

	return m, func() tea.Msg {
		value, err := call(ctx)
		return resultMsg{panel: id, token: token, value: value, err: err}
	}
}

// request binds a panel's input to its backend call.
func (m BubbleTeaModel) request(id models.PanelID, input string) func(context.Context) (any, error) {
	backend := m.backend
	switch id {
	case models.PanelSearch:
		return func(ctx context.Context) (any, error) {
			return backend.SearchDrugs(ctx, input)
		}
	case models.PanelInteractions:
		drugs := api.ParseDrugList(input)
		return func(ctx context.Context) (any, error) {
			return backend.SimulateInteractions(ctx, drugs)
		}
	case models.PanelChat:
		return func(ctx context.Context) (any, error) {
			return backend.Chat(ctx, input)
		}
	case models.PanelQuiz:
		count := m.quizCount
		return func(ctx context.Context) (any, error) {
			return backend.GenerateQuiz(ctx, input, count)
		}
	case models.PanelResearch:
		return func(ctx context.Context) (any, error) {
			return backend.SummarizeResearch(ctx, input)
		}
	default:
		return func(ctx context.Context) (any, error) {
			return backend.Seed(ctx)
		}
	}
}

// handleResult settles a panel. Results from superseded or aborted
// requests are dropped. Failures keep the previous results.
func (m BubbleTeaModel) handleResult(msg resultMsg) BubbleTeaModel {
	p := m.state.Panel(msg.panel)
	if !p.Settle(msg.token) {
		m.logger.Debug("dropping stale response",
			zap.Stringer("panel", msg.panel),
			zap.Uint64("token", msg.token),
			zap.Uint64("current", p.Seq),
		)
		return m
	}

	if msg.err != nil {
		fields := []zap.Field{zap.Stringer("panel", msg.panel), zap.Error(msg.err)}
		var reqErr *api.RequestError
		if errors.As(msg.err, &reqErr) {
			fields = append(fields,
				zap.String("endpoint", string(reqErr.Endpoint)),
				zap.String("request_id", reqErr.RequestID),
			)
		}
		m.logger.Error("request failed", fields...)
		p.Err = services.FormatError(msg.err)
		return m
	}

	p.Err = ""
	switch v := msg.value.(type) {
	case []api.DrugRecord:
		m.state.Drugs = v
	case []api.InteractionPair:
		m.state.Pairs = v
	case api.ChatReply:
		m.state.Reply = v.Reply
		m.state.HasReply = true
	case []api.QuizItem:
		m.state.QuizItems = v
	case api.ResearchSummary:
		m.state.Summary = v.Summary
	case api.SeedStatus:
		m.state.SeedStatus = services.FormatSeedStatus(v)
	}
	m.refresh(msg.panel)
	return m
}

// resize fits inputs and result viewports to the current width.
func (m *BubbleTeaModel) resize() {
	for id := models.PanelID(0); id < models.PanelCount; id++ {
		p := m.state.Panel(id)
		if p.ID.Info().HasInput {
			p.Input.Width = max(views.PanelContentWidth(m.state.Width, id)-inputReserve, 10)
		}
		m.refresh(id)
	}
}

// refresh re-renders a panel's results into its viewport.
func (m *BubbleTeaModel) refresh(id models.PanelID) {
	if id == models.PanelSeed {
		return
	}

	p := m.state.Panel(id)
	width := views.PanelContentWidth(m.state.Width, id)

	var content string
	switch id {
	case models.PanelSearch:
		content = views.FormatDrugs(m.state.Drugs, width, m.theme)
	case models.PanelInteractions:
		content = views.FormatPairs(m.state.Pairs, width, m.theme)
	case models.PanelChat:
		content = views.FormatReply(m.state.Reply, m.state.HasReply, width, m.renderer)
	case models.PanelQuiz:
		content = views.FormatQuiz(m.state.QuizItems, width, m.theme)
	case models.PanelResearch:
		content = views.FormatSummary(m.state.Summary, width, m.renderer)
	}

	p.Viewport.Width = width
	p.Viewport.SetContent(content)
	p.Viewport.GotoTop()
	if content == "" {
		p.Viewport.Height = 0
		return
	}
	p.Viewport.Height = min(lipgloss.Height(content), m.maxResultsHeight)
}

// abortAll cancels every outstanding request.
func (m *BubbleTeaModel) abortAll() {
	for id := models.PanelID(0); id < models.PanelCount; id++ {
		m.state.Panel(id).Abort()
	}
}
