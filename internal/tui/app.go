package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/icebreaker/internal/config"
	"github.com/sant0-9/icebreaker/internal/llm"
	"github.com/sant0-9/icebreaker/internal/question"
)

type view int

const (
	viewSetup view = iota
	viewStyles
	viewQuestion
	viewSettings
	viewHelp
)

const toastDuration = 4 * time.Second

// Options wires the app. Config is required. When Generator is set the
// provider from Config is not used.
type Options struct {
	Config     *config.Config
	ConfigPath string
	NeedsSetup bool
	Generator  question.Generator
	Clipboard  question.Clipboard
	Logger     *slog.Logger
}

type App struct {
	width    int
	height   int
	view     view
	prevView view
	state    *state
	quitting bool
}

func NewApp(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := newState(opts.Config, logger)
	s.configPath = opts.ConfigPath
	s.needsSetup = opts.NeedsSetup
	s.runner = &question.Runner{
		Generator: opts.Generator,
		Clipboard: opts.Clipboard,
		Notifier:  s,
		Logger:    logger,
	}
	if opts.Generator != nil {
		s.providerReady = true
	}

	v := viewStyles
	if s.needsSetup {
		v = viewSetup
	}

	return &App{
		view:  v,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}
	if a.state.providerReady {
		return tea.WindowSize()
	}

	return tea.Batch(
		tea.WindowSize(),
		a.testProvider(),
	)
}

// testProvider builds the configured provider and pings it.
func (a *App) testProvider() tea.Cmd {
	cfg := *a.state.config
	return func() tea.Msg {
		provider, err := llm.NewProvider(&cfg)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

// generate runs req off the update loop. The result carries the request
// epoch so late answers can be told apart.
func (a *App) generate(req question.Request) tea.Cmd {
	runner := a.state.runner
	return func() tea.Msg {
		return generatedMsg{runner.Run(context.Background(), req)}
	}
}

func clearToastAfter(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq}
	})
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }
type generatedMsg struct{ result question.Result }
type clearToastMsg struct{ seq int }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.styleList.SetSize(min(70, msg.Width-4), max(5, msg.Height-8))

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.state.setupError = nil
		a.state.providerReady = false
		a.view = viewStyles
		return a, a.testProvider()

	case setupErrorMsg:
		a.state.setupError = msg.error
		a.state.logger.Error("saving config failed", "error", msg.error)
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		a.state.runner.Generator = question.NewLLMGenerator(msg.provider, a.state.config.Model)
		a.state.logger.Info("provider ready", "provider", msg.provider.Name(), "model", a.state.config.Model)
		return a, nil

	case providerErrorMsg:
		a.state.providerReady = false
		a.state.providerError = msg.error
		a.state.logger.Warn("provider unavailable", "error", msg.error)
		return a, nil

	case generatedMsg:
		return a, a.applyResult(msg.result)

	case clearToastMsg:
		if a.state.toast != nil && a.state.toast.seq == msg.seq {
			a.state.toast = nil
		}
		return a, nil

	case spinner.TickMsg:
		if a.state.session.Loading() {
			var cmd tea.Cmd
			a.state.spinner, cmd = a.state.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.view == viewSetup && a.state.setupStep == 1 {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	if len(cmds) == 0 {
		return a, nil
	}
	return a, tea.Batch(cmds...)
}

// applyResult feeds a generation result into the session. Stale results
// are dropped silently.
func (a *App) applyResult(res question.Result) tea.Cmd {
	seq := a.state.toastSeq
	if err := a.state.runner.Apply(a.state.session, res); err != nil {
		if !errors.Is(err, question.ErrStaleResult) {
			a.state.logger.Error("applying result failed", "error", err)
		}
		return nil
	}
	if a.state.toastSeq != seq {
		return clearToastAfter(a.state.toastSeq)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewStyles:
		return a.handleStylesKey(msg)
	case viewQuestion:
		return a.handleQuestionKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back, keys.Help, keys.Quit) {
			a.view = a.prevView
		}
	}

	return nil
}

func (a *App) openOverlay(v view) {
	a.prevView = a.view
	a.view = v
}

func (a *App) handleStylesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit, keys.Back):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		a.openOverlay(viewHelp)
		return nil

	case key.Matches(msg, keys.Settings):
		a.openOverlay(viewSettings)
		return nil

	case key.Matches(msg, keys.Retry) && a.state.providerError != nil:
		a.state.providerError = nil
		return a.testProvider()

	case key.Matches(msg, keys.Enter):
		item, ok := a.state.styleList.SelectedItem().(styleItem)
		if !ok || !a.state.providerReady {
			return nil
		}
		return a.selectStyle(item.style.Name)
	}

	var cmd tea.Cmd
	a.state.styleList, cmd = a.state.styleList.Update(msg)
	return cmd
}

func (a *App) selectStyle(name string) tea.Cmd {
	req, err := a.state.session.SelectStyle(name)
	if err != nil {
		a.state.logger.Error("select style", "style", name, "error", err)
		return nil
	}
	a.state.logger.Info("style selected", "style", name, "creativity", req.Creativity.String())
	a.view = viewQuestion
	return tea.Batch(a.generate(req), a.state.spinner.Tick)
}

func (a *App) handleQuestionKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state.session

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		a.openOverlay(viewHelp)
		return nil

	case key.Matches(msg, keys.StartOver):
		s.StartOver()
		a.state.logger.Info("start over")
		a.view = viewStyles
		return nil
	}

	if s.State() != question.Viewing {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Regenerate):
		req, err := s.Regenerate()
		if err != nil {
			return nil
		}
		return tea.Batch(a.generate(req), a.state.spinner.Tick)

	case key.Matches(msg, keys.MoreCreative):
		level, _ := s.AdjustCreativity(question.MoreCreative)
		a.state.logger.Debug("creativity changed", "creativity", level.String())

	case key.Matches(msg, keys.LessCreative):
		level, _ := s.AdjustCreativity(question.LessCreative)
		a.state.logger.Debug("creativity changed", "creativity", level.String())

	case key.Matches(msg, keys.Copy):
		if s.Question() == "" {
			return nil
		}
		seq := a.state.toastSeq
		a.state.runner.Copy(s.Question())
		if a.state.toastSeq != seq {
			return clearToastAfter(a.state.toastSeq)
		}
	}

	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "s":
		a.view = a.prevView
	case "r":
		a.state.needsSetup = true
		a.state.setupStep = 0
		a.state.selectedProvider = 0
		a.state.apiKeyInput.Reset()
		a.view = viewSetup
		return textinput.Blink
	}
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewQuestion:
		return a.renderQuestion()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderStyles()
	}
}
