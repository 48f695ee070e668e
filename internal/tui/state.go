package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sant0-9/icebreaker/internal/config"
	"github.com/sant0-9/icebreaker/internal/question"
)

type state struct {
	// Config
	config     *config.Config
	configPath string
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model
	setupError       error

	// Question session
	session   *question.Session
	runner    *question.Runner
	styleList list.Model
	spinner   spinner.Model
	markdown  markdownRenderer

	// Provider
	providerReady bool
	providerError error

	// Notifications
	toast    *toast
	toastSeq int

	logger *slog.Logger
}

type toast struct {
	seq     int
	kind    question.Kind
	title   string
	message string
	at      time.Time
}

// Notify implements question.Notifier by replacing the visible toast.
func (s *state) Notify(kind question.Kind, title, message string) {
	s.toastSeq++
	s.toast = &toast{
		seq:     s.toastSeq,
		kind:    kind,
		title:   title,
		message: message,
		at:      time.Now(),
	}
	s.logger.Debug("notify", "kind", kind.String(), "title", title, "message", message)
}

func newState(cfg *config.Config, logger *slog.Logger) *state {
	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	creativity, err := question.ParseCreativity(cfg.Creativity)
	if err != nil {
		logger.Warn("invalid creativity in config, using default", "value", cfg.Creativity)
	}

	return &state{
		config:      cfg,
		apiKeyInput: apiKey,
		session:     question.NewSession(creativity),
		styleList:   newStyleList(),
		spinner:     sp,
		logger:      logger,
	}
}
