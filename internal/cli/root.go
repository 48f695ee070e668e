// Package cli defines the Cobra commands for icebreaker.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sant0-9/icebreaker/internal/clipboard"
	"github.com/sant0-9/icebreaker/internal/config"
	"github.com/sant0-9/icebreaker/internal/logging"
	"github.com/sant0-9/icebreaker/internal/tui"
)

var version = "dev" // set via ldflags at build time

type rootOptions struct {
	debug      bool
	configPath string

	logger    *slog.Logger
	logCloser io.Closer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "icebreaker",
		Short: "Generate ice-breaker questions for team meetings",
		Long: `icebreaker asks an LLM for one ice-breaker question in the style you
pick, shows it, and copies it to your clipboard.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logCloser != nil {
				return opts.logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTTY() {
				return cmd.Help()
			}
			return opts.runTUI(cmd.Context())
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs to "+logging.FileName+" in the config directory")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/icebreaker/config.yaml)")

	cmd.AddCommand(newAskCommand(opts))
	cmd.AddCommand(newStylesCommand())

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (o *rootOptions) setup() error {
	if o.configPath == "" {
		path, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("locating config: %w", err)
		}
		o.configPath = path
	}

	logger, closer, err := logging.Setup(logging.Options{
		Debug: o.debug,
		Dir:   filepath.Dir(o.configPath),
	})
	if err != nil {
		return err
	}
	o.logger = logger
	o.logCloser = closer
	slog.SetDefault(logger)
	return nil
}

// loadConfig returns the config and whether it came from disk.
func (o *rootOptions) loadConfig() (*config.Config, bool, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, false, fmt.Errorf("reading config: %w", err)
	}
	if cfg == nil {
		o.logger.Debug("config not found, using defaults", "path", o.configPath)
		return config.DefaultConfig(), false, nil
	}
	return cfg, true, nil
}

func (o *rootOptions) runTUI(ctx context.Context) error {
	cfg, found, err := o.loadConfig()
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.Options{
		Config:     cfg,
		ConfigPath: o.configPath,
		NeedsSetup: !found,
		Clipboard:  clipboard.System{},
		Logger:     o.logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
