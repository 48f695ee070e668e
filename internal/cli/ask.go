package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sant0-9/icebreaker/internal/clipboard"
	"github.com/sant0-9/icebreaker/internal/llm"
	"github.com/sant0-9/icebreaker/internal/question"
)

type askOptions struct {
	style      string
	creativity string
	noCopy     bool
}

func newAskCommand(root *rootOptions) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Generate one question without the interactive UI",
		Example: `  icebreaker ask --style Funny
  icebreaker ask --style Introspective --creativity low --no-copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.loadConfig()
			if err != nil {
				return err
			}

			level := cfg.Creativity
			if opts.creativity != "" {
				level = opts.creativity
			}
			creativity, err := question.ParseCreativity(level)
			if err != nil {
				return err
			}

			provider, err := llm.NewProvider(cfg)
			if err != nil {
				return fmt.Errorf("configuring provider: %w", err)
			}

			runner := &question.Runner{
				Generator: question.NewLLMGenerator(provider, cfg.Model),
				Notifier:  &writerNotifier{w: cmd.ErrOrStderr()},
				Logger:    root.logger,
			}
			if !opts.noCopy {
				runner.Clipboard = clipboard.System{}
			}

			text, err := askOnce(cmd.Context(), runner, opts.style, creativity)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", "", "Question style: "+strings.Join(question.StyleNames(), ", "))
	cmd.Flags().StringVar(&opts.creativity, "creativity", "", "Creativity: "+strings.Join(question.CreativityNames(), ", ")+" (default from config)")
	cmd.Flags().BoolVar(&opts.noCopy, "no-copy", false, "Do not copy the question to the clipboard")
	_ = cmd.MarkFlagRequired("style")

	return cmd
}

// askOnce drives a fresh session through a single select-and-resolve cycle.
func askOnce(ctx context.Context, runner *question.Runner, style string, creativity question.Creativity) (string, error) {
	session := question.NewSession(creativity)

	req, err := session.SelectStyle(style)
	if err != nil {
		return "", err
	}

	if err := runner.Ask(ctx, session, req); err != nil {
		return "", err
	}
	return session.Question(), nil
}

// writerNotifier prints notifications as single lines.
type writerNotifier struct {
	w io.Writer
}

func (n *writerNotifier) Notify(kind question.Kind, title, message string) {
	mark := "✓"
	if kind == question.Failure {
		mark = "✗"
	}
	fmt.Fprintf(n.w, "%s %s %s\n", mark, title, message)
}
