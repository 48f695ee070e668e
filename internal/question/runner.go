package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Kind distinguishes notifications.
type Kind int

const (
	Success Kind = iota
	Failure
)

func (k Kind) String() string {
	if k == Failure {
		return "failure"
	}
	return "success"
}

// Clipboard receives generated questions.
type Clipboard interface {
	Copy(text string) error
}

// Notifier shows short status messages to the user.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// Notification texts.
const (
	TitleGenerated   = "Generated!"
	TitleCopied      = "Copied!"
	MessageCopied    = "The question has been copied to your clipboard."
	TitleFailed      = "Failed to generate question"
	TitleCopyFailed  = "Failed to copy question"
	MessageNotCopied = "The question is ready."
)

// Result is the outcome of one Request.
type Result struct {
	Epoch uint64
	Text  string
	Err   *GenerationError
}

// Runner executes requests and applies their results to a session.
// Clipboard and Notifier may be nil.
type Runner struct {
	Generator Generator
	Clipboard Clipboard
	Notifier  Notifier
	Logger    *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Run calls the generator for req. It blocks, so the TUI runs it inside
// a command.
func (r *Runner) Run(ctx context.Context, req Request) Result {
	r.logger().Debug("generating question",
		"epoch", req.Epoch,
		"style", req.Style,
		"creativity", req.Creativity.String(),
	)

	text, err := r.Generator.Generate(ctx, req.Prompt, req.Creativity)
	if err != nil {
		return Result{Epoch: req.Epoch, Err: NewGenerationError(err)}
	}
	return Result{Epoch: req.Epoch, Text: text}
}

// Apply moves the session forward with res and runs the side effects.
// Stale results are dropped without side effects and reported as
// ErrStaleResult.
func (r *Runner) Apply(s *Session, res Result) error {
	log := r.logger()

	if res.Err != nil {
		if err := s.Reject(res.Epoch); err != nil {
			log.Debug("dropping failed result", "epoch", res.Epoch, "error", err)
			return err
		}
		log.Warn("generation failed", "epoch", res.Epoch, "error", res.Err.Message)
		r.notify(Failure, TitleFailed, res.Err.Message)
		return nil
	}

	if err := s.Resolve(res.Epoch, res.Text); err != nil {
		log.Debug("dropping result", "epoch", res.Epoch, "error", err)
		return err
	}
	log.Info("question generated", "epoch", res.Epoch, "style", s.Style(), "chars", len(res.Text))

	r.deliver(TitleGenerated, res.Text)
	return nil
}

// Copy puts text on the clipboard again and reports the outcome.
func (r *Runner) Copy(text string) {
	r.deliver(TitleCopied, text)
}

// deliver copies text and notifies success under title.
func (r *Runner) deliver(title, text string) {
	if r.Clipboard == nil {
		r.notify(Success, title, MessageNotCopied)
		return
	}
	if err := r.Clipboard.Copy(text); err != nil {
		r.logger().Error("clipboard copy failed", "error", err)
		r.notify(Failure, TitleCopyFailed, err.Error())
		return
	}
	r.notify(Success, title, MessageCopied)
}

func (r *Runner) notify(kind Kind, title, message string) {
	if r.Notifier == nil {
		return
	}
	r.Notifier.Notify(kind, title, message)
}

// Ask runs one request synchronously and applies it. The returned error
// is the generation failure, if any.
func (r *Runner) Ask(ctx context.Context, s *Session, req Request) error {
	res := r.Run(ctx, req)
	if err := r.Apply(s, res); err != nil {
		return fmt.Errorf("apply result: %w", err)
	}
	if res.Err != nil {
		return res.Err
	}
	return nil
}

// IsStale reports whether err came from a superseded request.
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleResult)
}
