package question

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is matched by every TransitionError.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrUnknownStyle is returned when a style is not in the catalog.
	ErrUnknownStyle = errors.New("unknown question style")

	// ErrStaleResult marks a generation result from a superseded request.
	ErrStaleResult = errors.New("stale generation result")
)

// TransitionError reports an operation attempted from the wrong state.
type TransitionError struct {
	Op   string
	From State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed while %s", e.Op, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// GenerationError is a failed generation request. The message is shown
// to the user verbatim.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps err, keeping its text as the message.
func NewGenerationError(err error) *GenerationError {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge
	}
	return &GenerationError{Message: err.Error(), Err: err}
}
