package question

import "fmt"

// State is the coarse position of a session.
type State int

const (
	Idle State = iota
	Requesting
	Viewing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Requesting:
		return "requesting"
	case Viewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// Direction is used by AdjustCreativity.
type Direction int

const (
	LessCreative Direction = -1
	MoreCreative Direction = 1
)

// Request is one generation to run. Epoch ties the eventual result back
// to the session that issued it.
type Request struct {
	Epoch      uint64
	Style      string
	Prompt     string
	Creativity Creativity
}

// Snapshot is a read-only copy of a session for display.
type Snapshot struct {
	State      State
	Style      string
	Creativity Creativity
	Question   string
	Loading    bool
}

// Session is the state of one interactive run. It is not safe for
// concurrent use; callers feed it events from a single goroutine.
type Session struct {
	state      State
	style      string
	creativity Creativity
	question   string
	loading    bool
	epoch      uint64
}

// NewSession starts in Idle with the given creativity. Invalid levels
// fall back to DefaultCreativity.
func NewSession(c Creativity) *Session {
	if !c.Valid() {
		c = DefaultCreativity
	}
	return &Session{creativity: c}
}

func (s *Session) State() State           { return s.state }
func (s *Session) Style() string          { return s.style }
func (s *Session) Creativity() Creativity { return s.creativity }
func (s *Session) Question() string       { return s.question }
func (s *Session) Loading() bool          { return s.loading }

// Snapshot copies the current fields.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:      s.state,
		Style:      s.style,
		Creativity: s.creativity,
		Question:   s.question,
		Loading:    s.loading,
	}
}

// SelectStyle picks a style from the catalog and starts the first request.
func (s *Session) SelectStyle(name string) (Request, error) {
	if s.state != Idle {
		return Request{}, &TransitionError{Op: "select style", From: s.state}
	}
	if _, ok := LookupStyle(name); !ok {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	s.style = name
	s.question = ""
	return s.begin(), nil
}

// Regenerate asks again with the current style and creativity. The
// previous question stays visible until the new one arrives.
func (s *Session) Regenerate() (Request, error) {
	if s.state != Viewing {
		return Request{}, &TransitionError{Op: "regenerate", From: s.state}
	}
	return s.begin(), nil
}

func (s *Session) begin() Request {
	s.epoch++
	s.state = Requesting
	s.loading = true
	return Request{
		Epoch:      s.epoch,
		Style:      s.style,
		Prompt:     BuildPrompt(s.style),
		Creativity: s.creativity,
	}
}

// Resolve applies a successful result for the request with the given epoch.
func (s *Session) Resolve(epoch uint64, text string) error {
	if err := s.checkPending("resolve", epoch); err != nil {
		return err
	}
	s.question = text
	s.loading = false
	s.state = Viewing
	return nil
}

// Reject applies a failed result. The question keeps its previous value.
func (s *Session) Reject(epoch uint64) error {
	if err := s.checkPending("reject", epoch); err != nil {
		return err
	}
	s.loading = false
	s.state = Viewing
	return nil
}

func (s *Session) checkPending(op string, epoch uint64) error {
	if epoch != s.epoch {
		return fmt.Errorf("%s epoch %d (current %d): %w", op, epoch, s.epoch, ErrStaleResult)
	}
	if s.state != Requesting {
		return &TransitionError{Op: op, From: s.state}
	}
	return nil
}

// StartOver returns to Idle from any state. Creativity is kept and any
// in-flight request becomes stale.
func (s *Session) StartOver() {
	s.epoch++
	s.state = Idle
	s.style = ""
	s.question = ""
	s.loading = false
}

// AdjustCreativity steps creativity one level. It never starts a request.
func (s *Session) AdjustCreativity(dir Direction) (Creativity, error) {
	if s.state != Viewing {
		return s.creativity, &TransitionError{Op: "adjust creativity", From: s.state}
	}
	switch dir {
	case MoreCreative:
		s.creativity = Increase(s.creativity)
	case LessCreative:
		s.creativity = Decrease(s.creativity)
	default:
		return s.creativity, fmt.Errorf("unknown direction %d", dir)
	}
	return s.creativity, nil
}
