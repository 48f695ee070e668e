package question

import (
	"errors"
	"testing"
)

func viewingSession(t *testing.T, c Creativity) *Session {
	t.Helper()
	s := NewSession(c)
	req, err := s.SelectStyle("Funny")
	if err != nil {
		t.Fatalf("SelectStyle: %v", err)
	}
	if err := s.Resolve(req.Epoch, "first question"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(Creativity(-3))
	if s.Creativity() != High {
		t.Errorf("creativity = %s, want high", s.Creativity())
	}
	if s.State() != Idle || s.Style() != "" || s.Question() != "" || s.Loading() {
		t.Errorf("unexpected initial session: %+v", s.Snapshot())
	}
}

func TestSelectStyle(t *testing.T) {
	s := NewSession(High)

	req, err := s.SelectStyle("Funny")
	if err != nil {
		t.Fatalf("SelectStyle: %v", err)
	}
	if s.State() != Requesting || !s.Loading() || s.Style() != "Funny" {
		t.Errorf("after select: %+v", s.Snapshot())
	}
	if req.Prompt != BuildPrompt("Funny") || req.Creativity != High || req.Style != "Funny" {
		t.Errorf("unexpected request: %+v", req)
	}

	if _, err := s.SelectStyle("Introspective"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second SelectStyle error = %v, want ErrInvalidTransition", err)
	}
}

func TestSelectUnknownStyle(t *testing.T) {
	s := NewSession(High)
	if _, err := s.SelectStyle("Spicy"); !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("error = %v, want ErrUnknownStyle", err)
	}
	if s.State() != Idle {
		t.Errorf("state = %s, want idle", s.State())
	}
}

func TestResolveAndReject(t *testing.T) {
	s := NewSession(High)
	req, _ := s.SelectStyle("Introspective")

	if err := s.Reject(req.Epoch); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if s.State() != Viewing || s.Loading() || s.Question() != "" {
		t.Errorf("after reject: %+v", s.Snapshot())
	}

	// not requesting any more
	if err := s.Resolve(req.Epoch, "late"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Resolve after reject = %v, want ErrInvalidTransition", err)
	}
}

func TestRegenerateKeepsStaleQuestion(t *testing.T) {
	s := viewingSession(t, High)
	if _, err := s.AdjustCreativity(MoreCreative); err != nil {
		t.Fatal(err)
	}

	req, err := s.Regenerate()
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if req.Creativity != Maximum {
		t.Errorf("request creativity = %s, want maximum", req.Creativity)
	}
	if s.Question() != "first question" || !s.Loading() {
		t.Errorf("during regenerate: %+v", s.Snapshot())
	}

	if err := s.Resolve(req.Epoch, "second question"); err != nil {
		t.Fatal(err)
	}
	if s.Question() != "second question" {
		t.Errorf("question = %q", s.Question())
	}
}

func TestRegenerateOnlyFromViewing(t *testing.T) {
	s := NewSession(High)
	if _, err := s.Regenerate(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Regenerate from idle = %v", err)
	}
	s.SelectStyle("Funny")
	if _, err := s.Regenerate(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Regenerate while requesting = %v", err)
	}
}

func TestStartOverFromEveryState(t *testing.T) {
	setups := map[string]func() *Session{
		"idle": func() *Session { return NewSession(Low) },
		"requesting": func() *Session {
			s := NewSession(Low)
			s.SelectStyle("Funny")
			return s
		},
		"viewing": func() *Session { return viewingSession(t, Low) },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s := setup()
			s.StartOver()
			snap := s.Snapshot()
			if snap.State != Idle || snap.Style != "" || snap.Question != "" || snap.Loading {
				t.Errorf("after StartOver: %+v", snap)
			}
			if snap.Creativity != Low {
				t.Errorf("creativity changed to %s", snap.Creativity)
			}
		})
	}
}

func TestLateResultAfterStartOverIsDiscarded(t *testing.T) {
	s := NewSession(High)
	old, _ := s.SelectStyle("Funny")
	s.StartOver()

	if err := s.Resolve(old.Epoch, "ghost"); !errors.Is(err, ErrStaleResult) {
		t.Fatalf("Resolve = %v, want ErrStaleResult", err)
	}
	if s.Question() != "" || s.State() != Idle {
		t.Errorf("stale result leaked into session: %+v", s.Snapshot())
	}

	// a newer request in flight is not disturbed by the old one
	current, _ := s.SelectStyle("Introspective")
	if err := s.Reject(old.Epoch); !errors.Is(err, ErrStaleResult) {
		t.Errorf("Reject = %v, want ErrStaleResult", err)
	}
	if !s.Loading() {
		t.Error("stale rejection cleared loading")
	}
	if err := s.Resolve(current.Epoch, "real"); err != nil {
		t.Fatal(err)
	}
}

func TestAdjustCreativity(t *testing.T) {
	s := viewingSession(t, High)

	got, err := s.AdjustCreativity(LessCreative)
	if err != nil || got != Medium {
		t.Fatalf("AdjustCreativity(less) = %s, %v", got, err)
	}
	if s.Question() != "first question" || s.Style() != "Funny" || s.State() != Viewing {
		t.Errorf("adjusting changed other fields: %+v", s.Snapshot())
	}

	if _, err := s.AdjustCreativity(Direction(7)); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestAdjustCreativityAtMaximum(t *testing.T) {
	s := viewingSession(t, Maximum)

	got, err := s.AdjustCreativity(MoreCreative)
	if err != nil {
		t.Fatalf("AdjustCreativity: %v", err)
	}
	if got != Maximum || s.Creativity() != Maximum {
		t.Errorf("creativity = %s, want maximum", got)
	}
}

func TestAdjustCreativityOutsideViewing(t *testing.T) {
	s := NewSession(High)
	_, err := s.AdjustCreativity(MoreCreative)

	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TransitionError", err)
	}
	if te.From != Idle || s.Creativity() != High {
		t.Errorf("TransitionError.From = %s, creativity = %s", te.From, s.Creativity())
	}
}
