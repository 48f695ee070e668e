package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sant0-9/icebreaker/internal/question"
)

func TestAskOnce(t *testing.T) {
	var gotPrompt string
	var gotLevel question.Creativity
	runner := &question.Runner{
		Generator: question.GeneratorFunc(func(_ context.Context, prompt string, c question.Creativity) (string, error) {
			gotPrompt, gotLevel = prompt, c
			return "Mountains or beach?", nil
		}),
	}

	text, err := askOnce(context.Background(), runner, "Thought-provoking", question.Low)
	if err != nil {
		t.Fatalf("askOnce: %v", err)
	}
	if text != "Mountains or beach?" {
		t.Errorf("text = %q", text)
	}
	if gotPrompt != question.BuildPrompt("Thought-provoking") || gotLevel != question.Low {
		t.Errorf("generator got level %s and prompt:\n%s", gotLevel, gotPrompt)
	}
}

func TestAskOnceErrors(t *testing.T) {
	runner := &question.Runner{
		Generator: question.GeneratorFunc(func(context.Context, string, question.Creativity) (string, error) {
			return "", errors.New("network timeout")
		}),
	}

	if _, err := askOnce(context.Background(), runner, "Spicy", question.High); !errors.Is(err, question.ErrUnknownStyle) {
		t.Errorf("unknown style error = %v", err)
	}

	_, err := askOnce(context.Background(), runner, "Funny", question.High)
	if err == nil || err.Error() != "network timeout" {
		t.Errorf("generation error = %v, want network timeout", err)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestAskCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"What's your most embarrassing karaoke song choice?"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "provider: custom\nbase_url: " + srv.URL + "\nmodel: test\ncreativity: medium\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := runCLI(t, "--config", cfgPath, "ask", "--style", "Funny", "--no-copy")
	if err != nil {
		t.Fatalf("ask: %v (stderr %q)", err, stderr)
	}
	if strings.TrimSpace(stdout) != "What's your most embarrassing karaoke song choice?" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, question.TitleGenerated) {
		t.Errorf("stderr = %q, want success notification", stderr)
	}
}

func TestAskCommandRejectsBadCreativity(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(cfgPath, []byte("provider: ollama\n"), 0600)

	_, _, err := runCLI(t, "--config", cfgPath, "ask", "--style", "Funny", "--creativity", "extreme")
	if err == nil || !strings.Contains(err.Error(), "unknown creativity level") {
		t.Errorf("error = %v", err)
	}
}

func TestAskCommandReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(cfgPath, []byte("provider: custom\nbase_url: "+srv.URL+"\n"), 0600)

	stdout, stderr, err := runCLI(t, "--config", cfgPath, "ask", "--style", "Introspective", "--no-copy")
	if err == nil {
		t.Fatal("expected error")
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, question.TitleFailed) || !strings.Contains(stderr, "503") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestStylesCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "c.yaml"), "styles")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range question.StyleNames() {
		if !strings.Contains(stdout, name) {
			t.Errorf("styles output missing %s:\n%s", name, stdout)
		}
	}
}
