package question

import (
	"context"
	"errors"
	"testing"

	"github.com/sant0-9/icebreaker/internal/llm"
)

type fakeProvider struct {
	content string
	err     error
	last    *llm.CompletionRequest
}

func (p *fakeProvider) Name() string               { return "fake" }
func (p *fakeProvider) Ping(context.Context) error { return nil }

func (p *fakeProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Content: p.content}, nil
}

func TestLLMGenerator(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "plain", content: "What did you have for breakfast?", want: "What did you have for breakfast?"},
		{name: "whitespace", content: "\n  Pineapple on pizza?  \n", want: "Pineapple on pizza?"},
		{name: "quoted", content: `"If you were a kitchen tool, which one?"`, want: "If you were a kitchen tool, which one?"},
		{name: "empty", content: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{content: tt.content}
			g := NewLLMGenerator(p, "test-model")

			got, err := g.Generate(context.Background(), "prompt", Maximum)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Generate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLLMGeneratorRequest(t *testing.T) {
	p := &fakeProvider{content: "ok?"}
	g := NewLLMGenerator(p, "test-model")

	if _, err := g.Generate(context.Background(), "the prompt", Low); err != nil {
		t.Fatal(err)
	}

	req := p.last
	if req.Model != "test-model" {
		t.Errorf("model = %q", req.Model)
	}
	if req.Temperature != Low.Temperature() {
		t.Errorf("temperature = %v, want %v", req.Temperature, Low.Temperature())
	}
	if len(req.Messages) != 2 || req.Messages[0].Content != SystemPrompt || req.Messages[1].Content != "the prompt" {
		t.Errorf("messages = %+v", req.Messages)
	}
}

func TestLLMGeneratorPassesErrors(t *testing.T) {
	want := errors.New("rate limited")
	g := NewLLMGenerator(&fakeProvider{err: want}, "")

	if _, err := g.Generate(context.Background(), "p", High); !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}
