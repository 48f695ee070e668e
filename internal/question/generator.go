package question

import (
	"context"
	"errors"
	"strings"

	"github.com/sant0-9/icebreaker/internal/llm"
)

// Generator turns a prompt into question text.
type Generator interface {
	Generate(ctx context.Context, prompt string, c Creativity) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string, c Creativity) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string, c Creativity) (string, error) {
	return f(ctx, prompt, c)
}

// LLMGenerator asks an llm.Provider for the question.
type LLMGenerator struct {
	provider  llm.Provider
	model     string
	maxTokens int
}

// NewLLMGenerator creates a generator. An empty model uses the provider default.
func NewLLMGenerator(provider llm.Provider, model string) *LLMGenerator {
	return &LLMGenerator{
		provider:  provider,
		model:     model,
		maxTokens: 256,
	}
}

func (g *LLMGenerator) Generate(ctx context.Context, prompt string, c Creativity) (string, error) {
	req := llm.NewRequest(g.model, SystemPrompt, prompt)
	req.MaxTokens = g.maxTokens
	req.Temperature = c.Temperature()

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	text := cleanQuestion(resp.Content)
	if text == "" {
		return "", errors.New("the model returned an empty question")
	}
	return text, nil
}

// cleanQuestion trims whitespace and wrapping quotes some models add.
func cleanQuestion(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
