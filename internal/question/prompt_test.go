package question

import (
	"strings"
	"testing"
)

func TestBuildPromptClauses(t *testing.T) {
	for _, style := range StyleNames() {
		t.Run(style, func(t *testing.T) {
			prompt := BuildPrompt(style)

			for other, clause := range styleClauses {
				has := strings.Contains(prompt, clause)
				if other == style && !has {
					t.Errorf("prompt for %s is missing its clause %q", style, clause)
				}
				if other != style && has {
					t.Errorf("prompt for %s contains %s clause %q", style, other, clause)
				}
			}
		})
	}
}

func TestBuildPromptUnknownStyle(t *testing.T) {
	prompt := BuildPrompt("Sarcastic")

	for name, clause := range styleClauses {
		if strings.Contains(prompt, clause) {
			t.Errorf("unknown style got the %s clause", name)
		}
	}
	if !strings.Contains(prompt, "Generate a sarcastic ice-breaker question") {
		t.Errorf("generic sentence missing:\n%s", prompt)
	}
}

func TestBuildPromptMatchesClausesExactly(t *testing.T) {
	// lower-casing applies to the sentence only, not to clause lookup
	prompt := BuildPrompt("funny")
	if strings.Contains(prompt, styleClauses["Funny"]) {
		t.Error("lower-case name should not pick up the Funny clause")
	}
}

func TestBuildPromptShape(t *testing.T) {
	prompt := BuildPrompt("Funny")

	if !strings.Contains(prompt, "funny ice-breaker question") {
		t.Errorf("prompt does not lower-case the style:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, closing) {
		t.Errorf("prompt should end with the just-the-question directive:\n%s", prompt)
	}
	if prompt != BuildPrompt("Funny") {
		t.Error("BuildPrompt is not deterministic")
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown("Funny", "Why?")
	want := "# A Funny Question:\n\nWhy?"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestLookupStyle(t *testing.T) {
	if _, ok := LookupStyle("Funny"); !ok {
		t.Error("Funny not found")
	}
	if _, ok := LookupStyle("funny"); ok {
		t.Error("lookup should be case-sensitive")
	}

	styles := Styles()
	styles[0].Name = "changed"
	if Styles()[0].Name != "Introspective" {
		t.Error("Styles() exposes the catalog for mutation")
	}
}
