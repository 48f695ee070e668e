package tui

import (
	"strings"
	"testing"
)

func TestMarkdownRendererReusesRenderer(t *testing.T) {
	var m markdownRenderer
	doc := "# A Funny Question:\n\nPineapple on pizza?"

	first := m.render(doc, 60)
	if !strings.Contains(first, "Pineapple") {
		t.Fatalf("rendered = %q", first)
	}
	r := m.renderer

	if got := m.render(doc, 60); got != first || m.renderer != r {
		t.Error("same width should reuse the renderer and cached output")
	}

	m.render("# A Funny Question:\n\nTabs or spaces?", 60)
	if m.renderer != r {
		t.Error("new text at the same width should not rebuild the renderer")
	}

	m.render(doc, 40)
	if m.renderer == r || m.width != 40 {
		t.Error("a width change should rebuild the renderer")
	}
}

func TestMarkdownRendererEmptyInput(t *testing.T) {
	var m markdownRenderer
	if got := m.render("  \n", 60); got != "" {
		t.Errorf("render(blank) = %q", got)
	}
	if m.renderer != nil {
		t.Error("blank input should not build a renderer")
	}
}
