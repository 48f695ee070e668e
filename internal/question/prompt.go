package question

import (
	"fmt"
	"strings"
)

// SystemPrompt frames the assistant for chat-style providers.
const SystemPrompt = `You write ice-breaker questions for team meetings. You reply with exactly one question and nothing else.`

const guidance = `- Help the team let loose and shake off any cobwebs before diving into the meeting
- Help teammates get to know each other better on a personal level
- Encourage sharing and connection
- Be engaging and easy to answer
- Avoid being cheesy, we're here to be chill
- Don't make the team 🤦
- Take 1-2 minutes to answer per person`

const closing = "Please provide just the question without any additional explanation or context."

// styleClauses holds the extra guidance bullet per catalog style.
// Keys are matched exactly, not lowered.
var styleClauses = map[string]string{
	"Funny":             "- Be humorous but respectful",
	"Introspective":     "- Encourage reflection on personal experiences, values, or growth",
	"Light-hearted":     "- Be fun and casual to create a relaxed atmosphere",
	"Thought-provoking": "- Spark interesting discussions and new perspectives",
}

// BuildPrompt returns the user prompt for a style. Unknown styles get
// the generic guidance only.
func BuildPrompt(style string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a %s ice-breaker question for a team meeting. The question should:\n\n", strings.ToLower(style))
	b.WriteString(guidance)
	b.WriteString("\n")

	if clause, ok := styleClauses[style]; ok {
		b.WriteString(clause)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(closing)

	return b.String()
}

// StyleClause returns the extra guidance for a style, if it has one.
func StyleClause(style string) (string, bool) {
	clause, ok := styleClauses[style]
	return clause, ok
}

// Markdown renders a generated question for display.
func Markdown(style, question string) string {
	return strings.TrimSpace(fmt.Sprintf("# A %s Question:\n\n%s", style, question))
}
