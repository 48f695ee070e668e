// Package question holds the ice-breaker domain: the style catalog, the
// creativity scale, prompt building and the session state machine.
package question

// Style is one entry of the question style catalog.
type Style struct {
	Name        string
	Description string
	Icon        string
}

var catalog = []Style{
	{
		Name:        "Introspective",
		Description: "Deep, reflective questions about personal experiences and values",
		Icon:        "🤔",
	},
	{
		Name:        "Light-hearted",
		Description: "Fun, casual questions to create a relaxed atmosphere",
		Icon:        "😌",
	},
	{
		Name:        "Thought-provoking",
		Description: "Questions that spark interesting discussions and new perspectives",
		Icon:        "🧠",
	},
	{
		Name:        "Funny",
		Description: "Humorous questions to bring laughter and energy to the team",
		Icon:        "🍆",
	},
}

// Styles returns the catalog in display order.
func Styles() []Style {
	out := make([]Style, len(catalog))
	copy(out, catalog)
	return out
}

// LookupStyle finds a style by exact name.
func LookupStyle(name string) (Style, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}

// StyleNames returns the catalog names in order.
func StyleNames() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}
