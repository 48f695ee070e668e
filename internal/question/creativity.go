package question

import (
	"fmt"
	"strings"
)

// Creativity is how adventurous the generated question may be.
type Creativity int

const (
	Low Creativity = iota
	Medium
	High
	Maximum
)

// DefaultCreativity is used for a fresh session.
const DefaultCreativity = High

// creativityScale is the single source of ordering for stepping.
var creativityScale = []Creativity{Low, Medium, High, Maximum}

func (c Creativity) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Maximum:
		return "maximum"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the known levels.
func (c Creativity) Valid() bool {
	return c.position() >= 0
}

// Temperature maps the level onto a sampling temperature.
func (c Creativity) Temperature() float64 {
	switch c {
	case Low:
		return 0.2
	case Medium:
		return 0.5
	case Maximum:
		return 1.0
	default:
		return 0.8
	}
}

func (c Creativity) position() int {
	for i, level := range creativityScale {
		if level == c {
			return i
		}
	}
	return -1
}

// ParseCreativity accepts a level name, case-insensitively.
func ParseCreativity(s string) (Creativity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, level := range creativityScale {
		if level.String() == name {
			return level, nil
		}
	}
	return DefaultCreativity, fmt.Errorf("unknown creativity level %q (want one of %s)", s, strings.Join(CreativityNames(), ", "))
}

// CreativityNames lists the levels from lowest to highest.
func CreativityNames() []string {
	names := make([]string, len(creativityScale))
	for i, level := range creativityScale {
		names[i] = level.String()
	}
	return names
}

// Increase returns the next level up, or c itself at the top.
func Increase(c Creativity) Creativity {
	return step(c, 1)
}

// Decrease returns the next level down, or c itself at the bottom.
func Decrease(c Creativity) Creativity {
	return step(c, -1)
}

func step(c Creativity, delta int) Creativity {
	i := c.position()
	if i < 0 {
		return c
	}
	next := i + delta
	if next < 0 || next >= len(creativityScale) {
		return c
	}
	return creativityScale[next]
}
