// Package prompt produces writing prompts.
package prompt

import (
	"math/rand"
	"time"
)

// Defaults are the built-in prompts used when no prompt file exists.
var Defaults = []string{
	"Write the scene where your protagonist realizes they were wrong.",
	"Describe a place only through what is missing from it.",
	"Start with a door that should have stayed closed.",
	"Two characters argue about something neither will name.",
	"Write the last day of an ordinary job.",
	"A letter arrives thirty years too late.",
	"Describe a storm from the point of view of someone who caused it.",
	"Your narrator lies to the reader exactly once.",
	"Write a conversation held entirely in a waiting room.",
	"Something valuable is buried in the garden. It is not treasure.",
}

// Generator picks prompts at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for tests.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns one prompt chosen uniformly. Empty input falls back to the
// built-in defaults.
func (g *Generator) Pick(prompts []string) string {
	if len(prompts) == 0 {
		prompts = Defaults
	}
	return prompts[g.rnd.Intn(len(prompts))]
}
