package demo

import (
	"errors"
	"fmt"
)

// Kind selects which home page demo an instance renders.
type Kind int

const (
	ButtonEvolution Kind = iota
	ProgressCelebration
)

// Kinds lists the demos in display order.
var Kinds = []Kind{ButtonEvolution, ProgressCelebration}

var ErrUnknownKind = errors.New("unknown demo")

type copyText struct {
	slug        string
	title       string
	description string
	headline    string
	caption     string
}

var copies = map[Kind]copyText{
	ButtonEvolution: {
		slug:        "button-evolution",
		title:       "Button Evolution",
		description: "From simple click to delightful interaction",
		headline:    "Smooth & Delightful!",
		caption:     "Notice how the button transforms with purpose",
	},
	ProgressCelebration: {
		slug:        "progress-celebration",
		title:       "Progress Celebration",
		description: "Making achievements feel rewarding",
		headline:    "Achievement Unlocked!",
		caption:     "Every milestone deserves celebration ✨",
	},
}

func (k Kind) Slug() string        { return copies[k].slug }
func (k Kind) Title() string       { return copies[k].title }
func (k Kind) Description() string { return copies[k].description }

// Headline is shown once the run completes.
func (k Kind) Headline() string { return copies[k].headline }

// Caption is the small print under the headline.
func (k Kind) Caption() string { return copies[k].caption }

func (k Kind) String() string {
	if c, ok := copies[k]; ok {
		return c.slug
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a slug back to its Kind.
func ParseKind(slug string) (Kind, error) {
	for _, k := range Kinds {
		if k.Slug() == slug {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, slug)
}
