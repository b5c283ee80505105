package cards

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies a motion showcase card on the home page.
type Kind int

const (
	MicroInteractions Kind = iota
	OnboardingFlows
	CelebratoryMoments
)

// Kinds lists the showcase cards in display order.
var Kinds = []Kind{MicroInteractions, OnboardingFlows, CelebratoryMoments}

var ErrUnknownCard = errors.New("unknown card")

type showcase struct {
	slug        string
	icon        string
	title       string
	description string
	detail      string
	reveal      time.Duration
}

var showcases = map[Kind]showcase{
	MicroInteractions: {
		slug:        "micro-interactions",
		icon:        "zap",
		title:       "Micro-Interactions",
		description: "Delightful hover states, button animations, and form feedback that guide users naturally.",
		detail:      "From button hover states to form validation feedback, every small interaction contributes to the overall user experience.",
		reveal:      200 * time.Millisecond,
	},
	OnboardingFlows: {
		slug:        "onboarding-flows",
		icon:        "rocket",
		title:       "Onboarding Flows",
		description: "Smooth progressive disclosure and guided tours that welcome users without overwhelming them.",
		detail:      "Step-by-step guidance that reduces cognitive load and helps users discover features naturally without feeling overwhelmed.",
		reveal:      400 * time.Millisecond,
	},
	CelebratoryMoments: {
		slug:        "celebratory-moments",
		icon:        "heart",
		title:       "Celebratory Moments",
		description: "Joyful success animations and achievement unlocks that make every win feel special.",
		detail:      "Transform routine tasks into memorable experiences with thoughtful animations that acknowledge user achievements.",
		reveal:      600 * time.Millisecond,
	},
}

func (k Kind) Slug() string        { return showcases[k].slug }
func (k Kind) Icon() string        { return showcases[k].icon }
func (k Kind) Title() string       { return showcases[k].title }
func (k Kind) Description() string { return showcases[k].description }

// Detail is the text disclosed when the card is expanded.
func (k Kind) Detail() string { return showcases[k].detail }

// RevealDelay staggers the card's entrance animation.
func (k Kind) RevealDelay() time.Duration { return showcases[k].reveal }

func (k Kind) String() string {
	if s, ok := showcases[k]; ok {
		return s.slug
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a slug to its showcase card.
func ParseKind(slug string) (Kind, error) {
	for _, k := range Kinds {
		if k.Slug() == slug {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCard, slug)
}

// InfoKind identifies a contact page info card.
type InfoKind int

const (
	WorkGlobally InfoKind = iota
	QuickResponse
	CoffeeChat
)

// InfoKinds lists the info cards in display order.
var InfoKinds = []InfoKind{WorkGlobally, QuickResponse, CoffeeChat}

type info struct {
	slug        string
	icon        string
	title       string
	description string
	highlight   string
}

var infos = map[InfoKind]info{
	WorkGlobally: {
		slug:        "work-globally",
		icon:        "globe",
		title:       "Work Globally",
		description: "Based in San Francisco, working with clients worldwide",
		highlight:   "Remote-first approach",
	},
	QuickResponse: {
		slug:        "quick-response",
		icon:        "clock",
		title:       "Quick Response",
		description: "Typically respond within 4-6 hours during business days",
		highlight:   "PST Timezone",
	},
	CoffeeChat: {
		slug:        "coffee-chat",
		icon:        "coffee",
		title:       "Coffee Chat",
		description: "Love discussing projects over virtual coffee",
		highlight:   "30-min discovery calls",
	},
}

func (k InfoKind) Slug() string        { return infos[k].slug }
func (k InfoKind) Icon() string        { return infos[k].icon }
func (k InfoKind) Title() string       { return infos[k].title }
func (k InfoKind) Description() string { return infos[k].description }
func (k InfoKind) Highlight() string   { return infos[k].highlight }

func (k InfoKind) String() string {
	if s, ok := infos[k]; ok {
		return s.slug
	}
	return fmt.Sprintf("InfoKind(%d)", int(k))
}

// ParseInfoKind maps a slug to its info card.
func ParseInfoKind(slug string) (InfoKind, error) {
	for _, k := range InfoKinds {
		if k.Slug() == slug {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCard, slug)
}
