// Package ui has the primitive widgets the page templates are built from.
// Each widget is a small value with a style variant; Class composes the
// Tailwind classes for it.
package ui

import (
	"html/template"
	"strings"
)

// ButtonVariant selects the button style.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonOutline
	ButtonSecondary
	ButtonGhost
	ButtonSuccess
)

// Size selects a control size.
type Size int

const (
	SizeDefault Size = iota
	SizeSmall
	SizeLarge
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all " +
	"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50"

var buttonVariants = map[ButtonVariant]string{
	ButtonDefault:   "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonOutline:   "border border-primary/20 bg-background hover:bg-primary/10",
	ButtonSecondary: "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	ButtonGhost:     "hover:bg-accent hover:text-accent-foreground",
	ButtonSuccess:   "bg-green-500 text-white hover:bg-green-600",
}

var buttonSizes = map[Size]string{
	SizeDefault: "h-10 px-4 py-2",
	SizeSmall:   "h-9 rounded-md px-3",
	SizeLarge:   "h-11 rounded-md px-8",
}

// Button is a button or link styled as one.
type Button struct {
	Label    string
	Href     string
	Variant  ButtonVariant
	Size     Size
	Disabled bool
	Extra    string
}

func (b Button) Class() string {
	return Classes(buttonBase, buttonVariants[b.Variant], buttonSizes[b.Size], b.Extra)
}

// BadgeVariant selects the badge style.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgeSecondary
	BadgeOutline
)

var badgeVariants = map[BadgeVariant]string{
	BadgeDefault:   "border-transparent bg-primary text-primary-foreground",
	BadgeSecondary: "border-transparent bg-secondary text-secondary-foreground",
	BadgeOutline:   "text-foreground",
}

type Badge struct {
	Text    string
	Variant BadgeVariant
	Extra   string
}

func (b Badge) Class() string {
	return Classes("inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors",
		badgeVariants[b.Variant], b.Extra)
}

// Input is a single line or multi line text control.
type Input struct {
	Name        string
	Type        string
	Placeholder string
	Value       string
	Multiline   bool
	Focused     bool
	Filled      bool
}

func (in Input) Class() string {
	base := "flex w-full rounded-md border border-input bg-background px-3 py-2 text-sm ring-offset-background " +
		"placeholder:text-muted-foreground focus-visible:outline-none transition-all duration-300"
	var height string
	if in.Multiline {
		height = "min-h-32"
	} else {
		height = "h-10"
	}
	var focus, filled string
	if in.Focused {
		focus = "scale-105 border-primary"
	}
	if in.Filled {
		filled = "border-green-500"
	}
	return Classes(base, height, focus, filled)
}

// Card is the translucent panel every section sits on.
type Card struct {
	Extra string
}

func (c Card) Class() string {
	return Classes("rounded-lg border border-primary/10 bg-card/50 text-card-foreground shadow-sm backdrop-blur-sm", c.Extra)
}

// Classes joins non-empty class lists with single spaces.
func Classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// When returns class if cond holds.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Either returns a if cond holds, b otherwise.
func Either(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// Funcs exposes the widgets to templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"cx":     Classes,
		"when":   When,
		"either": Either,
		"button": func(label string, variant ButtonVariant, size Size) Button {
			return Button{Label: label, Variant: variant, Size: size}
		},
		"badge": func(text string, variant BadgeVariant, extra string) Badge {
			return Badge{Text: text, Variant: variant, Extra: extra}
		},
		"card": func(extra string) Card { return Card{Extra: extra} },
		"variant": func(name string) ButtonVariant {
			switch name {
			case "outline":
				return ButtonOutline
			case "secondary":
				return ButtonSecondary
			case "ghost":
				return ButtonGhost
			case "success":
				return ButtonSuccess
			}
			return ButtonDefault
		},
		"size": func(name string) Size {
			switch name {
			case "sm":
				return SizeSmall
			case "lg":
				return SizeLarge
			}
			return SizeDefault
		},
	}
}
