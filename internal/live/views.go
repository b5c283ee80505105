package live

import (
	"github.com/Zachkp/motionfolio/internal/cards"
	"github.com/Zachkp/motionfolio/internal/contact"
	"github.com/Zachkp/motionfolio/internal/content"
	"github.com/Zachkp/motionfolio/internal/demo"
	"github.com/Zachkp/motionfolio/internal/motion"
	"github.com/Zachkp/motionfolio/internal/ui"
)

// Fragment template names and element ids.
const (
	fragScrollProgress = "scroll-progress"
	fragOrbs           = "orbs"
	fragTooltip        = "tooltip"
	fragCard           = "motion-card"
	fragDemo           = "demo"
	fragForm           = "contact-form"
	fragInfo           = "info-card"
)

func cardTarget(k cards.Kind) string     { return "card-" + k.Slug() }
func demoTarget(k demo.Kind) string      { return "demo-" + k.Slug() }
func infoTarget(k cards.InfoKind) string { return "info-" + k.Slug() }

type TooltipView struct {
	Visible bool
	Title   string
	Body    string
}

// HomeView is everything the home page renders from live state.
type HomeView struct {
	Motion  motion.State
	Tooltip TooltipView
	Cards   []cards.State
	Demos   []demo.State
}

// FormView is the contact form with its inputs laid out for rendering.
type FormView struct {
	contact.State
	Fields []ui.Input
	Thanks string
}

// ContactView is everything the contact page renders from live state.
type ContactView struct {
	Form FormView
	Info []cards.InfoState
}

func tooltipView(s motion.State, tip content.Tooltip) TooltipView {
	return TooltipView{Visible: s.TooltipVisible, Title: tip.Title, Body: tip.Body}
}

func formView(s contact.State, catalog *content.Catalog) FormView {
	fields := make([]ui.Input, 0, len(contact.Fields))
	for _, f := range contact.Fields {
		typ := "text"
		if f == contact.FieldEmail {
			typ = "email"
		}
		fields = append(fields, ui.Input{
			Name:        f.String(),
			Type:        typ,
			Placeholder: catalog.FieldPlaceholder(f.String()),
			Value:       s.Value(f),
			Multiline:   f == contact.FieldMessage,
			Focused:     s.IsFocused(f),
			Filled:      s.Filled(f),
		})
	}
	return FormView{State: s, Fields: fields, Thanks: catalog.Contact.Thanks}
}
