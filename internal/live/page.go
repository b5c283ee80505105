// Package live keeps the server side state of interactive page views.
//
// Every render of an interactive page mounts an Instance holding that view's
// components. The browser attaches to it over a websocket, sends DOM events,
// and receives re-rendered fragments as patches. Detaching unmounts the
// instance and cancels everything it scheduled.
package live

import (
	"errors"
	"fmt"
)

// Page is an interactive page kind.
type Page int

const (
	PageHome Page = iota
	PageContact
)

var ErrUnknownPage = errors.New("unknown page")

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageContact:
		return "contact"
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// Template is the full page template rendered for p.
func (p Page) Template() string {
	return p.String() + ".html"
}
