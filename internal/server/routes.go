package server

import "github.com/Zachkp/motionfolio/internal/live"

// Route maps a path to the page rendered there.
type Route struct {
	Path  string
	Title string
	// Live routes mount an interactive page instance; the others render a
	// placeholder from the page copy named by Copy.
	Live bool
	Page live.Page
	Copy string
}

// Template is the page template the route renders.
func (r Route) Template() string {
	if r.Live {
		return r.Page.Template()
	}
	return "placeholder.html"
}

var Routes = []Route{
	{Path: "/", Title: "Home", Live: true, Page: live.PageHome},
	{Path: "/work", Title: "Work", Copy: "work"},
	{Path: "/about", Title: "About", Copy: "about"},
	{Path: "/contact", Title: "Contact", Live: true, Page: live.PageContact},
}

// notFound is rendered for every unmatched path.
var notFound = Route{Title: "Not Found", Copy: "not-found"}
