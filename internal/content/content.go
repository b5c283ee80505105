// Package content holds the site copy. The copy lives in an embedded TOML file;
// page descriptions are markdown and rendered once at load.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed content.toml
var raw []byte

var ErrMissingPage = errors.New("page copy missing")

type NavLink struct {
	Label  string `toml:"label"`
	Path   string `toml:"path"`
	Button bool   `toml:"button"`
}

type Site struct {
	Name    string    `toml:"name"`
	Tagline string    `toml:"tagline"`
	Nav     []NavLink `toml:"nav"`
}

// Headline is a heading with one highlighted word.
type Headline struct {
	Badge     string `toml:"badge"`
	Lead      string `toml:"lead"`
	Highlight string `toml:"highlight"`
	Trail     string `toml:"trail"`
	Body      string `toml:"body"`
}

type Hero struct {
	Headline
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
}

type Showcase struct {
	Heading   string `toml:"heading"`
	Highlight string `toml:"highlight"`
	Body      string `toml:"body"`
}

type Tooltip struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Page is the copy of a placeholder page.
type Page struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`

	// HTML is Description rendered from markdown.
	HTML template.HTML `toml:"-"`
}

type Stat struct {
	Value  string `toml:"value"`
	Label  string `toml:"label"`
	Accent bool   `toml:"accent"`
}

type Contact struct {
	Headline
	FormTitle    string            `toml:"form_title"`
	Thanks       string            `toml:"thanks"`
	StatsTitle   string            `toml:"stats_title"`
	Placeholders map[string]string `toml:"placeholders"`
	Stats        []Stat            `toml:"stats"`
}

// Catalog is all of the site copy.
type Catalog struct {
	Site        Site     `toml:"site"`
	Hero        Hero     `toml:"hero"`
	Showcase    Showcase `toml:"showcase"`
	Tooltip     Tooltip  `toml:"tooltip"`
	Placeholder struct {
		Description string `toml:"description"`
	} `toml:"placeholder"`
	Pages   map[string]Page `toml:"pages"`
	Contact Contact         `toml:"contact"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(raw)
}

// Parse decodes a TOML catalog and renders the page markdown.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Typographer))
	for key, p := range c.Pages {
		desc := p.Description
		if strings.TrimSpace(desc) == "" {
			desc = c.Placeholder.Description
		}
		rendered, err := renderMarkdown(md, desc)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", key, err)
		}
		p.HTML = rendered
		c.Pages[key] = p
	}
	return &c, nil
}

// Page returns the copy for a placeholder page by key.
func (c *Catalog) Page(key string) (Page, error) {
	p, ok := c.Pages[key]
	if !ok {
		return Page{}, fmt.Errorf("%w: %s", ErrMissingPage, key)
	}
	return p, nil
}

// FieldPlaceholder returns the placeholder text for a contact form input.
func (c *Catalog) FieldPlaceholder(field string) string {
	return c.Contact.Placeholders[field]
}

func renderMarkdown(md goldmark.Markdown, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	// page copy is authored in this repository, never user supplied
	return template.HTML(buf.String()), nil
}
