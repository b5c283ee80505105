package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "MotionFolio", c.Site.Name)
	require.Len(t, c.Site.Nav, 3)
	assert.True(t, c.Site.Nav[2].Button)
	assert.Equal(t, "Beautiful", c.Hero.Highlight)
	assert.Len(t, c.Contact.Stats, 4)
	assert.Equal(t, "your@email.com", c.FieldPlaceholder("email"))

	for _, key := range []string{"about", "work", "not-found"} {
		p, err := c.Page(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, p.Title, key)
		assert.Contains(t, string(p.HTML), "<p>", key)
	}
}

func TestMarkdownRendered(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	about, err := c.Page("about")
	require.NoError(t, err)
	assert.Contains(t, string(about.HTML), "<strong>motion design</strong>")

	work, err := c.Page("work")
	require.NoError(t, err)
	assert.Contains(t, string(work.HTML), `<a href="/contact">reach out</a>`)
}

func TestEmptyDescriptionFallsBackToPlaceholder(t *testing.T) {
	c, err := Parse([]byte(`
[placeholder]
description = "Coming soon."

[pages.lab]
title = "Lab"
`))
	require.NoError(t, err)

	p, err := c.Page("lab")
	require.NoError(t, err)
	assert.Equal(t, "<p>Coming soon.</p>\n", string(p.HTML))
}

func TestMissingPage(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	_, err = c.Page("blog")
	assert.ErrorIs(t, err, ErrMissingPage)
}

func TestParseRejectsBadTOML(t *testing.T) {
	_, err := Parse([]byte("[site\nname="))
	assert.Error(t, err)
}
