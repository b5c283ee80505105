package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"home.html", "contact.html", "placeholder.html", "head", "nav", "foot", "orbs", "demo", "contact-form"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestFragment(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	r := NewRenderer(tmpl)

	out, err := r.Fragment("tooltip", struct {
		Visible     bool
		Title, Body string
	}{true, "Welcome <friend>", "Move"})
	require.NoError(t, err)
	assert.Contains(t, out, `id="tooltip"`)
	assert.Contains(t, out, "Welcome &lt;friend&gt;")

	_, err = r.Fragment("missing", nil)
	assert.Error(t, err)
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"live.js", "motion.css"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}

func TestLiveClientGuardsPatchFocus(t *testing.T) {
	src, err := fs.ReadFile(Static(), "live.js")
	require.NoError(t, err)
	js := string(src)

	// swapping a focused fragment must not echo blur/focus back to the server
	assert.Contains(t, js, "if (patching) return;")
	assert.Contains(t, js, "if (patching || !e.target.isConnected) return;")
	// local text survives a patch only while the form phase is unchanged
	assert.Contains(t, js, "form.dataset.phase === keep.phase")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "-12.50", formatNumber(-12.5))
	assert.Equal(t, "0.00", formatNumber(0))
}
