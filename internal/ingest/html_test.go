package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<!DOCTYPE html><html></html>"))
	assert.True(t, LooksLikeHTML("<div class=\"job\">Engineer</div>"))
	assert.True(t, LooksLikeHTML("Intro text <p>with a paragraph</p>"))
	assert.False(t, LooksLikeHTML("Senior Engineer - Go, Kubernetes"))
	assert.False(t, LooksLikeHTML("salary < 100k and equity > 0"))
}

func TestExtractText_BlockElements(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<h1>Platform Engineer</h1>
		<p>Build the core platform.</p>
		<ul><li>Go</li><li>Terraform</li></ul>
		<footer>© Acme</footer>
	</body></html>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Platform Engineer")
	assert.Contains(t, text, "Build the core platform.")
	assert.Contains(t, text, "Terraform")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "© Acme")
}

func TestExtractText_SkipsContainerDivs(t *testing.T) {
	html := `<div><p>Only once</p></div>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Equal(t, "Only once\n", text)
}

func TestExtractText_PlainFragmentFallback(t *testing.T) {
	text, err := ExtractText("<span>just a span</span>")
	require.NoError(t, err)
	assert.Contains(t, text, "just a span")
}
