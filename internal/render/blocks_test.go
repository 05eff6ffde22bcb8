package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

func TestRenderBlocksNilIsValidationError(t *testing.T) {
	r := newTestRenderer()
	_, err := r.RenderBlocks(nil)
	var validationErr *types.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "missing_blocks", validationErr.Code)
}

func TestRenderBlocksFragment(t *testing.T) {
	r := newTestRenderer()
	fragment, err := r.RenderBlocks([]types.Block{
		{"type": "hero", "title": "Hallo Welt"},
		{"type": "faq", "items": []any{
			map[string]any{"question": "Wie geht es?", "answer": "Gut."},
		}},
	})
	require.NoError(t, err)

	assert.NotContains(t, fragment, "<!DOCTYPE html>")
	assert.Contains(t, fragment, "Hallo Welt")
	assert.Contains(t, fragment, "<summary>Wie geht es?</summary>")
}

func TestRenderBlocksSkipsUnknownAndEmpty(t *testing.T) {
	r := newTestRenderer()
	fragment, err := r.RenderBlocks([]types.Block{
		{"type": "megabanner", "title": "nie gerendert"},
		{"type": "testimonials", "items": []any{}},
		{"no_type_at_all": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "", fragment)
}

func TestRenderBlocksDocumentSectionTypesAreNotBlocks(t *testing.T) {
	// cta/footer/about/contact belong to the spec vocabulary only; the
	// blocks format treats them as unknown.
	r := newTestRenderer()
	fragment, err := r.RenderBlocks([]types.Block{
		{"type": "cta", "title": "nicht hier"},
		{"type": "footer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "", fragment)
}

func TestRenderBlocksSameEscapingAsDocumentPath(t *testing.T) {
	r := newTestRenderer()
	fragment, err := r.RenderBlocks([]types.Block{
		{"type": "hero", "title": "<script>alert(1)</script>", "ctaHref": "javascript:alert(1)"},
	})
	require.NoError(t, err)

	assert.Contains(t, fragment, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, fragment, "<script")
	assert.Contains(t, fragment, `href="#"`)
}

func TestRenderBlocksTextPlainAndMarkdown(t *testing.T) {
	r := newTestRenderer()

	fragment, err := r.RenderBlocks([]types.Block{
		{"type": "text", "items": []any{"Erster Absatz mit <b>Markup</b>."}},
	})
	require.NoError(t, err)
	assert.Contains(t, fragment, "<p>Erster Absatz mit &lt;b&gt;Markup&lt;/b&gt;.</p>")

	fragment, err = r.RenderBlocks([]types.Block{
		{"type": "text", "format": "markdown", "items": []any{"## Überschrift\n\nEin **fetter** Satz."}},
	})
	require.NoError(t, err)
	assert.Contains(t, fragment, "<h2")
	assert.Contains(t, fragment, "<strong>fetter</strong>")

	// goldmark's safe default keeps raw HTML out of markdown output.
	fragment, err = r.RenderBlocks([]types.Block{
		{"type": "text", "format": "markdown", "items": []any{"Hallo <script>alert(1)</script>"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, fragment, "<script>")

	// Empty text blocks produce no shell.
	fragment, err = r.RenderBlocks([]types.Block{
		{"type": "text", "items": []any{}},
	})
	require.NoError(t, err)
	assert.Equal(t, "", fragment)
}

func TestRenderBlocksFormFields(t *testing.T) {
	r := newTestRenderer()
	fragment, err := r.RenderBlocks([]types.Block{
		{"type": "form", "title": "Anfrage", "fields": []any{
			map[string]any{"name": "email", "type": "email", "label": "E-Mail"},
			map[string]any{"name": "message", "type": "textarea", "label": "Nachricht"},
		}},
	})
	require.NoError(t, err)

	assert.Contains(t, fragment, `<input type="email" name="email"`)
	assert.Contains(t, fragment, `<textarea name="message"`)
	assert.Contains(t, fragment, "Anfrage")
}

func TestRenderBlocksPerBlockFailureIsolation(t *testing.T) {
	r := newTestRenderer()
	fragment, err := r.RenderBlocks([]types.Block{
		{"type": "hero", "title": "bleibt"},
		{"type": "pricing", "items": "not-an-array"},
		{"type": "features"},
	})
	require.NoError(t, err)

	assert.Contains(t, fragment, "bleibt")
	assert.Contains(t, fragment, `class="render-error"`)
	assert.Contains(t, fragment, `data-section="features"`)
}

func TestRenderBlocksDocumentWrapsFragment(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderBlocksDocument([]types.Block{
		{"type": "hero", "title": "Dokument"},
	}, types.Theme{Primary: types.ColorRed})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "--primary:#DC2626")
	assert.Contains(t, html, "Dokument")
}
