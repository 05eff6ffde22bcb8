package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/render"
	"sitegen_server/internal/types"
)

func newTestRenderer() *render.Renderer {
	r := render.New()
	r.Now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return r
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderDocumentMissingSections(t *testing.T) {
	r := newTestRenderer()

	_, err := r.RenderDocument(nil)
	var validationErr *types.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = r.RenderDocument(&types.WebsiteSpec{PageType: types.PageTypeLanding})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "missing_sections", validationErr.Code)
}

func TestRenderDocumentDefaultsForEmptySpec(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionHero, types.SectionFeatures, types.SectionGallery, types.SectionCTA},
	})
	require.NoError(t, err)

	doc := parseDoc(t, html)
	assert.Equal(t, "Landingpage", doc.Find("title").Text())
	assert.NotEmpty(t, strings.TrimSpace(doc.Find("section.hero h1").Text()))
	assert.Equal(t, 3, doc.Find(`section[data-section="features"] .card`).Length())
	assert.Equal(t, 6, doc.Find(".gallery-tile").Length())
	assert.Contains(t, html, "Jetzt starten")
	// No placeholder tokens anywhere in default copy.
	assert.NotContains(t, html, "[")
}

func TestRenderDocumentFooterGuarantee(t *testing.T) {
	r := newTestRenderer()

	// Footer omitted from sections: still exactly one footer.
	html, err := r.RenderDocument(&types.WebsiteSpec{Sections: []string{types.SectionHero}})
	require.NoError(t, err)
	assert.Equal(t, 1, parseDoc(t, html).Find("footer").Length())

	// Footer present: still exactly one.
	html, err = r.RenderDocument(&types.WebsiteSpec{Sections: []string{types.SectionHero, types.SectionFooter}})
	require.NoError(t, err)
	assert.Equal(t, 1, parseDoc(t, html).Find("footer").Length())

	// Even an empty sections array yields a footer.
	html, err = r.RenderDocument(&types.WebsiteSpec{Sections: []string{}})
	require.NoError(t, err)
	assert.Equal(t, 1, parseDoc(t, html).Find("footer").Length())
}

func TestRenderDocumentSkipsEmptyListSections(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionHero, types.SectionTestimonials},
		Copy: map[string]map[string]any{
			types.SectionTestimonials: {"items": []any{}},
		},
	})
	require.NoError(t, err)

	doc := parseDoc(t, html)
	assert.Equal(t, 0, doc.Find(`section[data-section="testimonials"]`).Length())
	assert.Equal(t, 1, doc.Find("section.hero").Length())
}

func TestRenderDocumentUnknownSectionSkipped(t *testing.T) {
	r := newTestRenderer()

	withUnknown, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionHero, "wibble", types.SectionCTA},
	})
	require.NoError(t, err)

	without, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionHero, types.SectionCTA},
	})
	require.NoError(t, err)

	assert.Equal(t, without, withUnknown)
}

func TestRenderDocumentDeterminism(t *testing.T) {
	r := newTestRenderer()
	spec := &types.WebsiteSpec{
		PageType: types.PageTypeShop,
		Theme:    types.Theme{Primary: types.ColorGreen},
		Sections: []string{types.SectionHero, types.SectionFeatures, types.SectionPricing, types.SectionFooter},
		Copy: map[string]map[string]any{
			types.SectionPricing: {
				"items": []any{
					map[string]any{"name": "Basis", "price": "9 €"},
					map[string]any{"name": "Pro", "price": "29 €", "features": []any{"Support", "Eigene Domain"}},
				},
			},
		},
	}

	first, err := r.RenderDocument(spec)
	require.NoError(t, err)
	second, err := r.RenderDocument(spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderDocumentEscapesUserContent(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionHero},
		Copy: map[string]map[string]any{
			types.SectionHero: {
				"title":    "<script>alert(1)</script>",
				"subtitle": `"quoted" & <b>bold</b>`,
				"ctaHref":  "javascript:alert(1)",
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, `href="#"`)
}

func TestRenderDocumentRejectsMarkupInTheme(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionHero},
		Theme: types.Theme{
			Background: "</style><script>alert(1)</script><style>",
			Surface:    "red; } body { display: none",
			Text:       "expression(alert(1))",
			Typography: "'Inter'</style><script>alert(2)</script>",
		},
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<script>alert(2)</script>")
	assert.NotContains(t, html, "display: none")
	assert.Contains(t, html, "--background:#FFFFFF")
	assert.Contains(t, html, "--surface:#F9FAFB")
	assert.Contains(t, html, "--text:#111827")
	assert.Contains(t, html, "font-family:'Inter', 'Helvetica Neue', Arial, sans-serif")
}

func TestRenderDocumentCustomSectionIsRawPassthrough(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionCustom},
		Copy: map[string]map[string]any{
			types.SectionCustom: {"html": `<div id="widget">eingebettet</div>`},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, html, `<div id="widget">eingebettet</div>`)
}

func TestRenderDocumentPartialFailureIsolation(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionHero, types.SectionPricing, types.SectionCTA},
		Copy: map[string]map[string]any{
			types.SectionPricing: {"items": "not-an-array"},
		},
	})
	require.NoError(t, err)

	doc := parseDoc(t, html)
	assert.Equal(t, 1, doc.Find("section.hero").Length())
	assert.Equal(t, 1, doc.Find("section.cta").Length())
	assert.Equal(t, 0, doc.Find(`section[data-section="pricing"]`).Length())
	assert.Equal(t, 1, doc.Find(`.render-error[data-section="pricing"]`).Length())
}

func TestRenderDocumentDuplicateSectionsRenderTwice(t *testing.T) {
	r := newTestRenderer()
	html, err := r.RenderDocument(&types.WebsiteSpec{
		Sections: []string{types.SectionFeatures, types.SectionFeatures},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, parseDoc(t, html).Find(`section[data-section="features"]`).Length())
}

func TestRenderDocumentTimestampIsIsolated(t *testing.T) {
	r := render.New() // real clock
	spec := &types.WebsiteSpec{Sections: []string{types.SectionHero}}

	first, err := r.RenderDocument(spec)
	require.NoError(t, err)
	second, err := r.RenderDocument(spec)
	require.NoError(t, err)

	mask := func(html string) string {
		var kept []string
		for _, line := range strings.Split(html, "\n") {
			if strings.HasPrefix(line, "<!-- generated ") {
				continue
			}
			kept = append(kept, line)
		}
		return strings.Join(kept, "\n")
	}
	assert.Equal(t, mask(first), mask(second))
	assert.Contains(t, first, "<!-- generated ")
}
