package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitegen_server/internal/intent"
	"sitegen_server/internal/types"
)

func TestExtractGermanLandingRequest(t *testing.T) {
	draft := intent.Extract("Ich möchte eine blaue Landingpage mit Hero und Kontaktformular")

	assert.Equal(t, types.PageTypeLanding, draft.PageType)
	assert.Equal(t, types.ColorBlue, draft.PrimaryColor)
	assert.Contains(t, draft.Sections, types.SectionHero)
	assert.Contains(t, draft.Sections, types.SectionContact)
	assert.Contains(t, draft.Sections, types.SectionFooter)
}

func TestExtractDefaults(t *testing.T) {
	draft := intent.Extract("irgendwas ganz anderes")

	assert.Equal(t, types.PageTypeLanding, draft.PageType)
	assert.Equal(t, types.ColorBlue, draft.PrimaryColor)
	assert.Equal(t, "professional", draft.Tone)
	assert.Equal(t, 3, draft.ImageCount)
	assert.Equal(t,
		[]string{types.SectionHero, types.SectionFeatures, types.SectionCTA, types.SectionFooter},
		draft.Sections)
}

func TestExtractPageTypes(t *testing.T) {
	cases := map[string]string{
		"Ein Portfolio für meine Fotografie": types.PageTypePortfolio,
		"Ich brauche einen Onlineshop":       types.PageTypeShop,
		"Ein Blog über Kaffee":               types.PageTypeBlog,
		"Eine Seite über unser Team":         types.PageTypeAbout,
		"Nur eine Kontaktseite bitte":        types.PageTypeContact,
	}
	for text, want := range cases {
		assert.Equal(t, want, intent.Extract(text).PageType, "input: %s", text)
	}
}

func TestExtractFirstMatchingPageTypeWins(t *testing.T) {
	// "Landingpage" appears before contact in the table order, so a
	// message mentioning a contact form still yields a landing page.
	draft := intent.Extract("Landingpage mit Kontaktformular")
	assert.Equal(t, types.PageTypeLanding, draft.PageType)
}

func TestExtractImageCount(t *testing.T) {
	assert.Equal(t, 8, intent.Extract("Portfolio mit 8 Bildern").ImageCount)
	assert.Equal(t, 12, intent.Extract("Galerie mit 99 Fotos").ImageCount)
	assert.Equal(t, 1, intent.Extract("nur 0 Bilder").ImageCount)
	assert.Equal(t, 3, intent.Extract("ohne Zahl").ImageCount)
	// Four digits are not a standalone 1-2 digit number.
	assert.Equal(t, 3, intent.Extract("gegründet 2019").ImageCount)
}

func TestExtractTone(t *testing.T) {
	assert.Equal(t, "minimal", intent.Extract("bitte schlicht und clean").Tone)
	assert.Equal(t, "elegant", intent.Extract("etwas Elegantes für die Boutique").Tone)
}

func TestExtractSectionUnion(t *testing.T) {
	draft := intent.Extract("Landingpage mit Preisen, Kundenstimmen und FAQ")

	// Base set first, matched extras after, in table order.
	assert.Equal(t, []string{
		types.SectionHero, types.SectionFeatures, types.SectionCTA, types.SectionFooter,
		types.SectionTestimonials, types.SectionPricing, types.SectionFAQ,
	}, draft.Sections)
}

func TestExtractFooterAlwaysPresent(t *testing.T) {
	for _, text := range []string{
		"Blog über Technik",
		"Shop für Schuhe",
		"völlig freier Text",
	} {
		assert.Contains(t, intent.Extract(text).Sections, types.SectionFooter, "input: %s", text)
	}
}

func TestExtractNormalizesWhitespaceAndCase(t *testing.T) {
	draft := intent.Extract("  GRÜNE   LANDINGPAGE  ")
	assert.Equal(t, types.ColorGreen, draft.PrimaryColor)
	assert.Equal(t, types.PageTypeLanding, draft.PageType)
}
