package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"sitegen_server/internal/types"
)

// errSkipSection tells the calling renderer to emit nothing for this
// section. Used for list-backed sections with no items so the document
// never contains empty <section> shells.
var errSkipSection = errors.New("section has no content")

// sectionContent is the loosely-typed content object of one section or
// block. Every field is optional; accessors substitute defaults.
type sectionContent map[string]any

// str returns the string value for key, or def when the key is absent,
// empty or not a string.
func (c sectionContent) str(key, def string) string {
	if c == nil {
		return def
	}
	if v, ok := c[key].(string); ok && v != "" {
		return v
	}
	return def
}

// items returns the array value for key. An absent key yields an empty
// slice; a present but non-array value is a malformed section and
// yields an error so the caller can contain the failure.
func (c sectionContent) items(key string) ([]any, error) {
	if c == nil {
		return nil, nil
	}
	raw, ok := c[key]
	if !ok || raw == nil {
		return nil, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, expected an array", key, raw)
	}
	return arr, nil
}

// renderContext carries the document-level hints a section template may
// need (styling hints only, never structural requirements).
type renderContext struct {
	pageType string
	siteName string
}

// sectionFunc renders one section type to an HTML snippet. Returning
// errSkipSection suppresses the section entirely; any other error is
// contained by the caller and replaced with an inline error block.
type sectionFunc func(content sectionContent, ctx renderContext) (string, error)

// sectionTemplates is the single dispatch table shared by the document
// renderer and the blocks renderer, so the two input formats cannot
// drift apart in escaping or defaulting behavior.
var sectionTemplates = map[string]sectionFunc{
	types.SectionHero:         renderHero,
	types.SectionFeatures:     renderFeatures,
	types.SectionGallery:      renderGallery,
	types.SectionCTA:          renderCTA,
	types.SectionTestimonials: renderTestimonials,
	types.SectionPricing:      renderPricing,
	types.SectionFAQ:          renderFAQ,
	types.SectionFooter:       renderFooter,
	types.SectionAbout:        renderAbout,
	types.SectionContact:      renderContact,
	types.SectionCustom:       renderCustom,
	"form":                    renderForm,
	"text":                    renderText,
}

// blockTypes is the smaller vocabulary the secondary blocks format
// accepts. Anything else is skipped as unknown, same as in the
// document path.
var blockTypes = map[string]bool{
	types.SectionHero:         true,
	types.SectionFeatures:     true,
	types.SectionFAQ:          true,
	"form":                    true,
	"text":                    true,
	types.SectionGallery:      true,
	types.SectionTestimonials: true,
	types.SectionPricing:      true,
	types.SectionCustom:       true,
}

// heroTitles maps a page type to its default hero headline.
var heroTitles = map[string]string{
	types.PageTypeLanding:   "Willkommen auf Ihrer neuen Website",
	types.PageTypePortfolio: "Meine Arbeiten",
	types.PageTypeAbout:     "Über uns",
	types.PageTypeBlog:      "Neues aus dem Blog",
	types.PageTypeShop:      "Unser Sortiment",
	types.PageTypeContact:   "Kontakt aufnehmen",
}

// DefaultHeroTitle returns the hero headline for a page type, falling
// back to the landing title for unknown page types.
func DefaultHeroTitle(pageType string) string {
	if title, ok := heroTitles[pageType]; ok {
		return title
	}
	return heroTitles[types.PageTypeLanding]
}

// featureIcons pairs the first default features with a fixed glyph by
// position; items beyond the list get the bullet glyph.
var featureIcons = []string{"★", "⚡", "✓"}

const defaultFeatureIcon = "•"

// defaultFeatures is genuine usable copy, not bracketed placeholders.
var defaultFeatures = []string{
	"Schnell eingerichtet und sofort einsatzbereit",
	"Ansprechendes Design auf allen Geräten",
	"Persönlicher Support bei allen Fragen",
}

// markdownConverter renders markdown text blocks. The default goldmark
// policy drops raw HTML, so markdown content cannot smuggle script tags
// into the document.
var markdownConverter = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderHero(content sectionContent, ctx renderContext) (string, error) {
	title := content.str("title", DefaultHeroTitle(ctx.pageType))
	subtitle := content.str("subtitle", "Alles, was Sie brauchen, an einem Ort.")
	ctaLabel := content.str("ctaLabel", "Jetzt starten")
	ctaHref := SanitizeURL(content.str("ctaHref", "#"))

	var b strings.Builder
	b.WriteString(`<section class="hero" data-section="hero">`)
	fmt.Fprintf(&b, "<h1>%s</h1>", EscapeHTML(title))
	fmt.Fprintf(&b, `<p class="subtitle">%s</p>`, EscapeHTML(subtitle))
	fmt.Fprintf(&b, `<a class="button" href="%s">%s</a>`, EscapeHTML(ctaHref), EscapeHTML(ctaLabel))
	b.WriteString("</section>")
	return b.String(), nil
}

func renderFeatures(content sectionContent, _ renderContext) (string, error) {
	raw, err := content.items("items")
	if err != nil {
		return "", err
	}

	type feature struct{ title, text string }
	var features []feature
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			features = append(features, feature{title: v})
		case map[string]any:
			fc := sectionContent(v)
			features = append(features, feature{
				title: fc.str("title", "Weitere Funktion"),
				text:  fc.str("text", ""),
			})
		default:
			return "", fmt.Errorf("feature item is %T, expected string or object", item)
		}
	}
	if len(features) == 0 {
		for _, title := range defaultFeatures {
			features = append(features, feature{title: title})
		}
	}

	var b strings.Builder
	b.WriteString(`<section class="features" data-section="features">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Ihre Vorteile")))
	b.WriteString(`<div class="feature-grid">`)
	for i, f := range features {
		icon := defaultFeatureIcon
		if i < len(featureIcons) {
			icon = featureIcons[i]
		}
		b.WriteString(`<div class="card">`)
		fmt.Fprintf(&b, `<span class="icon" aria-hidden="true">%s</span>`, icon)
		fmt.Fprintf(&b, "<h3>%s</h3>", EscapeHTML(f.title))
		if f.text != "" {
			fmt.Fprintf(&b, "<p>%s</p>", EscapeHTML(f.text))
		}
		b.WriteString("</div>")
	}
	b.WriteString("</div></section>")
	return b.String(), nil
}

const defaultGalleryTiles = 6

func renderGallery(content sectionContent, _ renderContext) (string, error) {
	raw, err := content.items("items")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<section class="gallery" data-section="gallery">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Galerie")))
	b.WriteString(`<div class="gallery-grid">`)
	if len(raw) == 0 {
		// No real images required: fixed count of placeholder tiles.
		for i := 0; i < defaultGalleryTiles; i++ {
			b.WriteString(`<div class="gallery-tile" aria-hidden="true"></div>`)
		}
	} else {
		for _, item := range raw {
			src, alt := "", "Galeriebild"
			switch v := item.(type) {
			case string:
				src = v
			case map[string]any:
				ic := sectionContent(v)
				src = ic.str("src", "")
				alt = ic.str("alt", alt)
			default:
				return "", fmt.Errorf("gallery item is %T, expected string or object", item)
			}
			if src == "" {
				b.WriteString(`<div class="gallery-tile" aria-hidden="true"></div>`)
				continue
			}
			fmt.Fprintf(&b, `<div class="gallery-tile"><img src="%s" alt="%s"></div>`,
				EscapeHTML(SanitizeURL(src)), EscapeHTML(alt))
		}
	}
	b.WriteString("</div></section>")
	return b.String(), nil
}

func renderCTA(content sectionContent, _ renderContext) (string, error) {
	title := content.str("title", "Bereit loszulegen?")
	label := content.str("buttonLabel", "Jetzt starten")
	href := SanitizeURL(content.str("buttonHref", "#"))

	var b strings.Builder
	b.WriteString(`<section class="cta" data-section="cta">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(title))
	fmt.Fprintf(&b, `<a class="button" href="%s">%s</a>`, EscapeHTML(href), EscapeHTML(label))
	b.WriteString("</section>")
	return b.String(), nil
}

func renderTestimonials(content sectionContent, _ renderContext) (string, error) {
	raw, err := content.items("items")
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errSkipSection
	}

	var b strings.Builder
	b.WriteString(`<section class="testimonials" data-section="testimonials">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Das sagen unsere Kunden")))
	b.WriteString(`<div class="feature-grid">`)
	for _, item := range raw {
		tc, ok := item.(map[string]any)
		if !ok {
			return "", fmt.Errorf("testimonial item is %T, expected object", item)
		}
		c := sectionContent(tc)
		b.WriteString(`<div class="card">`)
		fmt.Fprintf(&b, "<blockquote>%s</blockquote>", EscapeHTML(c.str("quote", "")))
		if author := c.str("author", ""); author != "" {
			fmt.Fprintf(&b, "<cite>%s</cite>", EscapeHTML(author))
		}
		b.WriteString("</div>")
	}
	b.WriteString("</div></section>")
	return b.String(), nil
}

func renderPricing(content sectionContent, _ renderContext) (string, error) {
	raw, err := content.items("items")
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errSkipSection
	}

	var b strings.Builder
	b.WriteString(`<section class="pricing" data-section="pricing">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Unsere Pakete")))
	b.WriteString(`<div class="pricing-grid">`)
	for _, item := range raw {
		pc, ok := item.(map[string]any)
		if !ok {
			return "", fmt.Errorf("pricing item is %T, expected object", item)
		}
		c := sectionContent(pc)
		b.WriteString(`<div class="card">`)
		fmt.Fprintf(&b, "<h3>%s</h3>", EscapeHTML(c.str("name", "Standard")))
		fmt.Fprintf(&b, `<p class="price">%s</p>`, EscapeHTML(c.str("price", "auf Anfrage")))
		perks, err := c.items("features")
		if err != nil {
			return "", err
		}
		if len(perks) > 0 {
			b.WriteString("<ul>")
			for _, perk := range perks {
				text, ok := perk.(string)
				if !ok {
					return "", fmt.Errorf("pricing feature is %T, expected string", perk)
				}
				fmt.Fprintf(&b, "<li>%s</li>", EscapeHTML(text))
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</div>")
	}
	b.WriteString("</div></section>")
	return b.String(), nil
}

func renderFAQ(content sectionContent, _ renderContext) (string, error) {
	raw, err := content.items("items")
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errSkipSection
	}

	var b strings.Builder
	b.WriteString(`<section class="faq" data-section="faq">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Häufige Fragen")))
	for _, item := range raw {
		fc, ok := item.(map[string]any)
		if !ok {
			return "", fmt.Errorf("faq item is %T, expected object", item)
		}
		c := sectionContent(fc)
		b.WriteString("<details>")
		fmt.Fprintf(&b, "<summary>%s</summary>", EscapeHTML(c.str("question", "")))
		fmt.Fprintf(&b, "<p>%s</p>", EscapeHTML(c.str("answer", "")))
		b.WriteString("</details>")
	}
	b.WriteString("</section>")
	return b.String(), nil
}

func renderAbout(content sectionContent, _ renderContext) (string, error) {
	text := content.str("text",
		"Wir sind ein engagiertes Team und unterstützen unsere Kundinnen und Kunden mit Erfahrung und Leidenschaft.")

	var b strings.Builder
	b.WriteString(`<section class="about" data-section="about">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Über uns")))
	fmt.Fprintf(&b, "<p>%s</p>", EscapeHTML(text))
	b.WriteString("</section>")
	return b.String(), nil
}

func renderContact(content sectionContent, _ renderContext) (string, error) {
	var b strings.Builder
	b.WriteString(`<section class="contact" data-section="contact">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Kontakt")))
	b.WriteString(`<form action="#" method="post">`)
	b.WriteString(`<input type="text" name="name" placeholder="Name">`)
	b.WriteString(`<input type="email" name="email" placeholder="E-Mail">`)
	b.WriteString(`<textarea name="message" rows="4" placeholder="Ihre Nachricht"></textarea>`)
	fmt.Fprintf(&b, `<button class="button" type="submit">%s</button>`,
		EscapeHTML(content.str("buttonLabel", "Nachricht senden")))
	b.WriteString("</form></section>")
	return b.String(), nil
}

// renderForm handles the blocks-format "form" type: a configurable
// field list instead of the fixed contact form.
func renderForm(content sectionContent, _ renderContext) (string, error) {
	raw, err := content.items("fields")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<section class="contact" data-section="form">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(content.str("title", "Kontakt")))
	b.WriteString(`<form action="#" method="post">`)
	if len(raw) == 0 {
		b.WriteString(`<input type="text" name="name" placeholder="Name">`)
		b.WriteString(`<input type="email" name="email" placeholder="E-Mail">`)
		b.WriteString(`<textarea name="message" rows="4" placeholder="Ihre Nachricht"></textarea>`)
	} else {
		for _, item := range raw {
			fm, ok := item.(map[string]any)
			if !ok {
				return "", fmt.Errorf("form field is %T, expected object", item)
			}
			c := sectionContent(fm)
			name := c.str("name", "field")
			label := c.str("label", name)
			switch c.str("type", "text") {
			case "textarea":
				fmt.Fprintf(&b, `<textarea name="%s" rows="4" placeholder="%s"></textarea>`,
					EscapeHTML(name), EscapeHTML(label))
			case "email":
				fmt.Fprintf(&b, `<input type="email" name="%s" placeholder="%s">`,
					EscapeHTML(name), EscapeHTML(label))
			default:
				fmt.Fprintf(&b, `<input type="text" name="%s" placeholder="%s">`,
					EscapeHTML(name), EscapeHTML(label))
			}
		}
	}
	fmt.Fprintf(&b, `<button class="button" type="submit">%s</button>`,
		EscapeHTML(content.str("buttonLabel", "Absenden")))
	b.WriteString("</form></section>")
	return b.String(), nil
}

// renderText handles the blocks-format "text" type: a list of
// paragraphs, optionally written in markdown. Plain paragraphs are
// entity-escaped; markdown goes through goldmark, whose default policy
// drops raw HTML instead of emitting it.
func renderText(content sectionContent, _ renderContext) (string, error) {
	raw, err := content.items("items")
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errSkipSection
	}
	useMarkdown := content.str("format", "plain") == "markdown"

	var b strings.Builder
	b.WriteString(`<section class="text" data-section="text">`)
	if title := content.str("title", ""); title != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", EscapeHTML(title))
	}
	for _, item := range raw {
		paragraph, ok := item.(string)
		if !ok {
			return "", fmt.Errorf("text item is %T, expected string", item)
		}
		if useMarkdown {
			var out bytes.Buffer
			if err := markdownConverter.Convert([]byte(paragraph), &out); err != nil {
				return "", fmt.Errorf("markdown conversion: %w", err)
			}
			b.WriteString(out.String())
		} else {
			fmt.Fprintf(&b, "<p>%s</p>", EscapeHTML(paragraph))
		}
	}
	b.WriteString("</section>")
	return b.String(), nil
}

// renderCustom passes the caller-supplied HTML through unescaped. This
// is the one documented exception to the escaping rules.
func renderCustom(content sectionContent, _ renderContext) (string, error) {
	html := content.str("html", "")
	if html == "" {
		return "", errSkipSection
	}
	return `<section class="custom" data-section="custom">` + html + `</section>`, nil
}

func renderFooter(content sectionContent, ctx renderContext) (string, error) {
	siteName := ctx.siteName
	if siteName == "" {
		siteName = "Ihre Website"
	}
	line := content.str("text", fmt.Sprintf("© %s. Alle Rechte vorbehalten.", siteName))

	var b strings.Builder
	b.WriteString(`<footer data-section="footer">`)
	fmt.Fprintf(&b, "<p>%s</p>", EscapeHTML(line))
	b.WriteString("</footer>")
	return b.String(), nil
}
