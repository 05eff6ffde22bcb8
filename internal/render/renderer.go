package render

import (
	"fmt"
	"log"
	"strings"
	"time"

	"sitegen_server/internal/types"
)

// documentTitles derives the <title> text from the page type.
var documentTitles = map[string]string{
	types.PageTypeLanding:   "Landingpage",
	types.PageTypePortfolio: "Portfolio",
	types.PageTypeAbout:     "Über uns",
	types.PageTypeBlog:      "Blog",
	types.PageTypeShop:      "Shop",
	types.PageTypeContact:   "Kontakt",
}

// Renderer turns specs and block lists into HTML strings. It holds no
// state across calls and performs no I/O, so one instance is safe for
// concurrent use. Now exists only so tests can pin the generated-at
// comment; everything else in the output depends solely on the input.
type Renderer struct {
	Now func() time.Time
}

// New returns a Renderer stamping documents with the current time.
func New() *Renderer {
	return &Renderer{Now: time.Now}
}

// RenderDocument renders a WebsiteSpec into a complete HTML5 document.
// It fails only when the top-level sections array is missing; every
// per-section problem is contained to that section.
func (r *Renderer) RenderDocument(spec *types.WebsiteSpec) (string, error) {
	if spec == nil {
		return "", types.NewValidationError("missing_spec", "request carries no spec object")
	}
	if spec.Sections == nil {
		return "", types.NewValidationError("missing_sections", "spec has no sections array")
	}

	ctx := renderContext{pageType: spec.PageType}
	if spec.Meta != nil {
		if name, ok := spec.Meta["title"].(string); ok {
			ctx.siteName = name
		}
	}

	title, ok := documentTitles[spec.PageType]
	if !ok {
		title = documentTitles[types.PageTypeLanding]
	}

	var b strings.Builder
	r.writeDocumentHead(&b, title, spec.Theme)

	hasFooter := false
	for _, key := range spec.Sections {
		snippet, rendered := r.renderSectionSafe(key, sectionContent(spec.Copy[key]), ctx)
		if !rendered {
			continue
		}
		b.WriteString(snippet)
		b.WriteString("\n")
		if key == types.SectionFooter {
			hasFooter = true
		}
	}

	// The document always carries exactly one footer, even when the
	// sections array omits it.
	if !hasFooter {
		snippet, rendered := r.renderSectionSafe(types.SectionFooter, sectionContent(spec.Copy[types.SectionFooter]), ctx)
		if rendered {
			b.WriteString(snippet)
			b.WriteString("\n")
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// writeDocumentHead emits the shared document shell up to the opening
// <body>. The generation timestamp is isolated in a single comment so
// callers comparing documents can mask that one line.
func (r *Renderer) writeDocumentHead(b *strings.Builder, title string, theme types.Theme) {
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="de">` + "\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	fmt.Fprintf(b, "<title>%s</title>\n", EscapeHTML(title))
	fmt.Fprintf(b, "<!-- generated %s -->\n", r.Now().UTC().Format(time.RFC3339))
	b.WriteString("<style>\n")
	b.WriteString(BuildStylesheet(theme))
	b.WriteString("</style>\n</head>\n<body>\n")
}

// renderSectionSafe renders one section, containing every failure mode:
// unknown types and empty list sections render nothing, and a template
// error is replaced by a visible inline error block so the remaining
// sections still render.
func (r *Renderer) renderSectionSafe(key string, content sectionContent, ctx renderContext) (string, bool) {
	tmpl, ok := sectionTemplates[key]
	if !ok {
		log.Printf("renderer: skipping unknown section type %q", key)
		return "", false
	}

	snippet, err := tmpl(content, ctx)
	if err != nil {
		if err == errSkipSection {
			return "", false
		}
		sectionErr := &types.RenderSectionError{Section: key, Err: err}
		log.Printf("renderer: %v", sectionErr)
		return renderErrorBlock(key), true
	}
	return snippet, true
}

// renderErrorBlock is the inline placeholder a failed section leaves
// behind. Visible, but it never aborts the rest of the document.
func renderErrorBlock(key string) string {
	return fmt.Sprintf(`<div class="render-error" data-section="%s">Dieser Abschnitt konnte nicht dargestellt werden.</div>`,
		EscapeHTML(key))
}
