package render

import (
	"log"
	"strings"

	"sitegen_server/internal/types"
)

// RenderBlocks renders the flatter blocks format into an HTML fragment.
// It honors the same escaping, sanitization, skip-on-empty and
// skip-on-unknown rules as RenderDocument; the two paths share one
// section template table.
func (r *Renderer) RenderBlocks(blocks []types.Block) (string, error) {
	if blocks == nil {
		return "", types.NewValidationError("missing_blocks", "request has no blocks array")
	}

	ctx := renderContext{pageType: types.PageTypeLanding}

	var b strings.Builder
	for _, block := range blocks {
		kind, _ := block["type"].(string)
		if kind == "" || !blockTypes[kind] {
			log.Printf("renderer: skipping unknown block type %q", kind)
			continue
		}
		snippet, rendered := r.renderSectionSafe(kind, sectionContent(block), ctx)
		if !rendered {
			continue
		}
		b.WriteString(snippet)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// RenderBlocksDocument wraps the blocks fragment in the full document
// shell so the result is directly previewable or downloadable.
func (r *Renderer) RenderBlocksDocument(blocks []types.Block, theme types.Theme) (string, error) {
	fragment, err := r.RenderBlocks(blocks)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	r.writeDocumentHead(&b, "Vorschau", theme)
	b.WriteString(fragment)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
