package intent

import (
	"fmt"
	"strings"

	"sitegen_server/internal/render"
	"sitegen_server/internal/types"
)

// colorNamesDE maps color keys to the German word used in chat replies.
var colorNamesDE = map[string]string{
	types.ColorBlue:  "Blau",
	types.ColorBeige: "Beige",
	types.ColorBlack: "Schwarz",
	types.ColorWhite: "Weiß",
	types.ColorGray:  "Grau",
	types.ColorGreen: "Grün",
	types.ColorRed:   "Rot",
}

var pageTypeNamesDE = map[string]string{
	types.PageTypeLanding:   "Landingpage",
	types.PageTypePortfolio: "Portfolio-Seite",
	types.PageTypeAbout:     "Über-uns-Seite",
	types.PageTypeBlog:      "Blog-Seite",
	types.PageTypeShop:      "Shop-Seite",
	types.PageTypeContact:   "Kontaktseite",
}

// Normalize turns a draft into a complete WebsiteSpec: every required
// field is filled with a safe default and the copy it seeds is genuine
// usable text, never a bracketed placeholder token.
func Normalize(draft Draft) *types.WebsiteSpec {
	palette := render.ResolvePalette(draft.PrimaryColor)

	spec := &types.WebsiteSpec{
		PageType: draft.PageType,
		Theme: types.Theme{
			Primary:    draft.PrimaryColor,
			Background: "#FFFFFF",
			Surface:    "#F9FAFB",
			Text:       "#111827",
			Tokens:     render.DefaultTokens(),
			Typography: "'Inter', 'Helvetica Neue', Arial, sans-serif",
		},
		Sections: draft.Sections,
		Tone:     draft.Tone,
		Images:   draft.ImageCount,
		Copy: map[string]map[string]any{
			types.SectionHero: {
				"title":    render.DefaultHeroTitle(draft.PageType),
				"subtitle": "Alles, was Sie brauchen, an einem Ort.",
				"ctaLabel": "Jetzt starten",
			},
			types.SectionCTA: {
				"title":       "Bereit loszulegen?",
				"buttonLabel": "Jetzt starten",
			},
		},
		Meta: map[string]any{
			"accent": palette.Accent,
		},
	}

	if spec.PageType == "" {
		spec.PageType = types.PageTypeLanding
	}
	if spec.Theme.Primary == "" {
		spec.Theme.Primary = types.ColorBlue
	}
	if spec.Sections == nil {
		spec.Sections = []string{types.SectionHero, types.SectionFooter}
	}
	return spec
}

// Merge reconciles an LLM-refined object over a normalized draft,
// field by field. Refined values win only when present and well-typed;
// the copy map is merged one level deeper; sections are replaced only
// by a non-empty string array. Required keys of the draft are never
// dropped, no matter how partial the refined object is.
func Merge(spec *types.WebsiteSpec, refined map[string]any) *types.WebsiteSpec {
	if spec == nil || refined == nil {
		return spec
	}

	if v, ok := refined["pageType"].(string); ok && v != "" {
		spec.PageType = v
	}
	if v, ok := refined["tone"].(string); ok && v != "" {
		spec.Tone = v
	}
	if v, ok := refined["theme"].(map[string]any); ok {
		if primary, ok := v["primary"].(string); ok && primary != "" {
			spec.Theme.Primary = primary
		}
		if background, ok := v["background"].(string); ok && background != "" {
			spec.Theme.Background = background
		}
		if surface, ok := v["surface"].(string); ok && surface != "" {
			spec.Theme.Surface = surface
		}
		if text, ok := v["text"].(string); ok && text != "" {
			spec.Theme.Text = text
		}
		if typography, ok := v["typography"].(string); ok && typography != "" {
			spec.Theme.Typography = typography
		}
	}

	if raw, ok := refined["sections"].([]any); ok {
		sections := make([]string, 0, len(raw))
		for _, entry := range raw {
			if key, ok := entry.(string); ok && key != "" {
				sections = append(sections, key)
			}
		}
		if len(sections) > 0 {
			spec.Sections = sections
		}
	}

	if rawCopy, ok := refined["copy"].(map[string]any); ok {
		if spec.Copy == nil {
			spec.Copy = make(map[string]map[string]any)
		}
		for section, rawContent := range rawCopy {
			content, ok := rawContent.(map[string]any)
			if !ok {
				continue
			}
			if spec.Copy[section] == nil {
				spec.Copy[section] = make(map[string]any)
			}
			for field, value := range content {
				spec.Copy[section][field] = value
			}
		}
	}

	return spec
}

// Reply builds the German chat answer summarizing what was understood.
func Reply(spec *types.WebsiteSpec) string {
	pageName, ok := pageTypeNamesDE[spec.PageType]
	if !ok {
		pageName = pageTypeNamesDE[types.PageTypeLanding]
	}
	colorName, ok := colorNamesDE[spec.Theme.Primary]
	if !ok {
		colorName = colorNamesDE[types.ColorBlue]
	}
	return fmt.Sprintf("Ich habe eine %s in %s mit den Abschnitten %s vorbereitet. Die Vorschau wird jetzt erstellt.",
		pageName, colorName, strings.Join(spec.Sections, ", "))
}
