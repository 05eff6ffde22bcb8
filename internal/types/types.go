package types

// Page types the intent extractor can assign. Unknown values fall back
// to PageTypeLanding wherever a page type is resolved.
const (
	PageTypeLanding   = "landing"
	PageTypePortfolio = "portfolio"
	PageTypeAbout     = "about"
	PageTypeBlog      = "blog"
	PageTypeShop      = "shop"
	PageTypeContact   = "contact"
)

// Section keys understood by the document renderer.
const (
	SectionHero         = "hero"
	SectionFeatures     = "features"
	SectionGallery      = "gallery"
	SectionCTA          = "cta"
	SectionTestimonials = "testimonials"
	SectionPricing      = "pricing"
	SectionFAQ          = "faq"
	SectionFooter       = "footer"
	SectionAbout        = "about"
	SectionContact      = "contact"
	// SectionCustom carries raw HTML supplied by the caller. Its body is
	// intentionally NOT escaped; safety is the caller's responsibility.
	SectionCustom = "custom"
)

// Color keys of the fixed palette. Unknown keys resolve to ColorBlue.
const (
	ColorBlue  = "blue"
	ColorBeige = "beige"
	ColorBlack = "black"
	ColorWhite = "white"
	ColorGray  = "gray"
	ColorGreen = "green"
	ColorRed   = "red"
)

// Theme describes the visual styling of a generated site. Tokens maps
// every ColorKey to a [primary, secondary, accent] hex triple so the
// renderer never has to guess a color value.
type Theme struct {
	Primary    string              `json:"primary"`
	Background string              `json:"background"`
	Surface    string              `json:"surface"`
	Text       string              `json:"text"`
	Tokens     map[string][]string `json:"tokens,omitempty"`
	Typography string              `json:"typography,omitempty"`
}

// WebsiteSpec is the structured description of a website, produced by
// the intent extractor/normalizer (optionally refined by the LLM) and
// consumed by the renderer. Every field below Sections is optional from
// the renderer's point of view; defaults are substituted during
// rendering, never placeholder tokens.
type WebsiteSpec struct {
	PageType string   `json:"pageType"`
	Theme    Theme    `json:"theme"`
	Sections []string `json:"sections"`
	// Copy maps a section key to its loosely-typed content object. The
	// values inside each object are untrusted and pass through escaping
	// (or URL sanitization) before they reach markup.
	Copy          map[string]map[string]any `json:"copy,omitempty"`
	Tone          string                    `json:"tone,omitempty"`
	Images        int                       `json:"images,omitempty"`
	Layout        map[string]any            `json:"layout,omitempty"`
	Accessibility map[string]any            `json:"accessibility,omitempty"`
	Meta          map[string]any            `json:"meta,omitempty"`
}

// Block is one entry of the flatter, older "blocks" input format: a
// type discriminator plus the block's fields at the top level.
type Block = map[string]any
