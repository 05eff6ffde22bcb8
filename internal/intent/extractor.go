// Package intent converts free-text chat input into a WebsiteSpec using
// deterministic keyword matching. No machine-learned inference happens
// here; the optional LLM refinement lives in internal/ai.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"sitegen_server/internal/types"
)

// Draft is the raw extraction result before normalization.
type Draft struct {
	PageType     string
	PrimaryColor string
	Tone         string
	ImageCount   int
	Sections     []string
}

// synonymEntry pairs a vocabulary key with the substrings that map to
// it. Tables are ordered: the first key with a matching synonym wins.
type synonymEntry struct {
	key      string
	synonyms []string
}

var pageTypeTable = []synonymEntry{
	{types.PageTypeLanding, []string{"landingpage", "landing page", "landing", "startseite", "homepage", "produktseite"}},
	{types.PageTypePortfolio, []string{"portfolio", "referenzen", "meine arbeiten", "projekte", "showcase"}},
	{types.PageTypeBlog, []string{"blog", "artikel", "magazin", "news"}},
	{types.PageTypeShop, []string{"shop", "store", "laden", "verkaufen", "produkte", "onlineshop"}},
	{types.PageTypeAbout, []string{"über uns", "ueber uns", "über mich", "ueber mich", "about", "vorstellung", "team"}},
	{types.PageTypeContact, []string{"kontaktseite", "kontakt", "contact", "anfrage"}},
}

var colorTable = []synonymEntry{
	{types.ColorBlue, []string{"blau", "blue"}},
	{types.ColorBeige, []string{"beige", "creme", "sand"}},
	{types.ColorBlack, []string{"schwarz", "black", "dunkel", "dark"}},
	{types.ColorWhite, []string{"weiß", "weiss", "white", "hell"}},
	{types.ColorGray, []string{"grau", "gray", "grey"}},
	{types.ColorGreen, []string{"grün", "gruen", "green"}},
	{types.ColorRed, []string{"rot", "red"}},
}

var toneTable = []synonymEntry{
	{"professional", []string{"professionell", "seriös", "serioes", "business", "corporate"}},
	{"friendly", []string{"freundlich", "locker", "sympathisch", "persönlich", "persoenlich"}},
	{"minimal", []string{"minimalistisch", "minimal", "schlicht", "clean", "reduziert"}},
	{"playful", []string{"verspielt", "bunt", "kreativ", "frech"}},
	{"elegant", []string{"elegant", "edel", "luxuriös", "luxurioes", "hochwertig"}},
}

var sectionTable = []synonymEntry{
	{types.SectionHero, []string{"hero", "bühne", "buehne", "header"}},
	{types.SectionFeatures, []string{"features", "funktionen", "vorteile", "leistungen"}},
	{types.SectionGallery, []string{"galerie", "gallery", "bilder", "fotos"}},
	{types.SectionCTA, []string{"call to action", "call-to-action", "cta"}},
	{types.SectionTestimonials, []string{"testimonials", "kundenstimmen", "bewertungen", "rezensionen"}},
	{types.SectionPricing, []string{"preise", "pricing", "tarife", "pakete"}},
	{types.SectionFAQ, []string{"faq", "häufige fragen", "haeufige fragen", "fragen und antworten"}},
	{types.SectionAbout, []string{"über uns", "ueber uns", "team", "vorstellung"}},
	{types.SectionContact, []string{"kontaktformular", "kontakt", "contact", "formular", "anfrage"}},
	{types.SectionFooter, []string{"footer", "fußzeile", "fusszeile", "impressum"}},
}

// baseSections is the starting section set per page type. Every set
// already plans a footer; the extractor guarantees one regardless.
var baseSections = map[string][]string{
	types.PageTypeLanding:   {types.SectionHero, types.SectionFeatures, types.SectionCTA, types.SectionFooter},
	types.PageTypePortfolio: {types.SectionHero, types.SectionGallery, types.SectionContact, types.SectionFooter},
	types.PageTypeAbout:     {types.SectionHero, types.SectionAbout, types.SectionFooter},
	types.PageTypeBlog:      {types.SectionHero, types.SectionFAQ, types.SectionFooter},
	types.PageTypeShop:      {types.SectionHero, types.SectionFeatures, types.SectionPricing, types.SectionCTA, types.SectionFooter},
	types.PageTypeContact:   {types.SectionHero, types.SectionContact, types.SectionFooter},
}

const (
	defaultImageCount = 3
	minImageCount     = 1
	maxImageCount     = 12
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	imageCountRe = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// normalizeText lowercases the input and collapses runs of whitespace.
func normalizeText(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// matchTable returns the first key whose synonym list has a substring
// match in text, or def when nothing matches.
func matchTable(text string, table []synonymEntry, def string) string {
	for _, entry := range table {
		for _, syn := range entry.synonyms {
			if strings.Contains(text, syn) {
				return entry.key
			}
		}
	}
	return def
}

// extractImageCount finds the first standalone 1-2 digit number and
// clamps it to the allowed range.
func extractImageCount(text string) int {
	match := imageCountRe.FindStringSubmatch(text)
	if match == nil {
		return defaultImageCount
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return defaultImageCount
	}
	if n < minImageCount {
		return minImageCount
	}
	if n > maxImageCount {
		return maxImageCount
	}
	return n
}

// suggestSections builds the ordered section list: base set of the page
// type first, then matched extras in table order, with footer always
// present.
func suggestSections(text, pageType string) []string {
	base, ok := baseSections[pageType]
	if !ok {
		base = baseSections[types.PageTypeLanding]
	}

	seen := make(map[string]bool, len(base))
	sections := make([]string, 0, len(base)+2)
	for _, key := range base {
		if !seen[key] {
			seen[key] = true
			sections = append(sections, key)
		}
	}

	for _, entry := range sectionTable {
		if seen[entry.key] {
			continue
		}
		for _, syn := range entry.synonyms {
			if strings.Contains(text, syn) {
				seen[entry.key] = true
				sections = append(sections, entry.key)
				break
			}
		}
	}

	if !seen[types.SectionFooter] {
		sections = append(sections, types.SectionFooter)
	}
	return sections
}

// Extract maps free-text user input to the closed intent vocabulary.
func Extract(text string) Draft {
	normalized := normalizeText(text)
	pageType := matchTable(normalized, pageTypeTable, types.PageTypeLanding)
	return Draft{
		PageType:     pageType,
		PrimaryColor: matchTable(normalized, colorTable, types.ColorBlue),
		Tone:         matchTable(normalized, toneTable, "professional"),
		ImageCount:   extractImageCount(normalized),
		Sections:     suggestSections(normalized, pageType),
	}
}
