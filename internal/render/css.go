// Package render turns a WebsiteSpec (or the flatter blocks format)
// into a self-contained, escaped HTML document.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"sitegen_server/internal/types"
)

// Palette is a concrete hex triple resolved from a ColorKey.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
}

// palettes is the fixed ColorKey lookup table. Order of keys here does
// not matter; DefaultTokens emits them in a fixed order for determinism.
var palettes = map[string]Palette{
	types.ColorBlue:  {Primary: "#2563EB", Secondary: "#1E40AF", Accent: "#60A5FA"},
	types.ColorBeige: {Primary: "#B8A388", Secondary: "#8C7A5B", Accent: "#EADDC8"},
	types.ColorBlack: {Primary: "#111827", Secondary: "#000000", Accent: "#4B5563"},
	types.ColorWhite: {Primary: "#E5E7EB", Secondary: "#D1D5DB", Accent: "#F9FAFB"},
	types.ColorGray:  {Primary: "#6B7280", Secondary: "#4B5563", Accent: "#9CA3AF"},
	types.ColorGreen: {Primary: "#16A34A", Secondary: "#15803D", Accent: "#4ADE80"},
	types.ColorRed:   {Primary: "#DC2626", Secondary: "#991B1B", Accent: "#F87171"},
}

// paletteOrder fixes the emission order of DefaultTokens.
var paletteOrder = []string{
	types.ColorBlue, types.ColorBeige, types.ColorBlack, types.ColorWhite,
	types.ColorGray, types.ColorGreen, types.ColorRed,
}

// ResolvePalette maps a ColorKey to its hex triple. The lookup is total:
// any unknown or empty key resolves to the blue palette, so every CSS
// property downstream receives a concrete hex value.
func ResolvePalette(colorKey string) Palette {
	if p, ok := palettes[colorKey]; ok {
		return p
	}
	return palettes[types.ColorBlue]
}

// DefaultTokens returns the full ColorKey token table in the shape the
// WebsiteSpec carries it: key -> [primary, secondary, accent].
func DefaultTokens() map[string][]string {
	tokens := make(map[string][]string, len(paletteOrder))
	for _, key := range paletteOrder {
		p := palettes[key]
		tokens[key] = []string{p.Primary, p.Secondary, p.Accent}
	}
	return tokens
}

// Theme values are interpolated into the inline <style> element
// verbatim, so only plain CSS literals may pass. Anything that is not
// a hex color or a simple font list falls back to the default.
var (
	hexColorRe   = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	fontFamilyRe = regexp.MustCompile(`^[a-zA-Z0-9 ,'-]+$`)
)

// safeColor returns value when it is a hex color literal, def otherwise.
func safeColor(value, def string) string {
	if hexColorRe.MatchString(value) {
		return value
	}
	return def
}

// safeFontFamily returns value when it is a plain font-family list,
// def otherwise.
func safeFontFamily(value, def string) string {
	if value != "" && fontFamilyRe.MatchString(value) {
		return value
	}
	return def
}

// BuildStylesheet generates the inline stylesheet for a document from
// the resolved theme. Output depends only on the theme values, so the
// same theme always yields the same CSS text.
func BuildStylesheet(theme types.Theme) string {
	p := ResolvePalette(theme.Primary)

	background := safeColor(theme.Background, "#FFFFFF")
	surface := safeColor(theme.Surface, "#F9FAFB")
	text := safeColor(theme.Text, "#111827")
	typography := safeFontFamily(theme.Typography, "'Inter', 'Helvetica Neue', Arial, sans-serif")

	var css strings.Builder
	fmt.Fprintf(&css, ":root{--primary:%s;--secondary:%s;--accent:%s;--background:%s;--surface:%s;--text:%s;}\n",
		p.Primary, p.Secondary, p.Accent, background, surface, text)
	fmt.Fprintf(&css, "*{box-sizing:border-box;margin:0;padding:0;}\n")
	fmt.Fprintf(&css, "body{font-family:%s;background:var(--background);color:var(--text);line-height:1.6;}\n", typography)
	css.WriteString("section{padding:56px 24px;max-width:1080px;margin:0 auto;}\n")
	css.WriteString("h1{font-size:2.5rem;margin-bottom:12px;}\n")
	css.WriteString("h2{font-size:1.8rem;margin-bottom:16px;}\n")
	css.WriteString("h3{font-size:1.15rem;margin-bottom:8px;}\n")
	css.WriteString(".hero{text-align:center;background:var(--surface);max-width:none;}\n")
	css.WriteString(".hero .subtitle{font-size:1.2rem;color:var(--secondary);margin-bottom:24px;}\n")
	css.WriteString(".button{display:inline-block;padding:12px 28px;border-radius:8px;background:var(--primary);color:#fff;text-decoration:none;font-weight:600;}\n")
	css.WriteString(".button:hover{background:var(--secondary);}\n")
	css.WriteString(".feature-grid,.pricing-grid,.gallery-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(240px,1fr));gap:24px;}\n")
	css.WriteString(".card{background:var(--surface);border-radius:12px;padding:24px;box-shadow:0 1px 3px rgba(0,0,0,0.08);}\n")
	css.WriteString(".icon{font-size:1.6rem;display:block;margin-bottom:8px;color:var(--primary);}\n")
	css.WriteString(".gallery-tile{aspect-ratio:4/3;border-radius:12px;background:linear-gradient(135deg,var(--accent),var(--surface));}\n")
	css.WriteString(".gallery-tile img{width:100%;height:100%;object-fit:cover;border-radius:12px;}\n")
	css.WriteString(".cta{text-align:center;background:var(--primary);color:#fff;max-width:none;}\n")
	css.WriteString(".cta .button{background:#fff;color:var(--primary);}\n")
	css.WriteString("blockquote{font-style:italic;margin-bottom:8px;}\n")
	css.WriteString("cite{color:var(--secondary);font-style:normal;}\n")
	css.WriteString("details{background:var(--surface);border-radius:8px;padding:16px;margin-bottom:12px;}\n")
	css.WriteString("summary{cursor:pointer;font-weight:600;}\n")
	css.WriteString(".price{font-size:2rem;font-weight:700;color:var(--primary);margin:8px 0;}\n")
	css.WriteString("form{display:grid;gap:12px;max-width:480px;}\n")
	css.WriteString("input,textarea{padding:10px;border:1px solid var(--accent);border-radius:8px;font:inherit;}\n")
	css.WriteString("footer{padding:32px 24px;text-align:center;background:var(--secondary);color:#fff;}\n")
	css.WriteString(".render-error{border:1px dashed var(--secondary);border-radius:8px;padding:16px;color:var(--secondary);max-width:1080px;margin:24px auto;}\n")
	return css.String()
}
