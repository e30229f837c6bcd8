package domain

import (
	"fmt"
	"strings"
)

const (
	fallbackBackground = "#052659"
	fallbackForeground = "#7DA0CA"
)

// FallbackSpec sizes a placeholder graphic.
type FallbackSpec struct {
	Width      int
	Height     int
	FontSize   int
	FontFamily string
}

var (
	// HeroFallback replaces the hero photo.
	HeroFallback = FallbackSpec{Width: 400, Height: 480, FontSize: 96, FontFamily: "Georgia"}
	// AboutFallback replaces the about photo.
	AboutFallback = FallbackSpec{Width: 400, Height: 500, FontSize: 80, FontFamily: "serif"}
)

// svgEscaper percent-encodes the characters that break a data URI in an
// attribute. Everything else stays readable.
var svgEscaper = strings.NewReplacer(
	"%", "%25",
	"<", "%3C",
	">", "%3E",
	"#", "%23",
	`"`, "'",
)

// FallbackImage returns an inline SVG data URI showing initials on a solid
// background.
func FallbackImage(initials string, spec FallbackSpec) string {
	svg := fmt.Sprintf(
		`<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d'>`+
			`<rect fill='%s' width='%d' height='%d'/>`+
			`<text x='50%%' y='50%%' dominant-baseline='middle' text-anchor='middle' fill='%s' font-size='%d' font-family='%s'>%s</text>`+
			`</svg>`,
		spec.Width, spec.Height,
		fallbackBackground, spec.Width, spec.Height,
		fallbackForeground, spec.FontSize, spec.FontFamily, xmlText(initials),
	)
	return "data:image/svg+xml," + svgEscaper.Replace(svg)
}

func xmlText(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&apos;").Replace(s)
}
