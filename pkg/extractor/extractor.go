package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kataras/brand-tokens/pkg/logging"
)

// Options controls which signal categories Extract looks for.
// Use DefaultOptions to start from "everything enabled".
type Options struct {
	Colors     bool
	Typography bool
	Logos      bool

	Policy OrderingPolicy // nil = PositionalPolicy
	Logger logging.Logger // nil = silent
}

// DefaultOptions enables every category with the positional ordering policy.
func DefaultOptions() Options {
	return Options{
		Colors:     true,
		Typography: true,
		Logos:      true,
		Policy:     PositionalPolicy{},
	}
}

var (
	hexColorPattern = regexp.MustCompile(`#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`)
	rgbColorPattern = regexp.MustCompile(`(?i)rgb\s*\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`)

	primaryLogoPattern     = regexp.MustCompile(`(?i)logo`)
	iconLogoPattern        = regexp.MustCompile(`(?i)icon|isotipo|símbolo`)
	alternativeLogoPattern = regexp.MustCompile(`(?i)alternativo|secundario|monocromático`)
)

// Default fonts emitted when the text names none of the known families.
var defaultTypography = []TypographySignal{
	{Family: "Arial", Category: FontHeading},
	{Family: "Helvetica", Category: FontBody},
}

// Extract scans raw document text and returns every signal it can find.
// It never fails: a text without matches yields empty lists (or the
// documented typography defaults).
func Extract(text string, opts Options) *BrandProfile {
	if opts.Policy == nil {
		opts.Policy = PositionalPolicy{}
	}
	log := logging.OrNop(opts.Logger)

	profile := &BrandProfile{
		Colors:     []ColorSignal{},
		Typography: []TypographySignal{},
		Logos:      []LogoSignal{},
	}

	if opts.Colors {
		profile.Colors = ExtractColors(text, opts.Policy)
		log.Debugf("Found %d color(s)", len(profile.Colors))
	}

	if opts.Typography {
		profile.Typography = ExtractTypography(text, opts.Policy)
		log.Debugf("Found %d font family signal(s)", len(profile.Typography))
	}

	if opts.Logos {
		profile.Logos = ExtractLogos(text)
		log.Debugf("Found %d logo mention(s)", len(profile.Logos))
	}

	profile.BrandName = ExtractBrandName(text)
	if profile.BrandName != "" {
		log.Debugf("Brand name: %s", profile.BrandName)
	}

	return profile
}

// ExtractColors finds hex literals and RGB(r, g, b) expressions.
// Hex matches come first in document order and receive a category from the
// policy; RGB matches follow, uncategorized, unless their hex was already seen.
func ExtractColors(text string, policy OrderingPolicy) []ColorSignal {
	if policy == nil {
		policy = PositionalPolicy{}
	}

	colors := []ColorSignal{}
	seen := make(map[string]bool)

	for _, m := range hexColorPattern.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true

		index := len(colors)
		colors = append(colors, ColorSignal{
			Name:     fmt.Sprintf("Color %d", index+1),
			Hex:      m,
			Category: policy.ColorCategory(index),
		})
	}

	rgbCount := 0
	for _, m := range rgbColorPattern.FindAllStringSubmatch(text, -1) {
		hex, ok := rgbToHex(m[1], m[2], m[3])
		if !ok {
			continue
		}
		key := strings.ToLower(hex)
		if seen[key] {
			continue
		}
		seen[key] = true

		rgbCount++
		colors = append(colors, ColorSignal{
			Name: fmt.Sprintf("Color RGB %d", rgbCount),
			Hex:  hex,
			RGB:  m[0],
		})
	}

	return colors
}

// rgbToHex packs three decimal channel strings into a lowercase #rrggbb value.
// ok is false when a channel is outside 0-255.
func rgbToHex(rs, gs, bs string) (string, bool) {
	var ch [3]int
	for i, s := range []string{rs, gs, bs} {
		v, err := strconv.Atoi(s)
		if err != nil || v > 255 {
			return "", false
		}
		ch[i] = v
	}

	return fmt.Sprintf("#%06x", ch[0]<<16|ch[1]<<8|ch[2]), true
}

// ExtractTypography tests the text against the known font families.
// Signals follow the order of KnownFonts, not document order.
func ExtractTypography(text string, policy OrderingPolicy) []TypographySignal {
	if policy == nil {
		policy = PositionalPolicy{}
	}

	fonts := []TypographySignal{}
	for i, family := range KnownFonts {
		if !fontPatterns[i].MatchString(text) {
			continue
		}
		fonts = append(fonts, TypographySignal{
			Family:   family,
			Category: policy.FontCategory(len(fonts)),
		})
	}

	if len(fonts) == 0 {
		return append(fonts, defaultTypography...)
	}

	return fonts
}

// ExtractLogos reports which logo variants the text mentions.
// The tests are independent, so zero to three signals may result.
func ExtractLogos(text string) []LogoSignal {
	logos := []LogoSignal{}

	if primaryLogoPattern.MatchString(text) {
		logos = append(logos, LogoSignal{
			Name:        "Primary Logo",
			Type:        LogoPrimary,
			Description: "Logo referenced in document",
		})
	}

	if iconLogoPattern.MatchString(text) {
		logos = append(logos, LogoSignal{
			Name:        "Icon",
			Type:        LogoIcon,
			Description: "Icon or symbol variant referenced in document",
		})
	}

	if alternativeLogoPattern.MatchString(text) {
		logos = append(logos, LogoSignal{
			Name:        "Alternative Logo",
			Type:        LogoAlternative,
			Description: "Alternative or monochrome variant referenced in document",
		})
	}

	return logos
}
