package figma

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/kataras/brand-tokens/pkg/extractor"
)

var headingNamePattern = regexp.MustCompile(`(?i)heading|title|display|hero|\bh[1-6]\b`)

// BrandingOverlay converts a Figma file into the figmaData object that is
// shallow-merged over extracted branding data. Only keys with content are
// set, so an empty category never replaces the document's signals:
//
//   - "colors": SOLID fills on nodes named primary, secondary or accent
//   - "typography": font families of TEXT nodes, heading or body by node name
//   - "brandName": the Figma file name
func BrandingOverlay(file *FileResponse) map[string]any {
	overlay := make(map[string]any)
	if file == nil {
		return overlay
	}

	var colors []extractor.ColorSignal
	var fonts []extractor.TypographySignal
	seenColors := make(map[string]bool)
	seenFonts := make(map[string]bool)

	var walk func(n *Node)
	walk = func(n *Node) {
		if category, ok := categorizeColor(n.Name); ok {
			for _, fill := range n.Fills {
				if fill.Type != "SOLID" || fill.Color == nil || !fill.IsVisible() {
					continue
				}
				hex := colorToHex(fill.Color)
				if seenColors[hex] {
					continue
				}
				seenColors[hex] = true
				colors = append(colors, extractor.ColorSignal{Name: n.Name, Hex: hex, Category: category})
			}
		}

		if n.Type == "TEXT" && n.Style != nil && n.Style.FontFamily != "" {
			category := extractor.FontBody
			if headingNamePattern.MatchString(n.Name) {
				category = extractor.FontHeading
			}
			key := string(category) + "/" + n.Style.FontFamily
			if !seenFonts[key] {
				seenFonts[key] = true
				fonts = append(fonts, extractor.TypographySignal{Family: n.Style.FontFamily, Category: category})
			}
		}

		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(&file.Document)

	if len(colors) > 0 {
		overlay["colors"] = colors
	}
	if len(fonts) > 0 {
		overlay["typography"] = fonts
	}
	if name := strings.TrimSpace(file.Name); name != "" {
		overlay["brandName"] = name
	}

	return overlay
}

// categorizeColor maps a node name to a color category based on keywords.
func categorizeColor(nodeName string) (extractor.ColorCategory, bool) {
	name := strings.ToLower(nodeName)

	switch {
	case strings.Contains(name, "primary"):
		return extractor.ColorPrimary, true
	case strings.Contains(name, "secondary"):
		return extractor.ColorSecondary, true
	case strings.Contains(name, "accent"):
		return extractor.ColorAccent, true
	default:
		return "", false
	}
}

// colorToHex converts a Figma RGBA color (with 0-1 float values) to #rrggbb.
// Returns "#000000" if the color is nil.
func colorToHex(color *Color) string {
	if color == nil {
		return "#000000"
	}

	r := int(math.Round(color.R * 255))
	g := int(math.Round(color.G * 255))
	b := int(math.Round(color.B * 255))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
