package figma

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kataras/brand-tokens/pkg/extractor"
)

func TestBrandingOverlay(t *testing.T) {
	hidden := false
	file := &FileResponse{
		Name: " Acme Design System ",
		Document: Node{
			ID: "0:0", Name: "Document", Type: "DOCUMENT",
			Children: []Node{
				{
					ID: "1:1", Name: "Colors", Type: "FRAME",
					Children: []Node{
						{ID: "2:1", Name: "Primary/500", Type: "RECTANGLE", Fills: []Paint{{Type: "SOLID", Color: &Color{R: 1, G: 0, B: 0, A: 1}}}},
						{ID: "2:2", Name: "Primary/600", Type: "RECTANGLE", Fills: []Paint{{Type: "SOLID", Color: &Color{R: 1, G: 0, B: 0, A: 1}}}},
						{ID: "2:3", Name: "Secondary", Type: "RECTANGLE", Fills: []Paint{{Type: "SOLID", Visible: &hidden, Color: &Color{R: 0, G: 1, B: 0}}}},
						{ID: "2:4", Name: "Accent", Type: "RECTANGLE", Fills: []Paint{{Type: "GRADIENT_LINEAR"}, {Type: "SOLID", Color: &Color{R: 0, G: 0.4, B: 0.77254}}}},
						{ID: "2:5", Name: "Surface", Type: "RECTANGLE", Fills: []Paint{{Type: "SOLID", Color: &Color{R: 1, G: 1, B: 1}}}},
					},
				},
				{
					ID: "1:2", Name: "Type", Type: "FRAME",
					Children: []Node{
						{ID: "3:1", Name: "Heading / H1", Type: "TEXT", Style: &TypeStyle{FontFamily: "Playfair Display", FontSize: 48}},
						{ID: "3:2", Name: "Body", Type: "TEXT", Style: &TypeStyle{FontFamily: "Lato", FontSize: 16}},
						{ID: "3:3", Name: "Caption", Type: "TEXT", Style: &TypeStyle{FontFamily: "Lato", FontSize: 12}},
					},
				},
			},
		},
	}

	got := BrandingOverlay(file)

	assert.Equal(t, "Acme Design System", got["brandName"])
	assert.Equal(t, []extractor.ColorSignal{
		{Name: "Primary/500", Hex: "#ff0000", Category: extractor.ColorPrimary},
		{Name: "Accent", Hex: "#0066c5", Category: extractor.ColorAccent},
	}, got["colors"])
	assert.Equal(t, []extractor.TypographySignal{
		{Family: "Playfair Display", Category: extractor.FontHeading},
		{Family: "Lato", Category: extractor.FontBody},
	}, got["typography"])
}

func TestBrandingOverlayOmitsEmptyKeys(t *testing.T) {
	got := BrandingOverlay(&FileResponse{Document: Node{ID: "0:0", Type: "DOCUMENT"}})
	assert.Empty(t, got)

	assert.Empty(t, BrandingOverlay(nil))
}

func TestColorToHex(t *testing.T) {
	assert.Equal(t, "#000000", colorToHex(nil))
	assert.Equal(t, "#ff8000", colorToHex(&Color{R: 1, G: 0.5, B: 0}))
}
