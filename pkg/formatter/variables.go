package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/brand-tokens/pkg/tokens"
)

// section is a titled group of flattened tokens.
type section struct {
	Title   string
	Entries []tokens.Entry // Name is the full hyphen-joined path
}

// flatten enumerates every leaf of the token set with its hyphen-joined path.
// Accent font family and spacing are skipped when absent.
func flatten(set *tokens.DesignTokenSet) []section {
	c := set.Colors
	colors := section{Title: "Colors"}
	colors.Entries = append(colors.Entries, prefixed("color-primary", c.Primary.Entries())...)
	colors.Entries = append(colors.Entries, prefixed("color-secondary", c.Secondary.Entries())...)
	colors.Entries = append(colors.Entries, prefixed("color-accent", c.Accent.Entries())...)
	colors.Entries = append(colors.Entries, prefixed("color-neutral", c.Neutral.Entries())...)
	colors.Entries = append(colors.Entries, prefixed("color", []tokens.Entry{
		{Name: "success", Value: c.Success},
		{Name: "warning", Value: c.Warning},
		{Name: "error", Value: c.Error},
		{Name: "info", Value: c.Info},
	})...)

	ty := set.Typography
	families := []tokens.Entry{
		{Name: "heading", Value: ty.FontFamily.Heading},
		{Name: "body", Value: ty.FontFamily.Body},
	}
	if ty.FontFamily.Accent != "" {
		families = append(families, tokens.Entry{Name: "accent", Value: ty.FontFamily.Accent})
	}

	typography := section{Title: "Typography"}
	typography.Entries = append(typography.Entries, prefixed("font-family", families)...)
	typography.Entries = append(typography.Entries, prefixed("font-weight", ty.FontWeight.Entries())...)
	typography.Entries = append(typography.Entries, prefixed("font-size", ty.FontSize.Entries())...)
	typography.Entries = append(typography.Entries, prefixed("line-height", ty.LineHeight.Entries())...)

	sections := []section{colors, typography}
	if set.Spacing != nil {
		sections = append(sections, section{
			Title:   "Spacing",
			Entries: prefixed("spacing", set.Spacing.Entries()),
		})
	}

	return sections
}

func prefixed(prefix string, entries []tokens.Entry) []tokens.Entry {
	out := make([]tokens.Entry, len(entries))
	for i, e := range entries {
		out[i] = tokens.Entry{Name: prefix + "-" + e.Name, Value: e.Value}
	}
	return out
}

var (
	// commentText keeps header comments on one line.
	commentText = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	// declValue keeps a value inside its own declaration.
	declValue = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", ";", "", "{", "", "}", "")
)

// renderFlat emits CSS custom properties inside a :root block.
func renderFlat(set *tokens.DesignTokenSet) string {
	var sb strings.Builder

	sb.WriteString(":root {\n")
	for _, sec := range flatten(set) {
		for _, e := range sec.Entries {
			sb.WriteString(fmt.Sprintf("  --%s: %s;\n", e.Name, declValue.Replace(e.Value)))
		}
	}
	sb.WriteString("}\n")

	return sb.String()
}

// renderPreprocessor emits SCSS-style variable assignments grouped by section.
func renderPreprocessor(set *tokens.DesignTokenSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// Design tokens for %s\n", commentText.Replace(set.Metadata.BrandName)))
	sb.WriteString(fmt.Sprintf("// Version: %s\n", commentText.Replace(set.Metadata.Version)))

	for _, sec := range flatten(set) {
		sb.WriteString(fmt.Sprintf("\n// %s\n", sec.Title))
		for _, e := range sec.Entries {
			sb.WriteString(fmt.Sprintf("$%s: %s;\n", e.Name, declValue.Replace(e.Value)))
		}
	}

	return sb.String()
}
