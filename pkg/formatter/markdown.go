package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/brand-tokens/pkg/extractor"
)

// ProfileMarkdown turns an extracted brand profile into a markdown report.
// The report lists every signal plus CSS custom properties for the colors,
// ready to paste into a stylesheet while the token set is being reviewed.
func ProfileMarkdown(profile *extractor.BrandProfile, source string) string {
	var sb strings.Builder

	title := profile.BrandName
	if title == "" {
		title = "Unnamed brand"
	}
	sb.WriteString(fmt.Sprintf("# Brand Extraction Report - %s\n\n", title))
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source document: `%s`\n\n", source))
	}

	// Colors
	sb.WriteString("## Colors\n\n")
	if len(profile.Colors) == 0 {
		sb.WriteString("No colors detected.\n\n")
	} else {
		sb.WriteString("| Name | Hex | Category | Source |\n")
		sb.WriteString("|------|-----|----------|--------|\n")
		for _, c := range profile.Colors {
			category := string(c.Category)
			if category == "" {
				category = "-"
			}
			src := "hex literal"
			if c.RGB != "" {
				src = "`" + c.RGB + "`"
			}
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s | %s |\n", c.Name, c.Hex, category, src))
		}
		sb.WriteString("\n```css\n")
		for _, c := range profile.Colors {
			sb.WriteString(fmt.Sprintf("--%s: %s;\n", toKebabCase(c.Name), c.Hex))
		}
		sb.WriteString("```\n\n")
	}

	// Typography
	sb.WriteString("## Typography\n\n")
	if len(profile.Typography) == 0 {
		sb.WriteString("No font families detected.\n\n")
	} else {
		for _, f := range profile.Typography {
			category := string(f.Category)
			if category == "" {
				category = "unassigned"
			}
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", category, f.Family))
		}
		sb.WriteString("\n")
	}

	// Logos
	sb.WriteString("## Logos\n\n")
	if len(profile.Logos) == 0 {
		sb.WriteString("No logo mentions detected.\n\n")
	} else {
		for _, l := range profile.Logos {
			line := fmt.Sprintf("- **%s** (%s)", l.Name, l.Type)
			if l.Description != "" {
				line += ": " + l.Description
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// Special characters are removed, and spaces/underscores are replaced with hyphens.
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
