package extractor

import (
	"regexp"
	"strings"
)

const maxBrandNameLen = 20

// capitalizedRun matches a run of capitalized words on a single line.
const capitalizedRun = `(\p{Lu}[\p{L}\p{N}&'\-]*(?:[ \t]+[\p{Lu}\p{N}][\p{L}\p{N}&'\-]*)*)`

// brandNamePatterns are tried in order; the first one that matches wins.
// Lead-in words are case-insensitive, the captured name must be capitalized.
var brandNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?i:brand\s+name|nombre\s+de\s+(?:la\s+)?marca)\s*[:\-–]?\s*` + capitalizedRun),
	regexp.MustCompile(`\b(?i:brand|marca|empresa|company|compañía)\s*[:\-–]\s*` + capitalizedRun),
	regexp.MustCompile(`\b(?i:brand\s+(?:guidelines|guide|book|manual)|manual\s+de\s+(?:identidad|marca)|gu[ií]a\s+de\s+marca)\s+(?i:for|of|de|del)?\s*` + capitalizedRun),
	regexp.MustCompile(`\b(?i:welcome\s+to|bienvenid[oa]s?\s+a)\s+` + capitalizedRun),
	regexp.MustCompile(`\b(?i:about|acerca\s+de|sobre)\s+` + capitalizedRun),
}

// ExtractBrandName returns the first brand name found by the ordered phrase
// patterns, or "" when none match.
func ExtractBrandName(text string) string {
	for _, re := range brandNamePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if name := clampName(m[1]); name != "" {
			return name
		}
	}
	return ""
}

// clampName trims the captured run and cuts it to maxBrandNameLen runes.
func clampName(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxBrandNameLen {
		s = strings.TrimSpace(string(r[:maxBrandNameLen]))
	}
	return s
}
