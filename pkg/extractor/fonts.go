package extractor

import (
	"regexp"
	"strings"
)

// KnownFonts is the ordered list of font families the extractor recognizes.
// Detection order follows this list.
var KnownFonts = []string{
	"Inter",
	"Roboto",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Poppins",
	"Raleway",
	"Oswald",
	"Source Sans Pro",
	"Nunito",
	"Playfair Display",
	"Merriweather",
	"Ubuntu",
	"PT Sans",
	"Noto Sans",
	"Work Sans",
	"Fira Sans",
	"Rubik",
	"Barlow",
	"Quicksand",
	"Mulish",
	"DM Sans",
	"Manrope",
	"Josefin Sans",
	"Libre Baskerville",
	"Futura",
	"Gotham",
	"Proxima Nova",
	"Avenir",
	"Gill Sans",
	"Garamond",
	"Bodoni",
	"Didot",
	"Georgia",
	"Times New Roman",
	"Verdana",
	"Tahoma",
	"Trebuchet MS",
	"Helvetica Neue",
	"Helvetica",
	"Arial",
}

var fontPatterns = compileFontPatterns(KnownFonts)

// compileFontPatterns builds one case-insensitive, word-bounded pattern per
// family. Spaces inside a family name match any run of whitespace.
func compileFontPatterns(families []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(families))
	for i, family := range families {
		words := strings.Fields(family)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		patterns[i] = regexp.MustCompile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`)
	}
	return patterns
}
