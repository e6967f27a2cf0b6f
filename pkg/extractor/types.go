package extractor

// ColorCategory is the semantic role assigned to an extracted color.
type ColorCategory string

// Color categories.
const (
	ColorPrimary   ColorCategory = "primary"
	ColorSecondary ColorCategory = "secondary"
	ColorAccent    ColorCategory = "accent"
	ColorNeutral   ColorCategory = "neutral"
)

// FontCategory is the role assigned to an extracted typeface.
type FontCategory string

// Font categories.
const (
	FontHeading FontCategory = "heading"
	FontBody    FontCategory = "body"
	FontAccent  FontCategory = "accent"
)

// LogoKind classifies a logo mention.
type LogoKind string

// Logo kinds.
const (
	LogoPrimary     LogoKind = "primary"
	LogoAlternative LogoKind = "alternative"
	LogoIcon        LogoKind = "icon"
)

// ColorSignal is a single color candidate found in the document text.
// Hex keeps the literal as written for hex matches; RGB matches carry a
// lowercase hex produced from the channel values plus the original expression.
type ColorSignal struct {
	Name     string        `json:"name" yaml:"name"`
	Hex      string        `json:"hex" yaml:"hex"`
	RGB      string        `json:"rgb,omitempty" yaml:"rgb,omitempty"`
	Category ColorCategory `json:"category,omitempty" yaml:"category,omitempty"`
}

// TypographySignal is a font family mention.
type TypographySignal struct {
	Family   string       `json:"family" yaml:"family"`
	Category FontCategory `json:"category,omitempty" yaml:"category,omitempty"`
}

// LogoSignal records that the document talks about a logo variant.
// No image payload is ever attached.
type LogoSignal struct {
	Name        string   `json:"name" yaml:"name"`
	Type        LogoKind `json:"type" yaml:"type"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// BrandProfile aggregates every signal extracted from one document.
// It is the output of Extract and the input of token synthesis.
type BrandProfile struct {
	Colors     []ColorSignal      `json:"colors" yaml:"colors"`
	Typography []TypographySignal `json:"typography" yaml:"typography"`
	Logos      []LogoSignal       `json:"logos" yaml:"logos"`
	BrandName  string             `json:"brandName,omitempty" yaml:"brandName,omitempty"`
}
