package tokens

// ColorRamp is a weighted scale of one semantic color, 50 (lightest) to 900 (darkest).
type ColorRamp struct {
	S50  string `json:"50" yaml:"50"`
	S100 string `json:"100" yaml:"100"`
	S200 string `json:"200" yaml:"200"`
	S300 string `json:"300" yaml:"300"`
	S400 string `json:"400" yaml:"400"`
	S500 string `json:"500" yaml:"500"`
	S600 string `json:"600" yaml:"600"`
	S700 string `json:"700" yaml:"700"`
	S800 string `json:"800" yaml:"800"`
	S900 string `json:"900" yaml:"900"`
}

// Stops lists the ramp keys in ascending order.
var Stops = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Entries returns the ramp as ordered name/value pairs.
func (r ColorRamp) Entries() []Entry {
	return []Entry{
		{"50", r.S50}, {"100", r.S100}, {"200", r.S200}, {"300", r.S300}, {"400", r.S400},
		{"500", r.S500}, {"600", r.S600}, {"700", r.S700}, {"800", r.S800}, {"900", r.S900},
	}
}

// NeutralRamp is the gray ramp plus pure white and black.
type NeutralRamp struct {
	ColorRamp `yaml:",inline"`
	White     string `json:"white" yaml:"white"`
	Black     string `json:"black" yaml:"black"`
}

// Entries returns the ramp stops followed by white and black.
func (r NeutralRamp) Entries() []Entry {
	return append(r.ColorRamp.Entries(), Entry{"white", r.White}, Entry{"black", r.Black})
}

// Colors holds the four color ramps and the feedback colors.
type Colors struct {
	Primary   ColorRamp   `json:"primary" yaml:"primary"`
	Secondary ColorRamp   `json:"secondary" yaml:"secondary"`
	Accent    ColorRamp   `json:"accent" yaml:"accent"`
	Neutral   NeutralRamp `json:"neutral" yaml:"neutral"`
	Success   string      `json:"success" yaml:"success"`
	Warning   string      `json:"warning" yaml:"warning"`
	Error     string      `json:"error" yaml:"error"`
	Info      string      `json:"info" yaml:"info"`
}

// FontFamily holds CSS font stacks per role. Accent is optional.
type FontFamily struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
	Accent  string `json:"accent,omitempty" yaml:"accent,omitempty"`
}

// FontWeight is the weight scale; Regular and Bold are always set.
type FontWeight struct {
	Light    string `json:"light,omitempty" yaml:"light,omitempty"`
	Regular  string `json:"regular" yaml:"regular"`
	Medium   string `json:"medium,omitempty" yaml:"medium,omitempty"`
	Semibold string `json:"semibold,omitempty" yaml:"semibold,omitempty"`
	Bold     string `json:"bold" yaml:"bold"`
}

// Entries returns the weights that are set, lightest first.
func (w FontWeight) Entries() []Entry {
	return nonEmpty([]Entry{
		{"light", w.Light}, {"regular", w.Regular}, {"medium", w.Medium},
		{"semibold", w.Semibold}, {"bold", w.Bold},
	})
}

// FontSize is the fixed type scale.
type FontSize struct {
	XS   string `json:"xs" yaml:"xs"`
	SM   string `json:"sm" yaml:"sm"`
	Base string `json:"base" yaml:"base"`
	MD   string `json:"md" yaml:"md"`
	LG   string `json:"lg" yaml:"lg"`
	XL   string `json:"xl" yaml:"xl"`
	XXL  string `json:"xxl" yaml:"xxl"`
	XXXL string `json:"xxxl" yaml:"xxxl"`
}

// Entries returns the size scale, smallest first.
func (s FontSize) Entries() []Entry {
	return []Entry{
		{"xs", s.XS}, {"sm", s.SM}, {"base", s.Base}, {"md", s.MD},
		{"lg", s.LG}, {"xl", s.XL}, {"xxl", s.XXL}, {"xxxl", s.XXXL},
	}
}

// LineHeight is the tight/normal/loose triad.
type LineHeight struct {
	Tight  string `json:"tight" yaml:"tight"`
	Normal string `json:"normal" yaml:"normal"`
	Loose  string `json:"loose" yaml:"loose"`
}

// Entries returns the triad in tight, normal, loose order.
func (l LineHeight) Entries() []Entry {
	return []Entry{{"tight", l.Tight}, {"normal", l.Normal}, {"loose", l.Loose}}
}

// Typography groups every font related token.
type Typography struct {
	FontFamily FontFamily `json:"fontFamily" yaml:"fontFamily"`
	FontWeight FontWeight `json:"fontWeight" yaml:"fontWeight"`
	FontSize   FontSize   `json:"fontSize" yaml:"fontSize"`
	LineHeight LineHeight `json:"lineHeight" yaml:"lineHeight"`
}

// Spacing is the optional spacing scale.
type Spacing struct {
	XS  string `json:"xs" yaml:"xs"`
	SM  string `json:"sm" yaml:"sm"`
	MD  string `json:"md" yaml:"md"`
	LG  string `json:"lg" yaml:"lg"`
	XL  string `json:"xl" yaml:"xl"`
	XXL string `json:"xxl" yaml:"xxl"`
}

// Entries returns the spacing scale, smallest first.
func (s Spacing) Entries() []Entry {
	return []Entry{{"xs", s.XS}, {"sm", s.SM}, {"md", s.MD}, {"lg", s.LG}, {"xl", s.XL}, {"xxl", s.XXL}}
}

// Metadata is stamped fresh on every synthesis.
type Metadata struct {
	BrandName string `json:"brandName" yaml:"brandName"`
	Version   string `json:"version" yaml:"version"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// DesignTokenSet is the normalized token structure produced by Synthesize.
type DesignTokenSet struct {
	Colors     Colors     `json:"colors" yaml:"colors"`
	Typography Typography `json:"typography" yaml:"typography"`
	Spacing    *Spacing   `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Metadata   Metadata   `json:"metadata" yaml:"metadata"`
}

// Entry is a single named token value.
type Entry struct {
	Name  string
	Value string
}

func nonEmpty(entries []Entry) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if e.Value != "" {
			out = append(out, e)
		}
	}
	return out
}
