package figma

// FileResponse is the subset of the Figma file endpoint payload used to build
// a branding overlay.
type FileResponse struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
	Document     Node   `json:"document"`
}

// Node is a single element of the Figma document tree.
type Node struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Children []Node     `json:"children,omitempty"`
	Fills    []Paint    `json:"fills,omitempty"`
	Style    *TypeStyle `json:"style,omitempty"`
}

// Color is an RGBA color with channels in the 0-1 range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a fill applied to a node.
// Figma omits "visible" when the paint is visible, hence the pointer.
type Paint struct {
	Type    string `json:"type"`
	Visible *bool  `json:"visible,omitempty"`
	Color   *Color `json:"color,omitempty"`
}

// IsVisible reports whether the paint is shown.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// TypeStyle holds the text styling of a TEXT node.
type TypeStyle struct {
	FontFamily string  `json:"fontFamily"`
	FontWeight float64 `json:"fontWeight"`
	FontSize   float64 `json:"fontSize"`
}
