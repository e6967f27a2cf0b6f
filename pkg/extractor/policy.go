package extractor

// OrderingPolicy decides which category a signal receives from its position
// among the signals of the same kind. It is the only place where positional
// heuristics live, so swapping it never touches the matching code.
type OrderingPolicy interface {
	// ColorCategory returns the category of the index-th unique hex color.
	ColorCategory(index int) ColorCategory
	// FontCategory returns the category of the index-th detected font family.
	FontCategory(index int) FontCategory
}

// PositionalPolicy is the default policy: the first hex color is primary,
// the second secondary and every later one accent; the first font is a
// heading font and every later one a body font.
type PositionalPolicy struct{}

// ColorCategory implements OrderingPolicy.
func (PositionalPolicy) ColorCategory(index int) ColorCategory {
	switch index {
	case 0:
		return ColorPrimary
	case 1:
		return ColorSecondary
	default:
		return ColorAccent
	}
}

// FontCategory implements OrderingPolicy.
func (PositionalPolicy) FontCategory(index int) FontCategory {
	if index == 0 {
		return FontHeading
	}
	return FontBody
}
