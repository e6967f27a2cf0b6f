package tokens

const (
	// Version is stamped into every token set's metadata.
	Version = "1.0.0"
	// DefaultBrandName is used when the profile carries no brand name.
	DefaultBrandName = "Brand"
)

// Baseline returns a fresh copy of the default token set that synthesis
// starts from. Metadata is left empty.
func Baseline() *DesignTokenSet {
	return &DesignTokenSet{
		Colors: Colors{
			Primary: ColorRamp{
				S50: "#eff6ff", S100: "#dbeafe", S200: "#bfdbfe", S300: "#93c5fd", S400: "#60a5fa",
				S500: "#3b82f6", S600: "#2563eb", S700: "#1d4ed8", S800: "#1e40af", S900: "#1e3a8a",
			},
			Secondary: ColorRamp{
				S50: "#f5f3ff", S100: "#ede9fe", S200: "#ddd6fe", S300: "#c4b5fd", S400: "#a78bfa",
				S500: "#8b5cf6", S600: "#7c3aed", S700: "#6d28d9", S800: "#5b21b6", S900: "#4c1d95",
			},
			Accent: ColorRamp{
				S50: "#fffbeb", S100: "#fef3c7", S200: "#fde68a", S300: "#fcd34d", S400: "#fbbf24",
				S500: "#f59e0b", S600: "#d97706", S700: "#b45309", S800: "#92400e", S900: "#78350f",
			},
			Neutral: NeutralRamp{
				ColorRamp: ColorRamp{
					S50: "#f9fafb", S100: "#f3f4f6", S200: "#e5e7eb", S300: "#d1d5db", S400: "#9ca3af",
					S500: "#6b7280", S600: "#4b5563", S700: "#374151", S800: "#1f2937", S900: "#111827",
				},
				White: "#ffffff",
				Black: "#000000",
			},
			Success: "#10b981",
			Warning: "#f59e0b",
			Error:   "#ef4444",
			Info:    "#3b82f6",
		},
		Typography: Typography{
			FontFamily: FontFamily{
				Heading: "Inter, sans-serif",
				Body:    "Inter, sans-serif",
			},
			FontWeight: FontWeight{
				Light:    "300",
				Regular:  "400",
				Medium:   "500",
				Semibold: "600",
				Bold:     "700",
			},
			FontSize: FontSize{
				XS:   "0.75rem",
				SM:   "0.875rem",
				Base: "1rem",
				MD:   "1.125rem",
				LG:   "1.25rem",
				XL:   "1.5rem",
				XXL:  "1.875rem",
				XXXL: "2.25rem",
			},
			LineHeight: LineHeight{
				Tight:  "1.25",
				Normal: "1.5",
				Loose:  "1.75",
			},
		},
		Spacing: &Spacing{
			XS:  "0.25rem",
			SM:  "0.5rem",
			MD:  "1rem",
			LG:  "1.5rem",
			XL:  "2rem",
			XXL: "3rem",
		},
	}
}
