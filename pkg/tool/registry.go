package tool

import "encoding/json"

const extractSchema = `{
  "type": "object",
  "properties": {
    "pdfPath": {"type": "string", "description": "Path to the brand document"},
    "extractOptions": {
      "type": "object",
      "properties": {
        "extractColors": {"type": "boolean", "default": true},
        "extractTypography": {"type": "boolean", "default": true},
        "extractLogos": {"type": "boolean", "default": true}
      }
    }
  },
  "required": ["pdfPath"]
}`

const generateSchema = `{
  "type": "object",
  "properties": {
    "brandingData": {"type": "object", "description": "Brand profile returned by extract_pdf_branding"},
    "figmaData": {"type": "object", "description": "Optional fields shallow-merged over brandingData"},
    "format": {
      "type": "string",
      "enum": ["structured", "flatVariables", "preprocessorVariables", "yaml"],
      "default": "structured"
    }
  },
  "required": ["brandingData"]
}`

// Definitions lists every tool with its JSON input schema.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        ExtractPDFBranding,
			Description: "Extract colors, typography, logo mentions and brand name from a brand document",
			InputSchema: json.RawMessage(extractSchema),
		},
		{
			Name:        GenerateDesignTokens,
			Description: "Generate a design-token set from extracted branding data and render it",
			InputSchema: json.RawMessage(generateSchema),
		},
	}
}
