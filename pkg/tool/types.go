package tool

import "encoding/json"

// Tool names.
const (
	ExtractPDFBranding   = "extract_pdf_branding"
	GenerateDesignTokens = "generate_design_tokens"
)

// Request is a single tool invocation.
type Request struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Response carries either the rendered result or an error description.
// Errors are reported in-band with IsError set, never as transport faults.
type Response struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Content is one block of a response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Definition describes a tool for discovery.
type Definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// TextResponse wraps text in a successful response.
func TextResponse(text string) Response {
	return Response{Content: []Content{{Type: "text", Text: text}}}
}

// ErrorResponse wraps err in an error-flagged response.
func ErrorResponse(err error) Response {
	return Response{
		Content: []Content{{Type: "text", Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

// Text returns the text of the first content block.
func (r Response) Text() string {
	if len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].Text
}
