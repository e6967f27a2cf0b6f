package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kataras/brand-tokens/pkg/tokens"
)

// Format names a textual serialization of a token set.
type Format string

// Supported formats.
const (
	Structured            Format = "structured"
	FlatVariables         Format = "flatVariables"
	PreprocessorVariables Format = "preprocessorVariables"
	YAML                  Format = "yaml"
)

// Formats lists every supported format, default first.
var Formats = []Format{Structured, FlatVariables, PreprocessorVariables, YAML}

// ParseFormat resolves a user supplied format name. Matching is
// case-insensitive and accepts the aliases json, css, scss and yml.
// Anything unrecognized resolves to Structured.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flatvariables", "css":
		return FlatVariables
	case "preprocessorvariables", "scss":
		return PreprocessorVariables
	case "yaml", "yml":
		return YAML
	default:
		return Structured
	}
}

// Render serializes the token set in the requested format.
// Unknown formats produce Structured output.
func Render(set *tokens.DesignTokenSet, format Format) (string, error) {
	if set == nil {
		return "", errors.New("render: nil token set")
	}

	switch format {
	case FlatVariables:
		return renderFlat(set), nil
	case PreprocessorVariables:
		return renderPreprocessor(set), nil
	case YAML:
		return renderYAML(set)
	default:
		return renderStructured(set)
	}
}

// renderStructured writes indented JSON; field order follows the struct definitions.
func renderStructured(set *tokens.DesignTokenSet) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return "", fmt.Errorf("render structured: %w", err)
	}
	return buf.String(), nil
}

func renderYAML(set *tokens.DesignTokenSet) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(set); err != nil {
		return "", fmt.Errorf("render yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("render yaml: %w", err)
	}
	return buf.String(), nil
}
