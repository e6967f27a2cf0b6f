// Package brandtokens turns brand-identity documents into design tokens.
//
// A brand guide (PDF, plain text or markdown) is decoded to text, scanned
// for colors, font families, logo mentions and the brand name, and merged
// over a fixed baseline into a normalized design-token set. The set can be
// rendered as indented JSON, CSS custom properties, SCSS variables or YAML.
//
// The CLI lives in cmd/brand-tokens; this root package exposes the same
// pipeline as a Go API so that callers can embed it in their own tools.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named brandtokens:
//
//	import "github.com/kataras/brand-tokens" // package brandtokens
//
// # Quick start
//
//	result, err := brandtokens.Run(ctx, brandtokens.Options{
//	    DocumentPath: "brand-guidelines.pdf",
//	    Format:       formatter.FlatVariables,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("tokens.css", []byte(result.Output), 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Figma overlay
//
// Set [Options.FigmaURL] and [Options.FigmaToken] to fetch a Figma file and
// overlay its primary/secondary/accent fills, text styles and file name on
// the extracted profile. The merge is shallow: a key present in the Figma
// data replaces the extracted value for that key entirely.
//
// # Tool server
//
// Package pkg/tool serves the extract_pdf_branding and generate_design_tokens
// operations over line-delimited JSON-RPC; internal/server exposes them over
// HTTP.
package brandtokens
