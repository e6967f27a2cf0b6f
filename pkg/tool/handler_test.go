package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/brand-tokens/pkg/document"
	"github.com/kataras/brand-tokens/pkg/extractor"
	"github.com/kataras/brand-tokens/pkg/tokens"
)

type fakeDecoder struct {
	text  string
	err   error
	calls []string
}

func (d *fakeDecoder) Decode(_ context.Context, path string) (string, error) {
	d.calls = append(d.calls, path)
	return d.text, d.err
}

type recordingObserver struct {
	codes []Code
}

func (o *recordingObserver) ObserveCall(_ string, code Code, _ time.Duration) {
	o.codes = append(o.codes, code)
}

func fixedNow() time.Time {
	return time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
}

func TestExtractMissingPath(t *testing.T) {
	dec := &fakeDecoder{}
	obs := &recordingObserver{}
	h := NewHandler(dec, WithObserver(obs))

	for _, args := range []map[string]any{nil, {}, {"pdfPath": ""}} {
		resp := h.Call(context.Background(), Request{Name: ExtractPDFBranding, Arguments: args})
		assert.True(t, resp.IsError)
		assert.Contains(t, resp.Text(), "pdfPath is required")
	}

	assert.Empty(t, dec.calls, "decoder must not be called")
	assert.Equal(t, []Code{CodeInvalidParams, CodeInvalidParams, CodeInvalidParams}, obs.codes)
}

func TestExtractPDFBranding(t *testing.T) {
	dec := &fakeDecoder{text: "Brand: Acme\nPrimary #111111, secondary #222222, RGB(0, 102, 197). Roboto. Logo."}
	h := NewHandler(dec)

	resp := h.Call(context.Background(), Request{
		Name:      ExtractPDFBranding,
		Arguments: map[string]any{"pdfPath": "/docs/acme.pdf"},
	})
	require.False(t, resp.IsError, resp.Text())
	assert.Equal(t, []string{"/docs/acme.pdf"}, dec.calls)

	var profile extractor.BrandProfile
	require.NoError(t, json.Unmarshal([]byte(resp.Text()), &profile))
	assert.Equal(t, "Acme", profile.BrandName)
	require.Len(t, profile.Colors, 3)
	assert.Equal(t, "#0066c5", profile.Colors[2].Hex)
	assert.Equal(t, []extractor.TypographySignal{{Family: "Roboto", Category: extractor.FontHeading}}, profile.Typography)
	assert.Len(t, profile.Logos, 1)
}

func TestExtractOptionsFlags(t *testing.T) {
	dec := &fakeDecoder{text: "#111111 Roboto logo"}
	h := NewHandler(dec)

	resp := h.Call(context.Background(), Request{
		Name: ExtractPDFBranding,
		Arguments: map[string]any{
			"pdfPath": "a.pdf",
			"extractOptions": map[string]any{
				"extractColors": false,
				"extractLogos":  true,
			},
		},
	})
	require.False(t, resp.IsError, resp.Text())

	var profile extractor.BrandProfile
	require.NoError(t, json.Unmarshal([]byte(resp.Text()), &profile))
	assert.Empty(t, profile.Colors)
	assert.Len(t, profile.Typography, 1, "omitted flag defaults to enabled")
	assert.Len(t, profile.Logos, 1)
}

func TestExtractCollaboratorFailure(t *testing.T) {
	dec := &fakeDecoder{err: fmt.Errorf("%w: /missing.pdf", document.ErrNotFound)}
	obs := &recordingObserver{}
	h := NewHandler(dec, WithObserver(obs))

	resp := h.Call(context.Background(), Request{
		Name:      ExtractPDFBranding,
		Arguments: map[string]any{"pdfPath": "/missing.pdf"},
	})

	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Text(), "document not found")
	assert.Equal(t, []Code{CodeCollaborator}, obs.codes)
}

func TestGenerateMissingBrandingData(t *testing.T) {
	h := NewHandler(&fakeDecoder{})

	resp := h.Call(context.Background(), Request{Name: GenerateDesignTokens, Arguments: map[string]any{"format": "flatVariables"}})
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Text(), "brandingData is required")

	resp = h.Call(context.Background(), Request{Name: GenerateDesignTokens, Arguments: map[string]any{"brandingData": "oops"}})
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Text(), ErrInvalidParams.Error())
}

func TestGenerateDesignTokens(t *testing.T) {
	h := NewHandler(&fakeDecoder{}, WithClock(fixedNow))

	branding := map[string]any{
		"colors": []any{
			map[string]any{"name": "Color 1", "hex": "#ff0000", "category": "primary"},
		},
		"typography": []any{},
		"logos":      []any{},
	}

	resp := h.Call(context.Background(), Request{
		Name:      GenerateDesignTokens,
		Arguments: map[string]any{"brandingData": branding},
	})
	require.False(t, resp.IsError, resp.Text())

	var got tokens.DesignTokenSet
	require.NoError(t, json.Unmarshal([]byte(resp.Text()), &got))

	want := tokens.Baseline()
	want.Colors.Primary.S500 = "#ff0000"
	want.Metadata = tokens.Metadata{BrandName: tokens.DefaultBrandName, Version: tokens.Version, CreatedAt: "2024-02-29T12:00:00Z"}
	assert.Equal(t, want, &got)
}

func TestGenerateFigmaOverlayWins(t *testing.T) {
	h := NewHandler(&fakeDecoder{})

	resp := h.Call(context.Background(), Request{
		Name: GenerateDesignTokens,
		Arguments: map[string]any{
			"brandingData": map[string]any{
				"brandName": "From PDF",
				"colors":    []any{map[string]any{"hex": "#111111", "category": "primary"}},
			},
			"figmaData": map[string]any{
				"brandName": "From Figma",
			},
			"format": "preprocessorVariables",
		},
	})
	require.False(t, resp.IsError, resp.Text())

	out := resp.Text()
	assert.True(t, strings.HasPrefix(out, "// Design tokens for From Figma\n"), out)
	assert.Contains(t, out, "$color-primary-500: #111111;")
}

func TestUnknownTool(t *testing.T) {
	obs := &recordingObserver{}
	h := NewHandler(&fakeDecoder{}, WithObserver(obs))

	resp := h.Call(context.Background(), Request{Name: "install_theme"})
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Text(), "unknown tool")
	assert.Equal(t, []Code{CodeUnknownTool}, obs.codes)
}

func TestMergeShallow(t *testing.T) {
	base := map[string]any{
		"brandName": "A",
		"colors":    []any{"x"},
		"logos":     []any{"l"},
	}
	overlay := map[string]any{
		"colors":    []any{"y", "z"},
		"brandName": "B",
	}

	got := MergeShallow(base, overlay)

	assert.Equal(t, map[string]any{
		"brandName": "B",
		"colors":    []any{"y", "z"},
		"logos":     []any{"l"},
	}, got)
	assert.Equal(t, "A", base["brandName"], "base must not be mutated")
	assert.Equal(t, base, MergeShallow(base, nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want Code
	}{
		{nil, CodeOK},
		{fmt.Errorf("%w: x", ErrInvalidParams), CodeInvalidParams},
		{fmt.Errorf("%w: x", ErrUnknownTool), CodeUnknownTool},
		{fmt.Errorf("%w: %w", ErrCollaborator, document.ErrUnsupported), CodeCollaborator},
		{fmt.Errorf("%w: %w", ErrCollaborator, context.Canceled), CodeCanceled},
		{errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.err), fmt.Sprint(tt.err))
	}
}

func TestDefinitionsSchemasAreValidJSON(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 2)

	for _, d := range defs {
		var schema map[string]any
		require.NoError(t, json.Unmarshal(d.InputSchema, &schema), d.Name)
		assert.Equal(t, "object", schema["type"])
	}
}
