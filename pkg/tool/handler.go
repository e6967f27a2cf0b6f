// Package tool exposes the brand pipeline as named tool operations.
//
// A Handler receives a Request, runs extraction or token generation and
// always answers with a Response; failures are reported in-band with
// IsError set so the host keeps serving subsequent calls.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kataras/brand-tokens/pkg/document"
	"github.com/kataras/brand-tokens/pkg/extractor"
	"github.com/kataras/brand-tokens/pkg/formatter"
	"github.com/kataras/brand-tokens/pkg/logging"
	"github.com/kataras/brand-tokens/pkg/tokens"
)

// Observer is notified once per completed call.
type Observer interface {
	ObserveCall(tool string, code Code, elapsed time.Duration)
}

// Handler dispatches tool calls to the pipeline.
type Handler struct {
	decoder  document.Decoder
	logger   logging.Logger
	policy   extractor.OrderingPolicy
	now      func() time.Time
	observer Observer
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the logger; nil silences output.
func WithLogger(logger logging.Logger) HandlerOption {
	return func(h *Handler) { h.logger = logger }
}

// WithPolicy replaces the positional ordering policy used during extraction.
func WithPolicy(policy extractor.OrderingPolicy) HandlerOption {
	return func(h *Handler) { h.policy = policy }
}

// WithClock sets the clock used to stamp token metadata.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// WithObserver registers a call observer, e.g. a metrics recorder.
func WithObserver(o Observer) HandlerOption {
	return func(h *Handler) { h.observer = o }
}

// NewHandler returns a Handler that reads documents through decoder.
func NewHandler(decoder document.Decoder, opts ...HandlerOption) *Handler {
	h := &Handler{
		decoder: decoder,
		policy:  extractor.PositionalPolicy{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = logging.OrNop(h.logger)
	return h
}

// Definitions lists the tools this handler serves.
func (h *Handler) Definitions() []Definition {
	return Definitions()
}

// Call runs one tool invocation. It never returns a Go error: every failure
// is converted into an error-flagged Response.
func (h *Handler) Call(ctx context.Context, req Request) Response {
	start := time.Now()
	h.logger.Infof("Tool call: %s", req.Name)

	text, err := h.dispatch(ctx, req)

	if h.observer != nil {
		h.observer.ObserveCall(req.Name, Classify(err), time.Since(start))
	}

	if err != nil {
		h.logger.Errorf("Tool %s failed: %v", req.Name, err)
		return ErrorResponse(err)
	}
	return TextResponse(text)
}

func (h *Handler) dispatch(ctx context.Context, req Request) (string, error) {
	switch req.Name {
	case ExtractPDFBranding:
		return h.extractPDFBranding(ctx, req.Arguments)
	case GenerateDesignTokens:
		return h.generateDesignTokens(req.Arguments)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, req.Name)
	}
}

type extractArgs struct {
	PDFPath        string `json:"pdfPath"`
	ExtractOptions *struct {
		ExtractColors     *bool `json:"extractColors"`
		ExtractTypography *bool `json:"extractTypography"`
		ExtractLogos      *bool `json:"extractLogos"`
	} `json:"extractOptions"`
}

func (h *Handler) extractPDFBranding(ctx context.Context, raw map[string]any) (string, error) {
	var args extractArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if args.PDFPath == "" {
		return "", fmt.Errorf("%w: pdfPath is required", ErrInvalidParams)
	}

	opts := extractor.DefaultOptions()
	opts.Policy = h.policy
	opts.Logger = h.logger
	if o := args.ExtractOptions; o != nil {
		opts.Colors = enabled(o.ExtractColors)
		opts.Typography = enabled(o.ExtractTypography)
		opts.Logos = enabled(o.ExtractLogos)
	}

	text, err := h.decoder.Decode(ctx, args.PDFPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCollaborator, err)
	}

	profile := extractor.Extract(text, opts)
	h.logger.Infof("Extracted %d color(s), %d font(s), %d logo(s) from %s",
		len(profile.Colors), len(profile.Typography), len(profile.Logos), args.PDFPath)

	return marshalIndent(profile)
}

// enabled treats only an explicit false as disabled.
func enabled(flag *bool) bool {
	return flag == nil || *flag
}

type generateArgs struct {
	BrandingData map[string]any `json:"brandingData"`
	FigmaData    map[string]any `json:"figmaData"`
	Format       string         `json:"format"`
}

func (h *Handler) generateDesignTokens(raw map[string]any) (string, error) {
	var args generateArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if args.BrandingData == nil {
		return "", fmt.Errorf("%w: brandingData is required", ErrInvalidParams)
	}

	profile, err := MergeProfile(args.BrandingData, args.FigmaData)
	if err != nil {
		return "", fmt.Errorf("%w: brandingData: %v", ErrInvalidParams, err)
	}

	set := tokens.Synthesize(profile, tokens.WithClock(h.now), tokens.WithLogger(h.logger))
	return formatter.Render(set, formatter.ParseFormat(args.Format))
}

// MergeShallow copies base and overlays every top-level key of overlay on it.
// Keys that can collide with a brand profile are colors, typography, logos
// and brandName; the overlay value replaces the base value wholesale.
func MergeShallow(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// MergeProfile shallow-merges overlay over branding and decodes the result
// as a brand profile.
func MergeProfile(branding, overlay map[string]any) (*extractor.BrandProfile, error) {
	var profile extractor.BrandProfile
	if err := remarshal(MergeShallow(branding, overlay), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileMap converts a brand profile into its generic JSON object form.
func ProfileMap(profile *extractor.BrandProfile) (map[string]any, error) {
	m := make(map[string]any)
	if err := remarshal(profile, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeArgs(raw map[string]any, dst any) error {
	if raw == nil {
		return nil
	}
	if err := remarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// remarshal converts a generic JSON value into a typed one.
func remarshal(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func marshalIndent(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}
