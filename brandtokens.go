package brandtokens

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kataras/brand-tokens/pkg/document"
	"github.com/kataras/brand-tokens/pkg/extractor"
	"github.com/kataras/brand-tokens/pkg/figma"
	"github.com/kataras/brand-tokens/pkg/formatter"
	"github.com/kataras/brand-tokens/pkg/logging"
	"github.com/kataras/brand-tokens/pkg/tokens"
	"github.com/kataras/brand-tokens/pkg/tool"
)

// Version is the release version of the module and its CLI.
const Version = "0.3.0"

// Logger receives progress messages. A nil Logger silences all output.
type Logger = logging.Logger

// Options configures a pipeline run.
type Options struct {
	DocumentPath string           // brand document (.pdf, .txt, .md)
	Decoder      document.Decoder // nil = local file decoder

	// Categories are extracted unless explicitly disabled.
	SkipColors     bool
	SkipTypography bool
	SkipLogos      bool
	Policy         extractor.OrderingPolicy // nil = positional

	// Optional Figma file whose styles are overlaid on the extracted profile.
	FigmaURL   string
	FigmaToken string
	Figma      *figma.Client // nil = figma.NewClient(FigmaToken)

	Format formatter.Format // empty = structured
	Now    func() time.Time // nil = time.Now
	Logger Logger           // nil = no logging
}

// Result contains the pipeline output.
type Result struct {
	Profile *extractor.BrandProfile
	Tokens  *tokens.DesignTokenSet
	Output  string // tokens rendered in Options.Format
	Report  string // markdown extraction report
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) decoder() document.Decoder {
	if o.Decoder != nil {
		return o.Decoder
	}
	return document.NewFileDecoder()
}

func (o *Options) extractOptions() extractor.Options {
	return extractor.Options{
		Colors:     !o.SkipColors,
		Typography: !o.SkipTypography,
		Logos:      !o.SkipLogos,
		Policy:     o.Policy,
		Logger:     o.Logger,
	}
}

// Run executes the full pipeline: decode, extract, overlay Figma data,
// synthesize and render.
func Run(ctx context.Context, opts Options) (*Result, error) {
	profile, err := Extract(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.FigmaURL != "" {
		profile, err = OverlayFigma(ctx, profile, opts)
		if err != nil {
			return nil, err
		}
	}

	set, output, err := Generate(profile, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Profile: profile,
		Tokens:  set,
		Output:  output,
		Report:  formatter.ProfileMarkdown(profile, opts.DocumentPath),
	}, nil
}

// Extract decodes the document and returns its brand profile.
func Extract(ctx context.Context, opts Options) (*extractor.BrandProfile, error) {
	if opts.DocumentPath == "" {
		return nil, fmt.Errorf("%w: document path is required", tool.ErrInvalidParams)
	}

	opts.logInfo("Reading %s...", opts.DocumentPath)
	text, err := opts.decoder().Decode(ctx, opts.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	opts.logInfo("Extracting brand signals...")
	profile := extractor.Extract(text, opts.extractOptions())
	opts.logInfo("Found %d color(s), %d font(s), %d logo mention(s)",
		len(profile.Colors), len(profile.Typography), len(profile.Logos))

	return profile, nil
}

// ExtractAll extracts several documents concurrently, at most limit at a time
// (limit <= 0 means unbounded). Results keep the order of paths; the first
// failure cancels the remaining work.
func ExtractAll(ctx context.Context, paths []string, limit int, opts Options) ([]*extractor.BrandProfile, error) {
	profiles := make([]*extractor.BrandProfile, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			o := opts
			o.DocumentPath = path
			p, err := Extract(gctx, o)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			profiles[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Generate synthesizes the token set for profile and renders it.
func Generate(profile *extractor.BrandProfile, opts Options) (*tokens.DesignTokenSet, string, error) {
	synthOpts := []tokens.Option{tokens.WithLogger(opts.Logger)}
	if opts.Now != nil {
		synthOpts = append(synthOpts, tokens.WithClock(opts.Now))
	}

	set := tokens.Synthesize(profile, synthOpts...)

	format := opts.Format
	if format == "" {
		format = formatter.Structured
	}
	opts.logInfo("Rendering tokens as %s...", format)
	output, err := formatter.Render(set, format)
	if err != nil {
		return nil, "", err
	}

	return set, output, nil
}

// OverlayFigma fetches the Figma file named by opts.FigmaURL and
// shallow-merges its branding data over profile.
func OverlayFigma(ctx context.Context, profile *extractor.BrandProfile, opts Options) (*extractor.BrandProfile, error) {
	fileKey, err := figma.ExtractFileKey(opts.FigmaURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}

	client := opts.Figma
	if client == nil {
		client = figma.NewClient(opts.FigmaToken)
	}

	opts.logInfo("Fetching Figma file %s...", fileKey)
	file, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch figma file: %w", err)
	}

	overlay := figma.BrandingOverlay(file)
	if len(overlay) == 0 {
		opts.logWarn("Figma file %q has no brand styles to overlay", file.Name)
		return profile, nil
	}

	base, err := tool.ProfileMap(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	merged, err := tool.MergeProfile(base, overlay)
	if err != nil {
		return nil, fmt.Errorf("merge figma data: %w", err)
	}
	opts.logInfo("Applied Figma overlay (%d key(s))", len(overlay))

	return merged, nil
}
