package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	brandtokens "github.com/kataras/brand-tokens"
	"github.com/kataras/brand-tokens/internal/config"
	"github.com/kataras/brand-tokens/pkg/extractor"
	"github.com/kataras/brand-tokens/pkg/formatter"
	"github.com/kataras/brand-tokens/pkg/tool"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	debug      bool

	noColors     bool
	noTypography bool
	noLogos      bool
	reportDir    string
	concurrency  int

	outputFile    string
	formatName    string
	figmaURL      string
	figmaToken    string
	figmaDataFile string

	stdioMode bool
	httpMode  bool
	httpAddr  string
)

var (
	cfg    config.Config
	logger *cliLogger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brand-tokens",
		Short: "Turn brand guidelines into design tokens",
		Long: "A tool to extract colors, typography, logo mentions and the brand name from brand guideline " +
			"documents and synthesize them into design tokens (JSON, CSS custom properties, SCSS variables or YAML)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default ./brand-tokens.yaml or $HOME/brand-tokens.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if err := bindFlags(v, cmd, map[string]string{
			"debug":       "debug",
			"format":      "format",
			"figma-token": "figma.token",
			"addr":        "server.addr",
			"concurrency": "extract.concurrency",
		}); err != nil {
			return err
		}

		var err error
		if cfg, err = config.Load(v, configFile); err != nil {
			return err
		}
		logger, err = newCLILogger(cfg.Log.Level, cfg.Log.Dir, os.Stderr)
		if err != nil {
			return err
		}
		logger.Debugf("Config: format=%s concurrency=%d log.dir=%q", cfg.Format, cfg.Extract.Concurrency, cfg.Log.Dir)
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return logger.Close()
		}
		return nil
	}

	rootCmd.AddCommand(newExtractCmd(), newGenerateCmd(), newServeCmd(), newVersionCmd())
	return rootCmd
}

// bindFlags binds every flag of cmd that exists to its config key, so that
// explicitly set flags win over file and environment values.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for flagName, key := range keys {
		f := cmd.Flags().Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flagName, err)
		}
	}
	return nil
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <document>...",
		Short: "Extract brand signals from one or more documents",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExtract,
	}

	cmd.Flags().BoolVar(&noColors, "no-colors", false, "Skip color extraction")
	cmd.Flags().BoolVar(&noTypography, "no-typography", false, "Skip typography extraction")
	cmd.Flags().BoolVar(&noLogos, "no-logos", false, "Skip logo extraction")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output JSON file (default stdout)")
	cmd.Flags().StringVar(&reportDir, "report", "", "Directory for markdown extraction reports (one per document)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 4, "Documents extracted in parallel")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(os.Stderr, "\n🎨 Brand Signal Extractor")
	cyan.Fprintln(os.Stderr, "==========================")

	opts := brandtokens.Options{
		SkipColors:     noColors,
		SkipTypography: noTypography,
		SkipLogos:      noLogos,
		Logger:         logger,
	}

	profiles, err := brandtokens.ExtractAll(cmd.Context(), args, cfg.Extract.Concurrency, opts)
	if err != nil {
		return err
	}

	var out any = profiles
	if len(profiles) == 1 {
		out = profiles[0]
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}

	if reportDir != "" {
		if err := writeReports(args, profiles); err != nil {
			return err
		}
	}

	for i, p := range profiles {
		printProfileSummary(args[i], p)
	}

	return writeOutput(outputFile, string(b)+"\n")
}

func writeReports(paths []string, profiles []*extractor.BrandProfile) error {
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	for i, p := range profiles {
		stem := strings.TrimSuffix(filepath.Base(paths[i]), filepath.Ext(paths[i]))
		if err := writeOutput(filepath.Join(reportDir, stem+".md"), formatter.ProfileMarkdown(p, paths[i])); err != nil {
			return err
		}
	}
	return nil
}

func printProfileSummary(path string, p *extractor.BrandProfile) {
	color.New(color.FgCyan).Fprintf(os.Stderr, "\n📊 %s:\n", path)
	if p.BrandName != "" {
		fmt.Fprintf(os.Stderr, "  • Brand: %s\n", p.BrandName)
	}
	fmt.Fprintf(os.Stderr, "  • Colors: %d\n", len(p.Colors))
	fmt.Fprintf(os.Stderr, "  • Fonts: %d\n", len(p.Typography))
	fmt.Fprintf(os.Stderr, "  • Logo mentions: %d\n", len(p.Logos))
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <profile.json | document>",
		Short: "Generate design tokens from a brand profile or document",
		Long: "Generate design tokens from a brand profile JSON file (as written by extract) or directly from a " +
			"brand document. Figma data can be overlaid from a JSON file or fetched from a Figma URL.",
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "structured", "Output format: "+formatList())
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&figmaDataFile, "figma-data", "", "JSON file with Figma branding data to overlay")
	cmd.Flags().StringVarP(&figmaURL, "figma-url", "u", "", "Figma file URL to overlay")
	cmd.Flags().StringVarP(&figmaToken, "figma-token", "t", "", "Figma Personal Access Token")

	return cmd
}

func formatList() string {
	names := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	input := args[0]

	opts := brandtokens.Options{
		DocumentPath: input,
		FigmaURL:     figmaURL,
		FigmaToken:   cfg.Figma.Token,
		Format:       formatter.ParseFormat(cfg.Format),
		Logger:       logger,
	}

	profile, err := loadProfile(ctx, input, opts)
	if err != nil {
		return err
	}

	if opts.FigmaURL != "" {
		if opts.FigmaToken == "" {
			return fmt.Errorf("%w: a Figma token is required with --figma-url", tool.ErrInvalidParams)
		}
		if profile, err = brandtokens.OverlayFigma(ctx, profile, opts); err != nil {
			return err
		}
	}

	set, output, err := brandtokens.Generate(profile, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated tokens for %q (created %s)", set.Metadata.BrandName, set.Metadata.CreatedAt)

	return writeOutput(outputFile, output)
}

// loadProfile reads a profile JSON file, merging --figma-data over it, or
// extracts one from a document.
func loadProfile(ctx context.Context, input string, opts brandtokens.Options) (*extractor.BrandProfile, error) {
	if !strings.EqualFold(filepath.Ext(input), ".json") {
		if figmaDataFile != "" {
			logger.Warnf("--figma-data is ignored for documents; use a profile JSON file")
		}
		return brandtokens.Extract(ctx, opts)
	}

	branding, err := readJSONObject(input)
	if err != nil {
		return nil, err
	}

	var overlay map[string]any
	if figmaDataFile != "" {
		if overlay, err = readJSONObject(figmaDataFile); err != nil {
			return nil, err
		}
	}

	profile, err := tool.MergeProfile(branding, overlay)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", tool.ErrInvalidParams, input, err)
	}
	return profile, nil
}

func readJSONObject(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", tool.ErrInvalidParams, path, err)
	}
	return m, nil
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, content)
		return err
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	green.Fprintf(os.Stderr, "💾 Writing to %s... ", path)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		red.Fprintln(os.Stderr, "✗")
		return err
	}
	green.Fprintln(os.Stderr, "✓")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("brand-tokens version %s\n", brandtokens.Version)
		},
	}
}
