// Package tokens turns an extracted BrandProfile into a normalized design-token set.
//
// Synthesis starts from Baseline and only overrides individual values:
// the first primary, secondary and accent colors replace the 500 stop of the
// matching ramp, and the first heading, body and accent fonts replace the
// matching font stack. No baseline key is ever removed.
package tokens

import (
	"time"

	"github.com/kataras/brand-tokens/pkg/extractor"
	"github.com/kataras/brand-tokens/pkg/logging"
)

// Option customizes a Synthesize call.
type Option func(*synthesizer)

type synthesizer struct {
	now    func() time.Time
	logger logging.Logger
}

// WithClock sets the clock used for the createdAt stamp.
func WithClock(now func() time.Time) Option {
	return func(s *synthesizer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *synthesizer) {
		s.logger = logger
	}
}

// Synthesize merges the profile over the baseline token set.
// A nil profile yields the baseline with fresh metadata.
func Synthesize(profile *extractor.BrandProfile, opts ...Option) *DesignTokenSet {
	s := &synthesizer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	log := logging.OrNop(s.logger)

	set := Baseline()
	if profile == nil {
		profile = &extractor.BrandProfile{}
	}

	if hex, ok := firstColor(profile.Colors, extractor.ColorPrimary); ok {
		set.Colors.Primary.S500 = hex
		log.Debugf("primary.500 = %s", hex)
	}
	if hex, ok := firstColor(profile.Colors, extractor.ColorSecondary); ok {
		set.Colors.Secondary.S500 = hex
		log.Debugf("secondary.500 = %s", hex)
	}
	if hex, ok := firstColor(profile.Colors, extractor.ColorAccent); ok {
		set.Colors.Accent.S500 = hex
		log.Debugf("accent.500 = %s", hex)
	}

	if family, ok := firstFont(profile.Typography, extractor.FontHeading); ok {
		set.Typography.FontFamily.Heading = fontStack(family)
	}
	if family, ok := firstFont(profile.Typography, extractor.FontBody); ok {
		set.Typography.FontFamily.Body = fontStack(family)
	}
	if family, ok := firstFont(profile.Typography, extractor.FontAccent); ok {
		set.Typography.FontFamily.Accent = fontStack(family)
	}

	brandName := profile.BrandName
	if brandName == "" {
		brandName = DefaultBrandName
	}
	set.Metadata = Metadata{
		BrandName: brandName,
		Version:   Version,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	log.Infof("Synthesized design tokens for %s", brandName)
	return set
}

// firstColor returns the hex of the earliest signal with the given category.
func firstColor(colors []extractor.ColorSignal, category extractor.ColorCategory) (string, bool) {
	for _, c := range colors {
		if c.Category == category && c.Hex != "" {
			return c.Hex, true
		}
	}
	return "", false
}

func firstFont(fonts []extractor.TypographySignal, category extractor.FontCategory) (string, bool) {
	for _, f := range fonts {
		if f.Category == category && f.Family != "" {
			return f.Family, true
		}
	}
	return "", false
}

func fontStack(family string) string {
	return family + ", sans-serif"
}
