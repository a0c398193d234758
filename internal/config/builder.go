package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Builder constructs a Config by layering overrides on top of defaults.
type Builder struct {
	overrides []*Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration override. Overrides are applied in order:
// later overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build constructs the final configuration by starting with defaults,
// applying all overrides and validating.
func (b *Builder) Build() (*Config, error) {
	cfg := CreateDefaultConfiguration()

	for _, override := range b.overrides {
		mergeConfig(cfg, override)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig applies non-nil fields from src to dst.
func mergeConfig(dst, src *Config) {
	if src.Store != nil {
		dst.Store = src.Store
	}
	if src.Definition != nil {
		dst.Definition = src.Definition
	}
	if src.Build != nil {
		dst.Build = src.Build
	}
	if src.Action != nil {
		dst.Action = src.Action
	}
	if src.ReBuildHold != nil {
		dst.ReBuildHold = src.ReBuildHold
	}
	if src.NormalizeCounters != nil {
		dst.NormalizeCounters = src.NormalizeCounters
	}
	if src.RejectDowngrade != nil {
		dst.RejectDowngrade = src.RejectDowngrade
	}
	if src.Output != nil {
		dst.Output = src.Output
	}
	if src.Verbosity != nil {
		dst.Verbosity = src.Verbosity
	}

	// Promotions: merge per-key
	if src.Promotions != nil {
		if dst.Promotions == nil {
			dst.Promotions = make(map[string]*PromotionConfig)
		}
		for name, srcPromotion := range src.Promotions {
			if dstPromotion, ok := dst.Promotions[name]; ok {
				srcPromotion.MergeTo(dstPromotion)
			} else {
				dst.Promotions[name] = srcPromotion
			}
		}
	}
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if cfg.Definition != nil && strings.TrimSpace(*cfg.Definition) == "" {
		return fmt.Errorf("definition must not be empty")
	}
	if cfg.Build != nil && strings.TrimSpace(*cfg.Build) == "" {
		return fmt.Errorf("build must not be empty")
	}

	if cfg.Output != nil && !lo.Contains([]string{OutputDefault, OutputJSON}, *cfg.Output) {
		return fmt.Errorf("invalid output format %q: expected json or empty", *cfg.Output)
	}
	if cfg.Verbosity != nil && !lo.Contains([]string{VerbosityQuiet, VerbosityInfo, VerbosityDebug}, *cfg.Verbosity) {
		return fmt.Errorf("invalid verbosity %q: expected quiet, info or debug", *cfg.Verbosity)
	}

	if cfg.ReBuildHold != nil {
		if len(lo.Uniq(*cfg.ReBuildHold)) != len(*cfg.ReBuildHold) {
			return fmt.Errorf("rebuild-hold lists a field more than once")
		}
	}

	for name, p := range cfg.Promotions {
		if p == nil || p.Destination == nil || strings.TrimSpace(*p.Destination) == "" {
			return fmt.Errorf("promotion %q missing destination", name)
		}
	}

	return nil
}
