package config

import "strings"

// PromotionConfig names where a definition is promoted to when no
// destination is given on the command line. Keys of Config.Promotions are
// source definition names.
type PromotionConfig struct {
	Destination      *string `yaml:"destination"`
	DestinationBuild *string `yaml:"destination-build"`
	RejectDowngrade  *bool   `yaml:"reject-downgrade"`
}

// MergeTo copies non-nil fields from pc into target.
func (pc *PromotionConfig) MergeTo(target *PromotionConfig) {
	if pc == nil || target == nil {
		return
	}
	if pc.Destination != nil {
		target.Destination = pc.Destination
	}
	if pc.DestinationBuild != nil {
		target.DestinationBuild = pc.DestinationBuild
	}
	if pc.RejectDowngrade != nil {
		target.RejectDowngrade = pc.RejectDowngrade
	}
}

// GetPromotion returns the promotion configured for a source definition,
// matching the key case-insensitively like store lookups do.
func (cfg *Config) GetPromotion(definition string) (*PromotionConfig, bool) {
	if p, ok := cfg.Promotions[definition]; ok {
		return p, true
	}
	for name, p := range cfg.Promotions {
		if strings.EqualFold(name, definition) {
			return p, true
		}
	}
	return nil, false
}
