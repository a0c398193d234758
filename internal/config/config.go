// Package config provides YAML configuration loading, defaults, layered
// merging and the effective configuration of a semvermanager run.
package config

import "github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

// Config is the root configuration for semvermanager. All optional fields
// are pointers to support merge semantics during configuration building.
type Config struct {
	Store             *string                     `yaml:"store"`
	Definition        *string                     `yaml:"definition"`
	Build             *string                     `yaml:"build"`
	Action            *semver.VersioningAction    `yaml:"action"`
	ReBuildHold       *[]semver.VersionField      `yaml:"rebuild-hold"`
	NormalizeCounters *bool                       `yaml:"normalize-counters"`
	RejectDowngrade   *bool                       `yaml:"reject-downgrade"`
	Output            *string                     `yaml:"output"`
	Verbosity         *string                     `yaml:"verbosity"`
	Promotions        map[string]*PromotionConfig `yaml:"promotions"`
}
