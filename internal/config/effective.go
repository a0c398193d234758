package config

import (
	"strings"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"
)

// EffectiveConfiguration is a fully resolved configuration with all fields
// guaranteed to have values. Created from a Config and the definition being
// versioned.
type EffectiveConfiguration struct {
	Store             string
	Definition        string
	Build             string
	Action            semver.VersioningAction
	ReBuildHold       []semver.VersionField
	NormalizeCounters bool
	RejectDowngrade   bool
	Output            string
	Verbosity         string

	// Promotion fields, resolved from the entry of the source definition.
	DestinationDefinition string
	DestinationBuild      string
}

// NewEffectiveConfiguration resolves all pointer fields of cfg to concrete
// values. The promotion entry of the configured definition, if any, supplies
// the destination and may tighten the downgrade check.
func NewEffectiveConfiguration(cfg *Config) EffectiveConfiguration {
	ec := EffectiveConfiguration{
		Store:             derefString(cfg.Store, ""),
		Definition:        derefString(cfg.Definition, DefaultName),
		Build:             derefString(cfg.Build, DefaultName),
		Action:            derefAction(cfg.Action, semver.ActionPatch),
		NormalizeCounters: derefBool(cfg.NormalizeCounters, false),
		RejectDowngrade:   derefBool(cfg.RejectDowngrade, false),
		Output:            derefString(cfg.Output, OutputDefault),
		Verbosity:         derefString(cfg.Verbosity, VerbosityInfo),
	}
	if cfg.ReBuildHold != nil {
		ec.ReBuildHold = append([]semver.VersionField{}, *cfg.ReBuildHold...)
	}

	if p, ok := cfg.GetPromotion(ec.Definition); ok {
		ec.DestinationDefinition = strings.TrimSpace(derefString(p.Destination, ""))
		ec.DestinationBuild = strings.TrimSpace(derefString(p.DestinationBuild, ""))
		ec.RejectDowngrade = derefBool(p.RejectDowngrade, ec.RejectDowngrade)
	}

	return ec
}

func derefString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefBool(p *bool, fallback bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

func derefAction(p *semver.VersioningAction, fallback semver.VersioningAction) semver.VersioningAction {
	if p != nil {
		return *p
	}
	return fallback
}
