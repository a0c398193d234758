package config

import "github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

// Verbosity levels accepted by the verbosity setting.
const (
	VerbosityQuiet = "quiet"
	VerbosityInfo  = "info"
	VerbosityDebug = "debug"
)

// Output formats accepted by the output setting. The empty string selects
// key=value lines.
const (
	OutputDefault = ""
	OutputJSON    = "json"
)

// DefaultName is the definition and build used when none is configured.
const DefaultName = "default"

// ConfigFileCandidates are tried in order, relative to the repository root,
// when no config file is given.
var ConfigFileCandidates = []string{
	".github/semvermanager.yml",
	"semvermanager.yml",
}

// StoreFileCandidates are tried in order, relative to the repository root,
// when no store file is configured.
var StoreFileCandidates = []string{
	"VersioningControl.xml",
	".github/VersioningControl.xml",
	"VersioningControl.yml",
}

// CreateDefaultConfiguration returns a Config with all default values
// populated. Store is left unset so it can be discovered.
func CreateDefaultConfiguration() *Config {
	return &Config{
		Definition:        stringPtr(DefaultName),
		Build:             stringPtr(DefaultName),
		Action:            actionPtr(semver.ActionPatch),
		ReBuildHold:       fieldsPtr([]semver.VersionField{semver.VersionFieldBuild}),
		NormalizeCounters: boolPtr(false),
		RejectDowngrade:   boolPtr(false),
		Output:            stringPtr(OutputDefault),
		Verbosity:         stringPtr(VerbosityInfo),
		Promotions:        map[string]*PromotionConfig{},
	}
}
