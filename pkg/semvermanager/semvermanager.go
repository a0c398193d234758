// Package semvermanager provides a public Go API for computing and
// recording version numbers kept in a versioning control file.
//
// Basic usage:
//
//	result, err := semvermanager.Run(semvermanager.Options{
//	    Path:       "/path/to/repo",
//	    Definition: "default",
//	    Build:      "release",
//	})
//	fmt.Println(result.Variables["VersionNumber"]) // "1.0.0.1"
//
// Promoting the default definition to production:
//
//	result, err := semvermanager.Run(semvermanager.Options{
//	    Action:                "Promote",
//	    DestinationDefinition: "production",
//	})
package semvermanager

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/calculator"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/config"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/git"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/output"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Error kinds returned by Run, for use with errors.Is.
var (
	ErrInvalidOptions      = semver.ErrInvalidOptions
	ErrDefinitionNotFound  = semver.ErrDefinitionNotFound
	ErrBuildNotFound       = semver.ErrBuildNotFound
	ErrInvalidPattern      = semver.ErrInvalidPattern
	ErrMissingOverride     = semver.ErrMissingOverride
	ErrInvalidNumber       = semver.ErrInvalidNumber
	ErrOutOfRange          = semver.ErrOutOfRange
	ErrSamePromotionTarget = semver.ErrSamePromotionTarget
	ErrPromotionDowngrade  = semver.ErrPromotionDowngrade
)

// Options configures a single run against a store file.
type Options struct {
	// Path is a directory inside the repository. Defaults to "." if empty.
	Path string

	// StorePath is the store file. If empty, the configured store or the
	// first of VersioningControl.xml, .github/VersioningControl.xml and
	// VersioningControl.yml in the repository root is used.
	StorePath string

	// ConfigPath is the path to a semvermanager YAML config file. If empty,
	// .github/semvermanager.yml or semvermanager.yml in the repository root
	// is used when present.
	ConfigPath string

	// Definition and Build select the version to work on. Empty means the
	// configured value, "default" otherwise.
	Definition string
	Build      string

	// Action is one of Patch, SetNewVersion, Promote or ReBuild,
	// case-insensitive. Empty means the configured action, Patch otherwise.
	Action string

	// NewMajor, NewMinor and NewPatch are the values for SetNewVersion.
	// Blank values keep the current number.
	NewMajor string
	NewMinor string
	NewPatch string

	// Overrides supplies values for Setted fields, keyed by field name
	// (Major, Minor, Patch, Build, Revision).
	Overrides map[string]string

	// DestinationDefinition and DestinationBuild are the Promote target.
	// They take precedence over the promotion entry of the config file.
	DestinationDefinition string
	DestinationBuild      string

	// NormalizeCounters treats Setted build and revision values as 1-based.
	NormalizeCounters bool

	// RejectDowngrade fails a Promote that lowers the destination version.
	RejectDowngrade bool

	// DryRun computes the result without saving the store.
	DryRun bool

	// Explain populates ExplainResult on the returned Result.
	Explain bool

	// Today is the date Julian fields are computed from. Defaults to now.
	Today time.Time

	// Logger receives warnings and debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Result holds the outcome of a run.
type Result struct {
	// Variables contains the output variables keyed by name: Action,
	// Definition, BuildName, Major, Minor, Patch, Build, Revision,
	// PreReleaseSuffix, MajorMinorPatch and, unless the action was
	// SetNewVersion or Promote, VersionNumber, VersionInformationalNumber
	// and VersionNamePackage.
	Variables map[string]string

	// StorePath is the store file that was read.
	StorePath string

	// Saved reports whether the store file was written.
	Saved bool

	// Commit is the HEAD commit of the repository holding the store, empty
	// outside a git repository or before the first commit.
	Commit string

	// ExplainResult contains the explain output. Nil when Explain is false.
	ExplainResult *ExplainResult
}

// ExplainResult holds structured explain data for programmatic consumption.
type ExplainResult struct {
	// Steps records how each field was resolved.
	Steps []string

	// FinalVersion is the informational version, or Major.Minor.Patch for
	// actions that render nothing.
	FinalVersion string

	// FormattedOutput is the human-readable explain text (same as CLI --explain).
	FormattedOutput string
}

// Run loads the store, performs the action and saves the store unless
// DryRun is set. Nothing is written when the action fails.
func Run(opts Options) (*Result, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Locate the repository root.
	root := git.FindRoot(path)

	// 2. Load configuration.
	cfg, err := loadConfig(opts, root)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	ec := config.NewEffectiveConfiguration(cfg)

	// 3. Load the store.
	storePath, err := locateStore(opts.StorePath, ec.Store, root)
	if err != nil {
		return nil, err
	}
	s, err := store.Load(storePath)
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	// 4. Run the action.
	engineOpts, err := engineOptions(opts, ec)
	if err != nil {
		return nil, err
	}
	res, err := calculator.NewEngine(logger).Run(s, engineOpts)
	if err != nil {
		return nil, err
	}

	// 5. Apply and persist.
	if err := s.Apply(res.Update); err != nil {
		return nil, fmt.Errorf("applying update: %w", err)
	}
	r := &Result{
		Variables: output.GetVariables(res),
		StorePath: storePath,
		Commit:    headSha(root),
	}
	if !opts.DryRun {
		if err := s.Save(storePath); err != nil {
			return nil, fmt.Errorf("saving store: %w", err)
		}
		r.Saved = true
	}

	if opts.Explain {
		r.ExplainResult = buildExplainResult(res)
	}
	return r, nil
}

// Init writes an example store with a "default" and a "production"
// definition to path. An existing file is only replaced when force is set.
func Init(path string, force bool) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}
	return store.WriteSample(expanded, force)
}

// Validate checks the store selected by opts without changing it and
// returns one message per problem found.
func Validate(opts Options) ([]string, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}
	root := git.FindRoot(path)
	cfg, err := loadConfig(opts, root)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	storePath, err := locateStore(opts.StorePath, config.NewEffectiveConfiguration(cfg).Store, root)
	if err != nil {
		return nil, err
	}
	s, err := store.Load(storePath)
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	issues := calculator.ValidateStore(s)
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.String())
	}
	return messages, nil
}

// loadConfig layers defaults, the config file and the non-empty options.
func loadConfig(opts Options, root string) (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.FindConfigFile(root)
	}
	if configPath != "" {
		userCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		builder.Add(userCfg)
	}

	o := &config.Config{}
	if opts.Definition != "" {
		o.Definition = &opts.Definition
	}
	if opts.Build != "" {
		o.Build = &opts.Build
	}
	if opts.Action != "" {
		action, err := semver.ParseVersioningAction(opts.Action)
		if err != nil {
			return nil, err
		}
		o.Action = &action
	}
	if opts.NormalizeCounters {
		o.NormalizeCounters = &opts.NormalizeCounters
	}
	if opts.RejectDowngrade {
		o.RejectDowngrade = &opts.RejectDowngrade
	}
	return builder.Add(o).Build()
}

// locateStore resolves the store path. An explicit path is used as given,
// a configured one relative to the repository root.
func locateStore(explicit, configured, root string) (string, error) {
	if explicit != "" {
		return config.ExpandPath(explicit)
	}
	if configured != "" {
		path, err := config.ExpandPath(configured)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		return path, nil
	}
	if path := config.FindStoreFile(root); path != "" {
		return path, nil
	}
	return "", errors.Wrapf(ErrInvalidOptions, "no store file found in %s (looked for %s)",
		root, strings.Join(config.StoreFileCandidates, ", "))
}

func engineOptions(opts Options, ec config.EffectiveConfiguration) (calculator.Options, error) {
	eo := calculator.Options{
		Definition:            ec.Definition,
		Build:                 ec.Build,
		Action:                ec.Action,
		NewMajor:              opts.NewMajor,
		NewMinor:              opts.NewMinor,
		NewPatch:              opts.NewPatch,
		DestinationDefinition: ec.DestinationDefinition,
		DestinationBuild:      ec.DestinationBuild,
		NormalizeCounters:     ec.NormalizeCounters,
		ReBuildHold:           ec.ReBuildHold,
		RejectDowngrade:       ec.RejectDowngrade,
		Today:                 opts.Today,
		Explain:               opts.Explain,
		Overrides:             make(map[semver.VersionField]string, len(opts.Overrides)),
	}
	if opts.DestinationDefinition != "" {
		eo.DestinationDefinition = opts.DestinationDefinition
	}
	if opts.DestinationBuild != "" {
		eo.DestinationBuild = opts.DestinationBuild
	}
	for name, value := range opts.Overrides {
		field, err := semver.ParseVersionField(name)
		if err != nil {
			return calculator.Options{}, errors.Wrapf(err, "override %q", name)
		}
		eo.Overrides[field] = value
	}
	return eo, nil
}

// headSha returns the HEAD commit of the repository at root, or "".
func headSha(root string) string {
	repo, err := git.Open(root)
	if err != nil {
		return ""
	}
	sha, err := repo.HeadSha()
	if err != nil {
		return ""
	}
	return sha
}

// buildExplainResult maps the calculator result to the public ExplainResult.
func buildExplainResult(res calculator.Result) *ExplainResult {
	er := &ExplainResult{
		FinalVersion:    res.Numbers.MajorMinorPatch(),
		FormattedOutput: output.FormatExplanation(res),
	}
	if res.Generated != nil {
		er.FinalVersion = res.Generated.VersionInformationalNumber
	}
	if res.Explanation != nil {
		er.Steps = res.Explanation.Steps
	}
	return er
}
