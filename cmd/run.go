package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/calculator"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/config"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/git"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/logging"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/output"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func runRunE(cmd *cobra.Command, _ []string) error {
	// 1. Locate the repository root.
	root := git.FindRoot(flagPath)

	// 2. Load configuration.
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// 3. Show config mode: print and exit.
	if flagShowConfig {
		return showConfig(cmd.OutOrStdout(), cfg)
	}

	ec := config.NewEffectiveConfiguration(cfg)
	logger, err := logging.New(ec.Verbosity, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// 4. Load the store.
	storePath, err := locateStore(cmd, ec, root)
	if err != nil {
		return err
	}
	s, err := store.Load(storePath)
	if err != nil {
		return fmt.Errorf("loading store: %w", err)
	}
	logger.Debug("loaded store",
		zap.String("path", storePath),
		zap.Strings("definitions", s.DefinitionNames()),
	)
	if repo, err := git.Open(root); err == nil {
		if sha, err := repo.HeadSha(); err == nil {
			logger.Debug("repository head", zap.String("sha", sha))
		}
	}

	// 5. Run the action.
	res, err := calculator.NewEngine(logger).Run(s, engineOptions(ec))
	if err != nil {
		return err
	}

	// 6. Write explain output to stderr if requested.
	if flagExplain {
		if err := output.WriteExplanation(cmd.ErrOrStderr(), res); err != nil {
			return fmt.Errorf("writing explanation: %w", err)
		}
	}

	// 7. Apply and persist.
	if err := s.Apply(res.Update); err != nil {
		return fmt.Errorf("applying update: %w", err)
	}
	if flagDryRun {
		logger.Info("dry run, store not saved", zap.String("path", storePath))
	} else {
		if err := s.Save(storePath); err != nil {
			return fmt.Errorf("saving store: %w", err)
		}
		logger.Debug("saved store", zap.String("path", storePath))
	}

	// 8. Write output.
	return writeOutput(cmd.OutOrStdout(), ec.Output, output.GetVariables(res))
}

// loadConfig layers defaults, the config file and the flags set on the
// command line.
func loadConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := flagConfig
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

	return builder.Add(flagOverrides(cmd)).Build()
}

// flagOverrides returns a Config holding only the flags that were set.
func flagOverrides(cmd *cobra.Command) *config.Config {
	f := cmd.Flags()
	o := &config.Config{}
	if f.Changed("store") {
		o.Store = &flagStore
	}
	if f.Changed("definition") {
		o.Definition = &flagDefinition
	}
	if f.Changed("build") {
		o.Build = &flagBuild
	}
	if f.Changed("action") {
		o.Action = &flagAction
	}
	if f.Changed("normalize-counters") {
		o.NormalizeCounters = &flagNormalizeCounters
	}
	if f.Changed("reject-downgrade") {
		o.RejectDowngrade = &flagRejectDowngrade
	}
	if f.Changed("output") {
		o.Output = &flagOutput
	}
	if f.Changed("verbosity") {
		o.Verbosity = &flagVerbosity
	}
	return o
}

// locateStore resolves the store path. A --store flag is taken relative to
// the working directory, a configured store relative to the repository root.
func locateStore(cmd *cobra.Command, ec config.EffectiveConfiguration, root string) (string, error) {
	if cmd.Flags().Changed("store") {
		return config.ExpandPath(flagStore)
	}
	if ec.Store != "" {
		path, err := config.ExpandPath(ec.Store)
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
	return "", errors.Wrapf(semver.ErrInvalidOptions,
		"no store file found in %s (looked for %s); run 'semvermanager init' to create one",
		root, strings.Join(config.StoreFileCandidates, ", "))
}

// engineOptions combines the effective configuration with the per-run flags.
func engineOptions(ec config.EffectiveConfiguration) calculator.Options {
	opts := calculator.Options{
		Definition:            ec.Definition,
		Build:                 ec.Build,
		Action:                ec.Action,
		NewMajor:              flagMajor,
		NewMinor:              flagMinor,
		NewPatch:              flagPatch,
		DestinationDefinition: ec.DestinationDefinition,
		DestinationBuild:      ec.DestinationBuild,
		NormalizeCounters:     ec.NormalizeCounters,
		ReBuildHold:           ec.ReBuildHold,
		RejectDowngrade:       ec.RejectDowngrade,
		Explain:               flagExplain,
		Overrides:             map[semver.VersionField]string{},
	}
	if flagDestDefinition != "" {
		opts.DestinationDefinition = flagDestDefinition
	}
	if flagDestBuild != "" {
		opts.DestinationBuild = flagDestBuild
	}
	for field, value := range map[semver.VersionField]string{
		semver.VersionFieldMajor:    flagMajor,
		semver.VersionFieldMinor:    flagMinor,
		semver.VersionFieldPatch:    flagPatch,
		semver.VersionFieldBuild:    flagBuildNumber,
		semver.VersionFieldRevision: flagRevision,
	} {
		if value != "" {
			opts.Overrides[field] = value
		}
	}
	return opts
}

// showConfig prints the effective configuration as YAML.
func showConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return enc.Close()
}

// writeOutput writes the version variables in the requested format.
func writeOutput(w io.Writer, format string, vars map[string]string) error {
	if flagShowVariable != "" {
		return output.WriteVariable(w, vars, flagShowVariable)
	}

	switch format {
	case config.OutputJSON:
		return output.WriteJSON(w, vars)
	case config.OutputDefault:
		return output.WriteAll(w, vars)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
