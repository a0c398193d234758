package cmd

import (
	"fmt"
	"os"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath         string
	flagStore        string
	flagConfig       string
	flagOutput       string
	flagShowVariable string
	flagShowConfig   bool
	flagExplain      bool
	flagVerbosity    string
)

// Flags of the default run command.
var (
	flagDefinition        string
	flagBuild             string
	flagAction            semver.VersioningAction
	flagMajor             string
	flagMinor             string
	flagPatch             string
	flagBuildNumber       string
	flagRevision          string
	flagDestDefinition    string
	flagDestBuild         string
	flagNormalizeCounters bool
	flagRejectDowngrade   bool
	flagDryRun            bool
)

// rootCmd is the top-level command for semvermanager.
var rootCmd = &cobra.Command{
	Use:   "semvermanager",
	Short: "Semantic version numbers kept in a versioning control file",
	Long: "semvermanager computes version numbers for the definitions and builds of a versioning control file, " +
		"renders them through the definition's templates and writes the result back.",
	// Default action is run.
	RunE:          runRunE,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagPath, "path", "p", ".", "directory inside the repository holding the store")
	pf.StringVarP(&flagStore, "store", "s", "", "path to the store file (default: auto-detect)")
	pf.StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	pf.StringVarP(&flagOutput, "output", "o", "", "output format: json, or empty for key=value lines")
	pf.StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")

	f := rootCmd.Flags()
	f.StringVarP(&flagDefinition, "definition", "d", "", "definition to version (default \"default\")")
	f.StringVarP(&flagBuild, "build", "b", "", "build of the definition (default \"default\")")
	f.VarP(&flagAction, "action", "a", "versioning action: Patch, SetNewVersion, Promote, ReBuild")
	f.StringVar(&flagMajor, "major", "", "major value for SetNewVersion or a Setted major")
	f.StringVar(&flagMinor, "minor", "", "minor value for SetNewVersion or a Setted minor")
	f.StringVar(&flagPatch, "patch", "", "patch value for SetNewVersion or a Setted patch")
	f.StringVar(&flagBuildNumber, "build-number", "", "value for a Setted build counter")
	f.StringVar(&flagRevision, "revision", "", "value for a Setted revision counter")
	f.StringVar(&flagDestDefinition, "dest-definition", "", "destination definition for Promote")
	f.StringVar(&flagDestBuild, "dest-build", "", "destination build for Promote (default: the source build)")
	f.BoolVar(&flagNormalizeCounters, "normalize-counters", false, "treat Setted build and revision values as 1-based counters")
	f.BoolVar(&flagRejectDowngrade, "reject-downgrade", false, "fail a Promote that lowers the destination version")
	f.BoolVar(&flagDryRun, "dry-run", false, "compute and print the result without saving the store")
	f.StringVar(&flagShowVariable, "show-variable", "", "output a single variable (e.g. VersionNumber)")
	f.BoolVar(&flagShowConfig, "show-config", false, "display the effective configuration and exit")
	f.BoolVar(&flagExplain, "explain", false, "show how the version was calculated")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Mark(err, semver.ErrInvalidOptions)
	})
}

// Execute runs the root command and exits with the code matching the error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, semver.ErrInvalidOptions),
		errors.Is(err, semver.ErrUnrecognizedEnumValue):
		return 2
	case errors.Is(err, semver.ErrDefinitionNotFound),
		errors.Is(err, semver.ErrBuildNotFound):
		return 3
	case errors.Is(err, semver.ErrInvalidPattern),
		errors.Is(err, semver.ErrMissingValues):
		return 4
	case errors.Is(err, semver.ErrMissingOverride),
		errors.Is(err, semver.ErrInvalidNumber),
		errors.Is(err, semver.ErrOutOfRange):
		return 5
	case errors.Is(err, semver.ErrSamePromotionTarget),
		errors.Is(err, semver.ErrPromotionDowngrade):
		return 6
	default:
		return 1
	}
}
