package cmd

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/calculator"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/config"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/git"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the store without changing it",
	Long: "validate reports duplicate names, counters that are not integers in range and templates that " +
		"cannot be rendered or reference unknown variables.",
	Args: cobra.NoArgs,
	RunE: validateRunE,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateRunE(cmd *cobra.Command, _ []string) error {
	root := git.FindRoot(flagPath)
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	storePath, err := locateStore(cmd, config.NewEffectiveConfiguration(cfg), root)
	if err != nil {
		return err
	}
	s, err := store.Load(storePath)
	if err != nil {
		return fmt.Errorf("loading store: %w", err)
	}

	w := cmd.OutOrStdout()
	issues := calculator.ValidateStore(s)
	if len(issues) == 0 {
		fmt.Fprintf(w, "%s %s\n", color.GreenString("ok"), storePath)
		return nil
	}

	red := color.New(color.FgRed)
	for _, issue := range issues {
		fmt.Fprintf(w, "%s %s\n", red.Sprint("✗"), issue)
	}
	return errors.Newf("%d issues found in %s", len(issues), storePath)
}
