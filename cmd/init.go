package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/config"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/git"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/spf13/cobra"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example store file",
	Long: "init writes an example versioning control file with a \"default\" and a \"production\" definition. " +
		"The encoding follows the file extension (.xml, .yml or .yaml). Without a path the file is created " +
		"as VersioningControl.xml in the repository root.",
	Args: cobra.MaximumNArgs(1),
	RunE: initRunE,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func initRunE(cmd *cobra.Command, args []string) error {
	path := filepath.Join(git.FindRoot(flagPath), config.StoreFileCandidates[0])
	if len(args) == 1 {
		expanded, err := config.ExpandPath(args[0])
		if err != nil {
			return err
		}
		path = expanded
	}

	if err := store.WriteSample(path, flagForce); err != nil {
		return fmt.Errorf("writing sample store: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
