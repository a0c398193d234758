package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the semvermanager binary, not of any store it
// manages. Release builds set it with
// -ldflags "-X github.com/MyCarrier-DevOps/go-semvermanager/cmd.Version=v1.2.3".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the semvermanager release this binary was built from",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
