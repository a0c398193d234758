package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/config"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/git"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/pattern"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var flagShowPatterns bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the definitions and builds of the store",
	Args:  cobra.NoArgs,
	RunE:  showRunE,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowPatterns, "patterns", false, "also list each definition's templates and their variables")
	rootCmd.AddCommand(showCmd)
}

func showRunE(cmd *cobra.Command, _ []string) error {
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
	fmt.Fprintln(w, color.New(color.FgCyan, color.Bold).Sprint(storePath))
	writeBuildTable(w, s)
	if flagShowPatterns {
		writePatternTable(w, s)
	}
	return nil
}

func writeBuildTable(w io.Writer, s *store.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Builds")
	t.AppendHeader(table.Row{"Definition", "Build", "Version", "Counter", "Revision", "Suffix", "Increments", "Last Version"})
	for _, def := range s.Definitions {
		c := def.CommonVersion
		for _, b := range def.Builds {
			t.AppendRow(table.Row{
				def.Name,
				b.Name,
				c.Major + "." + c.Minor + "." + c.Patch,
				b.Build,
				b.Revision,
				b.PreReleaseSuffix,
				fmt.Sprintf("%s/%s/%s/%s/%s",
					c.MajorIncrementMethod, c.MinorIncrementMethod, c.PatchIncrementMethod,
					b.BuildIncrementMethod, b.RevisionIncrementMethod),
				b.ActualGeneratedVersion.VersionInformationalNumber,
			})
		}
	}
	t.Render()
}

func writePatternTable(w io.Writer, s *store.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Patterns")
	t.AppendHeader(table.Row{"Definition", "Output", "Pattern", "Mandatory", "Optional"})
	for _, def := range s.Definitions {
		c := def.CommonVersion
		for _, p := range []struct {
			name    string
			pattern string
		}{
			{"VersionNumber", c.VersionNumberFormat},
			{"VersionInformationalNumber", c.VersionInformationalFormat},
			{"VersionNamePackage", c.VersionNamePackageFormat},
		} {
			mandatory, optional := pattern.Variables(p.pattern)
			t.AppendRow(table.Row{
				def.Name,
				p.name,
				p.pattern,
				strings.Join(mandatory, ", "),
				strings.Join(optional, ", "),
			})
		}
	}
	t.Render()
}
