// Package e2e contains end-to-end tests for the pkg/semvermanager library API.
//
// These tests exercise the public Run(), Init() and Validate() functions
// against real git repos, the way a build script would call them.
package e2e

import (
	"testing"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/testutil"
	"github.com/MyCarrier-DevOps/go-semvermanager/pkg/semvermanager"

	"github.com/stretchr/testify/require"
)

func TestLibrary_Run_ConfiguredStore(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("build/versions.yml", releaseStore)
	repo.WriteConfig("store: build/versions.yml\ndefinition: production\n")
	sha := repo.Commit("initial commit")

	result, err := semvermanager.Run(semvermanager.Options{Path: repo.Path(), Today: day})
	require.NoError(t, err)
	require.Equal(t, repo.File("build/versions.yml"), result.StorePath)
	require.Equal(t, sha, result.Commit)
	require.Equal(t, "3.0.7.13", result.Variables["VersionNumber"])
	require.Equal(t, "3.0.7+13", result.Variables["VersionInformationalNumber"])
}

func TestLibrary_Run_ReleaseFlow(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("versions.yml", releaseStore)
	path := repo.File("versions.yml")

	_, err := semvermanager.Run(semvermanager.Options{
		StorePath:  path,
		Definition: "staging",
		Action:     "SetNewVersion",
		NewMajor:   "4",
		NewMinor:   "0",
	})
	require.NoError(t, err)

	result, err := semvermanager.Run(semvermanager.Options{
		StorePath:  path,
		Definition: "staging",
		Build:      "manual",
		Overrides:  map[string]string{"Build": "5", "Revision": "1"},
		Today:      day,
	})
	require.NoError(t, err)
	require.Equal(t, "4.0.1+5.1", result.Variables["VersionInformationalNumber"])

	result, err = semvermanager.Run(semvermanager.Options{
		StorePath:             path,
		Definition:            "staging",
		Action:                "promote",
		DestinationDefinition: "production",
		DestinationBuild:      "default",
		Explain:               true,
	})
	require.NoError(t, err)
	require.Equal(t, "4.0.1", result.Variables["MajorMinorPatch"])
	require.Contains(t, result.ExplainResult.FormattedOutput, "Action: Promote")

	issues, err := semvermanager.Validate(semvermanager.Options{StorePath: path})
	require.NoError(t, err)
	require.Empty(t, issues)
}

func TestLibrary_Init_ThenRun(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	require.NoError(t, semvermanager.Init(repo.File(".github/VersioningControl.xml"), false))

	result, err := semvermanager.Run(semvermanager.Options{Path: repo.Path(), Build: "release", DryRun: true})
	require.NoError(t, err)
	require.Equal(t, repo.File(".github/VersioningControl.xml"), result.StorePath)
	require.Equal(t, "1.0.0.0.1", result.Variables["VersionInformationalNumber"])
}
