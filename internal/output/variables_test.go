package output

import (
	"testing"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/calculator"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

	"github.com/stretchr/testify/require"
)

func patchResult() calculator.Result {
	return calculator.Result{
		Action:     semver.ActionPatch,
		Definition: "default",
		Build:      "nightly",
		Numbers: semver.VersionNumbers{
			Major: "1", Minor: "2", Patch: "3", Build: "2024023", Revision: "4", Suffix: "beta",
		},
		Generated: &semver.GeneratedVersion{
			VersionNumber:              "1.2.3.4",
			VersionInformationalNumber: "1.2.3-beta.2024023.4",
			VersionNamePackage:         "1.2.3-beta",
		},
	}
}

func TestGetVariables_Patch(t *testing.T) {
	vars := GetVariables(patchResult())
	require.Equal(t, "Patch", vars["Action"])
	require.Equal(t, "default", vars["Definition"])
	require.Equal(t, "nightly", vars["BuildName"])
	require.Equal(t, "2024023", vars["Build"])
	require.Equal(t, "beta", vars["PreReleaseSuffix"])
	require.Equal(t, "1.2.3", vars["MajorMinorPatch"])
	require.Equal(t, "1.2.3.4", vars["VersionNumber"])
	require.Equal(t, "1.2.3-beta.2024023.4", vars["VersionInformationalNumber"])
	require.Equal(t, "1.2.3-beta", vars["VersionNamePackage"])
}

func TestGetVariables_NoRender(t *testing.T) {
	res := calculator.Result{
		Action:     semver.ActionSetNewVersion,
		Definition: "default",
		Numbers:    semver.VersionNumbers{Major: "2", Minor: "0", Patch: "0", Build: "0", Revision: "0"},
	}
	vars := GetVariables(res)
	require.Equal(t, "SetNewVersion", vars["Action"])
	require.Equal(t, "2.0.0", vars["MajorMinorPatch"])
	require.NotContains(t, vars, "VersionNumber")
}
