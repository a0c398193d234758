package config

import (
	"testing"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

	"github.com/stretchr/testify/require"
)

func TestCreateDefaultConfiguration(t *testing.T) {
	cfg := CreateDefaultConfiguration()

	require.Nil(t, cfg.Store)
	require.Equal(t, "default", *cfg.Definition)
	require.Equal(t, "default", *cfg.Build)
	require.Equal(t, semver.ActionPatch, *cfg.Action)
	require.Equal(t, []semver.VersionField{semver.VersionFieldBuild}, *cfg.ReBuildHold)
	require.False(t, *cfg.NormalizeCounters)
	require.False(t, *cfg.RejectDowngrade)
	require.Equal(t, OutputDefault, *cfg.Output)
	require.Equal(t, VerbosityInfo, *cfg.Verbosity)
	require.Empty(t, cfg.Promotions)
}

func TestCreateDefaultConfiguration_Independent(t *testing.T) {
	a := CreateDefaultConfiguration()
	b := CreateDefaultConfiguration()

	*a.Definition = "changed"
	(*a.ReBuildHold)[0] = semver.VersionFieldRevision
	require.Equal(t, "default", *b.Definition)
	require.Equal(t, semver.VersionFieldBuild, (*b.ReBuildHold)[0])
}

func TestCreateDefaultConfiguration_Valid(t *testing.T) {
	require.NoError(t, validate(CreateDefaultConfiguration()))
}
