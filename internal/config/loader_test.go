package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestLoadFromBytes_Full(t *testing.T) {
	data := []byte(`
store: VersioningControl.yml
definition: api
build: release
action: SetNewVersion
rebuild-hold:
  - Revision
normalize-counters: true
reject-downgrade: true
output: json
verbosity: quiet
promotions:
  api:
    destination: api-production
`)

	cfg, err := LoadFromBytes(data)
	require.NoError(t, err)

	require.Equal(t, "VersioningControl.yml", *cfg.Store)
	require.Equal(t, "api", *cfg.Definition)
	require.Equal(t, semver.ActionSetNewVersion, *cfg.Action)
	require.Equal(t, []semver.VersionField{semver.VersionFieldRevision}, *cfg.ReBuildHold)
	require.True(t, *cfg.RejectDowngrade)
	require.Equal(t, "api-production", *cfg.Promotions["api"].Destination)
}

func TestLoadFromBytes_Partial(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("build: nightly\n"))
	require.NoError(t, err)
	require.Equal(t, "nightly", *cfg.Build)
	require.Nil(t, cfg.Definition)
	require.Nil(t, cfg.Action)
}

func TestLoadFromBytes_Empty(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(""))
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	_, err := LoadFromBytes([]byte("definition: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config")
}

func TestLoadFromBytes_InvalidField(t *testing.T) {
	_, err := LoadFromBytes([]byte("rebuild-hold: [Build, Epoch]\n"))
	require.ErrorIs(t, err, semver.ErrUnrecognizedEnumValue)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "semvermanager.yml")
	require.NoError(t, os.WriteFile(path, []byte("definition: web\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "web", *cfg.Definition)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestExpandPath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	got, err := ExpandPath("~/VersioningControl.xml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "VersioningControl.xml"), got)

	got, err = ExpandPath("relative/path.xml")
	require.NoError(t, err)
	require.Equal(t, "relative/path.xml", got)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, "", FindConfigFile(dir))

	root := filepath.Join(dir, "semvermanager.yml")
	require.NoError(t, os.WriteFile(root, []byte("{}\n"), 0o644))
	require.Equal(t, root, FindConfigFile(dir))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github"), 0o755))
	github := filepath.Join(dir, ".github", "semvermanager.yml")
	require.NoError(t, os.WriteFile(github, []byte("{}\n"), 0o644))
	require.Equal(t, github, FindConfigFile(dir))
}

func TestFindStoreFile(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, "", FindStoreFile(dir))

	// Directories with a candidate name are skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "VersioningControl.xml"), 0o755))
	yml := filepath.Join(dir, "VersioningControl.yml")
	require.NoError(t, os.WriteFile(yml, []byte("definitions: []\n"), 0o644))
	require.Equal(t, yml, FindStoreFile(dir))
}
