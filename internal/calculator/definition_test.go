package calculator

import (
	"strconv"
	"testing"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newDefinition() *store.Definition {
	return &store.Definition{
		Name: "default",
		CommonVersion: store.CommonVersion{
			Major:                      "1",
			Minor:                      "2",
			Patch:                      "3",
			PatchIncrementMethod:       semver.IncrementMethodNone,
			VersionNumberFormat:        "{MAJOR}.{MINOR}.{PATCH}.{REVISION}",
			VersionInformationalFormat: "{MAJOR}.{MINOR}.{PATCH}[-{PRSUFFIX}][.{BUILD}][.{REVISION}]",
			VersionNamePackageFormat:   "{MAJOR}.{MINOR}.{PATCH}[-{PRSUFFIX}]",
		},
		Builds: []store.Build{
			{
				Name:                    "default",
				Build:                   "10",
				Revision:                "4",
				PreReleaseSuffix:        "beta",
				BuildIncrementMethod:    semver.IncrementMethodAuto,
				RevisionIncrementMethod: semver.IncrementMethodAuto,
			},
			{
				Name:                    "release",
				Build:                   "3",
				Revision:                "0",
				BuildIncrementMethod:    semver.IncrementMethodSetted,
				RevisionIncrementMethod: semver.IncrementMethodNone,
			},
		},
	}
}

func TestProcessDefinition_Read(t *testing.T) {
	p := &ProcessDefinition{}
	require.NoError(t, p.Read(newDefinition(), "RELEASE"))

	require.Equal(t, "default", p.Definition)
	require.Equal(t, "release", p.Build)
	require.Equal(t, semver.VersionNumbers{Major: "1", Minor: "2", Patch: "3", Build: "3", Revision: "0"}, p.Numbers)
	require.Equal(t, semver.IncrementMethodSetted, p.Increments.Build)
	require.Equal(t, "{MAJOR}.{MINOR}.{PATCH}.{REVISION}", p.Patterns.VersionNumber)
}

func TestProcessDefinition_ReadUnknownBuild(t *testing.T) {
	p := &ProcessDefinition{}
	err := p.Read(newDefinition(), "nightly")
	require.ErrorIs(t, err, semver.ErrBuildNotFound)
}

func TestProcessDefinition_Patch(t *testing.T) {
	p := &ProcessDefinition{}
	require.NoError(t, p.Read(newDefinition(), "default"))
	require.NoError(t, p.ApplyIncrements(nil, jan23))
	require.NoError(t, p.RenderPatterns())

	require.Equal(t, "11", p.Numbers.Build)
	require.Equal(t, "5", p.Numbers.Revision)
	require.Equal(t, semver.GeneratedVersion{
		VersionNumber:              "1.2.3.5",
		VersionInformationalNumber: "1.2.3-beta.11.5",
		VersionNamePackage:         "1.2.3-beta",
	}, p.Generated)
}

func TestProcessDefinition_EmptySuffixDropsSeparator(t *testing.T) {
	p := &ProcessDefinition{}
	require.NoError(t, p.Read(newDefinition(), "release"))
	require.NoError(t, p.ApplyIncrements(map[semver.VersionField]string{semver.VersionFieldBuild: "20"}, jan23))
	require.NoError(t, p.RenderPatterns())

	require.Equal(t, "1.2.3.20.0", p.Generated.VersionInformationalNumber)
	require.Equal(t, "1.2.3", p.Generated.VersionNamePackage)
}

func TestProcessDefinition_FailureKeepsNumbers(t *testing.T) {
	p := &ProcessDefinition{}
	require.NoError(t, p.Read(newDefinition(), "release"))
	before := p.Numbers

	err := p.ApplyIncrements(nil, jan23)
	require.ErrorIs(t, err, semver.ErrMissingOverride)
	require.Contains(t, err.Error(), "Build of default/release")
	require.Equal(t, before, p.Numbers)
}

func TestProcessDefinition_Hold(t *testing.T) {
	exp := &Explanation{}
	p := &ProcessDefinition{Hold: []semver.VersionField{semver.VersionFieldBuild}, Explanation: exp}
	require.NoError(t, p.Read(newDefinition(), "default"))
	require.NoError(t, p.ApplyIncrements(nil, jan23))

	require.Equal(t, "10", p.Numbers.Build)
	require.Equal(t, "5", p.Numbers.Revision)
	require.Contains(t, exp.Steps, `Build held at "10", Auto increment skipped`)
}

func TestProcessDefinition_Update(t *testing.T) {
	def := newDefinition()
	p := &ProcessDefinition{}
	require.NoError(t, p.Read(def, "default"))
	require.NoError(t, p.ApplyIncrements(nil, jan23))
	require.NoError(t, p.RenderPatterns())

	cp := *def
	cp.Builds = append([]store.Build(nil), def.Builds...)
	s := &store.Store{Definitions: []store.Definition{cp}}
	require.NoError(t, s.Apply(p.Update()))

	b := s.Definitions[0].Builds[0]
	require.Equal(t, "11", b.Build)
	require.Equal(t, "5", b.Revision)
	require.Equal(t, "1.2.3.5", b.ActualGeneratedVersion.VersionNumber)
	// The source tree is never written by the calculator.
	require.Equal(t, "10", def.Builds[0].Build)
}

// Reading back what Update wrote yields the same numbers.
func TestProcessDefinition_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := newDefinition()
		def.CommonVersion.Major = strconv.Itoa(rapid.IntRange(0, 1000).Draw(t, "major"))
		def.Builds[0].Build = strconv.Itoa(rapid.IntRange(0, MaxCounter-1).Draw(t, "build"))
		def.Builds[0].Revision = strconv.Itoa(rapid.IntRange(0, MaxCounter-1).Draw(t, "revision"))

		p := &ProcessDefinition{}
		if err := p.Read(def, "default"); err != nil {
			t.Fatal(err)
		}
		if err := p.ApplyIncrements(nil, jan23); err != nil {
			t.Fatal(err)
		}
		if err := p.RenderPatterns(); err != nil {
			t.Fatal(err)
		}

		s := &store.Store{Definitions: []store.Definition{*def}}
		if err := s.Apply(p.Update()); err != nil {
			t.Fatal(err)
		}
		again := &ProcessDefinition{}
		if err := again.Read(&s.Definitions[0], "default"); err != nil {
			t.Fatal(err)
		}
		if again.Numbers != p.Numbers {
			t.Fatalf("read back %+v, wrote %+v", again.Numbers, p.Numbers)
		}
		if again.Generated != p.Generated {
			t.Fatalf("read back %+v, wrote %+v", again.Generated, p.Generated)
		}
	})
}
