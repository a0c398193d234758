// Package store holds the definition tree that versions are computed from and
// persists it as XML or YAML.
package store

import (
	"encoding/xml"
	"strings"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Store is the root of a versioning control file.
type Store struct {
	XMLName     xml.Name     `xml:"VersioningControl" yaml:"-"`
	Definitions []Definition `xml:"Definitions>Definition" yaml:"definitions"`
}

// Definition is a named unit with one common version and several builds.
type Definition struct {
	Name          string        `xml:"type,attr" yaml:"name"`
	CommonVersion CommonVersion `xml:"CommonVersion" yaml:"common-version"`
	Builds        []Build       `xml:"Build" yaml:"builds"`
}

// CommonVersion is the major.minor.patch block shared by all builds of a
// definition, with its increment methods and output templates.
type CommonVersion struct {
	Major                      string                 `xml:"Major" yaml:"major"`
	Minor                      string                 `xml:"Minor" yaml:"minor"`
	Patch                      string                 `xml:"Patch" yaml:"patch"`
	MajorIncrementMethod       semver.IncrementMethod `xml:"MajorIncrementMethod" yaml:"major-increment-method"`
	MinorIncrementMethod       semver.IncrementMethod `xml:"MinorIncrementMethod" yaml:"minor-increment-method"`
	PatchIncrementMethod       semver.IncrementMethod `xml:"PatchIncrementMethod" yaml:"patch-increment-method"`
	VersionNumberFormat        string                 `xml:"VersionNumberFormat" yaml:"version-number-format"`
	VersionInformationalFormat string                 `xml:"VersionInformationalFormat" yaml:"version-informational-format"`
	VersionNamePackageFormat   string                 `xml:"VersionNamePackageFormat" yaml:"version-name-package-format"`
}

// Build is one build line of a definition.
type Build struct {
	Name                    string                  `xml:"name,attr" yaml:"name"`
	Build                   string                  `xml:"Build" yaml:"build"`
	Revision                string                  `xml:"Revision" yaml:"revision"`
	PreReleaseSuffix        string                  `xml:"PreReleaseSuffix" yaml:"pre-release-suffix"`
	BuildIncrementMethod    semver.IncrementMethod  `xml:"BuildIncrementMethod" yaml:"build-increment-method"`
	RevisionIncrementMethod semver.IncrementMethod  `xml:"RevisionIncrementMethod" yaml:"revision-increment-method"`
	ActualGeneratedVersion  semver.GeneratedVersion `xml:"ActualGeneratedVersion" yaml:"actual-generated-version"`
}

// FindDefinition returns the only definition whose name matches name
// case-insensitively.
func (s *Store) FindDefinition(name string) (*Definition, error) {
	idx := matching(len(s.Definitions), func(i int) string { return s.Definitions[i].Name }, name)
	switch len(idx) {
	case 0:
		return nil, errors.Wrapf(semver.ErrDefinitionNotFound, "definition %q not found", name)
	case 1:
		return &s.Definitions[idx[0]], nil
	default:
		return nil, errors.Wrapf(semver.ErrDefinitionNotFound, "definition %q is ambiguous: %d definitions match", name, len(idx))
	}
}

// FindBuild returns the only build of d whose name matches name
// case-insensitively.
func (d *Definition) FindBuild(name string) (*Build, error) {
	idx := matching(len(d.Builds), func(i int) string { return d.Builds[i].Name }, name)
	switch len(idx) {
	case 0:
		return nil, errors.Wrapf(semver.ErrBuildNotFound, "build %q not found in definition %q", name, d.Name)
	case 1:
		return &d.Builds[idx[0]], nil
	default:
		return nil, errors.Wrapf(semver.ErrBuildNotFound, "build %q is ambiguous in definition %q: %d builds match", name, d.Name, len(idx))
	}
}

// DefinitionNames returns the names of all definitions in file order.
func (s *Store) DefinitionNames() []string {
	return lo.Map(s.Definitions, func(d Definition, _ int) string { return d.Name })
}

// BuildNames returns the names of all builds of d in file order.
func (d *Definition) BuildNames() []string {
	return lo.Map(d.Builds, func(b Build, _ int) string { return b.Name })
}

func matching(n int, nameAt func(int) string, name string) []int {
	var idx []int
	for i := 0; i < n; i++ {
		if strings.EqualFold(nameAt(i), name) {
			idx = append(idx, i)
		}
	}
	return idx
}
