package calculator

import (
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/pattern"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Issue is one problem found in a store. Build is empty for problems of the
// definition itself.
type Issue struct {
	Definition string
	Build      string
	Err        error
}

func (i Issue) String() string {
	if i.Build == "" {
		return fmt.Sprintf("%s: %v", i.Definition, i.Err)
	}
	return fmt.Sprintf("%s/%s: %v", i.Definition, i.Build, i.Err)
}

// knownVariables are the names a template may reference.
var knownVariables = []string{
	semver.VariableMajor,
	semver.VariableMinor,
	semver.VariablePatch,
	semver.VariableBuild,
	semver.VariableRevision,
	semver.VariableSuffix,
}

// ValidateStore checks every definition and build of s without running any
// action: names must be unique, Major/Minor/Patch and Auto counters must be
// integers in range and every template must render with the current numbers.
func ValidateStore(s *store.Store) []Issue {
	var issues []Issue

	for _, name := range duplicates(s.DefinitionNames()) {
		issues = append(issues, Issue{
			Definition: name,
			Err:        errors.Newf("definition name %q is used more than once", name),
		})
	}

	for i := range s.Definitions {
		def := &s.Definitions[i]
		common := def.CommonVersion

		for _, name := range duplicates(def.BuildNames()) {
			issues = append(issues, Issue{
				Definition: def.Name,
				Err:        errors.Newf("build name %q is used more than once", name),
			})
		}

		for _, c := range []struct {
			field semver.VersionField
			value string
		}{
			{semver.VersionFieldMajor, common.Major},
			{semver.VersionFieldMinor, common.Minor},
			{semver.VersionFieldPatch, common.Patch},
		} {
			if _, err := parseCounter(c.value); err != nil {
				issues = append(issues, Issue{Definition: def.Name, Err: errors.Wrapf(err, "%s", c.field)})
			}
		}

		for _, p := range []string{
			common.VersionNumberFormat,
			common.VersionInformationalFormat,
			common.VersionNamePackageFormat,
		} {
			mandatory, optional := pattern.Variables(p)
			unknown := lo.Filter(append(mandatory, optional...), func(v string, _ int) bool {
				return !lo.Contains(knownVariables, v)
			})
			if len(unknown) > 0 {
				issues = append(issues, Issue{
					Definition: def.Name,
					Err: errors.Wrapf(semver.ErrInvalidPattern, "pattern %q references unknown variables: %s",
						p, strings.Join(unknown, ", ")),
				})
			}
		}

		for j := range def.Builds {
			b := &def.Builds[j]
			for _, c := range []struct {
				field  semver.VersionField
				value  string
				method semver.IncrementMethod
			}{
				{semver.VersionFieldBuild, b.Build, b.BuildIncrementMethod},
				{semver.VersionFieldRevision, b.Revision, b.RevisionIncrementMethod},
			} {
				// Only Auto does arithmetic on the stored counter; blank starts at zero.
				if c.method != semver.IncrementMethodAuto || strings.TrimSpace(c.value) == "" {
					continue
				}
				if _, err := parseCounter(c.value); err != nil {
					issues = append(issues, Issue{Definition: def.Name, Build: b.Name, Err: errors.Wrapf(err, "%s", c.field)})
				}
			}

			p := &ProcessDefinition{}
			if err := p.Read(def, b.Name); err != nil {
				issues = append(issues, Issue{Definition: def.Name, Build: b.Name, Err: err})
				continue
			}
			if err := p.RenderPatterns(); err != nil {
				issues = append(issues, Issue{Definition: def.Name, Build: b.Name, Err: err})
			}
		}
	}
	return issues
}

// duplicates returns the names that occur more than once, compared
// case-insensitively, in order of first occurrence.
func duplicates(names []string) []string {
	seen := make(map[string]int, len(names))
	var out []string
	for _, n := range names {
		key := strings.ToLower(n)
		seen[key]++
		if seen[key] == 2 {
			out = append(out, n)
		}
	}
	return out
}
