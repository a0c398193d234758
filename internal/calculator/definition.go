package calculator

import (
	"time"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/pattern"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ProcessDefinition is the in-flight version state of one definition and
// build. It is read from the store, incremented, rendered and turned into a
// store.Update; the store itself is never modified.
type ProcessDefinition struct {
	Definition string
	Build      string
	Numbers    semver.VersionNumbers
	Increments semver.IncrementMethods
	Patterns   semver.Patterns
	Generated  semver.GeneratedVersion

	// Hold lists fields that keep their value whatever their increment method.
	Hold []semver.VersionField

	Explanation *Explanation
}

// Read copies the numbers, increment methods and templates of the named build
// of def.
func (p *ProcessDefinition) Read(def *store.Definition, buildName string) error {
	b, err := def.FindBuild(buildName)
	if err != nil {
		return err
	}
	common := def.CommonVersion

	p.Definition = def.Name
	p.Build = b.Name
	p.Numbers = semver.VersionNumbers{
		Major:    common.Major,
		Minor:    common.Minor,
		Patch:    common.Patch,
		Build:    b.Build,
		Revision: b.Revision,
		Suffix:   b.PreReleaseSuffix,
	}
	p.Increments = semver.IncrementMethods{
		Major:    common.MajorIncrementMethod,
		Minor:    common.MinorIncrementMethod,
		Patch:    common.PatchIncrementMethod,
		Build:    b.BuildIncrementMethod,
		Revision: b.RevisionIncrementMethod,
	}
	p.Patterns = semver.Patterns{
		VersionNumber:              common.VersionNumberFormat,
		VersionInformationalNumber: common.VersionInformationalFormat,
		VersionNamePackage:         common.VersionNamePackageFormat,
	}
	p.Generated = b.ActualGeneratedVersion
	return nil
}

// ApplyIncrements resolves Major, Minor, Patch, Build and Revision in that
// order. Each field is resolved from its own current value only. Numbers are
// left untouched when any field fails.
func (p *ProcessDefinition) ApplyIncrements(overrides map[semver.VersionField]string, today time.Time) error {
	next := p.Numbers
	for _, f := range semver.VersionFields {
		method := p.Increments.Get(f)
		if lo.Contains(p.Hold, f) {
			if method != semver.IncrementMethodNone {
				p.Explanation.Addf("%s held at %q, %s increment skipped", f, p.Numbers.Get(f), method)
			}
			method = semver.IncrementMethodNone
		}

		v, err := Resolve(p.Numbers.Get(f), method, overrides[f], today)
		if err != nil {
			return errors.Wrapf(err, "resolving %s of %s/%s", f, p.Definition, p.Build)
		}
		if method != semver.IncrementMethodNone {
			p.Explanation.Addf("%s %q -> %q (%s)", f, p.Numbers.Get(f), v, method)
		}
		next = next.With(f, v)
	}
	p.Numbers = next
	return nil
}

// RenderPatterns renders the three templates from the current numbers.
func (p *ProcessDefinition) RenderPatterns() error {
	values := p.Numbers.Values()

	var gen semver.GeneratedVersion
	for _, r := range []struct {
		name    string
		pattern string
		out     *string
	}{
		{"VersionNumberFormat", p.Patterns.VersionNumber, &gen.VersionNumber},
		{"VersionInformationalFormat", p.Patterns.VersionInformationalNumber, &gen.VersionInformationalNumber},
		{"VersionNamePackageFormat", p.Patterns.VersionNamePackage, &gen.VersionNamePackage},
	} {
		s, err := pattern.Render(r.pattern, values)
		if err != nil {
			return errors.Wrapf(err, "rendering %s of %s", r.name, p.Definition)
		}
		*r.out = s
		p.Explanation.Addf("%s %q -> %q", r.name, r.pattern, s)
	}
	p.Generated = gen
	return nil
}

// Update returns the write-back of p: the common triple to the definition and
// the counters and rendered output to the build located by Read.
func (p *ProcessDefinition) Update() store.Update {
	gen := p.Generated
	return store.Update{
		Commons: []store.CommonChange{{
			Definition: p.Definition,
			Major:      p.Numbers.Major,
			Minor:      p.Numbers.Minor,
			Patch:      p.Numbers.Patch,
		}},
		Builds: []store.BuildChange{{
			Definition: p.Definition,
			Build:      p.Build,
			Counter:    p.Numbers.Build,
			Revision:   p.Numbers.Revision,
			Generated:  &gen,
		}},
	}
}
