package store

import "github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

// Update is a value-level change set produced by a versioning run. Nothing is
// written to the tree until Apply is called.
type Update struct {
	Commons []CommonChange `json:"commons,omitempty"`
	Builds  []BuildChange  `json:"builds,omitempty"`
}

// CommonChange overwrites the common version triple of a definition.
type CommonChange struct {
	Definition string `json:"definition"`
	Major      string `json:"major"`
	Minor      string `json:"minor"`
	Patch      string `json:"patch"`
}

// BuildChange overwrites the counters of a build and, when Generated is set,
// its last rendered output.
type BuildChange struct {
	Definition string                   `json:"definition"`
	Build      string                   `json:"build"`
	Counter    string                   `json:"counter"`
	Revision   string                   `json:"revision"`
	Generated  *semver.GeneratedVersion `json:"generated,omitempty"`
}

// IsEmpty reports whether u changes nothing.
func (u Update) IsEmpty() bool {
	return len(u.Commons) == 0 && len(u.Builds) == 0
}

// Apply writes u into the tree. Every target is resolved before the first
// write, so a failing lookup leaves the store untouched.
func (s *Store) Apply(u Update) error {
	commons := make([]*CommonVersion, len(u.Commons))
	for i, c := range u.Commons {
		def, err := s.FindDefinition(c.Definition)
		if err != nil {
			return err
		}
		commons[i] = &def.CommonVersion
	}

	builds := make([]*Build, len(u.Builds))
	for i, c := range u.Builds {
		def, err := s.FindDefinition(c.Definition)
		if err != nil {
			return err
		}
		b, err := def.FindBuild(c.Build)
		if err != nil {
			return err
		}
		builds[i] = b
	}

	for i, c := range u.Commons {
		commons[i].Major = c.Major
		commons[i].Minor = c.Minor
		commons[i].Patch = c.Patch
	}
	for i, c := range u.Builds {
		builds[i].Build = c.Counter
		builds[i].Revision = c.Revision
		if c.Generated != nil {
			builds[i].ActualGeneratedVersion = *c.Generated
		}
	}
	return nil
}
