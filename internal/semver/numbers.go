package semver

// Pattern variable names available to version templates.
const (
	VariableMajor    = "MAJOR"
	VariableMinor    = "MINOR"
	VariablePatch    = "PATCH"
	VariableBuild    = "BUILD"
	VariableRevision = "REVISION"
	VariableSuffix   = "PRSUFFIX"
)

// VersionNumbers is the working value set of one definition and build.
// All fields hold decimal strings except Suffix, which is free-form.
type VersionNumbers struct {
	Major    string `json:"major"`
	Minor    string `json:"minor"`
	Patch    string `json:"patch"`
	Build    string `json:"build"`
	Revision string `json:"revision"`
	Suffix   string `json:"suffix"`
}

// Get returns the value of a numeric field.
func (n VersionNumbers) Get(f VersionField) string {
	switch f {
	case VersionFieldMajor:
		return n.Major
	case VersionFieldMinor:
		return n.Minor
	case VersionFieldPatch:
		return n.Patch
	case VersionFieldBuild:
		return n.Build
	case VersionFieldRevision:
		return n.Revision
	default:
		return ""
	}
}

// With returns a copy of n with field f set to v.
func (n VersionNumbers) With(f VersionField, v string) VersionNumbers {
	switch f {
	case VersionFieldMajor:
		n.Major = v
	case VersionFieldMinor:
		n.Minor = v
	case VersionFieldPatch:
		n.Patch = v
	case VersionFieldBuild:
		n.Build = v
	case VersionFieldRevision:
		n.Revision = v
	}
	return n
}

// Values returns the six-entry variable map used to render templates.
func (n VersionNumbers) Values() map[string]string {
	return map[string]string{
		VariableMajor:    n.Major,
		VariableMinor:    n.Minor,
		VariablePatch:    n.Patch,
		VariableBuild:    n.Build,
		VariableRevision: n.Revision,
		VariableSuffix:   n.Suffix,
	}
}

// MajorMinorPatch returns the common triple joined with dots.
func (n VersionNumbers) MajorMinorPatch() string {
	return n.Major + "." + n.Minor + "." + n.Patch
}

// IncrementMethods holds the increment rule of every numeric field.
type IncrementMethods struct {
	Major    IncrementMethod
	Minor    IncrementMethod
	Patch    IncrementMethod
	Build    IncrementMethod
	Revision IncrementMethod
}

// Get returns the method configured for field f.
func (m IncrementMethods) Get(f VersionField) IncrementMethod {
	switch f {
	case VersionFieldMajor:
		return m.Major
	case VersionFieldMinor:
		return m.Minor
	case VersionFieldPatch:
		return m.Patch
	case VersionFieldBuild:
		return m.Build
	case VersionFieldRevision:
		return m.Revision
	default:
		return IncrementMethodNone
	}
}

// Patterns holds the three templates of a definition.
type Patterns struct {
	VersionNumber              string
	VersionInformationalNumber string
	VersionNamePackage         string
}

// GeneratedVersion holds the last rendered output of a build.
type GeneratedVersion struct {
	VersionNumber              string `json:"versionNumber" yaml:"version-number" xml:"VersionNumber"`
	VersionInformationalNumber string `json:"versionInformationalNumber" yaml:"version-informational-number" xml:"VersionInformationalNumber"`
	VersionNamePackage         string `json:"versionNamePackage" yaml:"version-name-package" xml:"VersionNamePackage"`
}
