// Package semver provides the version fields, increment methods, versioning
// actions and error kinds shared by the store, the calculator and the CLI.
package semver

// VersionField identifies one numeric field of a build version.
type VersionField int

const (
	VersionFieldMajor VersionField = iota
	VersionFieldMinor
	VersionFieldPatch
	VersionFieldBuild
	VersionFieldRevision
)

// VersionFields lists every field in resolution order.
var VersionFields = []VersionField{
	VersionFieldMajor,
	VersionFieldMinor,
	VersionFieldPatch,
	VersionFieldBuild,
	VersionFieldRevision,
}

func (f VersionField) String() string {
	switch f {
	case VersionFieldMajor:
		return "Major"
	case VersionFieldMinor:
		return "Minor"
	case VersionFieldPatch:
		return "Patch"
	case VersionFieldBuild:
		return "Build"
	case VersionFieldRevision:
		return "Revision"
	default:
		return "Unknown"
	}
}

// IncrementMethod is the per-field rule applied on Patch and ReBuild.
type IncrementMethod int

const (
	// IncrementMethodNone leaves the value unchanged.
	IncrementMethodNone IncrementMethod = iota
	// IncrementMethodSetted replaces the value with one supplied by the caller.
	IncrementMethodSetted
	// IncrementMethodJulian replaces the value with the date as YYYYDDD.
	IncrementMethodJulian
	// IncrementMethodAuto adds one, wrapping to zero at the counter limit.
	IncrementMethodAuto
)

func (m IncrementMethod) String() string {
	switch m {
	case IncrementMethodNone:
		return "None"
	case IncrementMethodSetted:
		return "Setted"
	case IncrementMethodJulian:
		return "Julian"
	case IncrementMethodAuto:
		return "Auto"
	default:
		return "Unknown"
	}
}

// VersioningAction selects what a single run does to the store.
type VersioningAction int

const (
	ActionPatch VersioningAction = iota
	ActionSetNewVersion
	ActionPromote
	ActionReBuild
)

func (a VersioningAction) String() string {
	switch a {
	case ActionPatch:
		return "Patch"
	case ActionSetNewVersion:
		return "SetNewVersion"
	case ActionPromote:
		return "Promote"
	case ActionReBuild:
		return "ReBuild"
	default:
		return "Unknown"
	}
}

// Set implements pflag.Value so the action can be bound directly to a flag.
func (a *VersioningAction) Set(s string) error {
	parsed, err := ParseVersioningAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *VersioningAction) Type() string {
	return "action"
}
