package semver

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseVersionField parses a field name case-insensitively.
func ParseVersionField(s string) (VersionField, error) {
	for _, f := range VersionFields {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}
	return VersionFieldMajor, errors.Wrapf(ErrUnrecognizedEnumValue, "unknown version field %q", s)
}

// ParseIncrementMethod parses an increment method name case-insensitively.
func ParseIncrementMethod(s string) (IncrementMethod, error) {
	for _, m := range []IncrementMethod{
		IncrementMethodNone,
		IncrementMethodSetted,
		IncrementMethodJulian,
		IncrementMethodAuto,
	} {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return IncrementMethodNone, errors.Wrapf(ErrUnrecognizedEnumValue, "unknown increment method %q", s)
}

// ParseVersioningAction parses an action name case-insensitively. An empty
// string selects the default action, Patch.
func ParseVersioningAction(s string) (VersioningAction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ActionPatch, nil
	}
	for _, a := range []VersioningAction{
		ActionPatch,
		ActionSetNewVersion,
		ActionPromote,
		ActionReBuild,
	} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return ActionPatch, errors.Wrapf(ErrUnrecognizedEnumValue, "unknown versioning action %q", s)
}
