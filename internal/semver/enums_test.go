package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionField_String(t *testing.T) {
	tests := []struct {
		field VersionField
		want  string
	}{
		{VersionFieldMajor, "Major"},
		{VersionFieldMinor, "Minor"},
		{VersionFieldPatch, "Patch"},
		{VersionFieldBuild, "Build"},
		{VersionFieldRevision, "Revision"},
		{VersionField(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.field.String())
		})
	}
}

func TestVersionFields_ResolutionOrder(t *testing.T) {
	require.Equal(t, []VersionField{
		VersionFieldMajor,
		VersionFieldMinor,
		VersionFieldPatch,
		VersionFieldBuild,
		VersionFieldRevision,
	}, VersionFields)
}

func TestIncrementMethod_String(t *testing.T) {
	tests := []struct {
		method IncrementMethod
		want   string
	}{
		{IncrementMethodNone, "None"},
		{IncrementMethodSetted, "Setted"},
		{IncrementMethodJulian, "Julian"},
		{IncrementMethodAuto, "Auto"},
		{IncrementMethod(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.method.String())
		})
	}
}

func TestVersioningAction_String(t *testing.T) {
	tests := []struct {
		action VersioningAction
		want   string
	}{
		{ActionPatch, "Patch"},
		{ActionSetNewVersion, "SetNewVersion"},
		{ActionPromote, "Promote"},
		{ActionReBuild, "ReBuild"},
		{VersioningAction(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.action.String())
		})
	}
}

func TestVersioningAction_FlagValue(t *testing.T) {
	var a VersioningAction
	require.NoError(t, a.Set("promote"))
	require.Equal(t, ActionPromote, a)
	require.Equal(t, "action", a.Type())

	err := a.Set("deploy")
	require.ErrorIs(t, err, ErrUnrecognizedEnumValue)
	require.Equal(t, ActionPromote, a, "failed Set must not change the value")
}
