package config

import "github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func actionPtr(a semver.VersioningAction) *semver.VersioningAction {
	return &a
}

func fieldsPtr(fs []semver.VersionField) *[]semver.VersionField {
	return &fs
}
