// Package output renders a versioning result as variables, JSON or an
// explanation trace.
package output

import (
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/calculator"
)

// GetVariables flattens a result into the named output variables. The
// rendered version strings are only present for actions that render
// templates.
func GetVariables(res calculator.Result) map[string]string {
	vars := map[string]string{
		"Action":           res.Action.String(),
		"Definition":       res.Definition,
		"BuildName":        res.Build,
		"Major":            res.Numbers.Major,
		"Minor":            res.Numbers.Minor,
		"Patch":            res.Numbers.Patch,
		"Build":            res.Numbers.Build,
		"Revision":         res.Numbers.Revision,
		"PreReleaseSuffix": res.Numbers.Suffix,
		"MajorMinorPatch":  res.Numbers.MajorMinorPatch(),
	}
	if res.Generated != nil {
		vars["VersionNumber"] = res.Generated.VersionNumber
		vars["VersionInformationalNumber"] = res.Generated.VersionInformationalNumber
		vars["VersionNamePackage"] = res.Generated.VersionNamePackage
	}
	return vars
}
