package semver

import "github.com/cockroachdb/errors"

// Error kinds. Callers wrap them with the offending value and test for them
// with errors.Is.
var (
	// Template rendering.
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrMissingValues  = errors.New("missing pattern values")

	// Increment resolution.
	ErrMissingOverride = errors.New("missing override value")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrOutOfRange      = errors.New("number out of range")

	// Lookup and validation.
	ErrDefinitionNotFound    = errors.New("definition not found")
	ErrBuildNotFound         = errors.New("build not found")
	ErrSamePromotionTarget   = errors.New("same promotion target")
	ErrPromotionDowngrade    = errors.New("promotion downgrade")
	ErrUnrecognizedEnumValue = errors.New("unrecognized enum value")
	ErrInvalidOptions        = errors.New("invalid options")
)
