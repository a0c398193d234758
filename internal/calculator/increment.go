// Package calculator applies versioning actions to a store: it resolves
// per-field increments, renders the version templates and produces the
// value-level update the caller writes back.
package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

	"github.com/cockroachdb/errors"
)

// MaxCounter is the largest value a version field may hold. Auto increments
// wrap to zero past it.
const MaxCounter = math.MaxInt32

// Resolve computes the new value of one version field.
//
//   - None keeps current.
//   - Setted returns override as given; only a blank override is rejected.
//   - Julian returns today as YYYYDDD; a zero today means the current date.
//   - Auto returns current+1, "0" for a blank current and "0" past MaxCounter.
func Resolve(current string, method semver.IncrementMethod, override string, today time.Time) (string, error) {
	switch method {
	case semver.IncrementMethodNone:
		return current, nil
	case semver.IncrementMethodSetted:
		override = strings.TrimSpace(override)
		if override == "" {
			return "", errors.Wrap(semver.ErrMissingOverride, "a value must be supplied for a Setted increment method")
		}
		return override, nil
	case semver.IncrementMethodJulian:
		return Julian(today), nil
	case semver.IncrementMethodAuto:
		return autoIncrement(current)
	default:
		return "", errors.Wrapf(semver.ErrUnrecognizedEnumValue, "unknown increment method %d", int(method))
	}
}

// Julian formats a date as the full year followed by the zero-padded day of
// the year, e.g. 2024023 for January 23rd 2024.
func Julian(date time.Time) string {
	if date.IsZero() {
		date = time.Now()
	}
	return fmt.Sprintf("%d%03d", date.Year(), date.YearDay())
}

// NormalizeCounter converts a counter that starts at 1, such as a CI build
// number, into one that starts at 0.
func NormalizeCounter(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "0", nil
	}
	n, err := parseCounter(value)
	if err != nil {
		return "", err
	}
	if n > 0 {
		n--
	}
	return strconv.FormatInt(n, 10), nil
}

func autoIncrement(current string) (string, error) {
	if strings.TrimSpace(current) == "" {
		return "0", nil
	}
	n, err := parseCounter(current)
	if err != nil {
		return "", err
	}
	if n == MaxCounter {
		return "0", nil
	}
	return strconv.FormatInt(n+1, 10), nil
}

// parseCounter parses a version field as a non-negative integer no larger
// than MaxCounter.
func parseCounter(value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, outOfRange(value)
		}
		return 0, errors.Wrapf(semver.ErrInvalidNumber, "the value %q cannot be converted to a valid integer", value)
	}
	if n < 0 || n > MaxCounter {
		return 0, outOfRange(value)
	}
	return n, nil
}

func outOfRange(value string) error {
	return errors.Wrapf(semver.ErrOutOfRange,
		"the value %q is out of the valid range, only integers from 0 to %d are accepted", value, MaxCounter)
}
