// Package pattern renders version templates.
//
// A template mixes literal text with variables written as {NAME} and optional
// segments written as [ ... ]. Variables outside optional segments are
// mandatory. Variables that have no value are removed from the output along
// with one separator ('.' or '-') directly before them:
//
//	{MAJOR}.{MINOR}.{PATCH}[-{PRSUFFIX}]   MAJOR=1 MINOR=2 PATCH=3  -> 1.2.3
//	{MAJOR}.{MINOR}.{PATCH}[.{BUILD}]      ... BUILD=7              -> 1.2.3.7
package pattern

import (
	"regexp"
	"sort"
	"strings"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

var (
	variableRe = regexp.MustCompile(`\{([^{}]+)\}`)
	optionalRe = regexp.MustCompile(`\[([^\[\]]+)\]`)

	bracketStripper = strings.NewReplacer("[", "", "]", "")
)

// template is the parsed form of a pattern string. parts holds the literal
// runs in order with optional segments unwrapped.
type template struct {
	parts     []string
	mandatory []string
	optional  []string
	segments  int
}

func parse(pattern string) template {
	var t template
	last := 0
	for _, loc := range optionalRe.FindAllStringSubmatchIndex(pattern, -1) {
		t.addMandatory(pattern[last:loc[0]])
		t.parts = append(t.parts, pattern[loc[2]:loc[3]])
		t.optional = append(t.optional, names(pattern[loc[2]:loc[3]])...)
		t.segments++
		last = loc[1]
	}
	t.addMandatory(pattern[last:])
	t.mandatory = lo.Uniq(t.mandatory)
	t.optional = lo.Uniq(t.optional)
	return t
}

func (t *template) addMandatory(text string) {
	text = bracketStripper.Replace(text)
	if text == "" {
		return
	}
	t.parts = append(t.parts, text)
	t.mandatory = append(t.mandatory, names(text)...)
}

func names(text string) []string {
	return lo.Map(variableRe.FindAllStringSubmatch(text, -1), func(m []string, _ int) string {
		return m[1]
	})
}

// Variables returns the distinct mandatory and optional variable names of a
// pattern in the order they first appear.
func Variables(pattern string) (mandatory, optional []string) {
	t := parse(pattern)
	return t.mandatory, t.optional
}

// Render substitutes values into pattern.
//
// It fails with semver.ErrMissingValues when values is empty or a mandatory
// variable has no value, and with semver.ErrInvalidPattern when the pattern
// has neither variables nor optional segments.
func Render(pattern string, values map[string]string) (string, error) {
	if len(values) == 0 {
		return "", errors.Wrapf(semver.ErrMissingValues, "no values supplied for pattern %q", pattern)
	}

	t := parse(pattern)

	missing := lo.Filter(t.mandatory, func(name string, _ int) bool {
		_, ok := values[name]
		return !ok
	})
	if len(values) < len(t.mandatory) || len(missing) > 0 {
		supplied := lo.Keys(values)
		sort.Strings(supplied)
		return "", errors.Wrapf(semver.ErrMissingValues,
			"the number of values is less than specified in the pattern or not all values have been provided\n"+
				"Mandatory variables found: %s\nValues provided: %s",
			strings.Join(t.mandatory, ", "), strings.Join(supplied, ", "))
	}

	if len(t.mandatory) == 0 && t.segments == 0 {
		return "", errors.Wrapf(semver.ErrInvalidPattern, "no variable found to replace in pattern %q", pattern)
	}

	out := make([]byte, 0, len(pattern)+16)
	for _, p := range t.parts {
		out = substitute(out, p, values)
	}
	return string(out), nil
}

// substitute appends text to out with every variable replaced. A variable
// without a value, or with an empty one, is dropped together with the
// separator written just before it.
func substitute(out []byte, text string, values map[string]string) []byte {
	last := 0
	for _, loc := range variableRe.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, text[last:loc[0]]...)
		last = loc[1]
		if v := values[text[loc[2]:loc[3]]]; v != "" {
			out = append(out, v...)
			continue
		}
		if n := len(out); n > 0 && (out[n-1] == '.' || out[n-1] == '-') {
			out = out[:n-1]
		}
	}
	return append(out, text[last:]...)
}
