package calculator

import (
	"strings"
	"time"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/semver"
	"github.com/MyCarrier-DevOps/go-semvermanager/internal/store"

	bsemver "github.com/blang/semver/v4"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultName is used for the definition and build when none is given.
const DefaultName = "default"

// DefaultReBuildHold is the set of fields a ReBuild keeps unchanged: the build
// counter is not advanced so the same build number is rendered again.
var DefaultReBuildHold = []semver.VersionField{semver.VersionFieldBuild}

// Options selects the action of a run and carries its parameters.
type Options struct {
	// Definition and Build name the target. Both default to "default".
	Definition string
	Build      string

	Action semver.VersioningAction

	// NewMajor, NewMinor and NewPatch are the SetNewVersion values. An empty
	// value keeps the current one.
	NewMajor string
	NewMinor string
	NewPatch string

	// DestinationDefinition is required for Promote. DestinationBuild
	// defaults to Build.
	DestinationDefinition string
	DestinationBuild      string

	// Overrides supplies the values of fields whose method is Setted.
	Overrides map[semver.VersionField]string

	// NormalizeCounters treats Build and Revision overrides as counters that
	// start at 1 and shifts them to start at 0.
	NormalizeCounters bool

	// ReBuildHold overrides DefaultReBuildHold.
	ReBuildHold []semver.VersionField

	// RejectDowngrade fails a Promote that would lower the destination
	// version instead of only logging a warning.
	RejectDowngrade bool

	// Today is the date used by Julian increments. Zero means now.
	Today time.Time

	Explain bool
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Definition) == "" {
		o.Definition = DefaultName
	}
	if strings.TrimSpace(o.Build) == "" {
		o.Build = DefaultName
	}
	if strings.TrimSpace(o.DestinationBuild) == "" {
		o.DestinationBuild = o.Build
	}
	if o.ReBuildHold == nil {
		o.ReBuildHold = DefaultReBuildHold
	}
	return o
}

// Result is the outcome of a run. Update must be applied to the store by the
// caller; the engine never writes to it.
type Result struct {
	Action     semver.VersioningAction
	Definition string
	Build      string
	Numbers    semver.VersionNumbers
	// Generated is set by Patch and ReBuild.
	Generated   *semver.GeneratedVersion
	Update      store.Update
	Explanation *Explanation // nil when explain is false
}

// Engine runs versioning actions.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run executes exactly one action against s. The store is only read; on
// success the returned Result carries the update to apply.
func (e *Engine) Run(s *store.Store, opts Options) (Result, error) {
	opts = opts.withDefaults()

	var exp *Explanation
	if opts.Explain {
		exp = &Explanation{}
	}
	exp.Addf("action %s on %s/%s", opts.Action, opts.Definition, opts.Build)

	e.logger.Debug("running versioning action",
		zap.Stringer("action", opts.Action),
		zap.String("definition", opts.Definition),
		zap.String("build", opts.Build),
	)

	var (
		res Result
		err error
	)
	switch opts.Action {
	case semver.ActionPatch, semver.ActionReBuild:
		res, err = e.patch(s, opts, exp)
	case semver.ActionSetNewVersion:
		res, err = e.setNewVersion(s, opts, exp)
	case semver.ActionPromote:
		res, err = e.promote(s, opts, exp)
	default:
		err = errors.Wrapf(semver.ErrUnrecognizedEnumValue, "unknown versioning action %d", int(opts.Action))
	}
	if err != nil {
		return Result{}, err
	}

	res.Action = opts.Action
	res.Explanation = exp
	e.logger.Info("versioning action computed",
		zap.Stringer("action", res.Action),
		zap.String("definition", res.Definition),
		zap.String("build", res.Build),
		zap.String("version", res.Numbers.MajorMinorPatch()),
	)
	return res, nil
}

// patch runs the Patch and ReBuild pipeline: read, increment, render, update.
func (e *Engine) patch(s *store.Store, opts Options, exp *Explanation) (Result, error) {
	def, err := s.FindDefinition(opts.Definition)
	if err != nil {
		return Result{}, err
	}

	overrides, err := e.overrides(opts)
	if err != nil {
		return Result{}, err
	}

	p := &ProcessDefinition{Explanation: exp}
	if opts.Action == semver.ActionReBuild {
		p.Hold = opts.ReBuildHold
	}
	if err := p.Read(def, opts.Build); err != nil {
		return Result{}, err
	}
	if err := p.ApplyIncrements(overrides, opts.Today); err != nil {
		return Result{}, err
	}
	if err := p.RenderPatterns(); err != nil {
		return Result{}, err
	}

	gen := p.Generated
	return Result{
		Definition: p.Definition,
		Build:      p.Build,
		Numbers:    p.Numbers,
		Generated:  &gen,
		Update:     p.Update(),
	}, nil
}

// overrides returns the Setted values, normalizing the counter fields when
// asked to.
func (e *Engine) overrides(opts Options) (map[semver.VersionField]string, error) {
	out := make(map[semver.VersionField]string, len(opts.Overrides))
	for f, v := range opts.Overrides {
		out[f] = v
	}
	if !opts.NormalizeCounters {
		return out, nil
	}
	for _, f := range []semver.VersionField{semver.VersionFieldBuild, semver.VersionFieldRevision} {
		v, ok := out[f]
		if !ok {
			continue
		}
		n, err := NormalizeCounter(v)
		if err != nil {
			return nil, errors.Wrapf(err, "normalizing %s override", f)
		}
		e.logger.Debug("normalized counter override", zap.Stringer("field", f), zap.String("from", v), zap.String("to", n))
		out[f] = n
	}
	return out, nil
}

// setNewVersion overwrites the common triple and resets the counters of every
// build of the definition.
func (e *Engine) setNewVersion(s *store.Store, opts Options, exp *Explanation) (Result, error) {
	def, err := s.FindDefinition(opts.Definition)
	if err != nil {
		return Result{}, err
	}

	common := def.CommonVersion
	numbers := semver.VersionNumbers{Build: "0", Revision: "0"}
	for _, v := range []struct {
		field   semver.VersionField
		value   string
		current string
	}{
		{semver.VersionFieldMajor, opts.NewMajor, common.Major},
		{semver.VersionFieldMinor, opts.NewMinor, common.Minor},
		{semver.VersionFieldPatch, opts.NewPatch, common.Patch},
	} {
		value := strings.TrimSpace(v.value)
		if value == "" {
			exp.Addf("%s kept at %q", v.field, v.current)
			numbers = numbers.With(v.field, v.current)
			continue
		}
		if _, err := parseCounter(value); err != nil {
			return Result{}, errors.Wrapf(err, "new %s", v.field)
		}
		exp.Addf("%s set %q -> %q", v.field, v.current, value)
		numbers = numbers.With(v.field, value)
	}

	update := store.Update{Commons: []store.CommonChange{{
		Definition: def.Name,
		Major:      numbers.Major,
		Minor:      numbers.Minor,
		Patch:      numbers.Patch,
	}}}
	for _, b := range def.Builds {
		update.Builds = append(update.Builds, store.BuildChange{
			Definition: def.Name,
			Build:      b.Name,
			Counter:    "0",
			Revision:   "0",
		})
	}
	exp.Addf("reset build and revision of %d builds: %s", len(def.Builds), strings.Join(def.BuildNames(), ", "))

	res := Result{Definition: def.Name, Numbers: numbers, Update: update}
	if b, err := def.FindBuild(opts.Build); err == nil {
		res.Build = b.Name
		res.Numbers.Suffix = b.PreReleaseSuffix
	}
	return res, nil
}

// promote copies the common triple of the source definition to the
// destination and resets the destination build counters.
func (e *Engine) promote(s *store.Store, opts Options, exp *Explanation) (Result, error) {
	if strings.TrimSpace(opts.DestinationDefinition) == "" {
		return Result{}, errors.Wrap(semver.ErrInvalidOptions, "a destination definition is required to promote")
	}
	if strings.EqualFold(opts.Definition, opts.DestinationDefinition) &&
		strings.EqualFold(opts.Build, opts.DestinationBuild) {
		return Result{}, errors.Wrapf(semver.ErrSamePromotionTarget,
			"cannot promote %s/%s onto itself", opts.Definition, opts.Build)
	}

	src, err := s.FindDefinition(opts.Definition)
	if err != nil {
		return Result{}, err
	}
	dst, err := s.FindDefinition(opts.DestinationDefinition)
	if err != nil {
		return Result{}, err
	}
	dstBuild, err := dst.FindBuild(opts.DestinationBuild)
	if err != nil {
		return Result{}, err
	}

	from, err := commonVersion(src.CommonVersion)
	if err != nil {
		return Result{}, errors.Wrapf(err, "source definition %s", src.Name)
	}
	if to, err := commonVersion(dst.CommonVersion); err != nil {
		e.logger.Debug("destination version is not numeric, skipping downgrade check",
			zap.String("definition", dst.Name), zap.Error(err))
	} else if to.GT(from) {
		if opts.RejectDowngrade {
			return Result{}, errors.Wrapf(semver.ErrPromotionDowngrade,
				"promoting %s would lower %s from %s to %s", src.Name, dst.Name, to, from)
		}
		e.logger.Warn("promotion lowers the destination version",
			zap.String("source", src.Name),
			zap.String("destination", dst.Name),
			zap.Stringer("from", to),
			zap.Stringer("to", from),
		)
		exp.Addf("destination %s lowered from %s to %s", dst.Name, to, from)
	}

	numbers := semver.VersionNumbers{
		Major:    src.CommonVersion.Major,
		Minor:    src.CommonVersion.Minor,
		Patch:    src.CommonVersion.Patch,
		Build:    "0",
		Revision: "0",
		Suffix:   dstBuild.PreReleaseSuffix,
	}
	exp.Addf("promote %s/%s %s -> %s/%s", src.Name, opts.Build, numbers.MajorMinorPatch(), dst.Name, dstBuild.Name)
	exp.Addf("reset build and revision of %s/%s", dst.Name, dstBuild.Name)

	return Result{
		Definition: dst.Name,
		Build:      dstBuild.Name,
		Numbers:    numbers,
		Update: store.Update{
			Commons: []store.CommonChange{{
				Definition: dst.Name,
				Major:      numbers.Major,
				Minor:      numbers.Minor,
				Patch:      numbers.Patch,
			}},
			Builds: []store.BuildChange{{
				Definition: dst.Name,
				Build:      dstBuild.Name,
				Counter:    "0",
				Revision:   "0",
			}},
		},
	}, nil
}

// commonVersion parses the common triple of a definition for comparison.
func commonVersion(c store.CommonVersion) (bsemver.Version, error) {
	var parts [3]uint64
	for i, v := range []string{c.Major, c.Minor, c.Patch} {
		n, err := parseCounter(v)
		if err != nil {
			return bsemver.Version{}, err
		}
		parts[i] = uint64(n)
	}
	v := bsemver.Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}
	if err := v.Validate(); err != nil {
		return bsemver.Version{}, errors.Wrapf(semver.ErrInvalidNumber, "version %s: %v", v, err)
	}
	return v, nil
}
