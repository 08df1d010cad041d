package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Resolution is the outcome of running a version through one of the ladders.
type Resolution struct {
	Input  string
	Result string
	Rule   string
	// Series is set when the result came from a tag search.
	Series *Series
}

type rung struct {
	name string
	when *semver.Constraints
}

func (r rung) matches(v Version) bool {
	return r.when.Check(v.Semver())
}

func newRung(name, constraint string) rung {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(fmt.Sprintf("rung %s: invalid constraint %q: %v", name, constraint, err))
	}
	return rung{name: name, when: c}
}

type upgradeRung struct {
	rung
	output func(Version) string
}

func fixedOutput(s string) func(Version) string {
	return func(Version) string { return s }
}

var upgradeLadder = []upgradeRung{
	{newRung("baseline", belowFirstPatch), fixedOutput(BaselineTag)},
	{newRung("first-patch", firstPatchBand), fixedOutput(FirstPatchTag)},
	{newRung("fifth-patch", fifthPatchBand), fixedOutput(FifthPatchTag)},
	{newRung("minor-series", minorSeriesBand), func(v Version) string {
		return fmt.Sprintf("v%s.%s", v.major, v.minor)
	}},
	{newRung("major-series", majorSeriesRange), func(v Version) string {
		return fmt.Sprintf("v%s", v.major)
	}},
}

// ResolveUpgrade maps v to the version label an upgrade starts from:
//
//	v < 1.1.1          v1.0.20
//	1.1.1 <= v < 1.1.5 v1.1.1
//	1.1.5 <= v < 1.2.0 v1.1.5
//	1.2.0 <= v < 2.0.0 vMAJOR.MINOR
//	v >= 2.0.0         vMAJOR
func ResolveUpgrade(v Version) Resolution {
	for _, r := range upgradeLadder {
		if r.matches(v) {
			return Resolution{
				Input:  v.Original(),
				Result: r.output(v),
				Rule:   r.name,
			}
		}
	}
	panic(fmt.Sprintf("no upgrade rung matches %s", v))
}

type previousRung struct {
	rung
	fixed  string
	derive func(Version) (Series, error)
}

var previousLadder = []previousRung{
	{rung: newRung("baseline", belowFirstPatch), fixed: BaselineTag},
	{rung: newRung("first-patch", firstPatchBand), fixed: FirstPatchTag},
	{rung: newRung("fifth-patch", fifthPatchBand), derive: func(Version) (Series, error) {
		return MinorSeries(1, 1), nil
	}},
	{rung: newRung("previous-minor", minorSeriesBand), derive: func(v Version) (Series, error) {
		if v.minor == "0" {
			return Series{}, negativeMinor(v.Original())
		}
		return Series{major: "1", minor: v.minor.decrement(), hasMinor: true}, nil
	}},
	{rung: newRung("previous-major", majorSeriesRange), derive: func(v Version) (Series, error) {
		if v.major.compare("2") < 0 {
			return Series{}, majorBelowOne(v.Original())
		}
		return Series{major: v.major.decrement()}, nil
	}},
}

// PreviousTarget is the rung a version lands on in the previous-tag ladder.
// Either Fixed is set, or the target is a series that must be searched.
type PreviousTarget struct {
	Rule  string
	Fixed string

	input  Version
	derive func(Version) (Series, error)
}

// NeedsSearch reports whether the target must be looked up among tags.
func (t PreviousTarget) NeedsSearch() bool {
	return t.derive != nil
}

// Series derives the search scope. It fails with a *DerivationError when the
// derived minor would be negative or the derived major below 1.
func (t PreviousTarget) Series() (Series, error) {
	if t.derive == nil {
		return Series{}, fmt.Errorf("rule %s does not search tags", t.Rule)
	}
	return t.derive(t.input)
}

// ClassifyPrevious places v on the previous-tag ladder:
//
//	v < 1.1.1          v1.0.20, no search
//	1.1.1 <= v < 1.1.5 v1.1.1, no search
//	1.1.5 <= v < 1.2.0 latest of v1.1.x
//	1.2.0 <= v < 2.0.0 latest of v1.(MINOR-1).x
//	v >= 2.0.0         latest of v(MAJOR-1).x.y
func ClassifyPrevious(v Version) PreviousTarget {
	for _, r := range previousLadder {
		if r.matches(v) {
			return PreviousTarget{
				Rule:   r.name,
				Fixed:  r.fixed,
				input:  v,
				derive: r.derive,
			}
		}
	}
	panic(fmt.Sprintf("no previous-tag rung matches %s", v))
}
