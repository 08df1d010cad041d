package version

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// component is one version number as canonical decimal digits: no leading
// zeros, "0" for zero. Any length is allowed.
type component string

func newComponent(digits string) component {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	return component(digits)
}

func uintComponent(n uint64) component {
	return component(strconv.FormatUint(n, 10))
}

// compare orders canonical digit strings numerically.
func (c component) compare(o component) int {
	if len(c) != len(o) {
		if len(c) < len(o) {
			return -1
		}
		return 1
	}
	return strings.Compare(string(c), string(o))
}

// saturated clamps c to the uint64 range.
func (c component) saturated() uint64 {
	n, err := strconv.ParseUint(string(c), 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	return n
}

// decrement returns c-1. c must not be zero.
func (c component) decrement() component {
	n, _ := new(big.Int).SetString(string(c), 10)
	return component(n.Sub(n, big.NewInt(1)).String())
}

// Version is a parsed (major, minor, patch) triple. Components may exceed
// 64 bits. Use Parse or New; the zero value is not a valid version.
type Version struct {
	major, minor, patch component
	original            string
}

// New builds a Version from its components.
func New(major, minor, patch uint64) Version {
	v := Version{major: uintComponent(major), minor: uintComponent(minor), patch: uintComponent(patch)}
	v.original = v.String()
	return v
}

// Major, Minor and Patch return the components as decimal strings.
func (v Version) Major() string { return string(v.major) }
func (v Version) Minor() string { return string(v.minor) }
func (v Version) Patch() string { return string(v.patch) }

// Original returns the string the version was parsed from.
func (v Version) Original() string {
	if v.original == "" {
		return v.String()
	}
	return v.original
}

// String renders the canonical three-component form, e.g. "v1.2.0".
func (v Version) String() string {
	return fmt.Sprintf("v%s.%s.%s", v.major, v.minor, v.patch)
}

// Semver converts v for use with semver constraints. Components beyond
// uint64 saturate, which keeps every comparison against bounds below
// math.MaxUint64 exact.
func (v Version) Semver() *semver.Version {
	return semver.New(v.major.saturated(), v.minor.saturated(), v.patch.saturated(), "", "")
}

// Compare returns -1, 0 or 1 as v is less than, equal to or greater than o.
func (v Version) Compare(o Version) int {
	if c := v.major.compare(o.major); c != 0 {
		return c
	}
	if c := v.minor.compare(o.minor); c != 0 {
		return c
	}
	return v.patch.compare(o.patch)
}

// LessThan reports whether v orders strictly before o.
func (v Version) LessThan(o Version) bool {
	return v.Compare(o) < 0
}

// Tag is an existing published version label.
type Tag struct {
	Name    string
	Version Version
}

func (t Tag) String() string { return t.Name }

// Series is a search scope over tags: one major version, optionally narrowed
// to a single minor.
type Series struct {
	major, minor component
	hasMinor     bool
}

// MajorSeries is the series of every tag with the given major.
func MajorSeries(major uint64) Series {
	return Series{major: uintComponent(major)}
}

// MinorSeries is the series of every tag with the given major and minor.
func MinorSeries(major, minor uint64) Series {
	return Series{major: uintComponent(major), minor: uintComponent(minor), hasMinor: true}
}

// HasMinor reports whether s is narrowed to a single minor version.
func (s Series) HasMinor() bool { return s.hasMinor }

// Contains reports whether v falls inside s.
func (s Series) Contains(v Version) bool {
	if v.major != s.major {
		return false
	}
	return !s.hasMinor || v.minor == s.minor
}

// String renders "vX.Y.x" for a minor series and "vX.x.y" for a major series.
func (s Series) String() string {
	if s.hasMinor {
		return fmt.Sprintf("v%s.%s.x", s.major, s.minor)
	}
	return fmt.Sprintf("v%s.x.y", s.major)
}
