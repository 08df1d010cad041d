package version

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned for strings that are not vX, vX.Y or vX.Y.Z.
	ErrInvalidFormat = errors.New("invalid version format")
	// ErrNoValidTags is returned when the tag source yields no parseable tags.
	ErrNoValidTags = errors.New("no valid version tags found")
)

// SourceError reports a failure of the tag source itself.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("listing tags: %v", e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// SeriesNotFoundError reports that no tag belongs to the target series.
type SeriesNotFoundError struct {
	Series Series
}

func (e *SeriesNotFoundError) Error() string {
	return fmt.Sprintf("no tag found for %s", e.Series)
}

// DerivationKind tells which guard rejected a series derivation.
type DerivationKind int

const (
	// NegativeMinor: the previous minor would be below zero.
	NegativeMinor DerivationKind = iota + 1
	// MajorBelowOne: the previous major would be below one.
	MajorBelowOne
)

// DerivationError reports a target series that cannot be derived from the
// input version.
type DerivationError struct {
	Kind  DerivationKind
	Input string
}

func (e *DerivationError) Error() string {
	switch e.Kind {
	case NegativeMinor:
		return fmt.Sprintf("invalid minor version derived from %s", e.Input)
	case MajorBelowOne:
		return fmt.Sprintf("target major derived from %s is below 1", e.Input)
	}
	return fmt.Sprintf("cannot derive a series from %s", e.Input)
}

func negativeMinor(input string) *DerivationError {
	return &DerivationError{Kind: NegativeMinor, Input: input}
}

func majorBelowOne(input string) *DerivationError {
	return &DerivationError{Kind: MajorBelowOne, Input: input}
}
