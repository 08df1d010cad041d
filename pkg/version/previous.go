package version

import (
	"context"
	"log/slog"
)

// TagLister provides the raw names of existing tags.
type TagLister interface {
	ListTags(ctx context.Context) ([]string, error)
}

// ResolvePrevious finds the tag an upgrade to v should start from. Fixed
// rungs return without consulting tags. Otherwise tags are listed once,
// unparseable names are dropped, and the latest tag of the derived series is
// returned by its original name.
func ResolvePrevious(ctx context.Context, v Version, tags TagLister) (Resolution, error) {
	target := ClassifyPrevious(v)
	slog.Debug("classified version", "input", v.Original(), "rule", target.Rule)

	if !target.NeedsSearch() {
		return Resolution{
			Input:  v.Original(),
			Result: target.Fixed,
			Rule:   target.Rule,
		}, nil
	}

	raw, err := tags.ListTags(ctx)
	if err != nil {
		return Resolution{}, &SourceError{Err: err}
	}

	parsed, skipped := ParseTags(raw)
	for _, name := range skipped {
		slog.Debug("ignoring tag", "tag", name)
	}
	if len(parsed) == 0 {
		return Resolution{}, ErrNoValidTags
	}

	series, err := target.Series()
	if err != nil {
		return Resolution{}, err
	}

	latest, err := SelectLatest(parsed, series)
	if err != nil {
		return Resolution{}, err
	}
	slog.Debug("selected tag", "series", series.String(), "tag", latest.Name, "candidates", len(parsed))

	return Resolution{
		Input:  v.Original(),
		Result: latest.Name,
		Rule:   target.Rule,
		Series: &series,
	}, nil
}
