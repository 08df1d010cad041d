package version

// SelectLatest returns the greatest tag inside s. Within a minor series only
// the patch is compared; within a major series (minor, patch) is. When several
// tags share the greatest key the last one in tags wins. The slice is not
// modified.
func SelectLatest(tags []Tag, s Series) (Tag, error) {
	var (
		best  Tag
		found bool
	)
	for _, t := range tags {
		if !s.Contains(t.Version) {
			continue
		}
		if !found || !t.Version.LessThan(best.Version) {
			best = t
			found = true
		}
	}
	if !found {
		return Tag{}, &SeriesNotFoundError{Series: s}
	}
	return best, nil
}
