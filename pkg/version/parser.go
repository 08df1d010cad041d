package version

import (
	"fmt"
	"regexp"
)

// Accepted tag forms, most specific first.
var tagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^v([0-9]+)\.([0-9]+)\.([0-9]+)$`),
	regexp.MustCompile(`^v([0-9]+)\.([0-9]+)$`),
	regexp.MustCompile(`^v([0-9]+)$`),
}

// Parse reads a tag of the form "vX", "vX.Y" or "vX.Y.Z". Missing components
// default to zero and any run of digits is a valid component, however long.
// Anything else yields an error wrapping ErrInvalidFormat.
func Parse(input string) (Version, error) {
	for _, re := range tagPatterns {
		m := re.FindStringSubmatch(input)
		if m == nil {
			continue
		}

		parts := [3]component{"0", "0", "0"}
		for i, digits := range m[1:] {
			parts[i] = newComponent(digits)
		}

		return Version{
			major:    parts[0],
			minor:    parts[1],
			patch:    parts[2],
			original: input,
		}, nil
	}
	return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(input string) Version {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseTags keeps the entries of raw that parse as versions, in their
// original order. The rest are returned separately so callers can report them.
func ParseTags(raw []string) (tags []Tag, skipped []string) {
	for _, name := range raw {
		v, err := Parse(name)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		tags = append(tags, Tag{Name: name, Version: v})
	}
	return tags, skipped
}
