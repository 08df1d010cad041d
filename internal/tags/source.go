// Package tags lists the raw tag names of a repository.
package tags

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pellnetwork/versiontags/pkg/config"
	"github.com/pellnetwork/versiontags/pkg/version"
)

// New returns the tag source selected by cfg.
func New(cfg *config.TagsConfig) (version.TagLister, error) {
	if cfg == nil {
		cfg = config.Default().Tags
	}

	slog.Debug("using tag source", "source", cfg.Source, "dir", cfg.Dir, "file", cfg.File)

	switch cfg.Source {
	case config.SourceGit, "":
		return &GitCLI{Binary: cfg.GitBinary, Dir: cfg.Dir}, nil
	case config.SourceGoGit:
		return &Repository{Dir: cfg.Dir}, nil
	case config.SourceFile:
		if cfg.File == "" {
			return nil, fmt.Errorf("tag source %q requires a tags file", config.SourceFile)
		}
		return &File{Path: cfg.File}, nil
	default:
		return nil, fmt.Errorf("unknown tag source %q", cfg.Source)
	}
}

// splitLines turns newline-delimited output into names, dropping blank lines
// and trailing carriage returns.
func splitLines(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
