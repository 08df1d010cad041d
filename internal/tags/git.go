package tags

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitCLI lists tags by running `git tag --list`.
type GitCLI struct {
	// Binary defaults to "git" on PATH.
	Binary string
	// Dir is the working directory; empty means the current one.
	Dir string
}

func (g *GitCLI) ListTags(ctx context.Context) ([]string, error) {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}

	cmd := exec.CommandContext(ctx, bin, "tag", "--list")
	cmd.Dir = g.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return nil, fmt.Errorf("%w, detail: %s", err, detail)
		}
		return nil, err
	}
	return splitLines(stdout.String()), nil
}
