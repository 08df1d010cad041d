package tags

import (
	"context"
	"fmt"
	"io"
	"os"
)

// File lists tags from a newline-delimited file, or stdin when Path is "-".
type File struct {
	Path string
}

func (f *File) ListTags(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if f.Path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(f.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading tags file: %w", err)
	}
	return splitLines(string(data)), nil
}
