// Package output renders resolutions on stdout.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pellnetwork/versiontags/pkg/version"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag or config value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use text, json or yaml)", s)
	}
}

// Document is the machine-readable form of a resolution.
type Document struct {
	Input  string `json:"input" yaml:"input"`
	Result string `json:"result" yaml:"result"`
	Series string `json:"series,omitempty" yaml:"series,omitempty"`
}

func NewDocument(r version.Resolution) Document {
	d := Document{Input: r.Input, Result: r.Result}
	if r.Series != nil {
		d.Series = r.Series.String()
	}
	return d
}

// Write prints r to w. Text output is the bare result followed by a newline.
func Write(w io.Writer, f Format, r version.Resolution) error {
	switch f {
	case FormatText, "":
		_, err := fmt.Fprintln(w, r.Result)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(r)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
