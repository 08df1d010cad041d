package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pellnetwork/versiontags/pkg/version"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"table", "", true},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.input)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestWrite(t *testing.T) {
	series := version.MinorSeries(1, 3)
	searched := version.Resolution{Input: "v1.4", Result: "v1.3.4", Rule: "previous-minor", Series: &series}
	fixed := version.Resolution{Input: "v1.1.3", Result: "v1.1.1", Rule: "first-patch"}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatText, searched); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "v1.3.4\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatJSON, searched); err != nil {
			t.Fatal(err)
		}
		var doc Document
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("invalid JSON %q: %v", buf.String(), err)
		}
		want := Document{Input: "v1.4", Result: "v1.3.4", Series: "v1.3.x"}
		if doc != want {
			t.Errorf("got %+v, want %+v", doc, want)
		}
	})

	t.Run("yaml omits series for fixed results", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatYAML, fixed); err != nil {
			t.Fatal(err)
		}
		want := "input: v1.1.3\nresult: v1.1.1\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
		var doc Document
		if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatal(err)
		}
		if doc.Series != "" {
			t.Errorf("unexpected series %q", doc.Series)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, Format("xml"), fixed); err == nil {
			t.Error("expected error")
		}
	})
}
