package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/pellnetwork/versiontags/internal/logging"
	"github.com/pellnetwork/versiontags/internal/output"
)

// Tag source kinds.
const (
	SourceGit   = "git"
	SourceGoGit = "gogit"
	SourceFile  = "file"
)

type TagsConfig struct {
	Source    string `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional"`
	Dir       string `json:"dir,omitempty" yaml:"dir,omitempty" hcl:"dir,optional"`
	File      string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"`
	GitBinary string `json:"git_binary,omitempty" yaml:"git_binary,omitempty" hcl:"git_binary,optional"`
}

type Config struct {
	Tags     *TagsConfig `json:"tags,omitempty" yaml:"tags,omitempty" hcl:"tags,block"`
	Output   string      `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,optional"`
	LogLevel string      `json:"log_level,omitempty" yaml:"log_level,omitempty" hcl:"log_level,optional"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Tags: &TagsConfig{
			Source:    SourceGit,
			Dir:       ".",
			GitBinary: "git",
		},
		Output: string(output.FormatText),
	}
}

// Merge copies every non-empty value of o over c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.Tags != nil {
		if c.Tags == nil {
			c.Tags = &TagsConfig{}
		}
		if o.Tags.Source != "" {
			c.Tags.Source = o.Tags.Source
		}
		if o.Tags.Dir != "" {
			c.Tags.Dir = o.Tags.Dir
		}
		if o.Tags.File != "" {
			c.Tags.File = o.Tags.File
		}
		if o.Tags.GitBinary != "" {
			c.Tags.GitBinary = o.Tags.GitBinary
		}
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Tags != nil {
		switch c.Tags.Source {
		case SourceGit, SourceGoGit:
		case SourceFile:
			if c.Tags.File == "" {
				return fmt.Errorf("tag source %q requires a tags file", SourceFile)
			}
		default:
			return fmt.Errorf("unknown tag source %q (use %s, %s or %s)", c.Tags.Source, SourceGit, SourceGoGit, SourceFile)
		}
	}
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads the config file at path and layers it over Default. An
// empty path returns the defaults. Files ending in .hcl are decoded as HCL
// with the process environment available as env.NAME; anything else is
// tried as JSON, then YAML.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty config file")
	}

	var loaded Config
	if filepath.Ext(path) == ".hcl" {
		if err := hclsimple.Decode(path, data, envContext(os.Environ()), &loaded); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if err := json.Unmarshal(data, &loaded); err != nil {
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// envContext exposes KEY=VALUE pairs as the HCL object "env".
func envContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
