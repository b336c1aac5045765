package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// Config is the decoded uvss.toml. Zero values mean "use the default".
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Format      FormatConfig      `toml:"format"`
	Tool        ToolConfig        `toml:"tool"`
}

type DiagnosticsConfig struct {
	Max              int  `toml:"max"`
	WarningsAsErrors bool `toml:"warnings-as-errors"`
	IgnoreWarnings   bool `toml:"no-warnings"`
	Jobs             int  `toml:"jobs"`
	DiskCache        bool `toml:"disk-cache"`
}

type FormatConfig struct {
	Extensions []string `toml:"extensions"`
	// Indent is "tab" or a number of spaces.
	Indent  string `toml:"indent"`
	Newline string `toml:"newline"`
}

type ToolConfig struct {
	// Requires is a semver constraint the running tool must satisfy.
	Requires string `toml:"requires"`
}

// Manifest is a loaded configuration file.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// LoadConfig decodes the file at path. Unknown keys are an error so typos
// do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadManifest finds uvss.toml upward from startDir and loads it. ok is
// false when there is no configuration file.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func (c Config) validate() error {
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative")
	}
	if c.Diagnostics.Jobs < 0 {
		return fmt.Errorf("[diagnostics].jobs must not be negative")
	}
	for _, ext := range c.Format.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("[format].extensions: %q must start with a dot", ext)
		}
	}
	if _, err := c.Format.IndentString(); err != nil {
		return err
	}
	if _, err := c.Format.NewlineString(); err != nil {
		return err
	}
	if c.Tool.Requires != "" {
		if _, err := semver.NewConstraint(c.Tool.Requires); err != nil {
			return fmt.Errorf("[tool].requires: %w", err)
		}
	}
	return nil
}

// IndentString resolves the indent setting; "" selects the default.
func (f FormatConfig) IndentString() (string, error) {
	switch f.Indent {
	case "":
		return "", nil
	case "tab":
		return "\t", nil
	}
	var n int
	if _, err := fmt.Sscanf(f.Indent, "%d", &n); err != nil || n <= 0 || n > 16 || fmt.Sprint(n) != f.Indent {
		return "", fmt.Errorf("[format].indent: %q is neither \"tab\" nor a space count", f.Indent)
	}
	return strings.Repeat(" ", n), nil
}

// NewlineString resolves the newline setting; "" selects the default.
func (f FormatConfig) NewlineString() (string, error) {
	switch strings.ToLower(f.Newline) {
	case "":
		return "", nil
	case "crlf":
		return "\r\n", nil
	case "lf":
		return "\n", nil
	}
	return "", fmt.Errorf("[format].newline: %q is neither \"crlf\" nor \"lf\"", f.Newline)
}

// CheckRequires reports an error when version does not satisfy the
// [tool].requires constraint.
func (c Config) CheckRequires(version string) error {
	if c.Tool.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Tool.Requires)
	if err != nil {
		return fmt.Errorf("[tool].requires: %w", err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("tool version %q: %w", version, err)
	}
	if ok, errs := constraint.Validate(v); !ok {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("uvss %s does not satisfy %q: %s", version, c.Tool.Requires, strings.Join(msgs, "; "))
	}
	return nil
}
