package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input tables and audio directories.
type Paths struct {
	Alignments string `toml:"alignments" yaml:"alignments"`
	Dictionary string `toml:"dictionary" yaml:"dictionary"`
	PhoneMap   string `toml:"phone_map" yaml:"phone_map"`
	AudioDir   string `toml:"audio_dir" yaml:"audio_dir"`
	OutputDir  string `toml:"output_dir" yaml:"output_dir"`
}

// Matching contains phone sequence matching settings.
type Matching struct {
	Silence     string `toml:"silence" yaml:"silence"`
	StrictOrder bool   `toml:"strict_order" yaml:"strict_order"`
	Suggestions int    `toml:"suggestions" yaml:"suggestions"`
}

// Batch contains batch extraction settings.
type Batch struct {
	Workers int `toml:"workers" yaml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" yaml:"format"`
	Level  string `toml:"level" yaml:"level"`
}

// Report contains run report persistence settings.
type Report struct {
	DBPath string `toml:"db_path" yaml:"db_path"`
}

// Config encapsulates all configuration values for phoneclip.
type Config struct {
	Paths    Paths    `toml:"paths" yaml:"paths"`
	Matching Matching `toml:"matching" yaml:"matching"`
	Batch    Batch    `toml:"batch" yaml:"batch"`
	Logging  Logging  `toml:"logging" yaml:"logging"`
	Report   Report   `toml:"report" yaml:"report"`
}

// Load reads the configuration file at path on top of the defaults and
// normalizes its paths. TOML is assumed unless the file ends in .yaml or .yml.
// An empty path returns the defaults. The result is not validated, so callers
// can apply command line overrides before calling Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := cfg.normalize(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, formatOf(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", expanded, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode decodes r into cfg. format is "toml" or "yaml"; unknown keys are errors.
func Decode(r io.Reader, format string, cfg *Config) error {
	switch format {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

func (c *Config) normalize() error {
	for _, p := range []*string{
		&c.Paths.Alignments,
		&c.Paths.Dictionary,
		&c.Paths.PhoneMap,
		&c.Paths.AudioDir,
		&c.Paths.OutputDir,
		&c.Report.DBPath,
	} {
		expanded, err := ExpandPath(strings.TrimSpace(*p))
		if err != nil {
			return err
		}
		*p = expanded
	}
	c.Matching.Silence = strings.TrimSpace(c.Matching.Silence)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// ExpandPath resolves a leading ~ and returns an absolute, cleaned path.
// The empty string is returned unchanged.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
