package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. It returns every problem found.
func (c *Config) Validate() error {
	var errs []error
	if c.Paths.Alignments == "" {
		errs = append(errs, errors.New("paths.alignments must be set"))
	}
	if c.Paths.Dictionary == "" {
		errs = append(errs, errors.New("paths.dictionary must be set"))
	}
	if c.Paths.OutputDir == "" {
		errs = append(errs, errors.New("paths.output_dir must be set"))
	}
	if c.Matching.Silence == "" {
		errs = append(errs, errors.New("matching.silence must not be empty"))
	}
	if c.Matching.Suggestions < 0 {
		errs = append(errs, fmt.Errorf("matching.suggestions must be >= 0, got %d", c.Matching.Suggestions))
	}
	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be >= 1, got %d", c.Batch.Workers))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is invalid; valid values: console, json", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is invalid; valid values: debug, info, warn, error", c.Logging.Level))
	}
	return errors.Join(errs...)
}
