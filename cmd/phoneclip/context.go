package main

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ieee0824/phoneclip"
	"github.com/ieee0824/phoneclip/acoustic"
	"github.com/ieee0824/phoneclip/internal/config"
	"github.com/ieee0824/phoneclip/internal/logging"
)

type globalFlags struct {
	configPath string
	alignments string
	dictionary string
	phoneMap   string
	audioDir   string
	outputDir  string
	silence    string
	strict     bool
	logLevel   string
	logFormat  string
	reportDB   string
	json       bool
}

// commandContext carries the flags and lazily loaded state shared by
// subcommands of one invocation.
type commandContext struct {
	flags *globalFlags
	runID string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags, runID: uuid.NewString()}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(c.flags.configPath)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	paths := []struct {
		flag string
		dst  *string
	}{
		{c.flags.alignments, &cfg.Paths.Alignments},
		{c.flags.dictionary, &cfg.Paths.Dictionary},
		{c.flags.phoneMap, &cfg.Paths.PhoneMap},
		{c.flags.audioDir, &cfg.Paths.AudioDir},
		{c.flags.outputDir, &cfg.Paths.OutputDir},
		{c.flags.reportDB, &cfg.Report.DBPath},
	}
	for _, p := range paths {
		if p.flag == "" {
			continue
		}
		expanded, err := config.ExpandPath(p.flag)
		if err != nil {
			return err
		}
		*p.dst = expanded
	}

	if c.flags.silence != "" {
		cfg.Matching.Silence = c.flags.silence
	}
	if c.flags.strict {
		cfg.Matching.StrictOrder = true
	}
	if c.flags.logLevel != "" {
		cfg.Logging.Level = c.flags.logLevel
	}
	if c.flags.logFormat != "" {
		cfg.Logging.Format = c.flags.logFormat
	}
	return nil
}

// logger builds the run logger writing to w.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	l, err := logging.NewFromConfig(cfg, w)
	if err != nil {
		return nil, err
	}
	return l.With(slog.String("run_id", c.runID)), nil
}

// extractor validates the configuration and loads the tables it names.
func (c *commandContext) extractor(logger *slog.Logger) (*phoneclip.Extractor, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return phoneclip.NewExtractor(cfg.Paths.Alignments, cfg.Paths.Dictionary,
		phoneclip.WithPhoneMap(cfg.Paths.PhoneMap),
		phoneclip.WithSilence(acoustic.Phoneme(cfg.Matching.Silence)),
		phoneclip.WithAudioDir(cfg.Paths.AudioDir),
		phoneclip.WithOutputDir(cfg.Paths.OutputDir),
		phoneclip.WithStrictOrder(cfg.Matching.StrictOrder),
		phoneclip.WithSuggestions(cfg.Matching.Suggestions),
		phoneclip.WithLogger(logger),
	)
}
