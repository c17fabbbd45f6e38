package config

const (
	defaultAudioDir    = "."
	defaultOutputDir   = "."
	defaultSilence     = "SIL"
	defaultWorkers     = 4
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultSuggestions = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AudioDir:  defaultAudioDir,
			OutputDir: defaultOutputDir,
		},
		Matching: Matching{
			Silence:     defaultSilence,
			Suggestions: defaultSuggestions,
		},
		Batch: Batch{
			Workers: defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
