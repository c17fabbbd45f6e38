package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "phoneclip",
		Short:         "Cut phrases out of aligned utterances",
		Long:          "phoneclip finds a word sequence in a phone-level alignment and writes a clip of\nthe matched span with silence phones zeroed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path (TOML or YAML)")
	pf.StringVar(&flags.alignments, "alignments", "", "Phone alignment table (overrides paths.alignments)")
	pf.StringVar(&flags.dictionary, "dict", "", "Pronunciation dictionary (overrides paths.dictionary)")
	pf.StringVar(&flags.phoneMap, "phone-map", "", "Phone id to symbol map (overrides paths.phone_map)")
	pf.StringVar(&flags.audioDir, "audio-dir", "", "Directory of {utterance}.wav files (overrides paths.audio_dir)")
	pf.StringVarP(&flags.outputDir, "out", "o", "", "Output directory (overrides paths.output_dir)")
	pf.StringVar(&flags.silence, "silence", "", "Silence phone symbol (overrides matching.silence)")
	pf.BoolVar(&flags.strict, "strict", false, "Reject alignments that are not ordered by start time")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")
	pf.StringVar(&flags.reportDB, "report-db", "", "SQLite database to record results in (overrides report.db_path)")
	pf.BoolVar(&flags.json, "json", false, "Print the run report as JSON")

	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newLookupCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
