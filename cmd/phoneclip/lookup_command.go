package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ieee0824/phoneclip/acoustic"
	"github.com/ieee0824/phoneclip/lexicon"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Show dictionary pronunciations for words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.Dictionary == "" {
				return errors.New("paths.dictionary must be set")
			}
			dict, err := lexicon.LoadFile(cfg.Paths.Dictionary)
			if err != nil {
				return fmt.Errorf("load dictionary: %w", err)
			}

			out := cmd.OutOrStdout()
			missing := 0
			for _, w := range args {
				key := lexicon.Normalize(w)
				variants := dict.Variants(key)
				if len(variants) == 0 {
					missing++
					line := fmt.Sprintf("%s\t(not in dictionary)", w)
					if s := dict.Suggest(key, cfg.Matching.Suggestions); len(s) > 0 {
						line += fmt.Sprintf(" did you mean %s?", strings.Join(s, ", "))
					}
					fmt.Fprintln(out, line)
					continue
				}
				for _, v := range variants {
					fmt.Fprintf(out, "%s\t%s\n", key, acoustic.Join(v))
				}
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d words not in dictionary", missing, len(args))
			}
			return nil
		},
	}
}
