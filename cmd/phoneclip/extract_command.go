package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/phoneclip"
	"github.com/ieee0824/phoneclip/internal/fileutil"
	"github.com/ieee0824/phoneclip/internal/report"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "extract UTTERANCE WORD...",
		Short: "Extract one word sequence from an utterance",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ex, err := ctx.extractor(logger)
			if err != nil {
				return err
			}

			lock, err := fileutil.LockDir(ex.OutputDir)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			job := phoneclip.Job{Utterance: args[0], Words: args[1:]}
			res, runErr := ex.ExtractFile(cmd.Context(), job.Utterance, job.Words)
			entry := entryFor(ctx.runID, phoneclip.Outcome{Job: job, Result: res, Err: runErr})

			recErr := recordEntries(cmd.Context(), ctx.config.Report.DBPath, []report.Entry{entry}, logger)
			if runErr != nil {
				return errors.Join(runErr, recErr)
			}
			if ctx.flags.json {
				if err := report.WriteJSON(cmd.OutOrStdout(), []report.Entry{entry}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Report())
			}
			return recErr
		},
	}
}
