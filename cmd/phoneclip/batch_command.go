package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ieee0824/phoneclip"
	"github.com/ieee0824/phoneclip/internal/fileutil"
	"github.com/ieee0824/phoneclip/internal/report"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch JOBS_FILE",
		Short: "Extract every job listed in a file",
		Long:  "Each line of JOBS_FILE is an utterance id followed by the words to extract.\nFailed jobs are reported and do not stop the rest of the batch.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			jobs, err := phoneclip.LoadJobsFile(args[0])
			if err != nil {
				return fmt.Errorf("load jobs: %w", err)
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

			n := ctx.config.Batch.Workers
			if cmd.Flags().Changed("workers") {
				n = workers
			}
			logger.Info("batch started", slog.Int("jobs", len(jobs)), slog.Int("workers", n))

			outcomes := ex.ExtractBatch(cmd.Context(), jobs, n)
			entries := entriesFor(ctx.runID, outcomes)

			outErr := writeEntries(cmd.OutOrStdout(), entries, ctx.flags.json)
			recErr := recordEntries(cmd.Context(), ctx.config.Report.DBPath, entries, logger)
			if err := errors.Join(outErr, recErr); err != nil {
				return err
			}
			return failedJobs(entries)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of concurrent extractions (overrides batch.workers)")
	return cmd
}

func failedJobs(entries []report.Entry) error {
	failed := 0
	for _, e := range entries {
		if e.Status != report.StatusOK {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d jobs failed", failed, len(entries))
}
