package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ieee0824/phoneclip"
	"github.com/ieee0824/phoneclip/internal/report"
)

func entryFor(runID string, o phoneclip.Outcome) report.Entry {
	e := report.Entry{
		RunID:     runID,
		Utterance: o.Job.Utterance,
		Words:     phoneclip.NormalizeWords(o.Job.Words),
	}
	switch {
	case o.Err == nil && o.Result != nil:
		e.Status = report.StatusOK
		e.Output = o.Result.Output
		e.Start = o.Result.Span.Start
		e.End = o.Result.Span.End
	case phoneclip.IsNoMatch(o.Err):
		e.Status = report.StatusNoMatch
		e.Error = o.Err.Error()
	case phoneclip.IsConfigError(o.Err):
		e.Status = report.StatusConfig
		e.Error = o.Err.Error()
	default:
		e.Status = report.StatusFailed
		if o.Err != nil {
			e.Error = o.Err.Error()
		}
	}
	return e
}

func entriesFor(runID string, outcomes []phoneclip.Outcome) []report.Entry {
	entries := make([]report.Entry, len(outcomes))
	for i, o := range outcomes {
		entries[i] = entryFor(runID, o)
	}
	return entries
}

// writeEntries prints entries as JSON, as a table on a terminal, or as
// tab-separated lines otherwise.
func writeEntries(w io.Writer, entries []report.Entry, asJSON bool) error {
	if asJSON {
		return report.WriteJSON(w, entries)
	}
	if isTerminal(w) {
		_, err := fmt.Fprintln(w, report.RenderTable(entries))
		return err
	}
	return report.WriteText(w, entries)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// recordEntries stores entries when a report database is configured.
func recordEntries(ctx context.Context, dbPath string, entries []report.Entry, logger *slog.Logger) error {
	if dbPath == "" || len(entries) == 0 {
		return nil
	}
	store, err := report.Open(dbPath)
	if err != nil {
		return err
	}
	recErr := store.Record(ctx, entries)
	if err := errors.Join(recErr, store.Close()); err != nil {
		return fmt.Errorf("record report: %w", err)
	}
	logger.Debug("report recorded", slog.String("db", dbPath), slog.Int("entries", len(entries)))
	return nil
}
