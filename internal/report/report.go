// Package report renders and persists the outcome of extraction runs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Status values for Entry.Status.
const (
	StatusOK      = "ok"
	StatusNoMatch = "no_match"
	StatusConfig  = "config_error"
	StatusFailed  = "failed"
)

// Entry is one line of a run report.
type Entry struct {
	RunID     string   `json:"run_id"`
	Utterance string   `json:"utterance"`
	Words     []string `json:"words"`
	Output    string   `json:"output,omitempty"`
	Start     float64  `json:"start"`
	End       float64  `json:"end"`
	Status    string   `json:"status"`
	Error     string   `json:"error,omitempty"`
}

// Span formats the matched interval in seconds to millisecond precision.
func (e Entry) Span() string {
	if e.Status != StatusOK {
		return "-"
	}
	return fmt.Sprintf("[%.3f, %.3f)", e.Start, e.End)
}

// WriteText writes one plain line per entry.
func WriteText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		var err error
		if e.Status == StatusOK {
			_, err = fmt.Fprintf(w, "%s\t%.3f\t%.3f\n", e.Output, e.Start, e.End)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Utterance, strings.Join(e.Words, " "), e.Status, e.Error)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the entries as a JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// RenderTable renders the entries as a rounded table.
func RenderTable(entries []Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Utterance", "Words", "Span (s)", "Status", "Output / Error"})
	for _, e := range entries {
		detail := e.Output
		if e.Status != StatusOK {
			detail = e.Error
		}
		tw.AppendRow(table.Row{e.Utterance, strings.Join(e.Words, " "), e.Span(), e.Status, detail})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
