package acoustic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Event is one aligned phone: a symbol occupying [Start, Start+Duration) seconds.
type Event struct {
	Start    float64
	Duration float64
	Symbol   Phoneme
}

// End returns the exclusive end time of the event.
func (e Event) End() float64 {
	return e.Start + e.Duration
}

// Timeline is the ordered phone sequence of one utterance.
// Events are ordered by non-decreasing Start; gaps between events are allowed.
type Timeline []Event

// Content returns the non-silence projection of the timeline, preserving order.
// The receiver is not modified.
func (tl Timeline) Content(silence Phoneme) Timeline {
	out := make(Timeline, 0, len(tl))
	for _, e := range tl {
		if !IsSilence(e.Symbol, silence) {
			out = append(out, e)
		}
	}
	return out
}

// Symbols returns the phone symbols of the timeline in order.
func (tl Timeline) Symbols() []Phoneme {
	out := make([]Phoneme, len(tl))
	for i, e := range tl {
		out[i] = e.Symbol
	}
	return out
}

// Duration returns the time between the first start and the last end.
func (tl Timeline) Duration() float64 {
	if len(tl) == 0 {
		return 0
	}
	return tl[len(tl)-1].End() - tl[0].Start
}

// CheckOrdered returns an error describing the first event whose start precedes
// its predecessor's start.
func CheckOrdered(tl Timeline) error {
	for i := 1; i < len(tl); i++ {
		if tl[i].Start < tl[i-1].Start {
			return fmt.Errorf("event %d (%s at %.3fs) starts before event %d (%.3fs)",
				i, tl[i].Symbol, tl[i].Start, i-1, tl[i-1].Start)
		}
	}
	return nil
}

// Alignments holds the phone timeline of every utterance in an alignment table.
// It is read-only after loading and may be shared between goroutines.
type Alignments struct {
	timelines map[string]Timeline
}

// NewAlignments creates an empty alignment table.
func NewAlignments() *Alignments {
	return &Alignments{timelines: make(map[string]Timeline)}
}

// Append adds an event to the end of the utterance's timeline.
func (a *Alignments) Append(uttID string, e Event) {
	a.timelines[uttID] = append(a.timelines[uttID], e)
}

// LoadAlignments reads a phone-level alignment table.
// Format: utterance_id channel start duration token, one phone per line.
// Each token is resolved through symbols and stripped of its positional tag.
// Records must already be ordered by start within each utterance; they are kept
// in input order.
func LoadAlignments(r io.Reader, symbols *SymbolTable) (*Alignments, error) {
	a := NewAlignments()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("line %d: expected 5 fields, got %d", lineNum, len(fields))
		}

		start, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse start %q: %w", lineNum, fields[2], err)
		}
		if start < 0 {
			return nil, fmt.Errorf("line %d: negative start %v", lineNum, start)
		}
		dur, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse duration %q: %w", lineNum, fields[3], err)
		}
		if dur <= 0 {
			return nil, fmt.Errorf("line %d: non-positive duration %v", lineNum, dur)
		}

		a.Append(fields[0], Event{
			Start:    start,
			Duration: dur,
			Symbol:   BaseSymbol(symbols.Resolve(fields[4])),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return a, nil
}

// LoadAlignmentsFile is a convenience wrapper that opens a file path.
func LoadAlignmentsFile(path string, symbols *SymbolTable) (*Alignments, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadAlignments(f, symbols)
}

// Timeline returns the timeline for an utterance.
func (a *Alignments) Timeline(uttID string) (Timeline, bool) {
	tl, ok := a.timelines[uttID]
	return tl, ok
}

// Utterances returns all utterance identifiers, sorted.
func (a *Alignments) Utterances() []string {
	ids := make([]string, 0, len(a.timelines))
	for id := range a.timelines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
