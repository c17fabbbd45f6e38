package phoneclip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ieee0824/phoneclip/acoustic"
	"github.com/ieee0824/phoneclip/assemble"
	"github.com/ieee0824/phoneclip/audio"
	"github.com/ieee0824/phoneclip/internal/logging"
	"github.com/ieee0824/phoneclip/lexicon"
	"github.com/ieee0824/phoneclip/matcher"
)

// Extractor finds phrases in aligned utterances and cuts them out of the audio.
// Its tables are read-only once constructed, so one Extractor may serve
// concurrent extractions.
type Extractor struct {
	Symbols     *acoustic.SymbolTable
	Alignments  *acoustic.Alignments
	Dict        *lexicon.Dictionary
	MatchCfg    matcher.Config
	AudioDir    string // where {utterance}.wav files are read from
	OutputDir   string // where extracted clips are written
	StrictOrder bool   // reject timelines that are not start-ordered
	Suggestions int    // similar words offered for a word missing from Dict
	Logger      *slog.Logger
	phoneMap    string // set by WithPhoneMap, loaded by NewExtractor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPhoneMap sets the phone map used to resolve numeric phone ids in the
// alignment table. It only has an effect with NewExtractor.
func WithPhoneMap(path string) Option {
	return func(e *Extractor) {
		e.phoneMap = path
	}
}

// WithSilence sets the symbol treated as non-speech.
func WithSilence(p acoustic.Phoneme) Option {
	return func(e *Extractor) {
		if p != "" {
			e.MatchCfg.Silence = p
		}
	}
}

// WithAudioDir sets the directory holding source utterance audio.
func WithAudioDir(dir string) Option {
	return func(e *Extractor) {
		e.AudioDir = dir
	}
}

// WithOutputDir sets the directory extracted clips are written to.
func WithOutputDir(dir string) Option {
	return func(e *Extractor) {
		e.OutputDir = dir
	}
}

// WithStrictOrder enables or disables the start-order check on timelines.
func WithStrictOrder(enabled bool) Option {
	return func(e *Extractor) {
		e.StrictOrder = enabled
	}
}

// WithSuggestions sets how many similar dictionary words an unknown-word
// error lists. Zero disables suggestions.
func WithSuggestions(n int) Option {
	return func(e *Extractor) {
		if n >= 0 {
			e.Suggestions = n
		}
	}
}

// WithLogger sets the logger for extraction progress.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.Logger = l
		}
	}
}

func newExtractor(opts []Option) *Extractor {
	e := &Extractor{
		MatchCfg:    matcher.DefaultConfig(),
		AudioDir:    ".",
		OutputDir:   ".",
		Suggestions: 3,
		Logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewExtractor creates an Extractor from an alignment table and a
// pronunciation dictionary on disk.
func NewExtractor(alignPath, dictPath string, opts ...Option) (*Extractor, error) {
	e := newExtractor(opts)

	if e.phoneMap != "" {
		symbols, err := acoustic.LoadSymbolTableFile(e.phoneMap)
		if err != nil {
			return nil, fmt.Errorf("load phone map: %w", err)
		}
		e.Symbols = symbols
	}

	var err error
	e.Alignments, err = acoustic.LoadAlignmentsFile(alignPath, e.Symbols)
	if err != nil {
		return nil, fmt.Errorf("load alignments: %w", err)
	}

	e.Dict, err = lexicon.LoadFile(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	e.Logger.Debug("tables loaded",
		slog.Int("phone_ids", e.Symbols.Len()),
		slog.Int("utterances", len(e.Alignments.Utterances())),
		slog.Int("words", len(e.Dict.Entries)),
	)
	return e, nil
}

// NewExtractorFromTables creates an Extractor from pre-loaded tables.
func NewExtractorFromTables(alignments *acoustic.Alignments, dict *lexicon.Dictionary, opts ...Option) *Extractor {
	e := newExtractor(opts)
	e.Alignments = alignments
	e.Dict = dict
	return e
}

// Result describes one successful extraction.
type Result struct {
	Utterance string
	Words     []string // normalized target words
	Span      matcher.Span
	Match     matcher.Result
	Segments  []assemble.Segment
	Clip      *audio.Clip
	Output    string // file name (or path when written by ExtractFile)
}

// Report returns the one-line summary of the extraction.
func (r *Result) Report() string {
	return fmt.Sprintf("Saved segment with silent gaps zeroed to %s (from %.3fs to %.3fs)",
		r.Output, r.Span.Start, r.Span.End)
}

// NormalizeWords normalizes every word of a target sequence.
func NormalizeWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = lexicon.Normalize(w)
	}
	return out
}

// OutputName returns the conventional clip name {utt}_{w1}_..._{wn}.wav.
func OutputName(uttID string, words []string) string {
	parts := append([]string{uttID}, NormalizeWords(words)...)
	return strings.Join(parts, "_") + ".wav"
}

// Match validates the request and locates words in the utterance timeline.
// It does not touch any audio.
func (e *Extractor) Match(uttID string, words []string) (matcher.Result, error) {
	target := NormalizeWords(words)
	if len(target) == 0 {
		return matcher.Result{}, &ConfigError{Utterance: uttID, Reason: "empty word sequence"}
	}
	for i, w := range target {
		if w == "" {
			return matcher.Result{}, &ConfigError{Utterance: uttID, Word: words[i], Reason: "word has no letters or digits"}
		}
	}

	tl, ok := e.Alignments.Timeline(uttID)
	if !ok || len(tl) == 0 {
		return matcher.Result{}, &ConfigError{Utterance: uttID, Reason: "utterance has no alignment"}
	}
	if e.StrictOrder {
		if err := acoustic.CheckOrdered(tl); err != nil {
			return matcher.Result{}, &ConfigError{Utterance: uttID, Reason: err.Error()}
		}
	}

	for _, w := range target {
		if !e.Dict.Has(w) {
			return matcher.Result{}, &ConfigError{
				Utterance:   uttID,
				Word:        w,
				Reason:      "word has no pronunciation",
				Suggestions: e.Dict.Suggest(w, e.Suggestions),
			}
		}
	}

	res, err := matcher.Find(tl, target, e.Dict, e.MatchCfg)
	if err != nil {
		if errors.Is(err, matcher.ErrNoMatch) {
			return matcher.Result{}, &NoMatchError{
				Utterance:    uttID,
				Words:        target,
				Combinations: matcher.Count(target, e.Dict),
			}
		}
		return matcher.Result{}, err
	}
	return res, nil
}

// Extract matches words in the utterance and rebuilds the clip from src.
func (e *Extractor) Extract(uttID string, words []string, src *audio.Clip) (*Result, error) {
	m, err := e.Match(uttID, words)
	if err != nil {
		return nil, err
	}
	return e.build(uttID, words, m, src)
}

func (e *Extractor) build(uttID string, words []string, m matcher.Result, src *audio.Clip) (*Result, error) {
	tl, _ := e.Alignments.Timeline(uttID)
	clip, segs, err := assemble.Assemble(src, tl, m.Span, e.MatchCfg.Silence)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", uttID, err)
	}

	return &Result{
		Utterance: uttID,
		Words:     NormalizeWords(words),
		Span:      m.Span,
		Match:     m,
		Segments:  segs,
		Clip:      clip,
		Output:    OutputName(uttID, words),
	}, nil
}

// AudioPath returns the source audio path for an utterance.
func (e *Extractor) AudioPath(uttID string) string {
	return filepath.Join(e.AudioDir, uttID+".wav")
}

// ExtractFile reads the utterance audio from AudioDir, extracts words and
// writes the clip to OutputDir. Nothing is written when any step fails.
// The match runs before the audio is read, so configuration and no-match
// errors are reported without touching the audio file.
func (e *Extractor) ExtractFile(ctx context.Context, uttID string, words []string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := e.Logger.With(slog.String("utterance", uttID), slog.String("words", strings.Join(words, " ")))

	m, err := e.Match(uttID, words)
	if err != nil {
		logger.Warn("match failed", slog.Any("error", err))
		return nil, err
	}
	logger.Debug("match found", slog.String("span", m.Span.String()), slog.Int("offset", m.Offset))

	src, err := audio.ReadWAVFile(e.AudioPath(uttID))
	if err != nil {
		return nil, fmt.Errorf("read audio %s: %w", e.AudioPath(uttID), err)
	}

	res, err := e.build(uttID, words, m, src)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(e.OutputDir, res.Output)
	if err := audio.WriteWAVFile(path, res.Clip); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	res.Output = path

	logger.Info("clip written",
		slog.String("output", path),
		slog.Float64("start", res.Span.Start),
		slog.Float64("end", res.Span.End),
		slog.Int("segments", len(res.Segments)),
	)
	return res, nil
}
