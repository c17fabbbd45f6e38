package matcher

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ieee0824/phoneclip/acoustic"
	"github.com/ieee0824/phoneclip/lexicon"
)

// ErrNoMatch is returned when no pronunciation combination occurs contiguously
// in the content projection of the timeline.
var ErrNoMatch = errors.New("no match")

// ErrUnknownWord is wrapped by UnknownWordError.
var ErrUnknownWord = errors.New("word has no pronunciation")

// UnknownWordError reports a target word missing from the dictionary.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word %q has no pronunciation in the dictionary", e.Word)
}

func (e *UnknownWordError) Unwrap() error { return ErrUnknownWord }

// Config holds matching parameters.
type Config struct {
	Silence acoustic.Phoneme // symbol excluded from matching
}

// DefaultConfig returns the default matching parameters.
func DefaultConfig() Config {
	return Config{Silence: acoustic.DefaultSilence}
}

// Find returns the first occurrence of words in the timeline.
//
// Pronunciation combinations are tried in lexicographic product order of each
// word's variants (the last word varies fastest). For each combination the
// concatenated phone sequence is compared against every window of the
// non-silence projection, left to right. The first combination that matches
// anywhere wins, at its leftmost position; no better match is searched for.
//
// words must already be normalized. A word without pronunciations yields an
// *UnknownWordError; an exhausted search yields ErrNoMatch.
func Find(tl acoustic.Timeline, words []string, dict *lexicon.Dictionary, cfg Config) (Result, error) {
	if len(words) == 0 {
		return Result{}, errors.New("empty word sequence")
	}
	for _, w := range words {
		if !dict.Has(w) {
			return Result{}, &UnknownWordError{Word: w}
		}
	}

	content := tl.Content(cfg.Silence)
	symbols := content.Symbols()

	for variants, seq := range Candidates(words, dict) {
		if pos := indexOf(symbols, seq); pos >= 0 {
			first, last := content[pos], content[pos+len(seq)-1]
			return Result{
				Span:     Span{Start: first.Start, End: last.End()},
				Phones:   seq,
				Variants: variants,
				Offset:   pos,
			}, nil
		}
	}
	return Result{}, ErrNoMatch
}

// indexOf returns the first position where seq occurs in symbols, or -1.
func indexOf(symbols, seq []acoustic.Phoneme) int {
	n := len(seq)
	if n == 0 {
		return -1
	}
outer:
	for i := 0; i+n <= len(symbols); i++ {
		for j := 0; j < n; j++ {
			if symbols[i+j] != seq[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

// Candidates iterates over the pronunciation combinations of words in search
// order. Each step yields the variant index chosen per word and the
// concatenated phone sequence. Yielded slices are fresh on every step.
// Words without pronunciations produce no combinations.
func Candidates(words []string, dict *lexicon.Dictionary) iter.Seq2[[]int, []acoustic.Phoneme] {
	return func(yield func([]int, []acoustic.Phoneme) bool) {
		if len(words) == 0 {
			return
		}
		variants := make([][][]acoustic.Phoneme, len(words))
		for i, w := range words {
			variants[i] = dict.Variants(w)
			if len(variants[i]) == 0 {
				return
			}
		}

		// Odometer over variant indices; the rightmost word turns fastest.
		idx := make([]int, len(words))
		for {
			var seq []acoustic.Phoneme
			for i, v := range idx {
				seq = append(seq, variants[i][v]...)
			}
			if !yield(append([]int(nil), idx...), seq) {
				return
			}

			k := len(idx) - 1
			for ; k >= 0; k-- {
				idx[k]++
				if idx[k] < len(variants[k]) {
					break
				}
				idx[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// Count returns the number of pronunciation combinations for words.
func Count(words []string, dict *lexicon.Dictionary) int {
	if len(words) == 0 {
		return 0
	}
	n := 1
	for _, w := range words {
		n *= len(dict.Lookup(w))
	}
	return n
}
