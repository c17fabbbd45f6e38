// Package assemble rebuilds an audio clip for a matched time span from the
// full phone timeline of an utterance.
//
// Speech phones keep their original samples and timing. Silence phones are
// replaced by zero-amplitude audio of the same length. Only phones lying
// entirely inside the span are emitted: phones that end at or before the span
// start are skipped, and the first phone ending after the span end stops the
// walk without being emitted, so a trailing phone that straddles the boundary
// is dropped rather than truncated.
package assemble

import (
	"fmt"

	"github.com/ieee0824/phoneclip/acoustic"
	"github.com/ieee0824/phoneclip/audio"
	"github.com/ieee0824/phoneclip/matcher"
)

// epsilon absorbs floating point error when comparing phone boundaries that
// were computed as start+duration.
const epsilon = 1e-9

// Segment is one phone emitted into the output clip.
type Segment struct {
	Event  acoustic.Event
	Silent bool // replaced by zero-amplitude audio
}

// Segments returns the phones of tl that belong to span, in timeline order.
func Segments(tl acoustic.Timeline, span matcher.Span, silence acoustic.Phoneme) []Segment {
	var out []Segment
	for _, e := range tl {
		if e.End() <= span.Start+epsilon {
			continue
		}
		if e.End() > span.End+epsilon {
			break
		}
		out = append(out, Segment{Event: e, Silent: acoustic.IsSilence(e.Symbol, silence)})
	}
	return out
}

// Duration returns the total length of segs in seconds.
func Duration(segs []Segment) float64 {
	var d float64
	for _, s := range segs {
		d += s.Event.Duration
	}
	return d
}

// Assemble builds the output clip for span from src.
func Assemble(src *audio.Clip, tl acoustic.Timeline, span matcher.Span, silence acoustic.Phoneme) (*audio.Clip, []Segment, error) {
	segs := Segments(tl, span, silence)
	out := src.NewClip()
	for _, s := range segs {
		start, end := s.Event.Start, s.Event.End()
		var part *audio.Clip
		if s.Silent {
			part = src.Silence(start, end)
		} else {
			part = src.Slice(start, end)
		}
		if err := out.Append(part); err != nil {
			return nil, nil, fmt.Errorf("append %s at %.3fs: %w", s.Event.Symbol, start, err)
		}
	}
	return out, segs, nil
}
