package matcher

import (
	"fmt"

	"github.com/ieee0824/phoneclip/acoustic"
)

// Span is a half-open time interval [Start, End) in seconds.
type Span struct {
	Start float64
	End   float64
}

// Duration returns End - Start.
func (s Span) Duration() float64 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%.3f, %.3f)", s.Start, s.End)
}

// Result holds the first match of a word sequence in a timeline.
type Result struct {
	Span     Span
	Phones   []acoustic.Phoneme // concatenated phone sequence that matched
	Variants []int              // pronunciation variant index used for each word
	Offset   int                // window position in the content projection
}
