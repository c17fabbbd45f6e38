package audio

import (
	"errors"
	"fmt"
	"math"
)

// Clip is a block of interleaved integer PCM samples.
type Clip struct {
	Data        []int // interleaved samples, len = Frames() * NumChannels
	SampleRate  int
	NumChannels int
	BitDepth    int
}

// NewClip creates an empty clip with the same format as c.
func (c *Clip) NewClip() *Clip {
	return &Clip{
		SampleRate:  c.SampleRate,
		NumChannels: c.NumChannels,
		BitDepth:    c.BitDepth,
	}
}

// Frames returns the number of sample frames (samples per channel).
func (c *Clip) Frames() int {
	if c.NumChannels <= 0 {
		return 0
	}
	return len(c.Data) / c.NumChannels
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}

// Index converts a time offset in seconds to a frame index.
// Every time-to-sample conversion goes through Index, so events that share a
// boundary map to the same frame and adjacent slices tile exactly.
func (c *Clip) Index(t float64) int {
	return int(math.Round(t * float64(c.SampleRate)))
}

// Slice returns a copy of the frames in [start, end) seconds, clamped to the clip.
func (c *Clip) Slice(start, end float64) *Clip {
	from := clamp(c.Index(start), 0, c.Frames())
	to := clamp(c.Index(end), from, c.Frames())

	out := c.NewClip()
	out.Data = append([]int(nil), c.Data[from*c.NumChannels:to*c.NumChannels]...)
	return out
}

// Silence returns a zero-amplitude clip as long as the [start, end) interval
// would be if sliced from c. It does not depend on c's samples or length.
func (c *Clip) Silence(start, end float64) *Clip {
	n := c.Index(end) - c.Index(start)
	if n < 0 {
		n = 0
	}
	out := c.NewClip()
	out.Data = make([]int, n*c.NumChannels)
	if z := c.zeroLevel(); z != 0 {
		for i := range out.Data {
			out.Data[i] = z
		}
	}
	return out
}

// zeroLevel is the sample value of zero amplitude. 8-bit PCM is unsigned.
func (c *Clip) zeroLevel() int {
	if c.BitDepth == 8 {
		return 128
	}
	return 0
}

// Append adds the samples of other to the end of c. Both clips must share a format.
func (c *Clip) Append(other *Clip) error {
	if other.SampleRate != c.SampleRate || other.NumChannels != c.NumChannels || other.BitDepth != c.BitDepth {
		return fmt.Errorf("format mismatch: %d Hz/%d ch/%d bit vs %d Hz/%d ch/%d bit",
			c.SampleRate, c.NumChannels, c.BitDepth,
			other.SampleRate, other.NumChannels, other.BitDepth)
	}
	c.Data = append(c.Data, other.Data...)
	return nil
}

func (c *Clip) validate() error {
	switch {
	case c == nil:
		return errors.New("nil clip")
	case c.SampleRate <= 0:
		return fmt.Errorf("invalid sample rate %d", c.SampleRate)
	case c.NumChannels <= 0:
		return fmt.Errorf("invalid channel count %d", c.NumChannels)
	case c.BitDepth != 8 && c.BitDepth != 16 && c.BitDepth != 24 && c.BitDepth != 32:
		return fmt.Errorf("unsupported bit depth %d", c.BitDepth)
	case len(c.Data)%c.NumChannels != 0:
		return fmt.Errorf("sample count %d is not a multiple of %d channels", len(c.Data), c.NumChannels)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
