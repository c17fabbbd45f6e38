package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// pcmFormat is the WAVE_FORMAT_PCM audio format tag.
const pcmFormat = 1

// ReadWAV decodes a PCM WAV stream into a Clip.
func ReadWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read PCM data: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, errors.New("missing fmt chunk")
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = int(dec.BitDepth)
	}

	clip := &Clip{
		Data:        buf.Data,
		SampleRate:  buf.Format.SampleRate,
		NumChannels: buf.Format.NumChannels,
		BitDepth:    depth,
	}
	if len(clip.Data)%clip.NumChannels != 0 {
		return nil, fmt.Errorf("sample count %d is not a multiple of %d channels", len(clip.Data), clip.NumChannels)
	}
	return clip, nil
}

// ReadWAVFile is a convenience wrapper that opens a file path.
func ReadWAVFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWAV(f)
}

// WriteWAV encodes c as PCM WAV using the clip's own format.
func WriteWAV(w io.WriteSeeker, c *Clip) error {
	if err := c.validate(); err != nil {
		return err
	}
	enc := wav.NewEncoder(w, c.SampleRate, c.BitDepth, c.NumChannels, pcmFormat)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: c.NumChannels,
			SampleRate:  c.SampleRate,
		},
		Data:           c.Data,
		SourceBitDepth: c.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize WAV: %w", err)
	}
	return nil
}

// WriteWAVFile creates path and writes c to it. A partially written file is
// removed on failure.
func WriteWAVFile(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, c); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
