package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"
)

// buildWAV constructs a minimal valid WAV file in memory.
func buildWAV(sampleRate uint32, bitsPerSample, numChannels uint16, samples []int16) []byte {
	var buf bytes.Buffer
	dataSize := uint32(len(samples) * 2)
	byteRate := sampleRate * uint32(numChannels) * uint32(bitsPerSample) / 8
	blockAlign := numChannels * bitsPerSample / 8

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(&buf, binary.LittleEndian, numChannels)
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, bitsPerSample)

	// data chunk
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func sine(n int) []int16 {
	raw := make([]int16, n)
	for i := range raw {
		raw[i] = int16(16000 * math.Sin(2*math.Pi*440*float64(i)/16000))
	}
	return raw
}

func TestReadWAV_Valid(t *testing.T) {
	n := 100
	raw := sine(n)

	clip, err := ReadWAV(bytes.NewReader(buildWAV(16000, 16, 1, raw)))
	if err != nil {
		t.Fatalf("ReadWAV error: %v", err)
	}

	if clip.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", clip.SampleRate)
	}
	if clip.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", clip.NumChannels)
	}
	if clip.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", clip.BitDepth)
	}
	if clip.Frames() != n {
		t.Fatalf("Frames = %d, want %d", clip.Frames(), n)
	}
	for i := 0; i < n; i++ {
		if clip.Data[i] != int(raw[i]) {
			t.Errorf("Data[%d] = %d, want %d", i, clip.Data[i], raw[i])
		}
	}
}

func TestReadWAV_Stereo(t *testing.T) {
	raw := []int16{1, -1, 2, -2, 3, -3}
	clip, err := ReadWAV(bytes.NewReader(buildWAV(8000, 16, 2, raw)))
	if err != nil {
		t.Fatalf("ReadWAV error: %v", err)
	}
	if clip.NumChannels != 2 || clip.Frames() != 3 {
		t.Errorf("channels = %d frames = %d, want 2 and 3", clip.NumChannels, clip.Frames())
	}
}

func TestReadWAV_NotRIFF(t *testing.T) {
	data := []byte("NOT_RIFF_DATA_HERE_EXTRA")
	if _, err := ReadWAV(bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for non-RIFF data")
	}
}

func TestWriteWAVFile_RoundTrip(t *testing.T) {
	src := &Clip{SampleRate: 16000, NumChannels: 1, BitDepth: 16}
	for _, s := range sine(1600) {
		src.Data = append(src.Data, int(s))
	}

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteWAVFile(path, src); err != nil {
		t.Fatalf("WriteWAVFile error: %v", err)
	}

	got, err := ReadWAVFile(path)
	if err != nil {
		t.Fatalf("ReadWAVFile error: %v", err)
	}
	if got.SampleRate != src.SampleRate || got.NumChannels != src.NumChannels || got.BitDepth != src.BitDepth {
		t.Fatalf("format = %d/%d/%d, want %d/%d/%d",
			got.SampleRate, got.NumChannels, got.BitDepth, src.SampleRate, src.NumChannels, src.BitDepth)
	}
	if len(got.Data) != len(src.Data) {
		t.Fatalf("len(Data) = %d, want %d", len(got.Data), len(src.Data))
	}
	for i := range src.Data {
		if got.Data[i] != src.Data[i] {
			t.Fatalf("Data[%d] = %d, want %d", i, got.Data[i], src.Data[i])
		}
	}
}

func TestWriteWAV_InvalidClip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := WriteWAVFile(path, &Clip{SampleRate: 16000, NumChannels: 1, BitDepth: 12}); err == nil {
		t.Fatal("expected error for 12-bit clip")
	}
	if _, err := ReadWAVFile(path); err == nil {
		t.Error("failed write should not leave a file behind")
	}
}
