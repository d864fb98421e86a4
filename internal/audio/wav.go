package audio

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Header describes the format and data chunk of a WAV file
type Header struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	// DataSize is the length of the "data" subchunk in bytes
	DataSize uint32
}

// Frames returns the number of frames described by the data subchunk
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize) / int(h.BlockAlign)
}

// WriteWav writes mono 16-bit PCM samples to path, replacing any existing file.
// The data is written to path+".tmp" and renamed into place, so path is never
// left half-written.
func WriteWav(path string, samples []int16, sampleRate int) (err error) {
	if len(samples) == 0 {
		return fmt.Errorf("%w: no samples to write", ErrInvalidParameter)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}

	tmpFile := path + ".tmp"
	f, err := os.OpenFile(tmpFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", ErrIO, path, err)
	}

	// Clean up temp file on any error
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpFile)
		}
	}()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: Channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: BitsPerSample,
	}

	enc := wav.NewEncoder(f, sampleRate, BitsPerSample, Channels, PCMFormat)
	if err = enc.Write(buf); err != nil {
		return fmt.Errorf("%w: failed to write samples to %s: %v", ErrIO, path, err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("%w: failed to finalize %s: %v", ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %v", ErrIO, path, err)
	}

	// Atomic rename
	if err = os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", ErrIO, path, err)
	}
	return nil
}

// ReadHeader reads the format of path and locates its data chunk
func ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return readHeader(f)
}

func readHeader(r io.ReadSeeker) (Header, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Header{}, fmt.Errorf("%w: not a RIFF/WAVE file", ErrInvalidParameter)
	}
	// Skips any chunks between fmt and data
	if err := dec.FwdToPCM(); err != nil {
		return Header{}, fmt.Errorf("%w: data chunk not found: %v", ErrInvalidParameter, err)
	}

	return Header{
		AudioFormat:   dec.WavAudioFormat,
		NumChannels:   dec.NumChans,
		SampleRate:    dec.SampleRate,
		ByteRate:      dec.AvgBytesPerSec,
		BlockAlign:    dec.NumChans * dec.BitDepth / 8,
		BitsPerSample: dec.BitDepth,
		DataSize:      uint32(dec.PCMSize),
	}, nil
}

// ReadWav reads the samples and sample rate of a mono 16-bit PCM WAV file
func ReadWav(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s is not a valid WAV file", ErrInvalidParameter, path)
	}
	if dec.WavAudioFormat != PCMFormat || dec.NumChans != Channels || dec.BitDepth != BitsPerSample {
		return nil, 0, fmt.Errorf("%w: %s is not mono 16-bit PCM (format=%d channels=%d bits=%d)",
			ErrInvalidParameter, path, dec.WavAudioFormat, dec.NumChans, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to decode %s: %v", ErrIO, path, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return samples, int(dec.SampleRate), nil
}
