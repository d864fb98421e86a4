package audio

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter is returned for requests that cannot produce audio
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrIO is returned when a WAV file cannot be created, written or read
	ErrIO = errors.New("io error")
)

// ToneRequest describes a single sine tone
type ToneRequest struct {
	Frequency  float64 // Hz
	Duration   float64 // seconds
	SampleRate int     // Hz
	FadeOut    bool
}

// NewToneRequest creates a request with a linear fade-out.
// A zero sample rate falls back to DefaultSampleRate.
func NewToneRequest(frequency, duration float64, sampleRate int) ToneRequest {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}
	return ToneRequest{
		Frequency:  frequency,
		Duration:   duration,
		SampleRate: sampleRate,
		FadeOut:    true,
	}
}

// FrameCount returns floor(Duration * SampleRate)
func (r ToneRequest) FrameCount() int {
	return int(math.Floor(r.Duration * float64(r.SampleRate)))
}

// Validate checks that the request describes at least one frame of audio
func (r ToneRequest) Validate() error {
	if !(r.Frequency > 0) || math.IsInf(r.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidParameter, r.Frequency)
	}
	if !(r.Duration > 0) || math.IsInf(r.Duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidParameter, r.Duration)
	}
	if r.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, r.SampleRate)
	}
	// Checked before FrameCount so huge durations cannot overflow int
	if frames := r.Duration * float64(r.SampleRate); frames > MaxFrames {
		return fmt.Errorf("%w: %vs at %dHz is too long (%.0f frames, max %d)",
			ErrInvalidParameter, r.Duration, r.SampleRate, frames, MaxFrames)
	}
	if r.FrameCount() < 1 {
		return fmt.Errorf("%w: %vs at %dHz yields no frames", ErrInvalidParameter, r.Duration, r.SampleRate)
	}
	return nil
}

// Synthesize renders the request to 16-bit PCM samples
func Synthesize(req ToneRequest) ([]int16, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	frames := req.FrameCount()
	samples := make([]int16, frames)
	rate := float64(req.SampleRate)

	for i := range samples {
		value := math.Sin(2 * math.Pi * req.Frequency * float64(i) / rate)
		if req.FadeOut {
			value *= Envelope(i, frames)
		}
		samples[i] = Quantize(value * VolumeScale)
	}
	return samples, nil
}

// Envelope is the linear fade-out multiplier 1 - i/frames.
// It is 1 at i=0 and 1/frames at the last frame.
func Envelope(i, frames int) float64 {
	return math.Max(0, 1-float64(i)/float64(frames))
}

// Quantize converts a value in [-1, 1] to int16, truncating toward zero
func Quantize(value float64) int16 {
	scaled := math.Trunc(value * FullScale)
	if scaled > math.MaxInt16 {
		return math.MaxInt16
	}
	if scaled < math.MinInt16 {
		return math.MinInt16
	}
	return int16(scaled)
}
