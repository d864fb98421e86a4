package audio

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSynthesizeFrameCount(t *testing.T) {
	tests := []struct {
		name       string
		frequency  float64
		duration   float64
		sampleRate int
		want       int
	}{
		{"jump", 440, 0.2, 44100, 8820},
		{"collect", 880, 0.3, 44100, 13230},
		{"death", 220, 0.5, 44100, 22050},
		{"floor not round", 1000, 0.1009, 1000, 100},
		{"single frame", 100, 1.5, 1, 1},
		{"low rate", 100, 0.25, 8000, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := Synthesize(NewToneRequest(tt.frequency, tt.duration, tt.sampleRate))
			if err != nil {
				t.Fatalf("Synthesize() error = %v", err)
			}
			if len(samples) != tt.want {
				t.Errorf("len(samples) = %d, want %d", len(samples), tt.want)
			}
		})
	}
}

func TestSynthesizeJump(t *testing.T) {
	samples, err := Synthesize(NewToneRequest(440, 0.2, 44100))
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(samples) != 8820 {
		t.Fatalf("len(samples) = %d, want 8820", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("samples[0] = %d, want 0", samples[0])
	}

	// Peak of the first cycle is close to full volume
	var peak int16
	for _, s := range samples[:101] {
		if s > peak {
			peak = s
		}
	}
	maxPeak := Quantize(VolumeScale)
	if peak > maxPeak || int(peak) < int(maxPeak)*9/10 {
		t.Errorf("first-cycle peak = %d, want within 90%% of %d", peak, maxPeak)
	}
}

func TestSynthesizeDefaultSampleRate(t *testing.T) {
	req := NewToneRequest(220, 0.5, 0)
	if req.SampleRate != DefaultSampleRate {
		t.Fatalf("SampleRate = %d, want %d", req.SampleRate, DefaultSampleRate)
	}
	if !req.FadeOut {
		t.Error("FadeOut should default to true")
	}
	samples, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(samples) != 22050 {
		t.Errorf("len(samples) = %d, want 22050", len(samples))
	}
}

func TestSynthesizeRange(t *testing.T) {
	for _, fade := range []bool{true, false} {
		req := NewToneRequest(1234.5, 0.05, 48000)
		req.FadeOut = fade
		samples, err := Synthesize(req)
		if err != nil {
			t.Fatalf("Synthesize() error = %v", err)
		}
		limit := Quantize(VolumeScale)
		for i, s := range samples {
			if s > limit || s < -limit {
				t.Fatalf("fade=%v: samples[%d] = %d exceeds ±%d", fade, i, s, limit)
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	req := NewToneRequest(880, 0.3, 44100)
	a, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	b, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("samples[%d] differ: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestSynthesizeFadeOut(t *testing.T) {
	req := NewToneRequest(440, 0.2, 44100)
	faded, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	req.FadeOut = false
	flat, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	// Faded samples never exceed the unfaded ones in magnitude
	for i := range faded {
		if abs(faded[i]) > abs(flat[i]) {
			t.Fatalf("samples[%d]: |faded| %d > |flat| %d", i, faded[i], flat[i])
		}
	}

	// Tail peak is well below the head peak
	n := len(faded)
	head := peakAbs(faded[:200])
	tail := peakAbs(faded[n-200:])
	if tail >= head {
		t.Errorf("tail peak %d should be below head peak %d", tail, head)
	}
	if last := abs(faded[n-1]); last > abs(faded[100]) && last > 1 {
		t.Errorf("last sample %d should not exceed an early sample %d", last, faded[100])
	}
}

func TestEnvelope(t *testing.T) {
	if got := Envelope(0, 8820); got != 1 {
		t.Errorf("Envelope(0) = %v, want 1", got)
	}
	if got, want := Envelope(8819, 8820), 1.0/8820; math.Abs(got-want) > 1e-12 {
		t.Errorf("Envelope(last) = %v, want %v", got, want)
	}
	prev := 2.0
	for i := 0; i < 100; i++ {
		v := Envelope(i, 100)
		if v >= prev {
			t.Fatalf("Envelope not strictly decreasing at %d", i)
		}
		prev = v
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{0.3, 9830},  // 9830.1 truncated
		{-0.3, -9830}, // toward zero
		{1.5, 32767},
		{-1.5, -32768},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSynthesizeInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  ToneRequest
	}{
		{"zero frequency", ToneRequest{Frequency: 0, Duration: 1, SampleRate: 44100}},
		{"negative frequency", ToneRequest{Frequency: -440, Duration: 1, SampleRate: 44100}},
		{"nan frequency", ToneRequest{Frequency: math.NaN(), Duration: 1, SampleRate: 44100}},
		{"zero duration", ToneRequest{Frequency: 440, Duration: 0, SampleRate: 44100}},
		{"negative duration", ToneRequest{Frequency: 440, Duration: -0.2, SampleRate: 44100}},
		{"infinite duration", ToneRequest{Frequency: 440, Duration: math.Inf(1), SampleRate: 44100}},
		{"zero sample rate", ToneRequest{Frequency: 440, Duration: 1, SampleRate: 0}},
		{"negative sample rate", ToneRequest{Frequency: 440, Duration: 1, SampleRate: -1}},
		{"no frames", ToneRequest{Frequency: 440, Duration: 0.00001, SampleRate: 44100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := Synthesize(tt.req)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Synthesize() error = %v, want ErrInvalidParameter", err)
			}
			if samples != nil {
				t.Errorf("Synthesize() returned %d samples on error", len(samples))
			}
		})
	}
}

func abs(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}

func peakAbs(samples []int16) int {
	peak := 0
	for _, s := range samples {
		if a := abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

func TestSynthesizeTooLong(t *testing.T) {
	tests := []struct {
		name string
		req  ToneRequest
	}{
		{"overflowing duration", NewToneRequest(440, 1e300, 44100)},
		{"beyond wav size limit", NewToneRequest(440, 1e9, 44100)},
		{"one frame over", NewToneRequest(440, MaxFrames+1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := Synthesize(tt.req)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Synthesize() error = %v, want ErrInvalidParameter", err)
			}
			if !strings.Contains(err.Error(), "too long") {
				t.Errorf("error %q should report the request as too long", err)
			}
			if samples != nil {
				t.Errorf("Synthesize() returned %d samples on error", len(samples))
			}
		})
	}

	// The limit itself is accepted by validation
	if err := NewToneRequest(440, MaxFrames, 1).Validate(); err != nil {
		t.Errorf("Validate() at MaxFrames error = %v", err)
	}
}
