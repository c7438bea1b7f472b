package wave

import (
	"errors"

	"github.com/chewxy/math32"
)

var (
	ErrEmptyBuffer  = errors.New("audio buffer is empty")
	ErrSilentBuffer = errors.New("audio buffer is silent")
	ErrBadRate      = errors.New("sample rate must be positive")
)

// Buffer holds a peak-normalized mono clip together with its time axis.
// It is immutable after New; decimated views are served from an internal
// cache that lives and dies with the buffer.
type Buffer struct {
	sampleRate int
	samples    []float32
	times      []float64

	cache map[int]Trace
}

// Trace is a renderable (time, amplitude) pair. Both slices always have
// the same length.
type Trace struct {
	Times []float64
	Amps  []float32
}

// New builds a Buffer from raw mono samples. The samples are normalized
// in place so the peak amplitude is 1.0, and a monotonically increasing
// time axis is derived from the sample rate. Empty and silent input is
// rejected here so the render cache never sees an invalid buffer.
func New(samples []float32, sampleRate int) (*Buffer, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}
	if sampleRate <= 0 {
		return nil, ErrBadRate
	}

	var peak float32
	for _, s := range samples {
		peak = math32.Max(peak, math32.Abs(s))
	}
	if peak == 0 {
		return nil, ErrSilentBuffer
	}
	for i := range samples {
		samples[i] /= peak
	}

	times := make([]float64, len(samples))
	dt := 1.0 / float64(sampleRate)
	for i := range times {
		times[i] = float64(i) * dt
	}

	return &Buffer{
		sampleRate: sampleRate,
		samples:    samples,
		times:      times,
		cache:      make(map[int]Trace),
	}, nil
}

// SampleRate returns the clip sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(len(b.samples)) / float64(b.sampleRate)
}

// Samples returns the full-resolution amplitude sequence.
func (b *Buffer) Samples() []float32 { return b.samples }

// Times returns the full-resolution time axis.
func (b *Buffer) Times() []float64 { return b.times }
