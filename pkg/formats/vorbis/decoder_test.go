package vorbis

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOgg struct {
	samples  []float32
	channels int
	pos      int
}

func (f *fakeOgg) SampleRate() int { return 48000 }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.pos >= len(f.samples) {
		return 0, io.EOF
	}
	n := copy(p, f.samples[f.pos:])
	f.pos += n
	return n, nil
}

func TestReadSamples_PassThrough(t *testing.T) {
	src := &source{dec: &fakeOgg{
		samples:  []float32{0.1, -0.1, 0.2, -0.2},
		channels: 2,
	}}

	assert.Equal(t, 48000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.Equal(t, []float32{0.1, -0.1, 0.2, -0.2}, dst[:4])

	_, err = src.ReadSamples(dst)
	assert.Equal(t, io.EOF, err)
}

func TestReadSamples_FrameAlignment(t *testing.T) {
	src := &source{dec: &fakeOgg{
		samples:  []float32{0.1, -0.1, 0.2, -0.2},
		channels: 2,
	}}

	// Odd-sized destination still reads whole stereo frames.
	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decoder{}.Decode(bytes.NewReader([]byte("OggS but not really")))
	assert.Error(t, err)
}
