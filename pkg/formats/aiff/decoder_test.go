package aiff

import (
	"bytes"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader hands out a fixed PCM payload once, then EOF.
type fakeReader struct {
	data []int
	done bool
}

func (f *fakeReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.done {
		return 0, io.EOF
	}
	n := copy(buf.Data, f.data)
	f.done = true
	return n, nil
}

func TestReadSamples_Normalizes16Bit(t *testing.T) {
	src := &source{
		dec:        &fakeReader{data: []int{0, 16384, -32768}},
		sampleRate: 8000,
		channels:   1,
		bitDepth:   16,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.InDelta(t, 0.0, dst[0], 1e-6)
	assert.InDelta(t, 0.5, dst[1], 1e-6)
	assert.InDelta(t, -1.0, dst[2], 1e-6)

	_, err = src.ReadSamples(dst)
	assert.Equal(t, io.EOF, err)
}

func TestReadSamples_Normalizes8Bit(t *testing.T) {
	src := &source{
		dec:      &fakeReader{data: []int{64, -128}},
		bitDepth: 8,
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.InDelta(t, 0.5, dst[0], 1e-6)
	assert.InDelta(t, -1.0, dst[1], 1e-6)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not a form chunk")))
	assert.Error(t, err)
}
