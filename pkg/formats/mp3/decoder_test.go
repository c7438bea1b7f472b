package mp3

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMP3 serves canned PCM bytes the way go-mp3 does.
type fakeMP3 struct {
	r *bytes.Reader
}

func (f *fakeMP3) SampleRate() int { return 44100 }

func (f *fakeMP3) Read(p []byte) (int, error) { return f.r.Read(p) }

func pcm16le(values ...int16) []byte {
	out := make([]byte, len(values)*2)
	for i, v := range values {
		out[2*i] = byte(uint16(v))
		out[2*i+1] = byte(uint16(v) >> 8)
	}
	return out
}

func TestReadSamples_ConvertsPCM16(t *testing.T) {
	src := &source{
		dec:        &fakeMP3{r: bytes.NewReader(pcm16le(0, 16384, -32768, 32767))},
		sampleRate: 44100,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.InDelta(t, 0.0, dst[0], 1e-6)
	assert.InDelta(t, 0.5, dst[1], 1e-6)
	assert.InDelta(t, -1.0, dst[2], 1e-6)
	assert.InDelta(t, 1.0, dst[3], 1e-4)
}

func TestReadSamples_EOF(t *testing.T) {
	src := &source{dec: &fakeMP3{r: bytes.NewReader(nil)}}

	n, err := src.ReadSamples(make([]float32, 4))
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestSource_AlwaysStereo(t *testing.T) {
	src := &source{dec: &fakeMP3{r: bytes.NewReader(nil)}, sampleRate: 22050}
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, 22050, src.SampleRate())
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decoder{}.Decode(bytes.NewReader([]byte("no sync word here")))
	assert.Error(t, err)
}
