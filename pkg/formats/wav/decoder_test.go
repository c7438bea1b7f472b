package wav

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/wavescope/pkg/audio"
)

// writeTestWav encodes 16-bit PCM samples to a temp file and returns its path.
func writeTestWav(t *testing.T, sampleRate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := gowav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	return path
}

func TestDecode_RoundTrip(t *testing.T) {
	data := []int{0, 16384, -16384, 32767, -32768}
	path := writeTestWav(t, 8000, 1, data)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())

	samples, err := audio.ReadAll(src, 16)
	require.NoError(t, err)
	require.Equal(t, len(data), len(samples))
	for i, v := range data {
		assert.InDelta(t, float64(v)/32768.0, float64(samples[i]), 1e-4, "sample %d", i)
	}
}

func TestDecode_StereoMetadata(t *testing.T) {
	path := writeTestWav(t, 44100, 2, []int{100, -100, 200, -200})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not riff data")))
	assert.Error(t, err)
}

func TestPCMScale(t *testing.T) {
	assert.Equal(t, float32(128), pcmScale(8))
	assert.Equal(t, float32(32768), pcmScale(16))
	assert.Equal(t, float32(8388608), pcmScale(24))
	assert.Equal(t, float32(2147483648), pcmScale(32))
	// Unknown depths fall back to 16-bit scaling.
	assert.Equal(t, float32(32768), pcmScale(0))
}
