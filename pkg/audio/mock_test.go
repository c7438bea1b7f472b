package audio

import "io"

// mockSource serves a fixed interleaved sample slice in small chunks.
type mockSource struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
	chunk      int // max values per ReadSamples call, 0 = no limit
	closed     bool
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) Close() error    { m.closed = true; return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= len(m.samples) {
		return 0, io.EOF
	}
	n := len(dst)
	if m.chunk > 0 && n > m.chunk {
		n = m.chunk
	}
	if rest := len(m.samples) - m.pos; n > rest {
		n = rest
	}
	copy(dst, m.samples[m.pos:m.pos+n])
	m.pos += n
	return n, nil
}
