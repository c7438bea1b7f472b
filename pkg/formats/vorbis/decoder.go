package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/itohio/wavescope/pkg/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }

// ReadSamples passes through directly: oggvorbis already produces
// interleaved float32 in [-1, 1].
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Keep reads aligned to whole frames.
	aligned := len(dst) - len(dst)%s.dec.Channels()
	if aligned == 0 {
		aligned = s.dec.Channels()
	}
	if aligned > len(dst) {
		aligned = len(dst)
	}

	n, err := s.dec.Read(dst[:aligned])
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	return &source{dec: dec}, nil
}
