package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/itohio/wavescope/pkg/audio"
	"github.com/itohio/wavescope/pkg/formats/aiff"
	"github.com/itohio/wavescope/pkg/formats/mp3"
	"github.com/itohio/wavescope/pkg/formats/vorbis"
	"github.com/itohio/wavescope/pkg/formats/wav"
	"github.com/itohio/wavescope/pkg/wave"
)

// newRegistry wires up the supported formats.
func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(".wav", wav.Decoder{})
	r.Register(".aif", aiff.Decoder{})
	r.Register(".aiff", aiff.Decoder{})
	r.Register(".mp3", mp3.Decoder{})
	r.Register(".ogg", vorbis.Decoder{})
	return r
}

// loadClip decodes a file into a normalized mono buffer: decoder by
// extension, channels averaged to mono, then drained into memory.
func (v *viewer) loadClip(path string) (*wave.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := v.codecs.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mono := audio.NewMonoMixer(src)
	samples, err := audio.ReadAll(mono, v.cfg.Audio.BufferSize)
	if err != nil {
		return nil, err
	}

	return wave.New(samples, mono.SampleRate())
}
