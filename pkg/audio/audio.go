// Package audio provides the streaming primitives the viewer loads
// clips through: a Source interface implemented by the format decoders,
// a registry keyed by file extension, mono mixing, and a drain helper
// that reads a whole source into memory.
//
// Samples are interleaved float32 values in [-1, 1]. ReadSamples
// returns io.EOF with n == 0 once a stream is finished.
package audio

import (
	"io"
	"sync"
)

// Source is a streaming PCM source.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1]
	// and returns the number of values written.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions (".wav", ".mp3", ...) to decoders.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[ext] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.codecs[ext]
	return d, ok
}

// Extensions returns the registered extensions, for file dialog filters.
func (r *Registry) Extensions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	return exts
}
