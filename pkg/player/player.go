// Package player plays a loaded clip through the system audio device
// and reports the current playback position for the playhead marker.
package player

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/ebitengine/oto/v3"
)

const bytesPerSample = 2 // 16-bit mono PCM

// oto allows a single context per process, so it is shared between
// players. A clip whose rate differs from the context rate plays at
// the context rate; reinitialization is not supported by the driver.
var (
	ctxMu   sync.Mutex
	otoCtx  *oto.Context
	ctxRate int
)

func sharedContext(sampleRate int) (*oto.Context, error) {
	ctxMu.Lock()
	defer ctxMu.Unlock()

	if otoCtx != nil {
		if ctxRate != sampleRate {
			log.Printf("audio device runs at %d Hz, %d Hz clip will play at device rate", ctxRate, sampleRate)
		}
		return otoCtx, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio context: %w", err)
	}
	<-ready

	otoCtx = ctx
	ctxRate = sampleRate
	return ctx, nil
}

// Player owns one clip converted to 16-bit PCM.
type Player struct {
	mu         sync.Mutex
	data       *bytes.Reader
	dev        *oto.Player
	sampleRate int
	total      int
}

// New converts the mono samples to PCM once and prepares a device
// player over them.
func New(samples []float32, sampleRate int) (*Player, error) {
	ctx, err := sharedContext(sampleRate)
	if err != nil {
		return nil, err
	}

	pcm := pcm16Bytes(samples)
	r := bytes.NewReader(pcm)
	return &Player{
		data:       r,
		dev:        ctx.NewPlayer(r),
		sampleRate: sampleRate,
		total:      len(pcm),
	}, nil
}

// Toggle flips between playing and paused, restarting from the top
// when the clip already ran out. Returns true when now playing.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dev.IsPlaying() {
		p.dev.Pause()
		return false
	}
	if p.data.Len() == 0 {
		if _, err := p.dev.Seek(0, io.SeekStart); err != nil {
			log.Printf("rewind failed: %v", err)
		}
	}
	p.dev.Play()
	return true
}

// Playing reports whether the device is consuming the clip.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dev.IsPlaying()
}

// Finished reports whether the clip ran to its end and the device
// buffer drained.
func (p *Player) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Len() == 0 && !p.dev.IsPlaying()
}

// Position returns the playback position. The device pre-buffers, so
// the position is the bytes handed over minus what is still queued.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	consumed := p.total - p.data.Len() - p.dev.BufferedSize()
	return positionAt(consumed, p.sampleRate)
}

// Duration returns the clip length.
func (p *Player) Duration() time.Duration {
	return positionAt(p.total, p.sampleRate)
}

// Rewind seeks back to the start of the clip.
func (p *Player) Rewind() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.dev.Seek(0, io.SeekStart)
	return err
}

// Close pauses and releases the device player. The shared context
// stays alive for the next clip.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dev.Close()
}

// pcm16Bytes converts normalized samples to 16-bit little-endian PCM.
func pcm16Bytes(samples []float32) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		v := int16(math32.Max(-1, math32.Min(1, s)) * 32767)
		out[2*i] = byte(uint16(v))
		out[2*i+1] = byte(uint16(v) >> 8)
	}
	return out
}

// positionAt converts a consumed byte count to a clip timestamp.
func positionAt(consumedBytes, sampleRate int) time.Duration {
	if consumedBytes < 0 {
		consumedBytes = 0
	}
	samples := consumedBytes / bytesPerSample
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}
