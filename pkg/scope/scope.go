package scope

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/wavescope/pkg/config"
	"github.com/itohio/wavescope/pkg/palette"
	"github.com/itohio/wavescope/pkg/wave"
)

// Colors groups the configurable colors of the scope display.
type Colors struct {
	Positive color.Color
	Negative color.Color
	Plot     color.Color
	Grid     color.Color
	Label    color.Color
	Playhead color.Color
}

// Widget is a custom Fyne widget that displays the waveform envelope
// pair of a loaded clip. It owns the loaded buffer (and with it the
// decimation cache) plus the view state: decimation factor, zoom
// window, playhead. All mutations come from the UI event loop.
type Widget struct {
	widget.BaseWidget

	// Data (protected by mu)
	mu         sync.RWMutex
	buf        *wave.Buffer
	view       wave.View
	factor     int
	winStart   float64
	winEnd     float64
	playhead   float64
	playheadOn bool
	colors     Colors

	// Display buffers (reused for the envelope split)
	dstPos []float32
	dstNeg []float32

	sliderDefault int
	maxFactor     int
}

// New creates an empty scope widget configured from cfg; no waveform is
// drawn until SetBuffer.
func New(cfg *config.Config) *Widget {
	s := &Widget{
		factor: 1,
		colors: Colors{
			Positive: palette.MustHex(cfg.Colors.Positive),
			Negative: palette.MustHex(cfg.Colors.Negative),
			Plot:     palette.MustHex(cfg.Colors.Plot),
			Grid:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
			Label:    color.RGBA{R: 150, G: 150, B: 150, A: 255},
			Playhead: color.RGBA{R: 255, G: 255, B: 0, A: 255},
		},
		dstPos:        make([]float32, 0, 1000),
		dstNeg:        make([]float32, 0, 1000),
		sliderDefault: cfg.View.SliderDefault,
		maxFactor:     cfg.Decimation.MaxFactor,
	}
	s.view = wave.View{
		SliderMin:     cfg.View.SliderMin,
		SliderMax:     cfg.View.SliderMax,
		SliderDefault: cfg.View.SliderDefault,
	}
	s.ExtendBaseWidget(s)
	// Trigger initial refresh to display the empty scope
	s.Refresh()
	return s
}

// SetBuffer swaps in a freshly loaded clip. The previous buffer and its
// decimation cache are dropped; factor, zoom and playhead reset.
func (s *Widget) SetBuffer(buf *wave.Buffer) {
	s.mu.Lock()
	s.buf = buf
	s.factor = 1
	s.view.Total = buf.Duration()
	s.winStart, s.winEnd = s.view.Window(s.sliderDefault)
	s.playhead = 0
	s.playheadOn = false
	s.mu.Unlock()

	s.Refresh()
}

// SetFactor sets the decimation factor, clamped to [1, max]. A redraw
// happens only when the factor actually changes.
func (s *Widget) SetFactor(factor int) {
	if factor < 1 {
		factor = 1
	}
	if factor > s.maxFactor {
		factor = s.maxFactor
	}

	s.mu.Lock()
	changed := factor != s.factor
	s.factor = factor
	s.mu.Unlock()

	if changed {
		s.Refresh()
	}
}

// Factor returns the current decimation factor.
func (s *Widget) Factor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.factor
}

// SetZoom recomputes the visible window from a slider value.
func (s *Widget) SetZoom(value int) {
	s.mu.Lock()
	s.winStart, s.winEnd = s.view.Window(value)
	s.mu.Unlock()

	s.Refresh()
}

// SetPlayhead positions the playback marker. The marker is hidden when
// on is false (clip stopped or never started).
func (s *Widget) SetPlayhead(seconds float64, on bool) {
	s.mu.Lock()
	s.playhead = seconds
	s.playheadOn = on
	s.mu.Unlock()

	s.Refresh()
}

// SetTraceColors recolors the envelope traces, for the settings dialog.
func (s *Widget) SetTraceColors(positive, negative color.Color) {
	s.mu.Lock()
	s.colors.Positive = positive
	s.colors.Negative = negative
	s.mu.Unlock()

	s.Refresh()
}

// CreateRenderer creates the widget renderer.
func (s *Widget) CreateRenderer() fyne.WidgetRenderer {
	s.mu.RLock()
	bg := canvas.NewRectangle(s.colors.Plot)
	s.mu.RUnlock()

	return &scopeRenderer{
		scope:   s,
		bg:      bg,
		objects: []fyne.CanvasObject{bg},
	}
}
