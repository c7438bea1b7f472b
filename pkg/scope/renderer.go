package scope

import (
	"fmt"
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/itohio/wavescope/pkg/wave"
)

// maxSegments caps the number of line segments per trace. Fyne draws
// each segment as its own canvas object, so an extra stride is applied
// on top of the user-selected decimation when a window still holds more
// points than this.
const maxSegments = 2000

// scopeRenderer renders the scope widget.
type scopeRenderer struct {
	scope *Widget

	bg       *canvas.Rectangle
	objects  []fyne.CanvasObject
	lastSize fyne.Size
}

// MinSize returns the minimum size of the widget.
func (r *scopeRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// Layout arranges the widget components.
func (r *scopeRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	if r.lastSize.Width != size.Width || r.lastSize.Height != size.Height {
		r.lastSize = size
		// Redraw with the new dimensions through Fyne's refresh cycle.
		r.scope.BaseWidget.Refresh()
	}
}

// Refresh updates the widget display.
func (r *scopeRenderer) Refresh() {
	s := r.scope

	s.mu.Lock()
	buf := s.buf
	factor := s.factor
	winStart := s.winStart
	winEnd := s.winEnd
	playhead := s.playhead
	playheadOn := s.playheadOn
	colors := s.colors

	var trace wave.Trace
	var pos, neg []float32
	if buf != nil {
		trace = buf.Decimate(factor)
		pos, neg = wave.SplitEnvelope(s.dstPos, s.dstNeg, trace.Amps)
		s.dstPos, s.dstNeg = pos, neg
	}
	s.mu.Unlock()

	size := s.Size()
	if size.Width == 0 || size.Height == 0 {
		return
	}

	// Rebuild the object list, keeping only the background.
	r.objects = []fyne.CanvasObject{r.bg}

	marginLeft := float32(50.0)
	marginRight := float32(20.0)
	marginTop := float32(20.0)
	marginBottom := float32(35.0)

	plot := plotArea{
		x:        marginLeft,
		y:        marginTop,
		w:        size.Width - marginLeft - marginRight,
		h:        size.Height - marginTop - marginBottom,
		winStart: winStart,
		winEnd:   winEnd,
	}
	if plot.w <= 0 || plot.h <= 0 {
		return
	}

	r.drawGrid(plot, colors)

	if buf != nil && len(trace.Times) > 1 {
		i0, i1 := visibleRange(trace.Times, winStart, winEnd)
		stride := renderStride(i1-i0, maxSegments)
		r.drawTrace(plot, trace.Times, pos, i0, i1, stride, colors.Positive)
		r.drawTrace(plot, trace.Times, neg, i0, i1, stride, colors.Negative)
	}

	if playheadOn && playhead >= winStart && playhead <= winEnd {
		line := canvas.NewLine(colors.Playhead)
		x := plot.timeToX(playhead)
		line.Position1 = fyne.NewPos(x, plot.y)
		line.Position2 = fyne.NewPos(x, plot.y+plot.h)
		line.StrokeWidth = 2
		r.objects = append(r.objects, line)
	}

	r.drawStatus(plot, factor, colors)
}

// plotArea maps clip coordinates onto widget pixels. Amplitude range is
// fixed to [-1, 1], matching the normalized buffer.
type plotArea struct {
	x, y, w, h float32
	winStart   float64
	winEnd     float64
}

func (p plotArea) timeToX(t float64) float32 {
	span := p.winEnd - p.winStart
	if span <= 0 {
		return p.x
	}
	return p.x + float32((t-p.winStart)/span)*p.w
}

func (p plotArea) ampToY(a float32) float32 {
	return p.y + (1-a)/2*p.h
}

// visibleRange returns the index span [i0, i1) of times falling inside
// the window, widened by one point on each side so trace lines run to
// the plot edges.
func visibleRange(times []float64, start, end float64) (int, int) {
	i0 := sort.SearchFloat64s(times, start)
	i1 := sort.SearchFloat64s(times, end)
	if i0 > 0 {
		i0--
	}
	if i1 < len(times) {
		i1++
	}
	return i0, i1
}

// renderStride returns the extra stride needed to keep a point count
// under the segment cap.
func renderStride(points, maxPoints int) int {
	if points <= maxPoints {
		return 1
	}
	return (points + maxPoints - 1) / maxPoints
}

func (r *scopeRenderer) drawTrace(plot plotArea, times []float64, amps []float32, i0, i1, stride int, col color.Color) {
	var prev fyne.Position
	first := true
	for i := i0; i < i1; i += stride {
		pt := fyne.NewPos(plot.timeToX(times[i]), plot.ampToY(amps[i]))
		if !first {
			line := canvas.NewLine(col)
			line.Position1 = prev
			line.Position2 = pt
			line.StrokeWidth = 1.5
			r.objects = append(r.objects, line)
		}
		prev = pt
		first = false
	}
}

// drawGrid draws the oscilloscope-style grid with amplitude and time labels.
func (r *scopeRenderer) drawGrid(plot plotArea, colors Colors) {
	// Horizontal grid lines (amplitude, +1 at the top)
	numHLines := 8
	for i := 0; i <= numHLines; i++ {
		y := plot.y + float32(i)*plot.h/float32(numHLines)
		line := canvas.NewLine(colors.Grid)
		line.Position1 = fyne.NewPos(plot.x, y)
		line.Position2 = fyne.NewPos(plot.x+plot.w, y)
		line.StrokeWidth = 1
		r.objects = append(r.objects, line)

		amp := 1 - 2*float64(i)/float64(numHLines)
		text := canvas.NewText(fmt.Sprintf("%.2f", amp), colors.Label)
		text.TextSize = 10
		text.Alignment = fyne.TextAlignTrailing
		text.Move(fyne.NewPos(plot.x-5, y-6))
		r.objects = append(r.objects, text)
	}

	// Vertical grid lines (time)
	numVLines := 10
	span := plot.winEnd - plot.winStart
	for i := 0; i <= numVLines; i++ {
		x := plot.x + float32(i)*plot.w/float32(numVLines)
		line := canvas.NewLine(colors.Grid)
		line.Position1 = fyne.NewPos(x, plot.y)
		line.Position2 = fyne.NewPos(x, plot.y+plot.h)
		line.StrokeWidth = 1
		r.objects = append(r.objects, line)

		t := plot.winStart + span*float64(i)/float64(numVLines)
		text := canvas.NewText(fmt.Sprintf("%.2fs", t), colors.Label)
		text.TextSize = 10
		text.Alignment = fyne.TextAlignCenter
		text.Move(fyne.NewPos(x-20, plot.y+plot.h+5))
		r.objects = append(r.objects, text)
	}
}

// drawStatus draws the decimation status in the top-right corner.
func (r *scopeRenderer) drawStatus(plot plotArea, factor int, colors Colors) {
	msg := "Full resolution"
	if factor > 1 {
		msg = fmt.Sprintf("Downscale: %d", factor)
	}
	text := canvas.NewText(msg, colors.Label)
	text.TextSize = 11
	text.Alignment = fyne.TextAlignTrailing
	text.Move(fyne.NewPos(plot.x+plot.w-5, plot.y+5))
	r.objects = append(r.objects, text)
}

// Objects returns all canvas objects for rendering.
func (r *scopeRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up resources.
func (r *scopeRenderer) Destroy() {
	// Cleanup handled by Fyne
}
