package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func zoomView(total float64) View {
	return View{SliderMin: 1, SliderMax: 1000, SliderDefault: 500, Total: total}
}

func TestViewWindow_DefaultSpansWholeClip(t *testing.T) {
	v := zoomView(10.0)

	start, end := v.Window(500)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 10.0, end)
}

func TestViewWindow_CenteredWithLinearWidth(t *testing.T) {
	v := zoomView(10.0)

	tests := []struct {
		value int
		width float64
	}{
		{250, 5.0},
		{100, 2.0},
		{750, 15.0},
		{1000, 20.0},
	}

	for _, tt := range tests {
		start, end := v.Window(tt.value)
		assert.InDelta(t, tt.width, end-start, 1e-9, "value %d", tt.value)
		assert.InDelta(t, 5.0, (start+end)/2, 1e-9, "value %d", tt.value)
	}
}

func TestViewWindow_ClampsOutOfRangeValues(t *testing.T) {
	v := zoomView(10.0)

	loStart, loEnd := v.Window(-5)
	wantStart, wantEnd := v.Window(1)
	assert.Equal(t, wantStart, loStart)
	assert.Equal(t, wantEnd, loEnd)

	hiStart, hiEnd := v.Window(2000)
	wantStart, wantEnd = v.Window(1000)
	assert.Equal(t, wantStart, hiStart)
	assert.Equal(t, wantEnd, hiEnd)
}
