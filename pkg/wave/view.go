package wave

// View maps the zoom slider onto a time window over a clip. The slider
// midpoint shows the whole clip; other values scale the window width
// linearly around the clip center. The midpoint and bounds are plain UI
// defaults carried in from configuration.
type View struct {
	SliderMin     int
	SliderMax     int
	SliderDefault int
	Total         float64
}

// Window returns the visible [start, end] time range for a slider
// value. Values outside the slider bounds are clamped. At the default
// value the window is exactly [0, Total]; elsewhere it is centered on
// Total/2 with width Total * value / default, so the window may extend
// past the clip edges when zoomed out.
func (v View) Window(value int) (start, end float64) {
	if value < v.SliderMin {
		value = v.SliderMin
	}
	if value > v.SliderMax {
		value = v.SliderMax
	}
	if value == v.SliderDefault {
		return 0, v.Total
	}

	scale := float64(value) / float64(v.SliderDefault)
	width := v.Total * scale
	center := v.Total / 2
	return center - width/2, center + width/2
}
