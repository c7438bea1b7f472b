package wave

// Decimate returns every factor-th sample of the buffer starting at
// index 0, together with the matching time axis entries. Factor 1 (and
// any factor below 1, which is clamped) returns the original slices
// without copying. Results for factors above 1 are memoized for the
// lifetime of the buffer; loading a new file means building a new
// buffer, which starts with an empty cache.
func (b *Buffer) Decimate(factor int) Trace {
	if factor <= 1 {
		return Trace{Times: b.times, Amps: b.samples}
	}
	if t, ok := b.cache[factor]; ok {
		return t
	}

	n := (len(b.samples) + factor - 1) / factor
	t := Trace{
		Times: make([]float64, 0, n),
		Amps:  make([]float32, 0, n),
	}
	for i := 0; i < len(b.samples); i += factor {
		t.Times = append(t.Times, b.times[i])
		t.Amps = append(t.Amps, b.samples[i])
	}

	b.cache[factor] = t
	return t
}
