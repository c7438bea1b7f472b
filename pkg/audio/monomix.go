package audio

// MonoMixer averages the channels of a multi-channel source into mono.
// Mono input passes through untouched. Sources are not required to
// return whole frames; a trailing partial frame is carried into the
// next read.
type MonoMixer struct {
	src Source
	tmp []float32
	rem []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src, tmp: make([]float32, 4096)}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error    { return m.src.Close() }

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	total := copy(m.tmp, m.rem)
	n, err := m.src.ReadSamples(m.tmp[total:])
	total += n
	// Top up until at least one whole frame is available.
	for err == nil && n > 0 && total < channels {
		n, err = m.src.ReadSamples(m.tmp[total:])
		total += n
	}

	frames := total / channels
	m.rem = append(m.rem[:0], m.tmp[frames*channels:total]...)
	if frames == 0 {
		return 0, err
	}

	switch channels {
	case 2:
		for f := range frames {
			i := f * 2
			dst[f] = (m.tmp[i] + m.tmp[i+1]) * 0.5
		}
	default:
		inv := 1.0 / float32(channels)
		for f := range frames {
			var sum float32
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
