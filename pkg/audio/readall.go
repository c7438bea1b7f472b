package audio

import "io"

// ReadAll drains a source into a single sample slice. bufSize is the
// read chunk size in samples; values below 1 fall back to 4096. Returns
// ErrNoSamples when the stream ends without producing any data.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize < 1 {
		bufSize = 4096
	}

	var out []float32
	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}

	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}
