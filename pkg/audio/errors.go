package audio

import "errors"

var (
	ErrUnknownFormat = errors.New("no decoder registered for format")
	ErrNoSamples     = errors.New("stream contained no samples")
)
