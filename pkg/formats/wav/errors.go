package wav

import "errors"

var ErrNotWav = errors.New("not a WAV file")
