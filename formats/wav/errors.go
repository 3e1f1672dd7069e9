package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyFloatWavSupported = errors.New("only 32-bit float WAV supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
)
