// SPDX-License-Identifier: EPL-2.0

package audiowm

import (
	"fmt"
	"io"

	"github.com/ik5/audiowm/audio"
)

// LoadStereoFloat32 drains src completely and returns its samples as an
// interleaved stereo float32 buffer at src's native sample rate — the exact
// shape watermark.Embed and watermark.Extract expect ("mono input is
// duplicated into both channels for embedding").
//
// bufferSize controls the chunk size used to read from src; it does not
// affect the returned data, only the number of ReadSamples calls made.
//
// Sources with more than two channels are downmixed to mono first (via
// audio.NewMonoMixer) and then duplicated into both output channels, since
// the watermark codec only understands true stereo or mono-duplicated.
func LoadStereoFloat32(src audio.Source, bufferSize int) ([]float32, int, error) {
	switch src.Channels() {
	case 2:
		return drainStereo(src, bufferSize)
	case 1:
		return drainMonoDuplicated(src, bufferSize)
	default:
		return drainMonoDuplicated(audio.NewMonoMixer(src), bufferSize)
	}
}

func drainStereo(src audio.Source, bufferSize int) ([]float32, int, error) {
	buf := make([]float32, bufferSize-bufferSize%2)
	out := make([]float32, 0, bufferSize*4)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, src.SampleRate(), fmt.Errorf("%w", err)
		}
	}

	return out, src.SampleRate(), nil
}

func drainMonoDuplicated(src audio.Source, bufferSize int) ([]float32, int, error) {
	buf := make([]float32, bufferSize)
	out := make([]float32, 0, bufferSize*4)

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			out = append(out, buf[i], buf[i])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, src.SampleRate(), fmt.Errorf("%w", err)
		}
	}

	return out, src.SampleRate(), nil
}
