// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/thesyncim/gopus"
)

func sineWave(sampleRate, channels, n int, freq float64) []float32 {
	samples := make([]float32, n*channels)
	for i := 0; i < n; i++ {
		v := float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
		for ch := 0; ch < channels; ch++ {
			samples[i*channels+ch] = v
		}
	}
	return samples
}

func TestEncodeDecode_MonoRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 48000, 1, gopus.ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	in := sineWave(48000, 1, 48000, 440)
	if err := enc.WriteSamples(in); err != nil {
		t.Fatalf("WriteSamples: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec := Decoder{}
	src, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	var out []float32
	chunk := make([]float32, 960)
	for {
		n, err := src.ReadSamples(chunk)
		out = append(out, chunk[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples: %v", err)
		}
	}

	if len(out) < len(in) {
		t.Fatalf("decoded %d samples, want at least %d (input length)", len(out), len(in))
	}

	var energy float64
	for _, v := range out[:len(in)] {
		energy += float64(v) * float64(v)
	}
	if energy == 0 {
		t.Fatal("decoded audio has zero energy")
	}
}

func TestEncodeDecode_StereoRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 48000, 2, gopus.ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	in := sineWave(48000, 2, 24000, 220)
	if err := enc.WriteSamples(in); err != nil {
		t.Fatalf("WriteSamples: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec := Decoder{}
	src, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer src.Close()

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	var total int
	chunk := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(chunk)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples: %v", err)
		}
	}

	if total < len(in) {
		t.Fatalf("decoded %d samples, want at least %d", total, len(in))
	}
}

func TestDecode_RejectsWrongMagic(t *testing.T) {
	t.Parallel()

	dec := Decoder{}
	_, err := dec.Decode(bytes.NewReader([]byte("not an opus stream at all")))
	if err != ErrNotOpusStream {
		t.Fatalf("err = %v, want ErrNotOpusStream", err)
	}
}

func TestDecode_RejectsFutureVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = writeHeader(&buf, streamHeader{sampleRate: 48000, channels: 1, frameSize: 960})
	raw := buf.Bytes()
	raw[4] = containerVers + 1

	dec := Decoder{}
	_, err := dec.Decode(bytes.NewReader(raw))
	if err != ErrUnsupportedOpusVersion {
		t.Fatalf("err = %v, want ErrUnsupportedOpusVersion", err)
	}
}

func TestEncoder_EmptyStreamWritesOnlyHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 48000, 1, gopus.ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if buf.Len() != headerLen {
		t.Fatalf("wrote %d bytes with no samples, want exactly the %d-byte header", buf.Len(), headerLen)
	}
}
