// SPDX-License-Identifier: EPL-2.0

package audiowm

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/audiowm/internal/audiotest"
)

func TestLoadStereoFloat32_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 44100, 440.0)

	samples, rate, err := LoadStereoFloat32(src, 4096)
	if err != nil && err != io.EOF {
		t.Fatalf("LoadStereoFloat32() error = %v", err)
	}

	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}

	if len(samples) != 44100*2 {
		t.Errorf("len(samples) = %d, want %d", len(samples), 44100*2)
	}
}

func TestLoadStereoFloat32_MonoDuplicated(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 1, 1000, 0.25)

	samples, rate, err := LoadStereoFloat32(src, 4096)
	if err != nil && err != io.EOF {
		t.Fatalf("LoadStereoFloat32() error = %v", err)
	}

	if rate != 16000 {
		t.Errorf("rate = %d, want 16000", rate)
	}

	if len(samples) != 1000*2 {
		t.Fatalf("len(samples) = %d, want %d", len(samples), 1000*2)
	}

	for i := 0; i < len(samples); i += 2 {
		if samples[i] != samples[i+1] {
			t.Fatalf("mono duplication mismatch at frame %d: L=%v R=%v", i/2, samples[i], samples[i+1])
		}
		if math.Abs(float64(samples[i]-0.25)) > 1e-6 {
			t.Errorf("samples[%d] = %v, want 0.25", i, samples[i])
		}
	}
}

func TestLoadStereoFloat32_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 0)

	samples, _, err := LoadStereoFloat32(src, 4096)
	if err != nil && err != io.EOF {
		t.Fatalf("LoadStereoFloat32() error = %v", err)
	}

	if len(samples) != 0 {
		t.Errorf("len(samples) = %d, want 0", len(samples))
	}
}

func BenchmarkLoadStereoFloat32(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.NewSineSource(44100, 2, 44100, 440.0)
		_, _, _ = LoadStereoFloat32(src, 4096)
	}
}
