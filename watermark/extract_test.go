// SPDX-License-Identifier: EPL-2.0

package watermark

import "testing"

func TestExtract_RejectsOddSampleCount(t *testing.T) {
	t.Parallel()

	bank, err := NewCarrierBank([]byte("s"), 4, 64)
	if err != nil {
		t.Fatalf("NewCarrierBank: %v", err)
	}

	_, err = Extract(make([]float32, 257), bank, Options{HopSize: 16})
	if err != ErrOddSampleCount {
		t.Errorf("err = %v, want %v", err, ErrOddSampleCount)
	}
}

func TestExtract_Silence_ZeroConfidence(t *testing.T) {
	t.Parallel()

	const hop = 64
	bank, err := NewCarrierBank([]byte("silent-extract"), 4, hop*4)
	if err != nil {
		t.Fatalf("NewCarrierBank: %v", err)
	}

	frames := hop * 4 * 8
	silence := make([]float32, frames*2)

	result, err := Extract(silence, bank, Options{HopSize: hop})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0 on silent input", result.Confidence)
	}
	for k, c := range result.Correlations {
		if c != 0 {
			t.Errorf("Correlations[%d] = %v, want 0 on silent input", k, c)
		}
	}
}

func TestExtract_BlocksAnalyzedMatchesBlockCount(t *testing.T) {
	t.Parallel()

	const hop = 32
	bank, err := NewCarrierBank([]byte("count"), 4, hop*4)
	if err != nil {
		t.Fatalf("NewCarrierBank: %v", err)
	}

	frames := hop * 4 * 10
	audio := syntheticAudio(frames * 2)

	result, err := Extract(audio, bank, Options{HopSize: hop})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if result.BlocksAnalyzed != 10 {
		t.Errorf("BlocksAnalyzed = %d, want 10", result.BlocksAnalyzed)
	}
	if len(result.Correlations) != 10 || len(result.HardBits) != 10 {
		t.Errorf("len(Correlations) = %d, len(HardBits) = %d, want 10 each",
			len(result.Correlations), len(result.HardBits))
	}
}

func TestExtract_DropsShortTailBlock(t *testing.T) {
	t.Parallel()

	const hop = 32
	l := hop * 4
	bank, err := NewCarrierBank([]byte("tail"), 4, l)
	if err != nil {
		t.Fatalf("NewCarrierBank: %v", err)
	}

	frames := l*3 + l/2 // three full blocks plus a half block
	audio := syntheticAudio(frames * 2)

	result, err := Extract(audio, bank, Options{HopSize: hop})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if result.BlocksAnalyzed != 3 {
		t.Errorf("BlocksAnalyzed = %d, want 3 (trailing partial block dropped)", result.BlocksAnalyzed)
	}
}

func TestExtract_HardBitsMatchCorrelationSign(t *testing.T) {
	t.Parallel()

	const hop = 128
	payload := []byte{1, 0, 1, 0, 0, 1}
	bank, err := NewCarrierBank([]byte("sign-check"), len(payload), hop*4)
	if err != nil {
		t.Fatalf("NewCarrierBank: %v", err)
	}

	frames := hop * 4 * len(payload) * 4
	audio := syntheticAudio(frames * 2)

	embedded, err := Embed(audio, payload, bank, Options{HopSize: hop})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	result, err := Extract(embedded, bank, Options{HopSize: hop})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for k, corr := range result.Correlations {
		want := byte(0)
		if corr > 0 {
			want = 1
		}
		if result.HardBits[k] != want {
			t.Errorf("block %d: HardBits = %d, want %d (sign of correlation %v)", k, result.HardBits[k], want, corr)
		}
	}
}
