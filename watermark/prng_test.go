// SPDX-License-Identifier: EPL-2.0

package watermark

import "testing"

func TestKeyedPrng_ZeroSeedReseeds(t *testing.T) {
	t.Parallel()

	zero := NewKeyedPrng(0)
	fixed := NewKeyedPrng(reseedConstant)

	for i := 0; i < 8; i++ {
		a := zero.NextU64()
		b := fixed.NextU64()
		if a != b {
			t.Fatalf("step %d: zero-seeded = %d, want %d (reseed constant)", i, a, b)
		}
	}
}

func TestKeyedPrng_Deterministic(t *testing.T) {
	t.Parallel()

	p1 := NewKeyedPrng(12345)
	p2 := NewKeyedPrng(12345)

	for i := 0; i < 100; i++ {
		a, b := p1.NextU64(), p2.NextU64()
		if a != b {
			t.Fatalf("step %d: diverged: %d != %d", i, a, b)
		}
	}
}

func TestKeyedPrng_NextF64Range(t *testing.T) {
	t.Parallel()

	p := NewKeyedPrng(999)
	for i := 0; i < 10000; i++ {
		v := p.NextF64()
		if v < 0 || v >= 1 {
			t.Fatalf("NextF64() = %v, want [0, 1)", v)
		}
	}
}

func TestKeyedPrng_DifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	p1 := NewKeyedPrng(1)
	p2 := NewKeyedPrng(2)

	if p1.NextU64() == p2.NextU64() {
		t.Fatal("distinct seeds produced the same first output")
	}
}
