package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 0.5, 64)
	if len(s) != 64 {
		t.Fatalf("length = %d, want 64", len(s))
	}

	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}

	want := float32(0.5 * math.Sin(2*math.Pi*1000/48000))
	if s[1] != want {
		t.Fatalf("s[1] = %v, want %v", s[1], want)
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1, 128)
	b := DeterministicNoise(42, 1, 128)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}

		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("index %d: %v out of [-1, 1]", i, a[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := float32(0)
		if i == 3 {
			want = 1
		}

		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}

	// out-of-range position yields all zeros
	for _, v := range Impulse(4, 9) {
		if v != 0 {
			t.Fatal("expected all zeros for out-of-range impulse position")
		}
	}
}

func TestDC(t *testing.T) {
	for _, v := range DC(0.25, 16) {
		if v != 0.25 {
			t.Fatalf("got %v, want 0.25", v)
		}
	}
}
