package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	got := EnsureLen(buf, 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}

	if &got[0] != &buf[0] {
		t.Fatal("expected capacity reuse")
	}

	got = EnsureLen(buf, 32)
	if len(got) != 32 {
		t.Fatalf("len = %d, want 32", len(got))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestEnsureLen32(t *testing.T) {
	buf := make([]float32, 0, 8)

	got := EnsureLen32(buf, 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}

	got = EnsureLen32(nil, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestZero32(t *testing.T) {
	buf := []float32{1, -2, 3}
	Zero32(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	left := []float32{1, 2, 3}
	right := []float32{-1, -2, -3}

	inter := make([]float32, 6)
	Interleave32(inter, [][]float32{left, right}, 3)

	want := []float32{1, -1, 2, -2, 3, -3}
	for i := range want {
		if inter[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, inter[i], want[i])
		}
	}

	outL := make([]float32, 3)
	outR := make([]float32, 3)
	Deinterleave32([][]float32{outL, outR}, inter, 3)

	for i := range left {
		if outL[i] != left[i] || outR[i] != right[i] {
			t.Fatalf("frame %d: got (%v,%v), want (%v,%v)", i, outL[i], outR[i], left[i], right[i])
		}
	}
}
