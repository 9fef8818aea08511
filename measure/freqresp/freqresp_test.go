package freqresp_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-resofilter/dsp/filter/resonant"
	"github.com/cwbudde/algo-resofilter/measure/freqresp"
)

func TestMeasureValidation(t *testing.T) {
	f, err := resonant.New(48000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := freqresp.Measure(nil, 1024, 48000); err == nil {
		t.Fatal("expected error for nil processor")
	}

	if _, err := freqresp.Measure(f, 1000, 48000); err == nil {
		t.Fatal("expected error for non-power-of-two length")
	}

	if _, err := freqresp.Measure(f, 8, 48000); err == nil {
		t.Fatal("expected error for too-short length")
	}

	if _, err := freqresp.Measure(f, 1024, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestMeasuredMatchesClosedForm(t *testing.T) {
	const (
		sampleRate = 48000.0
		n          = 4096
	)

	f, err := resonant.New(sampleRate,
		resonant.WithCutoffHz(1000),
		resonant.WithResonanceDB(0),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r, err := freqresp.Measure(f, n, sampleRate)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	if r.Bins() != n/2+1 {
		t.Fatalf("Bins() = %d, want %d", r.Bins(), n/2+1)
	}

	c := f.Coefficients()

	// compare relative to DC so the comparison is independent of the FFT
	// normalization convention
	measuredRef := r.MagnitudeDB(0)
	closedRef := c.MagnitudeDB(0, sampleRate)

	for _, bin := range []int{5, 20, 40, 85, 170, 400} {
		freq := float64(bin) * r.BinWidth()

		measured := r.MagnitudeDB(freq) - measuredRef

		closed := c.MagnitudeDB(freq, sampleRate) - closedRef
		if math.Abs(measured-closed) > 0.05 {
			t.Fatalf("bin %d (%.1f Hz): measured %v dB, closed-form %v dB",
				bin, freq, measured, closed)
		}
	}
}

func TestCutoffMinusThreeDB(t *testing.T) {
	const sampleRate = 48000.0

	f, err := resonant.New(sampleRate,
		resonant.WithCutoffHz(1000),
		resonant.WithResonanceDB(0),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r, err := freqresp.Measure(f, 4096, sampleRate)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	// this recipe's -3 dB point sits somewhat above the nominal cutoff
	got := r.CutoffMinus3DB()
	if got < 800 || got > 1600 {
		t.Fatalf("CutoffMinus3DB() = %v Hz, want within [800, 1600]", got)
	}
}

func TestMagnitudeDBClampsToEdges(t *testing.T) {
	f, err := resonant.New(44100, resonant.WithCutoffHz(500))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r, err := freqresp.Measure(f, 1024, 44100)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	if got := r.MagnitudeDB(-100); got != r.MagnitudeDB(0) {
		t.Fatalf("negative frequency not clamped to DC bin: %v", got)
	}

	if got := r.MagnitudeDB(1e9); got != r.MagnitudeDB(22050) {
		t.Fatalf("above-Nyquist frequency not clamped: %v", got)
	}
}

func TestMeasureResetsProcessor(t *testing.T) {
	f, err := resonant.New(48000, resonant.WithCutoffHz(1000))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// dirty the delay line; Measure must reset before the impulse
	for i := range 64 {
		_ = f.ProcessSample(float32(math.Sin(2 * math.Pi * float64(i) / 7)))
	}

	a, err := freqresp.Measure(f, 1024, 48000)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	b, err := freqresp.Measure(f, 1024, 48000)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	for bin := 0; bin < a.Bins(); bin++ {
		freq := float64(bin) * a.BinWidth()
		if a.MagnitudeDB(freq) != b.MagnitudeDB(freq) {
			t.Fatalf("bin %d: repeated measurements differ", bin)
		}
	}
}
