// Package freqresp measures the magnitude frequency response of a streaming
// sample processor from its impulse response.
//
// The processor is reset, driven with a unit impulse, and the response is
// transformed with an FFT. This measures what the processor actually does,
// which makes it useful for cross-checking closed-form coefficient math and
// for inspecting third-party processors whose internals are opaque.
package freqresp

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-resofilter/dsp/core"
)

// Errors returned by Measure.
var (
	ErrInvalidLength     = errors.New("freqresp: length must be a power of two >= 16")
	ErrInvalidSampleRate = errors.New("freqresp: sample rate must be positive")
	ErrNilProcessor      = errors.New("freqresp: processor must not be nil")
)

// Processor is a mono sample stream processor. The resonant low-pass Filter
// satisfies it.
type Processor interface {
	ProcessSample(input float32) float32
	Reset()
}

// Response holds the measured single-sided magnitude response.
type Response struct {
	sampleRate  float64
	magnitudeDB []float64
}

// Measure resets p, feeds it an n-sample impulse, and returns the measured
// magnitude response. n must be a power of two >= 16 and long enough for the
// impulse response to decay, otherwise truncation smears the result.
func Measure(p Processor, n int, sampleRate float64) (*Response, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}

	if n < 16 || n&(n-1) != 0 {
		return nil, ErrInvalidLength
	}

	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	p.Reset()

	ir := make([]complex128, n)
	ir[0] = complex(float64(p.ProcessSample(1)), 0)
	for i := 1; i < n; i++ {
		ir[i] = complex(float64(p.ProcessSample(0)), 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("freqresp: failed to create FFT plan: %w", err)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, ir); err != nil {
		return nil, fmt.Errorf("freqresp: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	magnitudeDB := make([]float64, bins)
	for i := range bins {
		magnitudeDB[i] = core.LinearToDB(cmplx.Abs(spectrum[i]))
	}

	return &Response{
		sampleRate:  sampleRate,
		magnitudeDB: magnitudeDB,
	}, nil
}

// Bins returns the number of frequency bins (DC through Nyquist inclusive).
func (r *Response) Bins() int {
	return len(r.magnitudeDB)
}

// BinWidth returns the frequency spacing between adjacent bins in Hz.
func (r *Response) BinWidth() float64 {
	return r.sampleRate / float64(2*(len(r.magnitudeDB)-1))
}

// MagnitudeDB returns the measured magnitude in dB at the bin nearest to
// freqHz. Frequencies outside [0, Nyquist] are clamped to the edge bins.
func (r *Response) MagnitudeDB(freqHz float64) float64 {
	bin := int(math.Round(freqHz / r.BinWidth()))
	if bin < 0 {
		bin = 0
	}

	if bin >= len(r.magnitudeDB) {
		bin = len(r.magnitudeDB) - 1
	}

	return r.magnitudeDB[bin]
}

// CutoffMinus3DB returns the frequency of the first bin whose magnitude falls
// 3 dB or more below the DC bin, or Nyquist if the response never drops that
// far within the measured range.
func (r *Response) CutoffMinus3DB() float64 {
	ref := r.magnitudeDB[0]
	for i, db := range r.magnitudeDB {
		if db <= ref-3 {
			return float64(i) * r.BinWidth()
		}
	}

	return r.sampleRate / 2
}
