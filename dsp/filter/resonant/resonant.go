package resonant

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

const (
	// DefaultSampleRate is used when a zero-value Filter receives parameters
	// before an explicit Init.
	DefaultSampleRate = 44100.0

	minCutoffHz    = 12.0
	minResonanceDB = -20.0
	maxResonanceDB = 20.0

	// maxNormalizedCutoff keeps the normalized frequency strictly below 1.0
	// (Nyquist), where the coefficient formulas become singular.
	maxNormalizedCutoff = 0.99

	// paramSentinel marks "never computed". A clamped cutoff can never be
	// negative, so the first SetParams after Init always recomputes.
	paramSentinel = -1.0
)

// Filter is a stateful second-order resonant low-pass processor.
//
// The zero value is usable: it passes silence until parameters are set and
// auto-initializes at DefaultSampleRate on the first SetParams. Use New or
// Init to choose the sample rate explicitly.
type Filter struct {
	sampleRate float64

	lastCutoffHz    float64
	lastResonanceDB float64

	a0, a1, a2 float64 // feedforward
	b1, b2     float64 // feedback, applied with minus signs

	x1, x2 float32 // input delay line
	y1, y2 float32 // output delay line (feedback)
}

var (
	processBlockImpl     registry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// New constructs a filter at the given sample rate with coefficients already
// computed from the configured (or default) cutoff and resonance.
func New(sampleRate float64, opts ...Option) (*Filter, error) {
	if !isFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("resonant: sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Filter{}
	f.Init(sampleRate)
	f.SetParams(cfg.cutoffHz, cfg.resonanceDB)

	return f, nil
}

// Init stores the sample rate, zeroes the delay line, and invalidates the
// cached parameters so the next SetParams call recomputes coefficients.
//
// Call it once before processing, and again whenever the stream restarts or
// the sample rate changes. The rate is taken as-is; validating it is the
// caller's job (New validates).
func (f *Filter) Init(sampleRateHz float64) {
	f.sampleRate = sampleRateHz

	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0

	f.lastCutoffHz = paramSentinel
	f.lastResonanceDB = paramSentinel
}

// SetParams derives and caches coefficients for the given cutoff (Hz) and
// resonance (dB). Out-of-range values are clamped, never rejected: cutoff is
// floored at 12 Hz, resonance limited to [-20, +20] dB.
//
// If both arguments are bit-identical to the previously applied pair the call
// returns immediately, making per-block updates from an unmodulated control
// effectively free. The delay line is never touched, so parameter changes
// mid-stream do not click.
func (f *Filter) SetParams(cutoffHz, resonanceDb float64) {
	if f.sampleRate <= 0 {
		// zero-value Filter: adopt the fallback rate and force recomputation
		f.Init(DefaultSampleRate)
	}

	if cutoffHz == f.lastCutoffHz && resonanceDb == f.lastResonanceDB {
		return
	}

	if cutoffHz < minCutoffHz {
		cutoffHz = minCutoffHz
	}

	if resonanceDb < minResonanceDB {
		resonanceDb = minResonanceDB
	}

	if resonanceDb > maxResonanceDB {
		resonanceDb = maxResonanceDB
	}

	// cutoff as a fraction of Nyquist, clipped below the formula's pole
	cutoff := 2 * cutoffHz / f.sampleRate
	if cutoff > maxNormalizedCutoff {
		cutoff = maxNormalizedCutoff
	}

	f.lastCutoffHz = cutoffHz
	f.lastResonanceDB = resonanceDb

	// Resonance dB to linear with inverted sign: higher dB gives a smaller r
	// and a sharper peak (the classic Apple AUv2 convention).
	r := math.Pow(10, 0.05*-resonanceDb)

	k := 0.5 * r * math.Sin(math.Pi*cutoff)
	c1 := 0.5 * (1 - k) / (1 + k)
	c2 := (0.5 + c1) * math.Cos(math.Pi*cutoff)
	c3 := (0.5 + c1 - c2) * 0.25

	f.a0 = 2 * c3
	f.a1 = 4 * c3
	f.a2 = 2 * c3
	f.b1 = -2 * c2
	f.b2 = 2 * c1
}

// ProcessSample filters one sample. The accumulation runs in float64 and is
// narrowed to float32 for the output and the feedback state. A NaN result is
// replaced by 0 before it is stored, so NaN cannot circulate in y1/y2.
func (f *Filter) ProcessSample(input float32) float32 {
	output := float32(f.a0*float64(input) + f.a1*float64(f.x1) + f.a2*float64(f.x2) -
		f.b1*float64(f.y1) - f.b2*float64(f.y2))
	if output != output { // NaN guard
		output = 0
	}

	f.x2 = f.x1
	f.x1 = input
	f.y2 = f.y1
	f.y1 = output

	return output
}

// Process filters min(len(dst), len(src)) samples from src into dst,
// advancing the delay line exactly as repeated ProcessSample calls would.
// dst may alias src: each output is written before the next input is read,
// so in-place filtering is safe. Zero-alloc.
func (f *Filter) Process(dst, src []float32) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}

	if n == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := registry.Coefficients{
		A0: f.a0,
		A1: f.a1,
		A2: f.a2,
		B1: f.b1,
		B2: f.b2,
	}

	state := registry.State{X1: f.x1, X2: f.x2, Y1: f.y1, Y2: f.y2}
	state = processBlockImpl(coeffs, state, dst[:n], src[:n])
	f.x1, f.x2, f.y1, f.y2 = state.X1, state.X2, state.Y1, state.Y2
}

// ProcessInPlace filters a mono buffer in place.
func (f *Filter) ProcessInPlace(buf []float32) {
	f.Process(buf, buf)
}

// Reset clears the delay line without touching coefficients or the cached
// parameters.
func (f *Filter) Reset() {
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
}

// SampleRate returns the sample rate in Hz (0 for an uninitialized zero
// value).
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// CutoffHz returns the last applied (clamped) cutoff, or 0 if no parameters
// have been applied since Init.
func (f *Filter) CutoffHz() float64 {
	if f.lastCutoffHz < minCutoffHz {
		return 0
	}

	return f.lastCutoffHz
}

// ResonanceDB returns the last applied (clamped) resonance, or 0 if no
// parameters have been applied since Init.
func (f *Filter) ResonanceDB() float64 {
	if f.lastCutoffHz < minCutoffHz {
		return 0
	}

	return f.lastResonanceDB
}

// Coefficients returns a snapshot of the current recursion coefficients.
func (f *Filter) Coefficients() Coefficients {
	return Coefficients{A0: f.a0, A1: f.a1, A2: f.a2, B1: f.b1, B2: f.b2}
}

// State contains the delay-line state for save/restore workflows.
type State struct {
	X1, X2 float32
	Y1, Y2 float32
}

// State returns a copy of the current delay-line state.
func (f *Filter) State() State {
	return State{X1: f.x1, X2: f.x2, Y1: f.y1, Y2: f.y2}
}

// SetState restores an externally saved delay-line state.
func (f *Filter) SetState(state State) error {
	if !stateIsFinite(state) {
		return fmt.Errorf("resonant: state contains NaN or Inf")
	}

	f.x1, f.x2 = state.X1, state.X2
	f.y1, f.y2 = state.Y1, state.Y2

	return nil
}

func initProcessBlockKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("resonant: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("resonant: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

func stateIsFinite(state State) bool {
	return isFinite32(state.X1) && isFinite32(state.X2) &&
		isFinite32(state.Y1) && isFinite32(state.Y2)
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func isFinite32(value float32) bool {
	return !math.IsNaN(float64(value)) && !math.IsInf(float64(value), 0)
}
