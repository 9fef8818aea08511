// Package resonant provides a single-channel second-order resonant low-pass
// filter with runtime-adjustable cutoff frequency and resonance.
//
// The coefficient recipe follows Apple's classic AUv2 filter demo as carried
// into AudioKit Core: cutoff is expressed in Hz, resonance in dB, and both are
// converted to the five recursion coefficients of a biquad-style low-pass.
// Parameter updates are instantaneous coefficient swaps; the delay line is
// deliberately left untouched so that mid-stream cutoff or resonance changes
// do not click.
//
// Samples are single-precision float32 at the API boundary; the recursion
// accumulates in float64 and narrows at the output. Every computed output
// passes a NaN guard before it enters the feedback state, so a single
// pathological input cannot poison the filter permanently.
//
// The audio path never allocates, blocks, or fails: out-of-range parameters
// are clamped, never rejected. A Filter instance is not safe for concurrent
// use; confine all calls for one instance to a single goroutine (typically
// the real-time audio thread). Independent instances share no state.
package resonant
