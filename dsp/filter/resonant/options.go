package resonant

import "fmt"

const (
	defaultCutoffHz    = 1000.0
	defaultResonanceDB = 0.0
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	cutoffHz    float64
	resonanceDB float64
}

func defaultConfig() config {
	return config{
		cutoffHz:    defaultCutoffHz,
		resonanceDB: defaultResonanceDB,
	}
}

// WithCutoffHz sets the initial cutoff in Hz. Must be finite and > 0; values
// below 12 Hz are accepted and clamped like any SetParams call.
func WithCutoffHz(cutoffHz float64) Option {
	return func(cfg *config) error {
		if !isFinite(cutoffHz) || cutoffHz <= 0 {
			return fmt.Errorf("resonant: cutoff must be > 0 and finite: %f", cutoffHz)
		}

		cfg.cutoffHz = cutoffHz

		return nil
	}
}

// WithResonanceDB sets the initial resonance in dB. Must be finite; values
// outside [-20, +20] are accepted and clamped like any SetParams call.
func WithResonanceDB(resonanceDb float64) Option {
	return func(cfg *config) error {
		if !isFinite(resonanceDb) {
			return fmt.Errorf("resonant: resonance must be finite: %f", resonanceDb)
		}

		cfg.resonanceDB = resonanceDb

		return nil
	}
}
