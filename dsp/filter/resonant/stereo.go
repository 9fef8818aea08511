package resonant

// Stereo runs one filter state per channel. Parameter updates apply to both
// channels; delay lines stay independent.
type Stereo struct {
	left  Filter
	right Filter
}

// NewStereo constructs a stereo helper with independent left/right state.
func NewStereo(sampleRate float64, opts ...Option) (*Stereo, error) {
	left, err := New(sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	right, err := New(sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	return &Stereo{left: *left, right: *right}, nil
}

// Left returns the left-channel filter.
func (s *Stereo) Left() *Filter { return &s.left }

// Right returns the right-channel filter.
func (s *Stereo) Right() *Filter { return &s.right }

// SetParams applies the same cutoff/resonance to both channels.
func (s *Stereo) SetParams(cutoffHz, resonanceDb float64) {
	s.left.SetParams(cutoffHz, resonanceDb)
	s.right.SetParams(cutoffHz, resonanceDb)
}

// Reset clears both delay lines.
func (s *Stereo) Reset() {
	s.left.Reset()
	s.right.Reset()
}

// ProcessSample processes one stereo sample frame.
func (s *Stereo) ProcessSample(leftIn, rightIn float32) (leftOut, rightOut float32) {
	return s.left.ProcessSample(leftIn), s.right.ProcessSample(rightIn)
}

// ProcessInPlace processes stereo planar buffers in place. Buffers may have
// different lengths; each channel filters its own full buffer.
func (s *Stereo) ProcessInPlace(left, right []float32) {
	s.left.ProcessInPlace(left)
	s.right.ProcessInPlace(right)
}
