// Package generic registers the portable scalar kernel. It is the reference
// implementation every other kernel must match sample-for-sample.
package generic

import (
	"github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: processBlock,
	})
}

func processBlock(c registry.Coefficients, s registry.State, dst, src []float32) registry.State {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	x1, x2 := s.X1, s.X2
	y1, y2 := s.Y1, s.Y2

	for i, x := range src {
		y := float32(a0*float64(x) + a1*float64(x1) + a2*float64(x2) -
			b1*float64(y1) - b2*float64(y2))
		if y != y { // NaN guard
			y = 0
		}

		x2 = x1
		x1 = x
		y2 = y1
		y1 = y
		dst[i] = y
	}

	return registry.State{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
