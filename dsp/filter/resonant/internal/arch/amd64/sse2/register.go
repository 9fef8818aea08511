//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "sse2",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		ProcessBlock: processBlock,
	})
}

// processBlock is a 2x-unrolled scalar kernel selected for SSE2-capable CPUs.
// The feedback recursion is serial, so unrolling reduces loop overhead while
// keeping the reference semantics (including the NaN guard) exact.
func processBlock(c registry.Coefficients, s registry.State, dst, src []float32) registry.State {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	x1, x2 := s.X1, s.X2
	y1, y2 := s.Y1, s.Y2

	i := 0

	n := len(src)
	for ; i+1 < n; i += 2 {
		xa := src[i]
		ya := float32(a0*float64(xa) + a1*float64(x1) + a2*float64(x2) -
			b1*float64(y1) - b2*float64(y2))
		if ya != ya {
			ya = 0
		}

		xb := src[i+1]
		yb := float32(a0*float64(xb) + a1*float64(xa) + a2*float64(x1) -
			b1*float64(ya) - b2*float64(y1))
		if yb != yb {
			yb = 0
		}

		x2 = xa
		x1 = xb
		y2 = ya
		y1 = yb

		dst[i] = ya
		dst[i+1] = yb
	}

	if i < n {
		x := src[i]
		y := float32(a0*float64(x) + a1*float64(x1) + a2*float64(x2) -
			b1*float64(y1) - b2*float64(y2))
		if y != y {
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
