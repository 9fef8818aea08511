package resonant_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-resofilter/dsp/filter/resonant"
)

func ExampleNew() {
	f, err := resonant.New(48000,
		resonant.WithCutoffHz(1200),
		resonant.WithResonanceDB(6),
	)
	if err != nil {
		panic(err)
	}

	out := make([]float32, 8)
	for i := range out {
		x := float32(0.8 * math.Sin(2*math.Pi*220*float64(i)/48000))
		out[i] = f.ProcessSample(x)
	}

	fmt.Printf("%.6f %.6f %.6f\n", out[0], out[1], out[2])
	// Output:
	// 0.000000 0.000136 0.000805
}

func ExampleFilter_ImpulseResponse() {
	f, err := resonant.New(48000, resonant.WithCutoffHz(2000))
	if err != nil {
		panic(err)
	}

	ir := f.ImpulseResponse(4)
	fmt.Printf("%.6f %.6f %.6f %.6f\n", ir[0], ir[1], ir[2], ir[3])
	// Output:
	// 0.015085 0.055973 0.099198 0.126532
}

func ExampleCoefficients_MagnitudeDB() {
	flat, err := resonant.New(44100, resonant.WithCutoffHz(1000))
	if err != nil {
		panic(err)
	}

	c := flat.Coefficients()
	fmt.Printf("%.2f %.2f\n", c.MagnitudeDB(100, 44100), c.MagnitudeDB(8000, 44100))

	peaked, err := resonant.New(44100,
		resonant.WithCutoffHz(1000),
		resonant.WithResonanceDB(12),
	)
	if err != nil {
		panic(err)
	}

	pc := peaked.Coefficients()
	fmt.Printf("%.2f\n", pc.MagnitudeDB(1000, 44100))
	// Output:
	// 0.04 -38.08
	// 12.00
}

func ExampleFilter_SetParams() {
	var f resonant.Filter
	f.Init(44100)

	// out-of-range values are clamped, never rejected
	f.SetParams(5, 30)
	fmt.Printf("%.0f Hz, %.0f dB\n", f.CutoffHz(), f.ResonanceDB())
	// Output:
	// 12 Hz, 20 dB
}
