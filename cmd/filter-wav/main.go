// Command filter-wav applies the resonant low-pass filter to a WAV file.
//
// Usage:
//
//	filter-wav -cutoff 800 input.wav output.wav
//	filter-wav -cutoff 200 -resonance 12 input.wav output.wav
//	filter-wav -cutoff 100 -sweep 8000 input.wav output.wav   # log cutoff sweep
//
// Each channel is filtered with its own independent state. With -sweep the
// cutoff glides logarithmically from -cutoff to the sweep target across the
// file, updated once per processing block.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const blockFrames = 1024

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("filter-wav failed")
	}
}

func run() error {
	cutoff := flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
	resonance := flag.Float64("resonance", 0, "resonance in dB (clamped to [-20, 20])")
	sweep := flag.Float64("sweep", 0, "sweep the cutoff to this frequency (Hz) across the file; 0 disables")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filter-wav [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Applies a resonant low-pass filter to a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() != 2 {
		flag.Usage()
		return fmt.Errorf("expected input and output paths, got %d arguments", flag.NArg())
	}

	job := filterJob{
		inputPath:   flag.Arg(0),
		outputPath:  flag.Arg(1),
		cutoffHz:    *cutoff,
		resonanceDB: *resonance,
		sweepToHz:   *sweep,
	}

	return job.process()
}
