// Command filter-demo plays a sawtooth tone through the resonant low-pass
// filter while sweeping the cutoff, so the effect can be heard directly.
//
// Usage:
//
//	filter-demo
//	filter-demo -note 110 -resonance 15 -seconds 8
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-resofilter/dsp/filter/resonant"
)

const (
	sampleRate = 48000

	// cutoff updates happen at control rate, not per sample; SetParams'
	// cached fast path makes the in-between calls free
	controlInterval = 128

	sweepHighHz = 8000.0
	sweepLowHz  = 80.0
)

func main() {
	note := flag.Float64("note", 55, "oscillator frequency in Hz")
	resonanceDB := flag.Float64("resonance", 12, "filter resonance in dB")
	seconds := flag.Float64("seconds", 6, "playback duration")
	flag.Parse()

	if err := run(*note, *resonanceDB, *seconds); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(noteHz, resonanceDB, seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("duration must be positive: %f", seconds)
	}

	filter, err := resonant.New(sampleRate, resonant.WithResonanceDB(resonanceDB))
	if err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	voice := &sweepVoice{
		filter:       filter,
		noteHz:       noteHz,
		resonanceDB:  resonanceDB,
		cutoffHz:     sweepHighHz,
		totalSamples: int(seconds * sampleRate),
	}

	player := ctx.NewPlayer(voice)
	player.Play()

	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}

	return player.Close()
}

// sweepVoice streams a filtered sawtooth as float32 little-endian PCM. The
// cutoff glides logarithmically from 8 kHz down to 80 Hz and back up.
type sweepVoice struct {
	filter       *resonant.Filter
	noteHz       float64
	resonanceDB  float64
	cutoffHz     float64
	phase        float64
	pos          int
	totalSamples int
}

func (v *sweepVoice) Read(p []byte) (int, error) {
	if v.pos >= v.totalSamples {
		return 0, io.EOF
	}

	n := len(p) / 4
	if remaining := v.totalSamples - v.pos; n > remaining {
		n = remaining
	}

	step := v.noteHz / sampleRate
	for i := 0; i < n; i++ {
		if v.pos%controlInterval == 0 {
			// triangle position in the sweep: 0 -> 1 -> 0
			t := 2 * float64(v.pos) / float64(v.totalSamples)
			if t > 1 {
				t = 2 - t
			}

			v.cutoffHz = sweepHighHz * math.Pow(sweepLowHz/sweepHighHz, t)
		}

		v.filter.SetParams(v.cutoffHz, v.resonanceDB)

		saw := float32(2*v.phase - 1)

		out := v.filter.ProcessSample(0.4 * saw)
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(out))

		v.phase += step
		if v.phase >= 1 {
			v.phase -= 1
		}
		v.pos++
	}

	return n * 4, nil
}
