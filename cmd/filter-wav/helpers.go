package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-resofilter/dsp/core"
	"github.com/cwbudde/algo-resofilter/dsp/filter/resonant"
)

// filterJob is one input-to-output filtering run.
type filterJob struct {
	inputPath   string
	outputPath  string
	cutoffHz    float64
	resonanceDB float64
	sweepToHz   float64
}

func (j *filterJob) process() error {
	in, err := os.Open(j.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	decoder := wav.NewDecoder(in)
	if !decoder.IsValidFile() {
		return fmt.Errorf("invalid WAV file: %s", j.inputPath)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", j.inputPath, err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	frames := len(buf.Data) / format.NumChannels

	logrus.WithFields(logrus.Fields{
		"rate":     format.SampleRate,
		"channels": format.NumChannels,
		"bits":     bitDepth,
		"frames":   frames,
	}).Info("decoded input")

	filters := make([]*resonant.Filter, format.NumChannels)
	for ch := range filters {
		f, err := resonant.New(float64(format.SampleRate),
			resonant.WithCutoffHz(j.cutoffHz),
			resonant.WithResonanceDB(j.resonanceDB),
		)
		if err != nil {
			return fmt.Errorf("failed to create filter for channel %d: %w", ch, err)
		}
		filters[ch] = f
	}

	j.filterBuffer(buf, filters, bitDepth, frames)

	return j.writeOutput(buf, bitDepth)
}

// filterBuffer filters the interleaved PCM data in place, block by block.
// The cutoff is updated once per block, which also exercises the filters'
// cached-parameter fast path when no sweep is active.
func (j *filterJob) filterBuffer(buf *audio.IntBuffer, filters []*resonant.Filter, bitDepth, frames int) {
	channels := len(filters)
	scale := float64(int(1) << (bitDepth - 1))
	offset := pcmOffset(bitDepth)

	var block []float32
	planes := make([][]float32, channels)
	for start := 0; start < frames; start += blockFrames {
		end := start + blockFrames
		if end > frames {
			end = frames
		}
		n := end - start

		cutoff := j.cutoffHz
		if j.sweepToHz > 0 {
			cutoff = sweepCutoff(j.cutoffHz, j.sweepToHz, start, frames)
		}

		block = core.EnsureLen32(block, n*channels)
		for i := range block {
			block[i] = float32(float64(buf.Data[start*channels+i]-offset) / scale)
		}

		for ch := range planes {
			planes[ch] = core.EnsureLen32(planes[ch], n)
		}
		core.Deinterleave32(planes, block, n)

		for ch, f := range filters {
			f.SetParams(cutoff, j.resonanceDB)
			f.ProcessInPlace(planes[ch])
		}

		core.Interleave32(block, planes, n)
		for i, v := range block {
			buf.Data[start*channels+i] = floatToPCM(v, scale) + offset
		}
	}
}

func (j *filterJob) writeOutput(buf *audio.IntBuffer, bitDepth int) error {
	out, err := os.Create(j.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	encoder := wav.NewEncoder(out, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	logrus.WithField("path", j.outputPath).Info("wrote output")

	return nil
}

// sweepCutoff interpolates logarithmically from fromHz to toHz over the file
// position pos in [0, total).
func sweepCutoff(fromHz, toHz float64, pos, total int) float64 {
	if total <= 1 {
		return fromHz
	}

	t := float64(pos) / float64(total-1)

	return fromHz * math.Pow(toHz/fromHz, t)
}

// pcmOffset returns the integer bias of the stored PCM samples. 8-bit WAV
// data is unsigned (0..255); every wider depth is two's complement.
func pcmOffset(bitDepth int) int {
	if bitDepth == 8 {
		return 128
	}

	return 0
}

// floatToPCM converts a float32 sample in [-1, 1] back to an integer PCM
// value for the given full-scale factor. Out-of-range samples are clipped.
func floatToPCM(v float32, scale float64) int {
	clamped := core.Clamp(float64(v), -1, 1)

	pcm := math.Round(clamped * scale)

	// full scale is asymmetric in two's complement
	if pcm > scale-1 {
		pcm = scale - 1
	}

	return int(pcm)
}
