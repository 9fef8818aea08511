package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// EnsureLen32 is EnsureLen for float32 sample buffers.
func EnsureLen32(buf []float32, n int) []float32 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float32, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Zero32 sets all values in buf to 0.
func Zero32(buf []float32) {
	for i := range buf {
		buf[i] = 0
	}
}

// Deinterleave32 splits interleaved frames into per-channel planes.
// Each plane in dst must hold frames elements; src must hold
// frames*len(dst) elements.
func Deinterleave32(dst [][]float32, src []float32, frames int) {
	channels := len(dst)
	for ch := range dst {
		plane := dst[ch]
		for i := 0; i < frames; i++ {
			plane[i] = src[i*channels+ch]
		}
	}
}

// Interleave32 packs per-channel planes into interleaved frames.
// dst must hold frames*len(src) elements; each plane in src must hold
// frames elements.
func Interleave32(dst []float32, src [][]float32, frames int) {
	channels := len(src)
	for ch := range src {
		plane := src[ch]
		for i := 0; i < frames; i++ {
			dst[i*channels+ch] = plane[i]
		}
	}
}
