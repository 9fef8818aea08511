//go:build amd64 && !purego

package resonant

import (
	_ "github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/registry"   // initialize backend registry
)
