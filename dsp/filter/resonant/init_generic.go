//go:build (!amd64 && !arm64) || purego

package resonant

import (
	_ "github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/generic"
	_ "github.com/cwbudde/algo-resofilter/dsp/filter/resonant/internal/arch/registry"
)
