package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func entry(name string, level cpu.SIMDLevel, priority int) OpEntry {
	return OpEntry{
		Name:      name,
		SIMDLevel: level,
		Priority:  priority,
		ProcessBlock: func(c Coefficients, s State, dst, src []float32) State {
			return s
		},
	}
}

func TestLookupPrefersHighestPriority(t *testing.T) {
	r := &OpRegistry{}
	r.Register(entry("generic", cpu.SIMDNone, 0))
	r.Register(entry("avx2", cpu.SIMDAVX2, 20))
	r.Register(entry("sse2", cpu.SIMDSSE2, 10))

	got := r.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true})
	if got == nil || got.Name != "avx2" {
		t.Fatalf("Lookup = %v, want avx2", got)
	}

	got = r.Lookup(cpu.Features{HasSSE2: true})
	if got == nil || got.Name != "sse2" {
		t.Fatalf("Lookup = %v, want sse2", got)
	}

	got = r.Lookup(cpu.Features{})
	if got == nil || got.Name != "generic" {
		t.Fatalf("Lookup = %v, want generic", got)
	}
}

func TestLookupForceGeneric(t *testing.T) {
	r := &OpRegistry{}
	r.Register(entry("generic", cpu.SIMDNone, 0))
	r.Register(entry("avx2", cpu.SIMDAVX2, 20))

	got := r.Lookup(cpu.Features{HasAVX2: true, ForceGeneric: true})
	if got == nil || got.Name != "generic" {
		t.Fatalf("Lookup = %v, want generic", got)
	}
}

func TestLookupEmptyRegistry(t *testing.T) {
	r := &OpRegistry{}
	if got := r.Lookup(cpu.Features{}); got != nil {
		t.Fatalf("Lookup on empty registry = %v, want nil", got)
	}
}

func TestListEntriesCopies(t *testing.T) {
	r := &OpRegistry{}
	r.Register(entry("generic", cpu.SIMDNone, 0))

	list := r.ListEntries()
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}

	list[0].Name = "mutated"

	if got := r.ListEntries()[0].Name; got != "generic" {
		t.Fatalf("registry entry mutated through copy: %q", got)
	}
}
