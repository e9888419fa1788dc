package fht

import (
	"testing"

	"github.com/cwbudde/algo-fht/internal/cpu"
)

func TestSelectForceGenericPicksGenericSet(t *testing.T) {
	entry := Select(cpu.Features{ForceGeneric: true})
	if entry.Name != "generic" {
		t.Fatalf("expected generic set, got %q", entry.Name)
	}
}

func TestSelectDetectedFeaturesReturnsUsableSet(t *testing.T) {
	entry := Select(cpu.DetectFeatures())

	if entry.F32.Combine == nil || entry.F64.Combine == nil {
		t.Fatalf("selected set %q has nil combine", entry.Name)
	}
	if entry.F32.BaseLogN < 1 || entry.F64.BaseLogN < 1 {
		t.Fatalf("selected set %q has degenerate cutoffs: %d/%d",
			entry.Name, entry.F32.BaseLogN, entry.F64.BaseLogN)
	}
}
