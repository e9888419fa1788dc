// Package cpu provides CPU feature detection for FHT kernel selection.
//
// Detection runs lazily on the first call to DetectFeatures and the result
// is cached; SetForcedFeatures and ResetDetection exist so tests can steer
// kernel selection without depending on the host machine.
package cpu

import "sync"

// SIMDLevel represents a SIMD instruction set extension level.
// Higher values generally indicate wider vectors, but levels are not
// comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64, 128-bit).
	SIMDSSE2

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit).
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512 (512-bit).
	SIMDAVX512

	// SIMDNEON indicates ARM Advanced SIMD (128-bit).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2   bool
	HasAVX2   bool
	HasAVX512 bool

	HasNEON bool

	// ForceGeneric disables all SIMD-tuned kernel sets (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
// Thread-safe; the underlying probe runs at most once per process unless
// ResetDetection is called.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides hardware detection with the given features.
// Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// Intended for tests.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether the given features satisfy the SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
