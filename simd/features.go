package simd

import "golang.org/x/sys/cpu"

// FeatureSummary reports which SIMD-relevant CPU features the runtime
// detected, for diagnostic logging only (-verbose). This package's actual
// scan loops are the portable SWAR implementations in *_generic.go /
// *_fallback.go; no code path here branches on these flags, since the
// architecture-specific assembly that once consumed them was dropped in
// favor of those portable implementations (see DESIGN.md).
func FeatureSummary() string {
	switch {
	case cpu.X86.HasAVX2:
		return "amd64, AVX2 available (unused: portable SWAR implementation only)"
	case cpu.X86.HasSSE42:
		return "amd64, SSE4.2 available (unused: portable SWAR implementation only)"
	case cpu.ARM64.HasASIMD:
		return "arm64, ASIMD available (unused: portable SWAR implementation only)"
	default:
		return "no accelerated SIMD features detected; using portable SWAR implementation"
	}
}
