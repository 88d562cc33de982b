//go:build !linux && !darwin

// Package sysinfo - CPUID-derived facts shared by the backends that
// cannot read cache geometry or feature flags from the OS.
package sysinfo

import (
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// cpuidCaches reads the cache hierarchy from CPUID leaves. L1 and L2
// figures are per core; L3 is the full shared size.
func cpuidCaches() []rawCache {
	var raw []rawCache
	add := func(level int, typ string, bytes int, perUnit bool) {
		if bytes > 0 {
			raw = append(raw, rawCache{
				Level:   level,
				Type:    typ,
				SizeKB:  uint64(bytes) / 1024,
				PerUnit: perUnit,
			})
		}
	}
	add(1, "Instruction", cpuid.CPU.Cache.L1I, true)
	add(1, "Data", cpuid.CPU.Cache.L1D, true)
	add(2, "Unified", cpuid.CPU.Cache.L2, true)
	add(3, "Unified", cpuid.CPU.Cache.L3, false)
	return raw
}

// cpuidFlags returns the supported feature set in detection order,
// lowercased to match the /proc/cpuinfo convention.
func cpuidFlags() []string {
	features := cpuid.CPU.FeatureSet()
	tokens := make([]string, 0, len(features))
	for _, f := range features {
		tokens = append(tokens, strings.ToLower(f))
	}
	return normalizeFlags(tokens)
}
