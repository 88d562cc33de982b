//go:build darwin

// Package sysinfo - macOS collection.
//
// Single typed values come from the sysctl syscall via x/sys/unix.
// Feature-flag trees (hw.optional.arm.*) have no fixed key list, so
// those are enumerated by shelling out to sysctl with a prefix.
// Apple Silicon reports its performance and efficiency clusters under
// hw.perflevel0/hw.perflevel1; each cluster is recorded as its own
// set of cache levels, never merged arithmetically.
package sysinfo

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

// collectPlatform builds the snapshot on macOS.
func collectPlatform() (*CPUInfo, error) {
	model := sysctlString("machdep.cpu.brand_string")

	physical := int(sysctlUint32("hw.physicalcpu"))
	if physical == 0 {
		physical = int(sysctlUint32("machdep.cpu.core_count"))
	}
	logical := int(sysctlUint32("hw.logicalcpu"))
	if logical == 0 {
		logical = int(sysctlUint32("machdep.cpu.thread_count"))
	}
	if physical < 1 {
		physical = 1
	}
	if logical < physical {
		logical = physical
	}

	caches := darwinCaches(physical)

	// hw.cpufrequency_max is only populated on Intel Macs; Apple
	// Silicon does not expose a max frequency, which stays absent.
	var maxMHz float64
	if hz := sysctlUint64("hw.cpufrequency_max"); hz > 0 {
		maxMHz = float64(hz) / 1e6
	} else {
		debugf("hw.cpufrequency_max unavailable, omitting frequency")
	}

	byteOrder := nativeByteOrder()
	switch sysctlUint32("hw.byteorder") {
	case 1234:
		byteOrder = LittleEndian
	case 4321:
		byteOrder = BigEndian
	}

	return &CPUInfo{
		Model:         model,
		Vendor:        parseVendor(model, runtime.GOARCH),
		Architecture:  unameMachine(),
		ByteOrder:     byteOrder,
		PhysicalCores: physical,
		LogicalCores:  logical,
		MaxMHz:        maxMHz,
		Flags:         darwinFlags(),
		Caches:        caches,
	}, nil
}

// darwinCaches reads cache geometry. When the perflevel tree is
// populated (Apple Silicon), per-cluster levels are recorded under
// distinct P/E keys; otherwise the flat hw.*cachesize keys describe a
// homogeneous hierarchy.
func darwinCaches(physical int) map[CacheLevel]CacheInfo {
	caches := make(map[CacheLevel]CacheInfo)

	p0Cores := int(sysctlUint32("hw.perflevel0.physicalcpu"))
	p1Cores := int(sysctlUint32("hw.perflevel1.physicalcpu"))
	if p0Cores > 0 && p1Cores > 0 {
		addClusterCaches(caches, "hw.perflevel0.", p0Cores, CacheL1iP, CacheL1dP, CacheL2P)
		addClusterCaches(caches, "hw.perflevel1.", p1Cores, CacheL1iE, CacheL1dE, CacheL2E)

		if kb := sysctlUint64("hw.l3cachesize") / 1024; kb > 0 {
			caches[CacheL3] = CacheInfo{TotalKB: kb, UnitCount: 1}
		} else if p, e := caches[CacheL2P], caches[CacheL2E]; p.TotalKB != e.TotalKB {
			// no L3 on M-series chips; surface the larger cluster
			// cache as the shared-cache line
			shared := p.TotalKB
			if e.TotalKB > shared {
				shared = e.TotalKB
			}
			if shared > 0 {
				caches[CacheL3] = CacheInfo{TotalKB: shared, UnitCount: 1}
			}
		}
		return caches
	}

	var raw []rawCache
	if kb := sysctlUint64("hw.l1icachesize") / 1024; kb > 0 {
		raw = append(raw, rawCache{Level: 1, Type: "Instruction", SizeKB: kb, PerUnit: true})
	}
	if kb := sysctlUint64("hw.l1dcachesize") / 1024; kb > 0 {
		raw = append(raw, rawCache{Level: 1, Type: "Data", SizeKB: kb, PerUnit: true})
	}
	if kb := sysctlUint64("hw.l2cachesize") / 1024; kb > 0 {
		raw = append(raw, rawCache{Level: 2, Type: "Unified", SizeKB: kb, PerUnit: true})
	}
	if kb := sysctlUint64("hw.l3cachesize") / 1024; kb > 0 {
		raw = append(raw, rawCache{Level: 3, Type: "Unified", SizeKB: kb})
	}
	return consolidateCaches(raw, physical)
}

// addClusterCaches records the L1 and L2 entries of one perflevel
// cluster. L1 caches are per core within the cluster; the cluster L2
// is shared across it.
func addClusterCaches(caches map[CacheLevel]CacheInfo, prefix string, cores int, l1i, l1d, l2 CacheLevel) {
	if kb := sysctlUint64(prefix+"l1icachesize") / 1024; kb > 0 {
		caches[l1i] = CacheInfo{PerUnitKB: kb, TotalKB: kb * uint64(cores), UnitCount: cores}
	}
	if kb := sysctlUint64(prefix+"l1dcachesize") / 1024; kb > 0 {
		caches[l1d] = CacheInfo{PerUnitKB: kb, TotalKB: kb * uint64(cores), UnitCount: cores}
	}
	if kb := sysctlUint64(prefix+"l2cachesize") / 1024; kb > 0 {
		caches[l2] = CacheInfo{TotalKB: kb, UnitCount: 1}
	}
}

// darwinFlags collects feature flags. arm64 features live under the
// hw.optional.arm tree as 0/1 keys; x86 Macs report space-separated
// feature lists instead.
func darwinFlags() []string {
	if runtime.GOARCH == "arm64" {
		out, err := exec.Command("sysctl", "hw.optional.arm.").Output()
		if err != nil {
			debugf("sysctl hw.optional.arm.: %v", err)
			return nil
		}
		return normalizeFlags(parseSysctlFlags(string(out), "hw.optional.arm."))
	}
	var tokens []string
	for _, key := range []string{"machdep.cpu.features", "machdep.cpu.leaf7_features"} {
		if v := sysctlString(key); v != "" {
			tokens = append(tokens, splitFlags(strings.ToLower(v))...)
		}
	}
	return normalizeFlags(tokens)
}

// sysctlString returns a sysctl string value, or "" when the key is
// missing.
func sysctlString(key string) string {
	v, err := unix.Sysctl(key)
	if err != nil {
		debugf("sysctl %s: %v", key, err)
		return ""
	}
	return strings.TrimSpace(v)
}

// sysctlUint32 returns a sysctl uint32 value, or 0 when missing.
func sysctlUint32(key string) uint32 {
	v, err := unix.SysctlUint32(key)
	if err != nil {
		return 0
	}
	return v
}

// sysctlUint64 returns a sysctl uint64 value, or 0 when missing.
func sysctlUint64(key string) uint64 {
	v, err := unix.SysctlUint64(key)
	if err != nil {
		return 0
	}
	return v
}

// unameMachine returns the machine architecture string (uname -m),
// falling back to GOARCH when the syscall fails.
func unameMachine() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOARCH
	}
	machine := string(bytes.TrimRight(uts.Machine[:], "\x00"))
	if machine == "" {
		return runtime.GOARCH
	}
	return machine
}
