//go:build linux

// Package sysinfo - Linux collection.
//
// The primary source is /proc/cpuinfo for identity, topology, and
// flags. The sysfs cache tree and cpufreq directory are preferred for
// cache geometry and maximum frequency, with /proc/cpuinfo fields as
// the coarse fallback.
package sysinfo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const (
	procCPUInfoPath = "/proc/cpuinfo"
	sysCacheDir     = "/sys/devices/system/cpu/cpu0/cache"
	sysCPUFreqDir   = "/sys/devices/system/cpu/cpu0/cpufreq"
)

// collectPlatform builds the snapshot on Linux. Collection order is
// fixed: topology first, then caches (which need the physical core
// count for totals), then frequency.
func collectPlatform() (*CPUInfo, error) {
	data, err := os.ReadFile(procCPUInfoPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", procCPUInfoPath, err)
	}
	recs := parseProcCPUInfo(string(data))

	physical, logical := countCores(recs)
	model, vendorToken := firstIdentity(recs)

	caches := consolidateCaches(readSysfsCaches(), physical)
	if len(caches) == 0 {
		// secondary source: the coarse "cache size" field, which on
		// x86 is the per-core L2
		if kb := coarseCacheKB(recs); kb > 0 {
			debugf("sysfs cache tree unavailable, using /proc/cpuinfo cache size")
			caches[CacheL2] = CacheInfo{
				PerUnitKB: kb,
				TotalKB:   kb * uint64(physical),
				UnitCount: physical,
			}
		}
	}

	maxMHz := readCPUFreqMHz()
	if maxMHz == 0 {
		// instantaneous readings are a last resort
		maxMHz = maxFrequency(recs)
	}

	return &CPUInfo{
		Model:         model,
		Vendor:        parseVendor(vendorToken, model),
		Architecture:  unameMachine(),
		ByteOrder:     nativeByteOrder(),
		PhysicalCores: physical,
		LogicalCores:  logical,
		MaxMHz:        maxMHz,
		Flags:         firstFlags(recs),
		Caches:        caches,
	}, nil
}

// readSysfsCaches walks the cpu0 cache tree and returns one rawCache
// per index directory. cpu0 is representative on homogeneous
// topologies, which is all the Linux kernel cache tree describes
// uniformly. L1/L2 entries are per-core, L3 is shared.
func readSysfsCaches() []rawCache {
	entries, err := os.ReadDir(sysCacheDir)
	if err != nil {
		debugf("read %s: %v", sysCacheDir, err)
		return nil
	}
	var caches []rawCache
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "index") {
			continue
		}
		dir := filepath.Join(sysCacheDir, e.Name())
		level, ok := readSysfsInt(filepath.Join(dir, "level"))
		if !ok {
			continue
		}
		typ, ok := readSysfsString(filepath.Join(dir, "type"))
		if !ok {
			continue
		}
		sizeRaw, ok := readSysfsString(filepath.Join(dir, "size"))
		if !ok {
			continue
		}
		kb, ok := parseSizeKB(sizeRaw)
		if !ok {
			continue
		}
		caches = append(caches, rawCache{
			Level:   level,
			Type:    typ,
			SizeKB:  kb,
			PerUnit: level < 3,
		})
	}
	return caches
}

// readCPUFreqMHz returns the scaling-driver maximum frequency in MHz,
// or 0 when the cpufreq tree is unavailable. cpuinfo_max_freq is the
// hardware limit; base_frequency is tried next for drivers that only
// expose the base clock.
func readCPUFreqMHz() float64 {
	for _, name := range []string{"cpuinfo_max_freq", "base_frequency"} {
		khz, ok := readSysfsInt(filepath.Join(sysCPUFreqDir, name))
		if ok && khz > 0 {
			return float64(khz) / 1000.0
		}
	}
	debugf("cpufreq tree unavailable under %s", sysCPUFreqDir)
	return 0
}

func readSysfsString(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	s := strings.TrimSpace(string(data))
	return s, s != ""
}

func readSysfsInt(path string) (int, bool) {
	s, ok := readSysfsString(path)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
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
