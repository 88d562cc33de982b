// Package sysinfo inspects the host CPU and normalizes what the
// operating system exposes (model, vendor, topology, cache hierarchy,
// frequency, feature flags) into a single platform-agnostic snapshot.
// Platform-specific collection lives in separate files (linux.go,
// darwin.go, windows.go) selected by build tags.
package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

// ByteOrder describes the endianness of the host CPU.
type ByteOrder int

const (
	ByteOrderUnknown ByteOrder = iota
	LittleEndian
	BigEndian
)

// String returns the human-readable endianness label.
func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "Little Endian"
	case BigEndian:
		return "Big Endian"
	default:
		return "Unknown"
	}
}

// VendorID enumerates the CPU vendors this tool knows logos and
// canonical names for. Anything else is VendorUnknown with the raw
// vendor token preserved on the Vendor value.
type VendorID int

const (
	VendorUnknown VendorID = iota
	VendorAMD
	VendorIntel
	VendorApple
	VendorARM
	VendorNVIDIA
	VendorPowerPC
)

// Vendor is the normalized CPU vendor, constructed once at parse time
// and used both for display and for logo lookup. Raw keeps the
// original vendor token for display when the vendor is not recognized.
type Vendor struct {
	ID  VendorID
	Raw string
}

// canonical display keys, matching the identifiers the vendors
// themselves report (e.g. in the x86 CPUID vendor string).
var vendorNames = map[VendorID]string{
	VendorAMD:     "AuthenticAMD",
	VendorIntel:   "GenuineIntel",
	VendorApple:   "Apple",
	VendorARM:     "ARM",
	VendorNVIDIA:  "NVIDIA",
	VendorPowerPC: "PowerPC",
}

// String returns the canonical vendor key for known vendors, the raw
// token for unrecognized ones, and "Unknown" when nothing was reported.
func (v Vendor) String() string {
	if name, ok := vendorNames[v.ID]; ok {
		return name
	}
	if v.Raw != "" {
		return v.Raw
	}
	return "Unknown"
}

// Known reports whether the vendor was matched against the known set.
func (v Vendor) Known() bool {
	return v.ID != VendorUnknown
}

// CacheLevel identifies one tier of the cache hierarchy. Platforms
// with heterogeneous core clusters (Apple performance/efficiency
// splits) report per-cluster variants as distinct levels.
type CacheLevel string

const (
	CacheL1i CacheLevel = "L1i"
	CacheL1d CacheLevel = "L1d"
	CacheL2  CacheLevel = "L2"
	CacheL3  CacheLevel = "L3"

	CacheL1iP CacheLevel = "L1i_P"
	CacheL1dP CacheLevel = "L1d_P"
	CacheL2P  CacheLevel = "L2_P"
	CacheL1iE CacheLevel = "L1i_E"
	CacheL1dE CacheLevel = "L1d_E"
	CacheL2E  CacheLevel = "L2_E"
)

// cacheLevelOrder fixes the display order of cache lines so that
// repeated snapshots of the same machine render identically.
var cacheLevelOrder = []CacheLevel{
	CacheL1i, CacheL1d,
	CacheL1iP, CacheL1dP, CacheL1iE, CacheL1dE,
	CacheL2, CacheL2P, CacheL2E,
	CacheL3,
}

// Label returns the display name for the level, expanding the
// performance/efficiency cluster suffixes.
func (c CacheLevel) Label() string {
	switch {
	case len(c) > 2 && c[len(c)-2:] == "_P":
		return "P-Core " + string(c[:len(c)-2])
	case len(c) > 2 && c[len(c)-2:] == "_E":
		return "E-Core " + string(c[:len(c)-2])
	default:
		return string(c)
	}
}

// CacheInfo describes one cache level. A zero field means the figure
// is unknown; parsers reject zero and negative sizes so zero is never
// a real measurement. A level with no data at all is simply absent
// from the snapshot's cache map.
type CacheInfo struct {
	// PerUnitKB is the size of one cache unit (one core's cache for
	// private levels, one slice for shared levels) in KB.
	PerUnitKB uint64

	// TotalKB is the combined size across all units in KB.
	TotalKB uint64

	// UnitCount is the number of cache units contributing to TotalKB.
	UnitCount int
}

// CPUInfo is the normalized snapshot of the host CPU. It is built
// once per run by Collect and treated as read-only afterwards.
type CPUInfo struct {
	// Model is the marketing name, e.g. "AMD Ryzen 5 9600X 6-Core Processor".
	Model string

	// Vendor is the normalized vendor identity.
	Vendor Vendor

	// Architecture is the machine architecture string, e.g. "x86_64".
	Architecture string

	// ByteOrder is the host endianness.
	ByteOrder ByteOrder

	// PhysicalCores is the number of execution cores (>= 1).
	PhysicalCores int

	// LogicalCores is the number of hardware threads (>= PhysicalCores).
	LogicalCores int

	// MaxMHz is the maximum CPU frequency in MHz, 0 when unknown.
	MaxMHz float64

	// Flags lists unique feature tokens in detection order.
	Flags []string

	// Caches maps present cache levels to their consolidated sizes.
	Caches map[CacheLevel]CacheInfo
}

// CacheLevels returns the cache levels present in the snapshot, in
// the fixed display order.
func (c *CPUInfo) CacheLevels() []CacheLevel {
	var levels []CacheLevel
	for _, lvl := range cacheLevelOrder {
		if _, ok := c.Caches[lvl]; ok {
			levels = append(levels, lvl)
		}
	}
	return levels
}

// ErrNoIdentity is returned by Collect when neither the CPU model nor
// the vendor could be determined from any source.
var ErrNoIdentity = errors.New("could not determine CPU model or vendor")

// Collect gathers the CPU snapshot for the current host. Individual
// fields that cannot be read are left absent; the only fatal case is
// failing to determine the minimum viable identity (model + vendor).
func Collect() (*CPUInfo, error) {
	info, err := collectPlatform()
	if err != nil {
		return nil, err
	}
	if info.Model == "" && !info.Vendor.Known() && info.Vendor.Raw == "" {
		return nil, ErrNoIdentity
	}
	return info, nil
}

// nativeByteOrder detects the endianness of the running process.
func nativeByteOrder() ByteOrder {
	var probe uint16 = 0x00FF
	if *(*byte)(unsafe.Pointer(&probe)) == 0xFF {
		return LittleEndian
	}
	return BigEndian
}

// debugf prints tracing output when CPUFETCH_DEBUG is set. Collection
// code uses it to report which sources were consulted and skipped.
func debugf(format string, args ...any) {
	if os.Getenv("CPUFETCH_DEBUG") == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}
