// Package sysinfo - topology and cache aggregation.
//
// The aggregator consumes the raw per-logical-unit records produced
// by the parsers and derives core counts and consolidated cache
// sizes. It is pure arithmetic over already-typed values; anything
// the sources did not report stays absent.
package sysinfo

// logicalRecord is the normalized raw record for one logical unit
// (one hardware thread) as reported by the platform source.
type logicalRecord struct {
	Index       int
	PhysicalID  int // -1 when the source does not report it
	CoreID      int // -1 when the source does not report it
	ModelName   string
	VendorToken string
	MHz         float64 // instantaneous reading, 0 when absent
	CacheSizeKB uint64  // coarse whole-cache figure, 0 when absent
	Flags       []string
}

// countCores derives physical and logical core counts from the
// observed records. Physical cores are counted as distinct
// (physical id, core id) pairs. When either id field was never
// reported the source cannot distinguish hyperthreads, so the
// physical count falls back to the logical count rather than
// collapsing onto the one observed id. Both results respect
// logical >= physical >= 1.
func countCores(recs []logicalRecord) (physical, logical int) {
	logical = len(recs)
	if logical < 1 {
		logical = 1
	}
	sawPhysical, sawCore := false, false
	pairs := make(map[[2]int]struct{})
	for _, r := range recs {
		if r.PhysicalID >= 0 {
			sawPhysical = true
		}
		if r.CoreID >= 0 {
			sawCore = true
		}
		pairs[[2]int{r.PhysicalID, r.CoreID}] = struct{}{}
	}
	if !sawPhysical || !sawCore {
		return logical, logical
	}
	physical = len(pairs)
	if physical == 0 {
		physical = logical
	}
	if physical > logical {
		logical = physical
	}
	return physical, logical
}

// rawCache is one cache description from a structured source (the
// sysfs cache tree, sysctl cache keys, CPUID leaves).
type rawCache struct {
	Level  int    // 1, 2, 3
	Type   string // "Data", "Instruction", "Unified"
	SizeKB uint64

	// PerUnit marks SizeKB as a per-core (or per-slice) figure that
	// must be multiplied out for the total. Shared caches report the
	// whole size directly.
	PerUnit bool
}

// cacheKey maps a raw level/type pair onto a snapshot cache level.
// Returns "" for combinations the snapshot does not track.
func cacheKey(level int, typ string) CacheLevel {
	switch level {
	case 1:
		switch typ {
		case "Instruction":
			return CacheL1i
		case "Data":
			return CacheL1d
		}
	case 2:
		return CacheL2
	case 3:
		return CacheL3
	}
	return ""
}

// consolidateCaches folds raw cache descriptions into per-level
// consolidated entries. Per-unit figures for the private levels
// (L1, L2) are multiplied by the physical core count for the total;
// shared figures (L3) are recorded as totals with no per-unit value.
// Duplicate reports for a level keep the largest figure.
func consolidateCaches(raw []rawCache, physicalCores int) map[CacheLevel]CacheInfo {
	if physicalCores < 1 {
		physicalCores = 1
	}
	caches := make(map[CacheLevel]CacheInfo)
	for _, rc := range raw {
		if rc.SizeKB == 0 {
			continue
		}
		key := cacheKey(rc.Level, rc.Type)
		if key == "" {
			continue
		}
		var entry CacheInfo
		if rc.PerUnit {
			entry = CacheInfo{
				PerUnitKB: rc.SizeKB,
				TotalKB:   rc.SizeKB * uint64(physicalCores),
				UnitCount: physicalCores,
			}
		} else {
			entry = CacheInfo{TotalKB: rc.SizeKB, UnitCount: 1}
		}
		if prev, ok := caches[key]; ok && prev.TotalKB >= entry.TotalKB {
			continue
		}
		caches[key] = entry
	}
	return caches
}

// maxFrequency returns the highest instantaneous frequency observed
// across the records, or 0 when none reported one. Used only as the
// fallback when no scaling/max-frequency source is available.
func maxFrequency(recs []logicalRecord) float64 {
	var max float64
	for _, r := range recs {
		if r.MHz > max {
			max = r.MHz
		}
	}
	return max
}

// coarseCacheKB returns the largest whole-cache figure reported in
// the records ("cache size" in /proc/cpuinfo, typically the per-core
// L2), or 0 when absent.
func coarseCacheKB(recs []logicalRecord) uint64 {
	var max uint64
	for _, r := range recs {
		if r.CacheSizeKB > max {
			max = r.CacheSizeKB
		}
	}
	return max
}

// firstIdentity returns the first non-empty model name and vendor
// token observed across the records.
func firstIdentity(recs []logicalRecord) (model, vendor string) {
	for _, r := range recs {
		if model == "" {
			model = r.ModelName
		}
		if vendor == "" {
			vendor = r.VendorToken
		}
		if model != "" && vendor != "" {
			break
		}
	}
	return model, vendor
}

// firstFlags returns the normalized flag set of the first record that
// reports any. Per-unit flag sets are identical on every supported
// platform, so one record is authoritative.
func firstFlags(recs []logicalRecord) []string {
	for _, r := range recs {
		if len(r.Flags) > 0 {
			return normalizeFlags(r.Flags)
		}
	}
	return nil
}
