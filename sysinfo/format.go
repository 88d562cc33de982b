// Package sysinfo - display formatting helpers.
package sysinfo

import "fmt"

// FormatGHz formats a frequency given in MHz as GHz with three
// decimal places, e.g. 5486.0 -> "5.486 GHz".
func FormatGHz(mhz float64) string {
	return fmt.Sprintf("%.3f GHz", mhz/1000.0)
}

// FormatCacheKB formats a cache size given in KB, auto-scaling to MB
// once the figure exceeds 1000 KB.
//
// Example: FormatCacheKB(512) returns "512KB"; FormatCacheKB(16384)
// returns "16.0MB".
func FormatCacheKB(kb uint64) string {
	if kb > 1000 {
		return fmt.Sprintf("%.1fMB", float64(kb)/1024.0)
	}
	return fmt.Sprintf("%dKB", kb)
}

// FormatCores formats the core/thread summary line value.
//
// Example: FormatCores(6, 12) returns "6 cores (12 threads)".
func FormatCores(physical, logical int) string {
	return fmt.Sprintf("%d cores (%d threads)", physical, logical)
}
