// Package sysinfo - pure field parsers.
//
// Everything in this file turns raw text from a system source into
// typed fields. Parsers are tolerant: a missing or malformed entry
// yields an absent value, never an error that would abort the
// snapshot.
package sysinfo

import (
	"strconv"
	"strings"
)

// record is one per-logical-unit block of "key : value" lines, e.g.
// one processor stanza of /proc/cpuinfo.
type record map[string]string

// str returns the raw value for key, trimmed, and whether it exists.
func (r record) str(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// intField parses the value for key as a non-negative integer,
// returning -1 when the field is absent or malformed.
func (r record) intField(key string) int {
	v, ok := r.str(key)
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// splitRecords splits key/value text (like /proc/cpuinfo) into
// per-unit records on blank lines. Lines without a colon are ignored.
// Empty records are dropped so trailing blank lines are harmless.
func splitRecords(text string) []record {
	var recs []record
	cur := record{}
	flush := func() {
		if len(cur) > 0 {
			recs = append(recs, cur)
			cur = record{}
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		// first occurrence wins within one record
		if _, dup := cur[key]; !dup {
			cur[key] = strings.TrimSpace(value)
		}
	}
	flush()
	return recs
}

// parseSizeKB parses a cache size with an optional unit suffix.
// Accepted forms: "512 KB", "512KB", "32K", "16M", "16 MB", "8192".
// A bare number is taken as KB. Zero, negative, and malformed sizes
// are rejected.
func parseSizeKB(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '-' {
		return 0, false
	}
	mult := uint64(1)
	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "MB"):
		mult, s = 1024, s[:len(s)-2]
	case strings.HasSuffix(upper, "M"):
		mult, s = 1024, s[:len(s)-1]
	case strings.HasSuffix(upper, "KB"):
		s = s[:len(s)-2]
	case strings.HasSuffix(upper, "K"):
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n * mult, true
}

// parseFreqMHz parses a frequency in MHz, tolerating surrounding
// whitespace and a trailing "MHz" unit. Non-positive values are
// rejected.
func parseFreqMHz(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "MHZ") {
		s = strings.TrimSpace(s[:len(s)-3])
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}

// splitFlags splits a raw feature-flag string on whitespace and
// commas, dropping empty tokens.
func splitFlags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '\n'
	})
}

// normalizeFlags deduplicates feature tokens preserving first-seen
// order and dropping empties. The result is nil when no tokens remain.
func normalizeFlags(tokens []string) []string {
	var flags []string
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		flags = append(flags, tok)
	}
	return flags
}

// vendorTable maps known substrings to vendor identities. Order
// matters: the specific CPUID vendor strings come before the loose
// brand-name substrings, and the first match wins.
var vendorTable = []struct {
	substr string
	id     VendorID
}{
	{"authenticamd", VendorAMD},
	{"genuineintel", VendorIntel},
	{"apple", VendorApple},
	{"nvidia", VendorNVIDIA},
	{"powerpc", VendorPowerPC},
	{"power", VendorPowerPC},
	{"amd", VendorAMD},
	{"intel", VendorIntel},
	{"arm", VendorARM},
}

// parseVendor matches candidate strings (a vendor_id token, a brand
// string, ...) against the known-vendor table, case-insensitively.
// The first candidate that matches decides. When nothing matches the
// result is an unknown vendor carrying the first non-empty candidate.
func parseVendor(candidates ...string) Vendor {
	raw := ""
	for _, cand := range candidates {
		cand = strings.TrimSpace(cand)
		if cand == "" {
			continue
		}
		if raw == "" {
			raw = cand
		}
		lower := strings.ToLower(cand)
		for _, entry := range vendorTable {
			if strings.Contains(lower, entry.substr) {
				return Vendor{ID: entry.id, Raw: cand}
			}
		}
	}
	return Vendor{ID: VendorUnknown, Raw: raw}
}

// parseProcCPUInfo turns the full text of /proc/cpuinfo into one
// logicalRecord per processor stanza. Stanzas without a "processor"
// key (the arm64 "Features" trailer, for instance) contribute nothing.
func parseProcCPUInfo(text string) []logicalRecord {
	var recs []logicalRecord
	for _, r := range splitRecords(text) {
		idx := r.intField("processor")
		if idx < 0 {
			continue
		}
		lr := logicalRecord{
			Index:      idx,
			PhysicalID: r.intField("physical id"),
			CoreID:     r.intField("core id"),
		}
		lr.ModelName, _ = r.str("model name")
		lr.VendorToken, _ = r.str("vendor_id")
		if v, ok := r.str("cpu MHz"); ok {
			if mhz, ok := parseFreqMHz(v); ok {
				lr.MHz = mhz
			}
		}
		if v, ok := r.str("cache size"); ok {
			if kb, ok := parseSizeKB(v); ok {
				lr.CacheSizeKB = kb
			}
		}
		if v, ok := r.str("flags"); ok {
			lr.Flags = splitFlags(v)
		} else if v, ok := r.str("Features"); ok {
			// arm64 kernels report "Features" instead of "flags"
			lr.Flags = splitFlags(v)
		}
		recs = append(recs, lr)
	}
	return recs
}

// parseSysctlFlags extracts enabled feature names from "key: value"
// sysctl enumeration output, keeping keys under prefix whose value is
// 1. Used for the hw.optional.* trees on macOS.
func parseSysctlFlags(output, prefix string) []string {
	var flags []string
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, prefix) || strings.TrimSpace(value) != "1" {
			continue
		}
		if name := key[len(prefix):]; name != "" {
			flags = append(flags, name)
		}
	}
	return flags
}
