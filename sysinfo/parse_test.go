package sysinfo

import (
	"reflect"
	"testing"
)

const sampleCPUInfo = `processor	: 0
vendor_id	: AuthenticAMD
model name	: AMD Ryzen 5 9600X 6-Core Processor
physical id	: 0
core id		: 0
cpu MHz		: 5486.000
cache size	: 1024 KB
flags		: fpu vme sse2 avx sse2

processor	: 1
vendor_id	: AuthenticAMD
model name	: AMD Ryzen 5 9600X 6-Core Processor
physical id	: 0
core id		: 0
cpu MHz		: 3900.000
cache size	: 1024 KB
flags		: fpu vme sse2 avx sse2
`

func TestSplitRecords(t *testing.T) {
	recs := splitRecords(sampleCPUInfo)
	if len(recs) != 2 {
		t.Fatalf("splitRecords returned %d records; want 2", len(recs))
	}
	if v, _ := recs[0].str("vendor_id"); v != "AuthenticAMD" {
		t.Errorf("vendor_id = %q; want AuthenticAMD", v)
	}
	if got := recs[1].intField("processor"); got != 1 {
		t.Errorf("processor = %d; want 1", got)
	}
	if got := recs[0].intField("missing"); got != -1 {
		t.Errorf("absent intField = %d; want -1", got)
	}
}

func TestParseSizeKB(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"512 KB", 512, true},
		{"512KB", 512, true},
		{"32K", 32, true},
		{"16M", 16384, true},
		{"16 MB", 16384, true},
		{"8192", 8192, true},
		{" 1024 ", 1024, true},
		{"0", 0, false},
		{"-48", 0, false},
		{"junk", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseSizeKB(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseSizeKB(%q) = (%d, %v); want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseFreqMHz(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"5486.000", 5486, true},
		{" 2400 MHz ", 2400, true},
		{"3600.5MHz", 3600.5, true},
		{"0", 0, false},
		{"-100", 0, false},
		{"fast", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseFreqMHz(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseFreqMHz(%q) = (%v, %v); want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeFlags(t *testing.T) {
	got := normalizeFlags([]string{"sse2", "avx", "sse2"})
	want := []string{"sse2", "avx"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeFlags = %v; want %v", got, want)
	}
	if got := normalizeFlags([]string{"", "  ", ""}); got != nil {
		t.Fatalf("normalizeFlags(empty tokens) = %v; want nil", got)
	}
}

func TestSplitFlags(t *testing.T) {
	got := splitFlags("fpu vme,\tsse2  avx")
	want := []string{"fpu", "vme", "sse2", "avx"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitFlags = %v; want %v", got, want)
	}
}

func TestParseVendor(t *testing.T) {
	tests := []struct {
		candidates []string
		wantID     VendorID
		wantString string
	}{
		{[]string{"AuthenticAMD"}, VendorAMD, "AuthenticAMD"},
		{[]string{"GenuineIntel"}, VendorIntel, "GenuineIntel"},
		{[]string{"", "Apple M2 Pro"}, VendorApple, "Apple"},
		{[]string{"Intel(R) Core(TM) i7"}, VendorIntel, "GenuineIntel"},
		{[]string{"NVIDIA"}, VendorNVIDIA, "NVIDIA"},
		{[]string{"WeirdCorp"}, VendorUnknown, "WeirdCorp"},
		{[]string{""}, VendorUnknown, "Unknown"},
	}
	for _, tc := range tests {
		v := parseVendor(tc.candidates...)
		if v.ID != tc.wantID {
			t.Errorf("parseVendor(%v).ID = %v; want %v", tc.candidates, v.ID, tc.wantID)
		}
		if v.String() != tc.wantString {
			t.Errorf("parseVendor(%v).String() = %q; want %q", tc.candidates, v.String(), tc.wantString)
		}
	}
}

func TestParseProcCPUInfo(t *testing.T) {
	recs := parseProcCPUInfo(sampleCPUInfo)
	if len(recs) != 2 {
		t.Fatalf("parseProcCPUInfo returned %d records; want 2", len(recs))
	}
	r := recs[0]
	if r.Index != 0 || r.PhysicalID != 0 || r.CoreID != 0 {
		t.Errorf("record ids = (%d, %d, %d); want (0, 0, 0)", r.Index, r.PhysicalID, r.CoreID)
	}
	if r.ModelName != "AMD Ryzen 5 9600X 6-Core Processor" {
		t.Errorf("model = %q", r.ModelName)
	}
	if r.MHz != 5486 {
		t.Errorf("MHz = %v; want 5486", r.MHz)
	}
	if r.CacheSizeKB != 1024 {
		t.Errorf("CacheSizeKB = %d; want 1024", r.CacheSizeKB)
	}
	if len(r.Flags) != 5 {
		t.Errorf("raw flags = %v; want 5 tokens", r.Flags)
	}
}

func TestParseProcCPUInfo_MissingIDs(t *testing.T) {
	recs := parseProcCPUInfo("processor: 0\nmodel name: Some ARM Core\n\nprocessor: 1\n")
	if len(recs) != 2 {
		t.Fatalf("got %d records; want 2", len(recs))
	}
	for _, r := range recs {
		if r.PhysicalID != -1 || r.CoreID != -1 {
			t.Errorf("record %d ids = (%d, %d); want (-1, -1)", r.Index, r.PhysicalID, r.CoreID)
		}
	}
}

func TestParseSysctlFlags(t *testing.T) {
	out := "hw.optional.arm.FEAT_AES: 1\n" +
		"hw.optional.arm.FEAT_SHA512: 1\n" +
		"hw.optional.arm.FEAT_SME: 0\n" +
		"hw.optional.armv8_1_atomics: 1\n"
	got := parseSysctlFlags(out, "hw.optional.arm.")
	want := []string{"FEAT_AES", "FEAT_SHA512"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSysctlFlags = %v; want %v", got, want)
	}
}
