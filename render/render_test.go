package render

import (
	"strings"
	"testing"

	"cpufetch/sysinfo"
)

func sampleInfo() *sysinfo.CPUInfo {
	return &sysinfo.CPUInfo{
		Model:         "AMD Ryzen 5 9600X 6-Core Processor",
		Vendor:        sysinfo.Vendor{ID: sysinfo.VendorAMD, Raw: "AuthenticAMD"},
		Architecture:  "x86_64",
		ByteOrder:     sysinfo.LittleEndian,
		PhysicalCores: 6,
		LogicalCores:  12,
		MaxMHz:        5486.0,
		Flags:         []string{"fpu", "vme", "sse2", "avx"},
		Caches: map[sysinfo.CacheLevel]sysinfo.CacheInfo{
			sysinfo.CacheL1d: {PerUnitKB: 48, TotalKB: 288, UnitCount: 6},
			sysinfo.CacheL2:  {PerUnitKB: 1024, TotalKB: 6144, UnitCount: 6},
			sysinfo.CacheL3:  {TotalKB: 32768, UnitCount: 1},
		},
	}
}

func TestInfoLines_FieldOrder(t *testing.T) {
	lines := InfoLines(sampleInfo(), 0)
	want := []string{
		"Name: AMD Ryzen 5 9600X 6-Core Processor",
		"Vendor: AuthenticAMD",
		"Architecture: x86_64",
		"Byte Order: Little Endian",
		"Max Frequency: 5.486 GHz",
		"Cores: 6 cores (12 threads)",
		"L1d Size: 48KB (288KB Total)",
		"L2 Size: 1.0MB (6.0MB Total)",
		"L3 Size: 32.0MB",
		"Flags: fpu, vme, sse2, avx",
	}
	if len(lines) != len(want) {
		t.Fatalf("InfoLines returned %d lines; want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, lines[i], want[i])
		}
	}
}

func TestInfoLines_OmitsUnknownFields(t *testing.T) {
	info := sampleInfo()
	info.MaxMHz = 0
	info.Caches = nil
	info.Flags = nil
	info.Architecture = ""
	info.ByteOrder = sysinfo.ByteOrderUnknown

	for _, line := range InfoLines(info, 0) {
		for _, forbidden := range []string{"Max Frequency", "Size:", "Flags:", "Architecture", "Byte Order", "0KB"} {
			if strings.Contains(line, forbidden) {
				t.Errorf("line %q should have been omitted", line)
			}
		}
	}
}

func TestInfoLines_MissingModelPlaceholder(t *testing.T) {
	info := sampleInfo()
	info.Model = ""
	lines := InfoLines(info, 0)
	if len(lines) == 0 {
		t.Fatal("InfoLines returned no lines")
	}
	if lines[0] != "Name: Unknown" {
		t.Fatalf("first line = %q; want %q", lines[0], "Name: Unknown")
	}
}

func TestInfoLines_FlagWrapping(t *testing.T) {
	info := sampleInfo()
	info.Flags = []string{
		"fpu", "vme", "de", "pse", "tsc", "msr", "pae", "mce",
		"cx8", "apic", "sep", "mtrr", "pge", "mca", "cmov", "pat",
	}
	const width = 30
	lines := InfoLines(info, width)

	var flagLines []string
	for _, line := range lines {
		if strings.HasPrefix(line, "Flags: ") || strings.HasPrefix(line, "       ") {
			flagLines = append(flagLines, line)
		}
	}
	if len(flagLines) < 2 {
		t.Fatalf("expected wrapped flags, got %v", flagLines)
	}
	for i, line := range flagLines {
		if VisibleWidth(line) > width {
			t.Errorf("flag line %d exceeds width %d: %q", i, width, line)
		}
		if i > 0 && !strings.HasPrefix(line, strings.Repeat(" ", len("Flags: "))) {
			t.Errorf("continuation line %d not indented under label: %q", i, line)
		}
	}
}

func TestInfoLines_Deterministic(t *testing.T) {
	a := strings.Join(InfoLines(sampleInfo(), 0), "\n")
	b := strings.Join(InfoLines(sampleInfo(), 0), "\n")
	if a != b {
		t.Fatalf("InfoLines not deterministic:\n%s\n---\n%s", a, b)
	}
}

func TestVisibleWidth(t *testing.T) {
	colored := "\x1b[31;1mABC\x1b[0m"
	if got := VisibleWidth(colored); got != 3 {
		t.Fatalf("VisibleWidth(%q) = %d; want 3", colored, got)
	}
	if got := VisibleWidth("plain"); got != 5 {
		t.Fatalf("VisibleWidth(plain) = %d; want 5", got)
	}
}

func TestCompose_Alignment(t *testing.T) {
	logo := []string{
		"\x1b[36;1m####\x1b[0m",
		"\x1b[36;1m########\x1b[0m",
	}
	info := []string{"Name: X", "Vendor: Y", "Cores: 1 cores (1 threads)"}
	rows := Compose(logo, info, 3)
	if len(rows) != 3 {
		t.Fatalf("Compose returned %d rows; want 3", len(rows))
	}
	// info column must start at the same visible offset on every row
	const wantOffset = 8 + 3
	for i, row := range rows {
		idx := strings.Index(row, info[i])
		if idx < 0 {
			t.Fatalf("row %d missing info line %q: %q", i, info[i], row)
		}
		if got := VisibleWidth(row[:idx]); got != wantOffset {
			t.Errorf("row %d info offset = %d; want %d (%q)", i, got, wantOffset, row)
		}
	}
}

func TestCompose_InfoLongerThanLogo(t *testing.T) {
	logo := []string{"##"}
	info := []string{"a", "b", "c"}
	rows := Compose(logo, info, 2)
	if len(rows) != 3 {
		t.Fatalf("got %d rows; want 3", len(rows))
	}
	for i := 1; i < 3; i++ {
		if !strings.HasSuffix(rows[i], info[i]) {
			t.Errorf("row %d = %q; want suffix %q", i, rows[i], info[i])
		}
	}
}

func TestCompose_NoLogo(t *testing.T) {
	info := []string{"Name: X", "Vendor: Y"}
	rows := Compose(nil, info, 3)
	if len(rows) != len(info) {
		t.Fatalf("got %d rows; want %d", len(rows), len(info))
	}
	for i := range info {
		if rows[i] != info[i] {
			t.Errorf("row %d = %q; want %q (no padding in no-logo mode)", i, rows[i], info[i])
		}
	}
}
