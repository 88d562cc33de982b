//go:build !linux && !darwin && !windows

// Package sysinfo - generic collection for platforms without a
// dedicated backend, layered on gopsutil with CPUID filling in what
// the OS abstraction does not carry.
package sysinfo

import (
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
)

// collectPlatform builds a best-effort snapshot from gopsutil and
// CPUID on platforms without a dedicated backend.
func collectPlatform() (*CPUInfo, error) {
	var model, vendorToken string
	var maxMHz float64

	infos, err := cpu.Info()
	if err != nil {
		debugf("gopsutil cpu.Info: %v", err)
	} else if len(infos) > 0 {
		model = strings.TrimSpace(infos[0].ModelName)
		vendorToken = infos[0].VendorID
		if infos[0].Mhz > 0 {
			maxMHz = infos[0].Mhz
		}
	}
	if model == "" {
		model = strings.TrimSpace(cpuid.CPU.BrandName)
	}
	if vendorToken == "" {
		vendorToken = cpuid.CPU.VendorString
	}

	physical, err := cpu.Counts(false)
	if err != nil || physical < 1 {
		physical = cpuid.CPU.PhysicalCores
	}
	logical, err := cpu.Counts(true)
	if err != nil || logical < 1 {
		logical = cpuid.CPU.LogicalCores
	}
	if physical < 1 {
		physical = 1
	}
	if logical < physical {
		logical = physical
	}

	flags := cpuidFlags()
	if len(flags) == 0 && len(infos) > 0 {
		flags = normalizeFlags(infos[0].Flags)
	}

	return &CPUInfo{
		Model:         model,
		Vendor:        parseVendor(vendorToken, model),
		Architecture:  runtime.GOARCH,
		ByteOrder:     nativeByteOrder(),
		PhysicalCores: physical,
		LogicalCores:  logical,
		MaxMHz:        maxMHz,
		Flags:         flags,
		Caches:        consolidateCaches(cpuidCaches(), physical),
	}, nil
}
