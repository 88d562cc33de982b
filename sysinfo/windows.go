//go:build windows

// Package sysinfo - Windows collection.
//
// Identity and topology come from gopsutil (WMI underneath); cache
// geometry and feature flags are read straight from CPUID, which
// Windows does not otherwise expose. The registry processor key
// provides the clock when WMI does not.
package sysinfo

import (
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"golang.org/x/sys/windows/registry"
)

const processorKeyPath = `HARDWARE\DESCRIPTION\System\CentralProcessor\0`

// collectPlatform builds the snapshot on Windows.
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
	if maxMHz == 0 {
		maxMHz = registryMHz()
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

	return &CPUInfo{
		Model:         model,
		Vendor:        parseVendor(vendorToken, model),
		Architecture:  runtime.GOARCH,
		ByteOrder:     nativeByteOrder(),
		PhysicalCores: physical,
		LogicalCores:  logical,
		MaxMHz:        maxMHz,
		Flags:         cpuidFlags(),
		Caches:        consolidateCaches(cpuidCaches(), physical),
	}, nil
}

// registryMHz reads the processor base clock from the registry, the
// same key the system properties dialog uses. Returns 0 when the key
// or value is unavailable.
func registryMHz() float64 {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, processorKeyPath, registry.QUERY_VALUE)
	if err != nil {
		debugf("open registry key %s: %v", processorKeyPath, err)
		return 0
	}
	defer k.Close()
	mhz, _, err := k.GetIntegerValue("~MHz")
	if err != nil || mhz == 0 {
		return 0
	}
	return float64(mhz)
}
