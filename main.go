// Package main provides the cpufetch command-line tool: a single-shot
// snapshot of the host CPU rendered next to the vendor's ASCII logo.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"cpufetch/ascii"
	"cpufetch/config"
	"cpufetch/render"
	"cpufetch/sysinfo"
)

const version = "0.2.0"

func main() {
	var (
		noLogo   bool
		logoName string
		gap      int
		width    int
		debug    bool
		showVer  bool
	)
	flag.BoolVar(&noLogo, "n", false, "disable logo display")
	flag.BoolVar(&noLogo, "no-logo", false, "disable logo display")
	flag.StringVar(&logoName, "l", "", "override logo vendor ("+strings.Join(ascii.Names(), ", ")+")")
	flag.StringVar(&logoName, "logo", "", "override logo vendor ("+strings.Join(ascii.Names(), ", ")+")")
	flag.IntVar(&gap, "gap", render.DefaultGap, "number of spaces between logo and info")
	flag.IntVar(&width, "width", render.DefaultWidth, "wrap width for the flags block")
	flag.BoolVar(&debug, "debug", false, "enable debug output (sets CPUFETCH_DEBUG)")
	flag.BoolVar(&showVer, "V", false, "print version information")
	flag.BoolVar(&showVer, "version", false, "print version information")
	flag.Parse()

	if showVer {
		fmt.Printf("cpufetch %s\n", version)
		return
	}
	if debug {
		_ = os.Setenv("CPUFETCH_DEBUG", "1")
	}

	// config file supplies defaults for flags the user did not set
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if cfg, err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
	} else {
		if cfg.NoLogo != nil && !explicit["n"] && !explicit["no-logo"] {
			noLogo = *cfg.NoLogo
		}
		if cfg.Logo != nil && !explicit["l"] && !explicit["logo"] {
			logoName = *cfg.Logo
		}
		if cfg.Gap != nil && !explicit["gap"] {
			gap = *cfg.Gap
		}
		if cfg.Width != nil && !explicit["width"] {
			width = *cfg.Width
		}
	}

	info, err := sysinfo.Collect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching CPU info: %v\n", err)
		os.Exit(1)
	}

	logo := resolveLogo(info, logoName, noLogo)
	for _, line := range render.Compose(logo, render.InfoLines(info, width), gap) {
		fmt.Println(line)
	}
}

// resolveLogo picks the logo lines to display. An unknown override
// vendor is a user error: it warns and falls back to the detected
// vendor rather than aborting. A vendor without art degrades to
// no-logo output.
func resolveLogo(info *sysinfo.CPUInfo, logoName string, noLogo bool) []string {
	if noLogo {
		return nil
	}
	vendorID := info.Vendor.ID
	if logoName != "" {
		if id, ok := ascii.LookupName(logoName); ok {
			vendorID = id
		} else {
			fmt.Fprintf(os.Stderr, "Warning: unknown logo vendor %q, using detected vendor\n", logoName)
		}
	}
	lines, ok := ascii.Lookup(vendorID)
	if !ok {
		return nil
	}
	return lines
}
