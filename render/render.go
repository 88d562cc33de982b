// Package render merges the CPU snapshot with an optional logo into
// aligned output lines. It performs no I/O and holds no state; given
// the same snapshot it always produces the same lines.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"cpufetch/sysinfo"
)

const (
	// DefaultGap is the number of spaces between the logo column and
	// the info column.
	DefaultGap = 3

	// DefaultWidth is the terminal-width budget used for wrapping the
	// flags block. It is independent of the logo width.
	DefaultWidth = 80

	flagsLabel = "Flags: "
)

// ansiRegex matches ANSI escape codes for width measurement.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// VisibleWidth returns the terminal cell width of s, ignoring ANSI
// escape sequences and counting wide runes as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// InfoLines formats the snapshot into its ordered field lines.
// Unknown optional fields (frequency, byte order, absent cache
// levels) are omitted entirely, never rendered as zeros. width is the
// wrap budget for the flags block; non-positive means DefaultWidth.
func InfoLines(info *sysinfo.CPUInfo, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}
	model := info.Model
	if model == "" {
		model = "Unknown"
	}
	lines := []string{
		"Name: " + model,
		"Vendor: " + info.Vendor.String(),
	}
	if info.Architecture != "" {
		lines = append(lines, "Architecture: "+info.Architecture)
	}
	if info.ByteOrder != sysinfo.ByteOrderUnknown {
		lines = append(lines, "Byte Order: "+info.ByteOrder.String())
	}
	if info.MaxMHz > 0 {
		lines = append(lines, "Max Frequency: "+sysinfo.FormatGHz(info.MaxMHz))
	}
	lines = append(lines, "Cores: "+sysinfo.FormatCores(info.PhysicalCores, info.LogicalCores))
	for _, lvl := range info.CacheLevels() {
		lines = append(lines, cacheLine(lvl, info.Caches[lvl]))
	}
	lines = append(lines, wrapFlags(info.Flags, width)...)
	return lines
}

// cacheLine formats one cache level. Levels with only a total (shared
// caches, coarse fallbacks) omit the per-unit figure.
func cacheLine(lvl sysinfo.CacheLevel, c sysinfo.CacheInfo) string {
	label := lvl.Label() + " Size: "
	switch {
	case c.PerUnitKB > 0 && c.TotalKB > 0:
		return fmt.Sprintf("%s%s (%s Total)", label,
			sysinfo.FormatCacheKB(c.PerUnitKB), sysinfo.FormatCacheKB(c.TotalKB))
	case c.TotalKB > 0:
		return label + sysinfo.FormatCacheKB(c.TotalKB)
	default:
		return label + sysinfo.FormatCacheKB(c.PerUnitKB)
	}
}

// wrapFlags renders the flags block, word-wrapped to the width budget
// with continuation lines indented to align under the label. Returns
// nil when there are no flags.
func wrapFlags(flags []string, width int) []string {
	if len(flags) == 0 {
		return nil
	}
	indent := strings.Repeat(" ", len(flagsLabel))
	var lines []string
	line := flagsLabel
	for _, flag := range flags {
		switch {
		case line == flagsLabel:
			line += flag
		case VisibleWidth(line)+VisibleWidth(flag)+2 > width:
			lines = append(lines, line)
			line = indent + flag
		default:
			line += ", " + flag
		}
	}
	lines = append(lines, line)
	return lines
}

// Compose zips logo lines and info lines into rows. The logo column
// is padded to its widest visible line so the info column stays
// aligned regardless of embedded color codes; whichever column is
// shorter is padded with blanks. A nil or empty logo yields the info
// lines unchanged.
func Compose(logo, infoLines []string, gap int) []string {
	if len(logo) == 0 {
		return infoLines
	}
	if gap < 0 {
		gap = DefaultGap
	}

	logoWidth := 0
	for _, line := range logo {
		if w := VisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	rows := len(logo)
	if len(infoLines) > rows {
		rows = len(infoLines)
	}
	sep := strings.Repeat(" ", gap)

	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		var logoLine, infoLine string
		if i < len(logo) {
			logoLine = logo[i]
			if pad := logoWidth - VisibleWidth(logoLine); pad > 0 {
				logoLine += strings.Repeat(" ", pad)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}
		if i < len(infoLines) {
			infoLine = infoLines[i]
		}
		out = append(out, strings.TrimRight(logoLine+sep+infoLine, " "))
	}
	return out
}
