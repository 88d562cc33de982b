// Package ascii provides the vendor ASCII-art logo table. Art is
// authored with $C1..$Cn color placeholders; each logo declares its
// color slots and the placeholders are substituted when the table is
// built at package init. An art string referencing a slot that was
// not declared is an authoring error and panics immediately, so it
// can never surface at render time.
package ascii

import (
	"fmt"
	"strings"

	"cpufetch/sysinfo"
)

// ANSI color codes used by the logo color slots.
const (
	ColorReset   = "\x1b[0m"
	ColorRed     = "\x1b[31;1m"
	ColorGreen   = "\x1b[32;1m"
	ColorYellow  = "\x1b[33;1m"
	ColorBlue    = "\x1b[34;1m"
	ColorMagenta = "\x1b[35;1m"
	ColorCyan    = "\x1b[36;1m"
	ColorWhite   = "\x1b[37;1m"
)

const amdArt = `$C2          '###############
$C2             ,#############
$C2                      .####
$C2              #.      .####
$C2            :##.      .####
$C2           :###.      .####
$C2           #########.   :##
$C2           #######.       ;
$C1
$C1    ###     ###      ###   #######
$C1   ## ##    #####  #####   ##     ##
$C1  ##   ##   ### #### ###   ##      ##
$C1 #########  ###  ##  ###   ##      ##
$C1##       ## ###      ###   ##     ##
$C1##       ## ###      ###   #######     `

const intelArt = `$C1  MMM                 oddl                   MMN
$C1  MMM                 dMMN                   MMN
$C1  ...  ....   ...     dMMM..      .cc.       NMN
$C1  MMM  :MMMdWMMMMMX.  dMMMMM,  .XMMMMMMNo    MMN
$C1  MMM  :MMMp    dMMM  dMMX   .NMW      WMN.  MMN
$C1  MMM  :MMM      WMM  dMMK   kMMXooooooNMMx  MMN
$C1  MMM  :MMM      NMM  dMMK   dMMX            MMN
$C1  MMM  :MMM      NMM  dMMMoo  OMM0....:Nx.   MMN
$C1  MMM  :WWW      XWW   lONMM   'xXMMMMNOc    MMN   `

const armArt = `$C1   #####  ##   # #####  ## ####  ######
$C1 ###    ####   ###      ####  ###   ###
$C1###       ##   ###      ###    ##    ###
$C1 ###    ####   ###      ###    ##    ###
$C1  ######  ##   ###      ###    ##    ###  `

const nvidiaArt = `$C1               'cccccccccccccccccccccccccc
$C1               ;oooooooooooooooooooooooool
$C1           .:::.     .oooooooooooooooooool
$C1      .:cll;   ,c:::.     cooooooooooooool
$C1   ,clo'      ;.   oolc:     ooooooooooool
$C1.cloo    ;cclo .      .olc.    coooooooool
oooo   :lo,    ;ll;    looc    :oooooooool
 oooc   ool.   ;oooc;clol    :looooooooool
  :ooc   ,ol;  ;oooooo.   .cloo;     loool
    ool;   .olc.       ,:lool        .lool
      ool:.    ,::::ccloo.        :clooool
         oolc::.            ':cclooooooool
               ;oooooooooooooooooooooooool

$C2######.  ##   ##  ##  ######   ##    ###
$C2##   ##  ##   ##  ##  ##   ##  ##   #: :#
$C2##   ##   ## ##   ##  ##   ##  ##  #######
$C2##   ##    ###    ##  ######   ## ##     ##  `

const powerpcArt = `$C1     //////                                   //////    /////
$C1    //// /// ,//// /// ///  /// /////  ///// /// ////////
$C1   */////// /// ///////////// /// /// ///// ////////////
$C1   ///     /// /// ///////// ///     ///   ///        ////.
$C1  ///      /////   //  ///     //// ///   ///          /////   `

const appleArt = `$C1                    'c.
$C2                 ,xNMM.
$C3               .OMMMMo
$C4               OMMM0,
$C5     .;loddo:' loolloddol;.
$C6   cKMMMMMMMMMMNWMMMMMMMMMM0:
$C7 .KMMMMMMMMMMMMMMMMMMMMMMMWd.
$C1 XMMMMMMMMMMMMMMMMMMMMMMMX.
$C2;MMMMMMMMMMMMMMMMMMMMMMMM:
$C3:MMMMMMMMMMMMMMMMMMMMMMMM:
$C4.MMMMMMMMMMMMMMMMMMMMMMMMX.
$C5 kMMMMMMMMMMMMMMMMMMMMMMMMWd.
$C6 .XMMMMMMMMMMMMMMMMMMMMMMMMMMk
$C7  .XMMMMMMMMMMMMMMMMMMMMMMMMK.
$C1    kMMMMMMMMMMMMMMMMMMMMMMd
$C2     ;KMMMMMMMWXXWMMMMMMMk.
$C3       .cooc,.    .,coo:.                   `

// logoTable holds the fully substituted logo lines per vendor,
// resolved once at package init.
var logoTable = map[sysinfo.VendorID][]string{
	sysinfo.VendorAMD:     mustBuild("amd", amdArt, ColorWhite, ColorRed),
	sysinfo.VendorIntel:   mustBuild("intel", intelArt, ColorCyan),
	sysinfo.VendorARM:     mustBuild("arm", armArt, ColorCyan),
	sysinfo.VendorNVIDIA:  mustBuild("nvidia", nvidiaArt, ColorGreen, ColorWhite),
	sysinfo.VendorPowerPC: mustBuild("powerpc", powerpcArt, ColorYellow),
	sysinfo.VendorApple: mustBuild("apple", appleArt,
		ColorRed, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta, ColorWhite),
}

// vendorKeys maps the CLI override names (and canonical vendor keys)
// onto vendor identities.
var vendorKeys = map[string]sysinfo.VendorID{
	"amd":          sysinfo.VendorAMD,
	"authenticamd": sysinfo.VendorAMD,
	"intel":        sysinfo.VendorIntel,
	"genuineintel": sysinfo.VendorIntel,
	"apple":        sysinfo.VendorApple,
	"arm":          sysinfo.VendorARM,
	"nvidia":       sysinfo.VendorNVIDIA,
	"powerpc":      sysinfo.VendorPowerPC,
}

// Lookup returns the logo lines for a vendor, or false when no art
// exists for it.
func Lookup(id sysinfo.VendorID) ([]string, bool) {
	lines, ok := logoTable[id]
	return lines, ok
}

// LookupName resolves a user-supplied vendor name ("intel",
// "GenuineIntel", ...) to a vendor identity with art available.
func LookupName(name string) (sysinfo.VendorID, bool) {
	id, ok := vendorKeys[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Names returns the accepted override names for help text, in a
// stable order.
func Names() []string {
	return []string{"amd", "intel", "apple", "arm", "nvidia", "powerpc"}
}

// mustBuild substitutes $Cn placeholders with the declared color
// slots and terminates each line with a reset. Lines without a
// placeholder continue the previous line's color. A placeholder with
// no matching slot panics: that is an authoring error in this file.
func mustBuild(name, art string, slots ...string) []string {
	for i, color := range slots {
		art = strings.ReplaceAll(art, fmt.Sprintf("$C%d", i+1), color)
	}
	if idx := strings.Index(art, "$C"); idx >= 0 {
		end := idx + 3
		if end > len(art) {
			end = len(art)
		}
		panic(fmt.Sprintf("ascii: logo %q references undeclared color slot %q", name, art[idx:end]))
	}
	lines := strings.Split(art, "\n")
	current := ""
	for i, line := range lines {
		if strings.Contains(line, "\x1b[") {
			current = line[strings.LastIndex(line, "\x1b["):]
			current = current[:strings.Index(current, "m")+1]
		} else if current != "" {
			line = current + line
		}
		lines[i] = line + ColorReset
	}
	return lines
}
