package domain

import (
	"regexp"
	"slices"
)

// OutdatedCrt is a deprecated dynamic CRT module that packages must not
// link against. The pattern matches the module name case-insensitively in
// dependent-module listings.
type OutdatedCrt struct {
	Name    string
	pattern *regexp.Regexp
}

func outdatedCrt(name, pattern string) OutdatedCrt {
	return OutdatedCrt{Name: name, pattern: regexp.MustCompile(`(?i)` + pattern)}
}

// MatchesDependents reports whether the module appears in the given
// dependent-module listing.
func (c OutdatedCrt) MatchesDependents(dependents string) bool {
	return c.pattern.MatchString(dependents)
}

// ToolsetV120 is the earliest toolset generation the table distinguishes.
const ToolsetV120 = "v120"

// outdatedCrtsV120 is the historical list for the v120 toolset, whose own
// runtime modules are still current.
var outdatedCrtsV120 = []OutdatedCrt{
	outdatedCrt("msvcp100.dll", `msvcp100\.dll`),
	outdatedCrt("msvcp100d.dll", `msvcp100d\.dll`),
	outdatedCrt("msvcp110.dll", `msvcp110\.dll`),
	outdatedCrt("msvcp110_win.dll", `msvcp110_win\.dll`),
	outdatedCrt("msvcp60.dll", `msvcp60\.dll`),
	outdatedCrt("msvcrt.dll", `msvcrt\.dll`),
	outdatedCrt("msvcr100.dll", `msvcr100\.dll`),
	outdatedCrt("msvcr100d.dll", `msvcr100d\.dll`),
	outdatedCrt("msvcr100_clr0400.dll", `msvcr100_clr0400\.dll`),
	outdatedCrt("msvcr110.dll", `msvcr110\.dll`),
	outdatedCrt("msvcrt20.dll", `msvcrt20\.dll`),
	outdatedCrt("msvcrt40.dll", `msvcrt40\.dll`),
}

// outdatedCrtsCurrent extends the v120 list with the v120 runtime modules
// themselves, which every later toolset generation deprecates. Clipping the
// v120 list keeps the append from writing into it.
var outdatedCrtsCurrent = append(slices.Clip(outdatedCrtsV120),
	outdatedCrt("msvcp120.dll", `msvcp120\.dll`),
	outdatedCrt("msvcp120_clr0400.dll", `msvcp120_clr0400\.dll`),
	outdatedCrt("msvcr120.dll", `msvcr120\.dll`),
	outdatedCrt("msvcr120_clr0400.dll", `msvcr120_clr0400\.dll`),
)

// OutdatedDynamicCrts returns the deprecated dynamic CRT modules for the
// given toolset version. The v120 toolset gets the historical list; every
// other version, including an empty one, gets the superset.
func OutdatedDynamicCrts(toolsetVersion string) []OutdatedCrt {
	if toolsetVersion == ToolsetV120 {
		return outdatedCrtsV120
	}
	return outdatedCrtsCurrent
}
