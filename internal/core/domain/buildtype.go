package domain

import "regexp"

// BuildType is a configuration and CRT-linkage pair together with the
// pattern that detects its default CRT library in linker directives output.
// The set of values is fixed and closed.
type BuildType struct {
	Config     ConfigurationType
	CrtLinkage LinkageType
	crtPattern *regexp.Regexp
}

var (
	// BuildTypeDebugStatic is the debug configuration with the static CRT (/MTd).
	BuildTypeDebugStatic = BuildType{
		Config:     ConfigDebug,
		CrtLinkage: LinkageStatic,
		crtPattern: regexp.MustCompile(`(?i)/DEFAULTLIB:LIBCMTD`),
	}
	// BuildTypeDebugDynamic is the debug configuration with the dynamic CRT (/MDd).
	BuildTypeDebugDynamic = BuildType{
		Config:     ConfigDebug,
		CrtLinkage: LinkageDynamic,
		crtPattern: regexp.MustCompile(`(?i)/DEFAULTLIB:MSVCRTD`),
	}
	// BuildTypeReleaseStatic is the release configuration with the static CRT (/MT).
	BuildTypeReleaseStatic = BuildType{
		Config:     ConfigRelease,
		CrtLinkage: LinkageStatic,
		crtPattern: regexp.MustCompile(`(?i)/DEFAULTLIB:LIBCMT(?:[^D]|$)`),
	}
	// BuildTypeReleaseDynamic is the release configuration with the dynamic CRT (/MD).
	BuildTypeReleaseDynamic = BuildType{
		Config:     ConfigRelease,
		CrtLinkage: LinkageDynamic,
		crtPattern: regexp.MustCompile(`(?i)/DEFAULTLIB:MSVCRT(?:[^D]|$)`),
	}
)

// BuildTypes is the full, closed set of build types.
var BuildTypes = []BuildType{
	BuildTypeDebugStatic,
	BuildTypeDebugDynamic,
	BuildTypeReleaseStatic,
	BuildTypeReleaseDynamic,
}

// BuildTypeOf returns the build type for a configuration and CRT linkage.
func BuildTypeOf(config ConfigurationType, crt LinkageType) BuildType {
	for _, bt := range BuildTypes {
		if bt.Config == config && bt.CrtLinkage == crt {
			return bt
		}
	}
	// The cross product above is exhaustive for valid inputs.
	panic("unknown build type: " + string(config) + "/" + string(crt))
}

// MatchesCrt reports whether the given linker directives output references
// the default CRT library of this build type.
func (bt BuildType) MatchesCrt(directives string) bool {
	return bt.crtPattern.MatchString(directives)
}

// String returns a short description like "debug/static".
func (bt BuildType) String() string {
	return string(bt.Config) + "/" + string(bt.CrtLinkage)
}
