package domain

// LinkageType describes how a library or the CRT is linked.
type LinkageType string

const (
	// LinkageDynamic indicates dynamic linkage (DLLs, or the dynamic CRT).
	LinkageDynamic LinkageType = "dynamic"
	// LinkageStatic indicates static linkage (static libs, or the static CRT).
	LinkageStatic LinkageType = "static"
)

// ParseLinkageType converts a recipe string into a LinkageType.
func ParseLinkageType(s string) (LinkageType, error) {
	switch LinkageType(s) {
	case LinkageDynamic:
		return LinkageDynamic, nil
	case LinkageStatic:
		return LinkageStatic, nil
	default:
		return "", ErrInvalidLinkage
	}
}

// ConfigurationType is the build configuration of an artifact.
type ConfigurationType string

const (
	// ConfigDebug is the debug configuration.
	ConfigDebug ConfigurationType = "debug"
	// ConfigRelease is the release configuration.
	ConfigRelease ConfigurationType = "release"
)

// ParseConfigurationType converts a recipe string into a ConfigurationType.
func ParseConfigurationType(s string) (ConfigurationType, error) {
	switch ConfigurationType(s) {
	case ConfigDebug:
		return ConfigDebug, nil
	case ConfigRelease:
		return ConfigRelease, nil
	default:
		return "", ErrInvalidBuildType
	}
}

// PreBuildInfo is the snapshot of the build configuration taken before the
// package was built. It is immutable during validation.
type PreBuildInfo struct {
	// TargetArchitecture is the architecture the package was built for,
	// e.g. "x64", "x86", "arm", "arm64".
	TargetArchitecture string

	// ToolsetVersion identifies the compiler/runtime generation, e.g. "v120"
	// or "v143". Empty when the recipe does not pin one.
	ToolsetVersion string

	// BuildType is set when the recipe declares a single configuration
	// instead of the usual debug+release pair.
	BuildType ConfigurationType

	// SystemName is the target platform system name, e.g. "WindowsStore"
	// for sandboxed UWP builds.
	SystemName string
}

// SingleConfiguration reports whether the recipe declared a single build
// configuration, which disables the debug/release pairing checks.
func (p PreBuildInfo) SingleConfiguration() bool {
	return p.BuildType != ""
}

// BuildInfo describes the result of the build step. Immutable after load.
type BuildInfo struct {
	// LibraryLinkage is how the package's own libraries are linked.
	LibraryLinkage LinkageType

	// CrtLinkage is how the package links the C runtime.
	CrtLinkage LinkageType

	// Policies is the policy registry declared by the build recipe.
	Policies Policies
}
