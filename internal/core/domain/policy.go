package domain

// Policy is a named switch a build recipe can enable to opt out of a
// specific validation rule. All policies default to disabled (strict).
type Policy string

const (
	// PolicyEmptyIncludeFolder allows the include directory to be empty or absent.
	PolicyEmptyIncludeFolder Policy = "empty-include-folder"
	// PolicyDLLsWithoutLibs allows DLLs to ship without matching import libs.
	PolicyDLLsWithoutLibs Policy = "dlls-without-libs"
	// PolicyAllowObsoleteMsvcrt allows linking outdated dynamic CRT modules.
	PolicyAllowObsoleteMsvcrt Policy = "allow-obsolete-msvcrt"
	// PolicyOnlyReleaseCrt allows debug libs to link the release CRT.
	PolicyOnlyReleaseCrt Policy = "only-release-crt"
	// PolicyEmptyPackage suppresses the whole suite for intentionally empty packages.
	PolicyEmptyPackage Policy = "empty-package"
)

// knownPolicies is the closed set of recognized policy names.
var knownPolicies = map[Policy]bool{
	PolicyEmptyIncludeFolder:  true,
	PolicyDLLsWithoutLibs:     true,
	PolicyAllowObsoleteMsvcrt: true,
	PolicyOnlyReleaseCrt:      true,
	PolicyEmptyPackage:        true,
}

// ParsePolicy converts a recipe string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if !knownPolicies[p] {
		return "", ErrUnknownPolicy
	}
	return p, nil
}

// RecipeSetting returns the manifest line a recipe author adds to enable the
// policy. Used in remediation text.
func (p Policy) RecipeSetting() string {
	return "policies: [" + string(p) + "]"
}

// Policies is the enabled/disabled state of the policies for one package.
// It is populated once from the build recipe and never mutated during
// validation.
type Policies struct {
	enabled map[Policy]bool
}

// NewPolicies creates a registry with the given policies enabled.
func NewPolicies(enabled ...Policy) Policies {
	m := make(map[Policy]bool, len(enabled))
	for _, p := range enabled {
		m[p] = true
	}
	return Policies{enabled: m}
}

// IsEnabled reports whether the given policy was enabled by the recipe.
func (ps Policies) IsEnabled(p Policy) bool {
	return ps.enabled[p]
}
