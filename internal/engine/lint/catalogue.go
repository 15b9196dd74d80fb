package lint

import (
	"context"

	"go.trai.ch/packlint/internal/core/domain"
)

// checkFunc is one self-contained validation rule. Checks are independent:
// none reads another's output, and side effects are limited to diagnostics
// on the report.
type checkFunc func(ctx context.Context, in *Input) (domain.LintStatus, error)

// stage fixes where in the run a check executes. The order within and
// across stages is a contract: remediation guidance is presented in check
// order, so reruns over an unchanged tree must produce identical output.
type stage int

const (
	stageShared stage = iota
	stageLinkage
	stageClosing
)

// Check is one catalogue entry.
type Check struct {
	// ID names the check in logs and tests.
	ID string

	Stage stage

	// Linkage restricts a stageLinkage entry to one linkage mode.
	Linkage domain.LinkageType

	// SkipWhen is the policy that suppresses the check, if any.
	SkipWhen domain.Policy

	Run checkFunc
}

func debugLibs(in *Input) []string   { return in.DebugLibs }
func releaseLibs(in *Input) []string { return in.ReleaseLibs }
func debugDlls(in *Input) []string   { return in.DebugDlls }
func releaseDlls(in *Input) []string { return in.ReleaseDlls }

// Catalogue returns the full, ordered check catalogue.
func Catalogue() []Check {
	return []Check{
		{ID: "include-dir", Stage: stageShared, SkipWhen: domain.PolicyEmptyIncludeFolder, Run: checkIncludeDir},
		{ID: "debug-include-dir", Stage: stageShared, Run: checkDebugIncludeDir},
		{ID: "debug-share-dir", Stage: stageShared, Run: checkDebugShareDir},
		{ID: "lib-cmake-dir", Stage: stageShared, Run: checkLibCmakeDir},
		{ID: "misplaced-cmake-files", Stage: stageShared, Run: checkMisplacedCmakeFiles},
		{ID: "debug-lib-cmake-dir", Stage: stageShared, Run: checkDebugLibCmakeDir},
		{ID: "dlls-in-lib", Stage: stageShared, Run: checkDllsInLibDir()},
		{ID: "dlls-in-debug-lib", Stage: stageShared, Run: checkDllsInLibDir("debug")},
		{ID: "copyright-file", Stage: stageShared, Run: checkCopyrightFile},
		{ID: "exes-in-bin", Stage: stageShared, Run: checkExesInBinDir()},
		{ID: "exes-in-debug-bin", Stage: stageShared, Run: checkExesInBinDir("debug")},
		{ID: "matching-lib-pairs", Stage: stageShared, Run: checkMatchingDebugAndReleaseBinaries(debugLibs, releaseLibs)},
		{ID: "lib-architecture", Stage: stageShared, Run: checkLibArchitecture},

		{ID: "matching-dll-pairs", Stage: stageLinkage, Linkage: domain.LinkageDynamic, Run: checkMatchingDebugAndReleaseBinaries(debugDlls, releaseDlls)},
		{ID: "import-libs-debug", Stage: stageLinkage, Linkage: domain.LinkageDynamic, SkipWhen: domain.PolicyDLLsWithoutLibs, Run: checkLibsPresentForDlls(debugLibs, debugDlls, "debug", "lib")},
		{ID: "import-libs-release", Stage: stageLinkage, Linkage: domain.LinkageDynamic, SkipWhen: domain.PolicyDLLsWithoutLibs, Run: checkLibsPresentForDlls(releaseLibs, releaseDlls, "lib")},
		{ID: "dll-exports", Stage: stageLinkage, Linkage: domain.LinkageDynamic, Run: checkDllExports},
		{ID: "dll-app-container", Stage: stageLinkage, Linkage: domain.LinkageDynamic, Run: checkDllAppContainerBit},
		{ID: "outdated-crt", Stage: stageLinkage, Linkage: domain.LinkageDynamic, SkipWhen: domain.PolicyAllowObsoleteMsvcrt, Run: checkOutdatedCrtLinkage},
		{ID: "dll-architecture", Stage: stageLinkage, Linkage: domain.LinkageDynamic, Run: checkDllArchitecture},

		{ID: "no-dlls-in-static", Stage: stageLinkage, Linkage: domain.LinkageStatic, Run: checkNoDllsInStaticBuild},
		{ID: "no-bin-dirs-in-static", Stage: stageLinkage, Linkage: domain.LinkageStatic, Run: checkNoBinDirsInStaticBuild},
		{ID: "crt-linkage-debug", Stage: stageLinkage, Linkage: domain.LinkageStatic, SkipWhen: domain.PolicyOnlyReleaseCrt, Run: checkCrtLinkageOfLibs(domain.ConfigDebug, debugLibs)},
		{ID: "crt-linkage-release", Stage: stageLinkage, Linkage: domain.LinkageStatic, Run: checkCrtLinkageOfLibs(domain.ConfigRelease, releaseLibs)},

		{ID: "no-empty-dirs", Stage: stageClosing, Run: checkNoEmptyDirs},
		{ID: "no-stray-files-root", Stage: stageClosing, Run: checkNoStrayFiles()},
		{ID: "no-stray-files-debug", Stage: stageClosing, Run: checkNoStrayFiles("debug")},
	}
}
