package lint

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/packlint/internal/core/domain"
)

// ifcExt is the binary-interface-cache extension that legitimately lives
// under debug/include.
const ifcExt = ".ifc"

// controlFiles are the only files permitted directly in the package root and
// its debug subtree. Compared case-insensitively.
var controlFiles = []string{"CONTROL", "BUILD_INFO"}

func checkIncludeDir(_ context.Context, in *Input) (domain.LintStatus, error) {
	includeDir := in.Path("include")
	if !in.FS.Exists(includeDir) || in.FS.IsEmptyDir(includeDir) {
		in.Report.Warn("The folder /include is empty or not present. This indicates the library was not correctly installed.")
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

func checkDebugIncludeDir(_ context.Context, in *Input) (domain.LintStatus, error) {
	var found []string
	for _, p := range in.FS.FilesRecursive(in.Path("debug", "include")) {
		if in.FS.IsDirectory(p) || strings.EqualFold(filepath.Ext(p), ifcExt) {
			continue
		}
		found = append(found, p)
	}

	if len(found) > 0 {
		in.Report.Warn("Include files should not be duplicated into the /debug/include directory. If this cannot be disabled in the project build, use\n"+
			"    file(REMOVE_RECURSE ${CURRENT_PACKAGES_DIR}/debug/include)",
			in.relPaths(found)...)
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

func checkDebugShareDir(_ context.Context, in *Input) (domain.LintStatus, error) {
	if in.FS.Exists(in.Path("debug", "share")) {
		in.Report.Warn("/debug/share should not exist. Please reorganize any important files, then use\n" +
			"    file(REMOVE_RECURSE ${CURRENT_PACKAGES_DIR}/debug/share)")
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

func checkLibCmakeDir(_ context.Context, in *Input) (domain.LintStatus, error) {
	if in.FS.Exists(in.Path("lib", "cmake")) {
		in.Report.Warn(fmt.Sprintf(
			"The /lib/cmake folder should be merged with /debug/lib/cmake and moved to /share/%s/cmake.",
			in.Spec.Name))
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

func checkMisplacedCmakeFiles(_ context.Context, in *Input) (domain.LintStatus, error) {
	dirs := []string{
		in.Path("cmake"),
		in.Path("debug", "cmake"),
		in.Path("lib", "cmake"),
		in.Path("debug", "lib", "cmake"),
	}

	var misplaced []string
	for _, dir := range dirs {
		misplaced = append(misplaced, filterByExt(in.FS, in.FS.FilesRecursive(dir), ".cmake")...)
	}

	if len(misplaced) > 0 {
		in.Report.Warn(fmt.Sprintf(
			"The following cmake files were found outside /share/%s. Please place cmake files in /share/%s.",
			in.Spec.Name, in.Spec.Name),
			in.relPaths(misplaced)...)
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

func checkDebugLibCmakeDir(_ context.Context, in *Input) (domain.LintStatus, error) {
	if in.FS.Exists(in.Path("debug", "lib", "cmake")) {
		in.Report.Warn(fmt.Sprintf(
			"The /debug/lib/cmake folder should be merged with /lib/cmake into /share/%s",
			in.Spec.Name))
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

// checkDllsInLibDir flags dynamic modules placed under a lib directory;
// those belong under the matching bin directory.
func checkDllsInLibDir(dir ...string) checkFunc {
	return func(_ context.Context, in *Input) (domain.LintStatus, error) {
		libDir := in.Path(append(append([]string{}, dir...), "lib")...)
		dlls := filterByExt(in.FS, in.FS.FilesRecursive(libDir), ".dll")

		if len(dlls) > 0 {
			in.Report.Warn("The following dlls were found in /lib or /debug/lib. Please move them to /bin or /debug/bin, respectively.",
				in.relPaths(dlls)...)
			return domain.LintErrorDetected, nil
		}
		return domain.LintSuccess, nil
	}
}

// licenseFileNames are the filenames recognized as license candidates when
// scanning the roots of unpacked source trees.
var licenseFileNames = []string{"LICENSE", "LICENSE.txt", "COPYING"}

func checkCopyrightFile(_ context.Context, in *Input) (domain.LintStatus, error) {
	copyrightFile := in.Path("share", in.Spec.Name, "copyright")
	if in.FS.Exists(copyrightFile) {
		return domain.LintSuccess, nil
	}

	// Only the root of each unpacked source archive is searched, to keep
	// false positives down.
	srcRoot := filepath.Join(in.BuildtreesDir, "src")
	var candidates []string
	for _, srcDir := range in.FS.FilesNonRecursive(srcRoot) {
		if !in.FS.IsDirectory(srcDir) {
			continue
		}
		for _, f := range in.FS.FilesNonRecursive(srcDir) {
			name := filepath.Base(f)
			for _, known := range licenseFileNames {
				if name == known {
					candidates = append(candidates, f)
				}
			}
		}
	}

	in.Report.Warn(fmt.Sprintf(
		"The software license must be available at ${CURRENT_PACKAGES_DIR}/share/%s/copyright",
		in.Spec.Name))

	switch len(candidates) {
	case 0:
		// Nothing to offer.
	case 1:
		// A single candidate allows a mechanical remediation snippet.
		found := candidates[0]
		rel, err := filepath.Rel(in.BuildtreesDir, found)
		if err != nil {
			rel = found
		}
		rel = filepath.ToSlash(rel)
		name := filepath.Base(found)
		in.Report.Info(fmt.Sprintf(
			"    file(COPY ${CURRENT_BUILDTREES_DIR}/%s DESTINATION ${CURRENT_PACKAGES_DIR}/share/%s)\n"+
				"    file(RENAME ${CURRENT_PACKAGES_DIR}/share/%s/%s ${CURRENT_PACKAGES_DIR}/share/%s/copyright)",
			rel, in.Spec.Name, in.Spec.Name, name, in.Spec.Name))
	default:
		in.Report.Warn("The following files are potential copyright files:", candidates...)
	}

	return domain.LintErrorDetected, nil
}

// checkExesInBinDir flags native executables shipped under a bin directory;
// executables are not valid distribution targets.
func checkExesInBinDir(dir ...string) checkFunc {
	return func(_ context.Context, in *Input) (domain.LintStatus, error) {
		binDir := in.Path(append(append([]string{}, dir...), "bin")...)
		exes := filterByExt(in.FS, in.FS.FilesRecursive(binDir), ".exe")

		if len(exes) > 0 {
			in.Report.Warn("The following EXEs were found in /bin or /debug/bin. EXEs are not valid distribution targets.",
				in.relPaths(exes)...)
			return domain.LintErrorDetected, nil
		}
		return domain.LintSuccess, nil
	}
}

func checkNoEmptyDirs(_ context.Context, in *Input) (domain.LintStatus, error) {
	var empty []string
	for _, p := range in.FS.FilesRecursive(in.PackageDir) {
		if in.FS.IsDirectory(p) && in.FS.IsEmptyDir(p) {
			empty = append(empty, p)
		}
	}

	if len(empty) > 0 {
		in.Report.Warn(fmt.Sprintf("There should be no empty directories in %s", filepath.ToSlash(in.PackageDir)),
			in.relPaths(empty)...)
		in.Report.Info("If a directory should be populated but is not, this might indicate an error in the build recipe.\n" +
			"If the directories are not needed and their creation cannot be disabled, use something like this in the recipe to remove them:\n" +
			"\n" +
			"    file(REMOVE_RECURSE ${CURRENT_PACKAGES_DIR}/a/dir ${CURRENT_PACKAGES_DIR}/some/other/dir)")
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

// checkNoStrayFiles flags files placed directly in the package root or its
// debug subtree; only the two control filenames are permitted there.
func checkNoStrayFiles(dir ...string) checkFunc {
	return func(_ context.Context, in *Input) (domain.LintStatus, error) {
		target := in.Path(dir...)

		var stray []string
		for _, p := range in.FS.FilesNonRecursive(target) {
			if in.FS.IsDirectory(p) {
				continue
			}
			if isControlFile(filepath.Base(p)) {
				continue
			}
			stray = append(stray, p)
		}

		if len(stray) > 0 {
			in.Report.Warn(fmt.Sprintf("The following files are placed in %s:", filepath.ToSlash(target)),
				in.relPaths(stray)...)
			in.Report.Warn("Files cannot be present in those directories.")
			return domain.LintErrorDetected, nil
		}
		return domain.LintSuccess, nil
	}
}

func isControlFile(name string) bool {
	for _, c := range controlFiles {
		if strings.EqualFold(name, c) {
			return true
		}
	}
	return false
}
