package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlint/internal/adapters/fs"
	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/packlint/internal/engine/lint"
)

func runSuite(t *testing.T, m *ports.Manifest) *domain.Report {
	t.Helper()
	suite := lint.NewSuite(fs.NewScanner(), &fakeHeaders{}, &fakeTool{directives: staticCrtDirectives()})
	report, err := suite.Run(t.Context(), m)
	require.NoError(t, err)
	return report
}

func TestCheck_DebugIncludeDir(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	tree(t, m.PackageDir,
		"debug/include/zlib.h",
		"debug/include/zlib.ifc",
	)

	report := runSuite(t, m)

	assert.Equal(t, 1, report.ErrorCount)
	d := requireDiagnostic(t, report, "should not be duplicated into the /debug/include directory")
	assert.Equal(t, []string{"debug/include/zlib.h"}, d.Paths)
}

func TestCheck_DebugIncludeDir_IfcOnlyIsAllowed(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	tree(t, m.PackageDir, "debug/include/zlib.ifc")

	report := runSuite(t, m)
	assert.Equal(t, 0, report.ErrorCount)
}

func TestCheck_DebugShareDir(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	tree(t, m.PackageDir, "debug/share/readme.txt")

	report := runSuite(t, m)

	assert.Equal(t, 1, report.ErrorCount)
	requireDiagnostic(t, report, "/debug/share should not exist")
}

func TestCheck_CmakeDirs(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	tree(t, m.PackageDir,
		"lib/cmake/zlibConfig.cmake",
		"debug/lib/cmake/zlibConfig.cmake",
	)

	report := runSuite(t, m)

	// lib/cmake, the misplaced files, and debug/lib/cmake each count once.
	assert.Equal(t, 3, report.ErrorCount)
	requireDiagnostic(t, report, "The /lib/cmake folder should be merged")
	requireDiagnostic(t, report, "The /debug/lib/cmake folder should be merged")
	d := requireDiagnostic(t, report, "cmake files were found outside /share/zlib")
	assert.Equal(t, []string{"lib/cmake/zlibConfig.cmake", "debug/lib/cmake/zlibConfig.cmake"}, d.Paths)
}

func TestCheck_DllsInLibDir(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	tree(t, m.PackageDir, "lib/zlib1.dll")

	report := runSuite(t, m)

	assert.Equal(t, 1, report.ErrorCount)
	d := requireDiagnostic(t, report, "Please move them to /bin or /debug/bin")
	assert.Equal(t, []string{"lib/zlib1.dll"}, d.Paths)
}

func TestCheck_CopyrightFile_SingleCandidate(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	require.NoError(t, removeAll(m.PackageDir, "share"))
	tree(t, m.BuildtreesDir, "src/zlib-1.3/LICENSE")

	report := runSuite(t, m)

	requireDiagnostic(t, report, "The software license must be available at ${CURRENT_PACKAGES_DIR}/share/zlib/copyright")
	d := requireDiagnostic(t, report, "file(COPY ${CURRENT_BUILDTREES_DIR}/src/zlib-1.3/LICENSE DESTINATION ${CURRENT_PACKAGES_DIR}/share/zlib)")
	assert.Equal(t, domain.SeverityInfo, d.Severity)
	assert.Contains(t, d.Message, "file(RENAME ${CURRENT_PACKAGES_DIR}/share/zlib/LICENSE ${CURRENT_PACKAGES_DIR}/share/zlib/copyright)")
}

func TestCheck_CopyrightFile_MultipleCandidates(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	require.NoError(t, removeAll(m.PackageDir, "share"))
	tree(t, m.BuildtreesDir,
		"src/zlib-1.3/LICENSE",
		"src/zlib-1.3/COPYING",
	)

	report := runSuite(t, m)

	d := requireDiagnostic(t, report, "The following files are potential copyright files:")
	assert.Len(t, d.Paths, 2)
}

func TestCheck_ExesInBinDir(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	tree(t, m.PackageDir,
		"bin/minigzip.exe",
		"debug/bin/minigzip.exe",
	)

	report := runSuite(t, m)

	// The release and debug trees are flagged separately.
	assert.Equal(t, 2, report.ErrorCount)
	d := requireDiagnostic(t, report, "EXEs are not valid distribution targets")
	assert.Equal(t, []string{"bin/minigzip.exe"}, d.Paths)
}

func TestCheck_NoEmptyDirs(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	require.NoError(t, mkdirAll(m.PackageDir, "tools", "empty"))

	report := runSuite(t, m)

	// Only the leaf with no entries is flagged; its parent contains the leaf.
	assert.Equal(t, 1, report.ErrorCount)
	d := requireDiagnostic(t, report, "There should be no empty directories in")
	assert.Equal(t, []string{"tools/empty"}, d.Paths)
	requireDiagnostic(t, report, "file(REMOVE_RECURSE ${CURRENT_PACKAGES_DIR}/a/dir")
}

func TestCheck_NoStrayFiles(t *testing.T) {
	m := manifestFor(t, domain.LinkageDynamic, domain.LinkageDynamic)
	cleanDynamicTree(t, m)
	tree(t, m.PackageDir,
		"CONTROL",
		"BUILD_INFO",
		"debug/control",
		"stray.txt",
		"debug/stray.txt",
	)

	report := runSuite(t, m)

	// Root and debug are flagged separately; the control files are permitted
	// in both, case-insensitively.
	assert.Equal(t, 2, report.ErrorCount)
	d := requireDiagnostic(t, report, "The following files are placed in")
	assert.Equal(t, []string{"stray.txt"}, d.Paths)
}
