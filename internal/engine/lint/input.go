package lint

import (
	"path/filepath"
	"strings"

	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
)

// Input bundles everything a check may consult: the scanned tree, the
// metadata extractor, the declared build configuration, and the report the
// check writes its diagnostics to. One Input serves one validation run.
type Input struct {
	FS      ports.Scanner
	Extract *Extractor
	Spec    domain.PackageSpec
	Pre     domain.PreBuildInfo
	Build   domain.BuildInfo
	Report  *domain.Report

	PackageDir    string
	BuildtreesDir string

	// Artifact lists scanned once up front, exactly as every check expects
	// them: import/static libs from the lib dirs, dynamic modules from the
	// bin dirs.
	DebugLibs   []string
	ReleaseLibs []string
	DebugDlls   []string
	ReleaseDlls []string
}

func newInput(m *ports.Manifest, fs ports.Scanner, extract *Extractor, report *domain.Report) *Input {
	in := &Input{
		FS:            fs,
		Extract:       extract,
		Spec:          m.Spec,
		Pre:           m.Pre,
		Build:         m.Build,
		Report:        report,
		PackageDir:    m.PackageDir,
		BuildtreesDir: m.BuildtreesDir,
	}

	in.DebugLibs = filterByExt(fs, fs.FilesRecursive(in.Path("debug", "lib")), ".lib")
	in.ReleaseLibs = filterByExt(fs, fs.FilesRecursive(in.Path("lib")), ".lib")
	in.DebugDlls = filterByExt(fs, fs.FilesRecursive(in.Path("debug", "bin")), ".dll")
	in.ReleaseDlls = filterByExt(fs, fs.FilesRecursive(in.Path("bin")), ".dll")

	return in
}

// Path joins elements onto the package directory.
func (in *Input) Path(elem ...string) string {
	return filepath.Join(append([]string{in.PackageDir}, elem...)...)
}

// Libs returns the debug and release libs as one list, debug first.
func (in *Input) Libs() []string {
	return concat(in.DebugLibs, in.ReleaseLibs)
}

// Dlls returns the debug and release dynamic modules as one list, debug
// first.
func (in *Input) Dlls() []string {
	return concat(in.DebugDlls, in.ReleaseDlls)
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// filterByExt keeps the non-directory paths with the given extension,
// matched case-insensitively.
func filterByExt(fs ports.Scanner, paths []string, ext string) []string {
	var out []string
	for _, p := range paths {
		if fs.IsDirectory(p) {
			continue
		}
		if strings.EqualFold(filepath.Ext(p), ext) {
			out = append(out, p)
		}
	}
	return out
}

// relPaths renders paths relative to the package dir for diagnostics. Paths
// outside the package dir are reported as-is.
func (in *Input) relPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(in.PackageDir, p); err == nil && !strings.HasPrefix(rel, "..") {
			out = append(out, filepath.ToSlash(rel))
			continue
		}
		out = append(out, filepath.ToSlash(p))
	}
	return out
}
