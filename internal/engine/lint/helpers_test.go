package lint_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
)

// exportListing is the tool output marker for a populated export table.
const exportListing = "ordinal hint RVA      name"

// fakeHeaders answers machine-type questions from maps keyed by base name.
// Unlisted dynamic modules default to AMD64; unlisted archives default to a
// single AMD64 member.
type fakeHeaders struct {
	dynamic map[string]domain.MachineType
	static  map[string][]domain.MachineType
}

func (f *fakeHeaders) DynamicMachine(path string) (domain.MachineType, error) {
	if m, ok := f.dynamic[filepath.Base(path)]; ok {
		return m, nil
	}
	return domain.MachineAMD64, nil
}

func (f *fakeHeaders) StaticMachines(path string) ([]domain.MachineType, error) {
	if m, ok := f.static[filepath.Base(path)]; ok {
		return m, nil
	}
	return []domain.MachineType{domain.MachineAMD64}, nil
}

// fakeTool answers inspection queries from maps keyed by base name. Unlisted
// artifacts get a populated export listing, no app-container bit, and empty
// dependents and directives.
type fakeTool struct {
	unavailable bool
	noExports   map[string]bool
	appBits     map[string]bool
	dependents  map[string]string
	directives  map[string]string
}

func (f *fakeTool) Available() bool {
	return !f.unavailable
}

func (f *fakeTool) Inspect(_ context.Context, mode ports.InspectMode, artifact string) (string, error) {
	name := filepath.Base(artifact)
	switch mode {
	case ports.InspectExports:
		if f.noExports[name] {
			return "no exports here", nil
		}
		return "  " + exportListing + "\n          1    0 00001000 compress\n", nil
	case ports.InspectHeaders:
		if f.appBits[name] {
			return "            8160 DLL characteristics\n                   App Container\n", nil
		}
		return "            8160 DLL characteristics\n", nil
	case ports.InspectDependents:
		return f.dependents[name], nil
	case ports.InspectDirectives:
		return f.directives[name], nil
	}
	return "", nil
}

// tree writes empty files at the given package-relative paths.
func tree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

// manifestFor builds a manifest around a freshly created package dir.
func manifestFor(t *testing.T, linkage, crt domain.LinkageType, policies ...domain.Policy) *ports.Manifest {
	t.Helper()
	root := t.TempDir()
	pkg := filepath.Join(root, "packages", "zlib_x64-windows")
	require.NoError(t, os.MkdirAll(pkg, 0o755))

	return &ports.Manifest{
		Spec: domain.PackageSpec{Name: "zlib", Triplet: "x64-windows"},
		Pre: domain.PreBuildInfo{
			TargetArchitecture: "x64",
			ToolsetVersion:     "v143",
		},
		Build: domain.BuildInfo{
			LibraryLinkage: linkage,
			CrtLinkage:     crt,
			Policies:       domain.NewPolicies(policies...),
		},
		PackageDir:    pkg,
		BuildtreesDir: filepath.Join(root, "buildtrees", "zlib"),
		RecipePath:    filepath.Join(root, "ports", "zlib", "portfile.cmake"),
	}
}

// cleanDynamicTree populates the package with a layout that passes every
// check for a dynamic build.
func cleanDynamicTree(t *testing.T, m *ports.Manifest) {
	t.Helper()
	tree(t, m.PackageDir,
		"include/zlib.h",
		"lib/zlib.lib",
		"debug/lib/zlibd.lib",
		"bin/zlib1.dll",
		"debug/bin/zlibd1.dll",
		"share/zlib/copyright",
	)
}

// cleanStaticTree populates the package with a layout that passes every
// check for a static build with a static CRT.
func cleanStaticTree(t *testing.T, m *ports.Manifest) {
	t.Helper()
	tree(t, m.PackageDir,
		"include/zlib.h",
		"lib/zlib.lib",
		"debug/lib/zlibd.lib",
		"share/zlib/copyright",
	)
}

func staticCrtDirectives() map[string]string {
	return map[string]string{
		"zlibd.lib": "/DEFAULTLIB:LIBCMTD /DEFAULTLIB:OLDNAMES",
		"zlib.lib":  "/DEFAULTLIB:LIBCMT /DEFAULTLIB:OLDNAMES",
	}
}

// removeAll deletes a package-relative subtree.
func removeAll(root string, elem ...string) error {
	return os.RemoveAll(filepath.Join(append([]string{root}, elem...)...))
}

// mkdirAll creates a package-relative directory chain.
func mkdirAll(root string, elem ...string) error {
	return os.MkdirAll(filepath.Join(append([]string{root}, elem...)...), 0o755)
}

// warnings collects the warning messages of a report.
func warnings(r *domain.Report) []string {
	var out []string
	for _, d := range r.Diagnostics {
		if d.Severity == domain.SeverityWarning {
			out = append(out, d.Message)
		}
	}
	return out
}

// findDiagnostic returns the first diagnostic whose message contains the
// given fragment.
func findDiagnostic(r *domain.Report, fragment string) (domain.Diagnostic, bool) {
	for _, d := range r.Diagnostics {
		if strings.Contains(d.Message, fragment) {
			return d, true
		}
	}
	return domain.Diagnostic{}, false
}

func requireDiagnostic(t *testing.T, r *domain.Report, fragment string) domain.Diagnostic {
	t.Helper()
	d, ok := findDiagnostic(r, fragment)
	require.True(t, ok, "missing diagnostic containing %q, got: %v", fragment, r.Diagnostics)
	return d
}
