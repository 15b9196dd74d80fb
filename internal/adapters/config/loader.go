// Package config provides the recipe manifest loader for packlint.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the default manifest filename discovered in the
// working directory.
const ManifestFileName = "packlint.yaml"

// Loader implements ports.RecipeLoader using a YAML manifest file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.RecipeLoader = (*Loader)(nil)

// Load reads the manifest at path, or discovers packlint.yaml in the current
// directory when path is empty.
func (l *Loader) Load(path string) (*ports.Manifest, error) {
	if path == "" {
		path = ManifestFileName
	}
	if _, err := os.Stat(path); err != nil {
		return nil, zerr.With(domain.ErrRecipeNotFound, "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // operator supplied manifest path
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRecipeReadFailed.Error())
	}

	var file ManifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRecipeParseFailed.Error())
	}

	return l.resolve(path, &file)
}

func (l *Loader) resolve(path string, file *ManifestFile) (*ports.Manifest, error) {
	if file.Package == "" {
		return nil, zerr.With(domain.ErrMissingPackageName, "manifest", path)
	}

	spec := domain.PackageSpec{Name: file.Package, Triplet: file.Triplet}

	pre := domain.PreBuildInfo{
		TargetArchitecture: file.Architecture,
		ToolsetVersion:     file.Toolset,
		SystemName:         file.SystemName,
	}
	if pre.TargetArchitecture == "" {
		pre.TargetArchitecture = architectureFromTriplet(file.Triplet)
	}
	if file.BuildType != "" {
		bt, err := domain.ParseConfigurationType(file.BuildType)
		if err != nil {
			return nil, zerr.With(err, "build_type", file.BuildType)
		}
		pre.BuildType = bt
	}

	build, err := l.resolveBuildInfo(file)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(path)
	manifest := &ports.Manifest{
		Spec:          spec,
		Pre:           pre,
		Build:         build,
		PackageDir:    resolvePath(root, file.Paths.Package, filepath.Join("packages", spec.Dir())),
		BuildtreesDir: resolvePath(root, file.Paths.Buildtrees, filepath.Join("buildtrees", spec.Name)),
		RecipePath:    resolvePath(root, file.Paths.Recipe, filepath.Join("ports", spec.Name, "portfile.cmake")),
	}

	if !dirExists(manifest.PackageDir) {
		return nil, zerr.With(domain.ErrMissingPackageDir, "package_dir", manifest.PackageDir)
	}

	return manifest, nil
}

func (l *Loader) resolveBuildInfo(file *ManifestFile) (domain.BuildInfo, error) {
	library := file.Linkage.Library
	if library == "" {
		library = string(domain.LinkageDynamic)
	}
	libraryLinkage, err := domain.ParseLinkageType(library)
	if err != nil {
		return domain.BuildInfo{}, zerr.With(err, "library_linkage", library)
	}

	crt := file.Linkage.Crt
	if crt == "" {
		crt = string(domain.LinkageDynamic)
	}
	crtLinkage, err := domain.ParseLinkageType(crt)
	if err != nil {
		return domain.BuildInfo{}, zerr.With(err, "crt_linkage", crt)
	}

	policies := make([]domain.Policy, 0, len(file.Policies))
	for _, name := range file.Policies {
		p, err := domain.ParsePolicy(name)
		if err != nil {
			return domain.BuildInfo{}, zerr.With(err, "policy", name)
		}
		policies = append(policies, p)
	}

	return domain.BuildInfo{
		LibraryLinkage: libraryLinkage,
		CrtLinkage:     crtLinkage,
		Policies:       domain.NewPolicies(policies...),
	}, nil
}

// architectureFromTriplet derives the target architecture from the leading
// triplet component, e.g. "x64-windows" -> "x64".
func architectureFromTriplet(triplet string) string {
	if i := strings.IndexByte(triplet, '-'); i > 0 {
		return triplet[:i]
	}
	return triplet
}

func resolvePath(root, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(root, value)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
