package ports

import "go.trai.ch/packlint/internal/core/domain"

// Manifest is the fully resolved validation input produced from a recipe
// manifest file.
type Manifest struct {
	Spec  domain.PackageSpec
	Pre   domain.PreBuildInfo
	Build domain.BuildInfo

	// PackageDir is the root of the built package tree to validate.
	PackageDir string

	// BuildtreesDir is the root of the package's unpacked sources, scanned
	// for license file candidates when the copyright file is missing.
	BuildtreesDir string

	// RecipePath is the build recipe file named in remediation summaries.
	RecipePath string
}

// RecipeLoader loads the validation input for a package.
//
//go:generate mockgen -source=recipe_loader.go -destination=mocks/mock_recipe_loader.go -package=mocks
type RecipeLoader interface {
	// Load reads the manifest at path, or discovers one in the current
	// directory when path is empty.
	Load(path string) (*Manifest, error)
}
