package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownPolicy is returned when a recipe names a policy that is not recognized.
	ErrUnknownPolicy = zerr.New("unknown policy")

	// ErrInvalidLinkage is returned when a recipe declares a linkage other than dynamic or static.
	ErrInvalidLinkage = zerr.New("invalid linkage, expected 'dynamic' or 'static'")

	// ErrInvalidBuildType is returned when a recipe declares a build type other than debug or release.
	ErrInvalidBuildType = zerr.New("invalid build type, expected 'debug' or 'release'")

	// ErrRecipeReadFailed is returned when the recipe manifest cannot be read.
	ErrRecipeReadFailed = zerr.New("failed to read recipe manifest")

	// ErrRecipeParseFailed is returned when the recipe manifest cannot be parsed.
	ErrRecipeParseFailed = zerr.New("failed to parse recipe manifest")

	// ErrRecipeNotFound is returned when no recipe manifest can be located.
	ErrRecipeNotFound = zerr.New("could not find recipe manifest")

	// ErrMissingPackageName is returned when the recipe manifest has no package name.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrMissingPackageDir is returned when the recipe manifest has no package directory.
	ErrMissingPackageDir = zerr.New("missing package directory")

	// ErrToolFailed is returned when the binary-introspection tool exits
	// nonzero. This aborts the whole run; it indicates a broken environment,
	// not a package defect.
	ErrToolFailed = zerr.New("binary inspection tool failed")

	// ErrNotADynamicModule is returned when a dynamic-module header is
	// requested for a file that is not one.
	ErrNotADynamicModule = zerr.New("file is not a dynamic module")

	// ErrNotAStaticArchive is returned when a static-archive header is
	// requested for a file that is not one.
	ErrNotAStaticArchive = zerr.New("file is not a static archive")

	// ErrMixedArchiveArchitectures is returned when a static archive exposes
	// more than one distinct machine type. This is a fatal inconsistency, not
	// a lint finding.
	ErrMixedArchiveArchitectures = zerr.New("found more than one architecture in archive")

	// ErrUnknownLinkage is returned when the suite is asked to validate a
	// package with a linkage mode it does not recognize. This is a
	// programming error, not a lint finding.
	ErrUnknownLinkage = zerr.New("unrecognized library linkage")

	// ErrValidationFailed is returned by the application layer when the suite
	// completes with a nonzero violation count.
	ErrValidationFailed = zerr.New("post-build validation failed")
)
