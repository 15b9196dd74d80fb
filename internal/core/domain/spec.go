// Package domain contains the core types for post-build package validation.
package domain

// PackageSpec identifies a package by name and target triplet.
// It is immutable and supplied by the caller before validation starts.
type PackageSpec struct {
	Name    string `json:"name"`
	Triplet string `json:"triplet"`
}

// Dir returns the directory name used for the package inside the packages
// tree, e.g. "zlib_x64-windows".
func (s PackageSpec) Dir() string {
	return s.Name + "_" + s.Triplet
}

// String returns the canonical spec string, e.g. "zlib:x64-windows".
func (s PackageSpec) String() string {
	return s.Name + ":" + s.Triplet
}
