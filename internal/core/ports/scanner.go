package ports

// Scanner enumerates files under a package directory. All methods treat a
// missing directory as empty rather than returning an error, since most
// layout checks probe directories that legitimately may not exist.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Exists reports whether the path exists.
	Exists(path string) bool

	// IsDirectory reports whether the path exists and is a directory.
	IsDirectory(path string) bool

	// IsEmptyDir reports whether the path is a directory with no entries.
	IsEmptyDir(path string) bool

	// FilesRecursive returns every path under dir (files and directories),
	// depth-first, in lexical order.
	FilesRecursive(dir string) []string

	// FilesNonRecursive returns the immediate children of dir in lexical
	// order.
	FilesNonRecursive(dir string) []string
}
