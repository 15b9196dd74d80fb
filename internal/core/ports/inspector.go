package ports

import (
	"context"

	"go.trai.ch/packlint/internal/core/domain"
)

// HeaderReader derives machine types from binary artifacts by parsing their
// headers directly, without external tooling.
//
//go:generate mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type HeaderReader interface {
	// DynamicMachine returns the machine type of a dynamic module. A dynamic
	// module always resolves to exactly one value.
	DynamicMachine(path string) (domain.MachineType, error)

	// StaticMachines returns the distinct machine types of the members of a
	// static archive. An empty result means the archive carries no object
	// members to inspect; callers treat it as "cannot determine".
	StaticMachines(path string) ([]domain.MachineType, error)
}

// InspectMode selects what the external introspection tool reports.
type InspectMode string

const (
	// InspectExports lists the export table of a dynamic module.
	InspectExports InspectMode = "exports"
	// InspectHeaders dumps the file headers, including DLL characteristics.
	InspectHeaders InspectMode = "headers"
	// InspectDependents lists the modules a dynamic module depends on.
	InspectDependents InspectMode = "dependents"
	// InspectDirectives dumps the linker directives of a static library.
	InspectDirectives InspectMode = "directives"
)

// ToolInspector invokes the external binary-introspection tool against one
// artifact and returns its textual report. A nonzero exit status is
// returned as domain.ErrToolFailed and aborts the whole validation run.
type ToolInspector interface {
	// Available reports whether the tool was found at startup. Checks that
	// need it are skipped and reported as not evaluated when it is absent.
	Available() bool

	Inspect(ctx context.Context, mode InspectMode, artifact string) (string, error)
}
