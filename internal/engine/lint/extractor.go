// Package lint implements the post-build validation check suite.
package lint

import (
	"context"
	"strings"

	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/zerr"
)

// exportTableHeader appears in the tool's export listing only when the
// module has an export table section.
const exportTableHeader = "ordinal hint RVA      name"

// appContainerMarker appears in the tool's header dump when the module was
// linked with the app-container (sandboxed execution) bit.
const appContainerMarker = "App Container"

// Extractor answers metadata questions about binary artifacts. It hides
// which of the two strategies produced an answer: architectures come from
// native header parsing, everything else from the external tool. Either
// strategy may be unavailable on a given host; callers probe the capability
// flags and skip dependent checks.
type Extractor struct {
	headers ports.HeaderReader
	tool    ports.ToolInspector
}

// NewExtractor creates an Extractor over the given strategies. Either may be
// nil.
func NewExtractor(headers ports.HeaderReader, tool ports.ToolInspector) *Extractor {
	return &Extractor{headers: headers, tool: tool}
}

// HeadersAvailable reports whether native header parsing is available.
func (e *Extractor) HeadersAvailable() bool {
	return e.headers != nil
}

// ToolAvailable reports whether the external introspection tool is available.
func (e *Extractor) ToolAvailable() bool {
	return e.tool != nil && e.tool.Available()
}

// DynamicArchitecture returns the architecture name of a dynamic module.
func (e *Extractor) DynamicArchitecture(path string) (string, error) {
	machine, err := e.headers.DynamicMachine(path)
	if err != nil {
		return "", err
	}
	return machine.Architecture(), nil
}

// StaticArchitecture returns the architecture name of a static archive. The
// second result is false when the archive carries no machine information at
// all, which callers treat as "cannot determine, skip". More than one
// distinct machine type indicates a corrupt or mixed archive and is a fatal
// inconsistency, not a lint finding.
func (e *Extractor) StaticArchitecture(path string) (string, bool, error) {
	machines, err := e.headers.StaticMachines(path)
	if err != nil {
		return "", false, err
	}
	switch len(machines) {
	case 0:
		return "", false, nil
	case 1:
		return machines[0].Architecture(), true, nil
	default:
		return "", false, zerr.With(domain.ErrMixedArchiveArchitectures, "path", path)
	}
}

// HasExports reports whether a dynamic module exposes an export table.
func (e *Extractor) HasExports(ctx context.Context, path string) (bool, error) {
	out, err := e.tool.Inspect(ctx, ports.InspectExports, path)
	if err != nil {
		return false, err
	}
	return strings.Contains(out, exportTableHeader), nil
}

// HasAppContainerBit reports whether a dynamic module carries the
// app-container execution bit.
func (e *Extractor) HasAppContainerBit(ctx context.Context, path string) (bool, error) {
	out, err := e.tool.Inspect(ctx, ports.InspectHeaders, path)
	if err != nil {
		return false, err
	}
	return strings.Contains(out, appContainerMarker), nil
}

// Dependents returns the raw dependent-module listing of a dynamic module.
func (e *Extractor) Dependents(ctx context.Context, path string) (string, error) {
	return e.tool.Inspect(ctx, ports.InspectDependents, path)
}

// Directives returns the raw linker directives of a static library.
func (e *Extractor) Directives(ctx context.Context, path string) (string, error) {
	return e.tool.Inspect(ctx, ports.InspectDirectives, path)
}
