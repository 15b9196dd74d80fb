// Package dumpbin adapts the external dumpbin-compatible introspection tool.
package dumpbin

import (
	"context"
	"os"
	"os/exec"

	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvToolPath overrides tool discovery when set.
const EnvToolPath = "PACKLINT_DUMPBIN"

// Tool implements ports.ToolInspector by spawning the introspection tool as
// a subprocess, one invocation per artifact and mode.
type Tool struct {
	path string
}

// NewTool creates a Tool using the given executable path. An empty path
// means the tool is unavailable.
func NewTool(path string) *Tool {
	return &Tool{path: path}
}

// Discover locates the tool from the environment or PATH. A Tool is always
// returned; absence is reported through Available.
func Discover() *Tool {
	if p := os.Getenv(EnvToolPath); p != "" {
		return NewTool(p)
	}
	if p, err := exec.LookPath("dumpbin"); err == nil {
		return NewTool(p)
	}
	return NewTool("")
}

var _ ports.ToolInspector = (*Tool)(nil)

// Available reports whether an executable was located at startup.
func (t *Tool) Available() bool {
	return t.path != ""
}

// Inspect runs the tool with the given inspection mode against one artifact
// and returns its combined output. A nonzero exit status is the tool telling
// us the environment is broken, so it is escalated as domain.ErrToolFailed
// rather than folded into the lint findings.
func (t *Tool) Inspect(ctx context.Context, mode ports.InspectMode, artifact string) (string, error) {
	if t.path == "" {
		return "", zerr.With(domain.ErrToolFailed, "reason", "tool not available")
	}

	cmd := exec.CommandContext(ctx, t.path, "/"+string(mode), artifact) //nolint:gosec // tool path is operator supplied
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", zerr.With(
			zerr.With(
				zerr.With(
					zerr.Wrap(err, domain.ErrToolFailed.Error()),
					"mode", string(mode),
				),
				"artifact", artifact,
			),
			"output", string(out),
		)
	}

	return string(out), nil
}
