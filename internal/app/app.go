// Package app implements the application layer for packlint.
package app

import (
	"context"
	"io"
	"os"
	"strconv"

	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/packlint/internal/engine/lint"
	"go.trai.ch/packlint/internal/ui/render"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.RecipeLoader
	suite  *lint.Suite
	logger ports.Logger
	out    io.Writer
}

// New creates a new App instance.
func New(loader ports.RecipeLoader, suite *lint.Suite, log ports.Logger) *App {
	return &App{
		loader: loader,
		suite:  suite,
		logger: log,
		out:    os.Stdout,
	}
}

// WithOutput redirects the report output. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// ValidateOptions configuration for the Validate method.
type ValidateOptions struct {
	// ManifestPath is the recipe manifest to load; empty means discover
	// packlint.yaml in the working directory.
	ManifestPath string

	// JSON renders the report as JSON instead of text.
	JSON bool
}

// Validate runs the full post-build check suite for one package and renders
// the report. It returns domain.ErrValidationFailed when violations were
// found, and any other error when the run aborted before completing.
func (a *App) Validate(ctx context.Context, opts ValidateOptions) error {
	manifest, err := a.loader.Load(opts.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load recipe manifest")
	}

	report, err := a.suite.Run(ctx, manifest)
	if err != nil {
		return zerr.Wrap(err, "post-build validation aborted")
	}

	renderer := render.New(a.out)
	if opts.JSON {
		err = renderer.JSON(report)
	} else {
		err = renderer.Text(report)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to render report")
	}

	if report.ErrorCount != 0 {
		return zerr.With(domain.ErrValidationFailed, "errors", strconv.Itoa(report.ErrorCount))
	}
	return nil
}

// Components bundles the wired application pieces handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
