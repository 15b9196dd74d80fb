package lint

import (
	"context"

	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/zerr"
)

// Suite runs the check catalogue over one built package.
type Suite struct {
	fs      ports.Scanner
	extract *Extractor
	checks  []Check
}

// NewSuite creates a Suite over the given scanner and extraction strategies.
func NewSuite(fs ports.Scanner, headers ports.HeaderReader, tool ports.ToolInspector) *Suite {
	return &Suite{
		fs:      fs,
		extract: NewExtractor(headers, tool),
		checks:  Catalogue(),
	}
}

// Run executes every applicable check in catalogue order and returns the
// aggregated report. Lint violations accumulate into the report; a non-nil
// error means the run aborted on an environment or invariant failure and
// the report is incomplete.
func (s *Suite) Run(ctx context.Context, m *ports.Manifest) (*domain.Report, error) {
	report := domain.NewReport(m.Spec)
	report.RecipePath = m.RecipePath

	// An intentionally empty package skips the whole suite.
	if m.Build.Policies.IsEnabled(domain.PolicyEmptyPackage) {
		return report, nil
	}

	switch m.Build.LibraryLinkage {
	case domain.LinkageDynamic, domain.LinkageStatic:
	default:
		return nil, zerr.With(domain.ErrUnknownLinkage, "linkage", string(m.Build.LibraryLinkage))
	}

	in := newInput(m, s.fs, s.extract, report)

	for _, check := range s.checks {
		if check.Stage == stageLinkage && check.Linkage != m.Build.LibraryLinkage {
			continue
		}
		if check.SkipWhen != "" && m.Build.Policies.IsEnabled(check.SkipWhen) {
			continue
		}

		status, err := check.Run(ctx, in)
		if err != nil {
			return nil, zerr.With(err, "check", check.ID)
		}
		report.Add(status)
	}

	return report, nil
}
