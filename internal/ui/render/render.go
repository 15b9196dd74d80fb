// Package render presents validation reports as colored text or JSON.
package render

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/muesli/termenv"
	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/ui/output"
	"go.trai.ch/packlint/internal/ui/style"
	"go.trai.ch/zerr"
)

// Renderer writes a report to a writer.
type Renderer struct {
	out *termenv.Output
}

// New creates a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

// Text renders the report as colored, human-readable text in diagnostic
// order, followed by the summary line.
func (r *Renderer) Text(report *domain.Report) error {
	r.line(termenv.RGBColor(string(style.Slate)),
		fmt.Sprintf("-- Performing post-build validation for %s", report.Spec))

	for _, d := range report.Diagnostics {
		switch d.Severity {
		case domain.SeverityWarning:
			r.line(termenv.RGBColor(string(style.Yellow)), style.Warning+" "+d.Message)
		default:
			r.line(termenv.RGBColor(string(style.Slate)), d.Message)
		}
		for _, p := range d.Paths {
			r.line(termenv.RGBColor(string(style.Slate)), "    "+p)
		}
	}

	if report.ErrorCount != 0 {
		r.line(termenv.RGBColor(string(style.Red)), fmt.Sprintf(
			"%s Found %d error(s). Please correct the build recipe:\n    %s",
			style.Cross, report.ErrorCount, report.RecipePath))
	} else {
		r.line(termenv.RGBColor(string(style.Green)), style.Check+" No post-build issues found")
	}

	r.line(termenv.RGBColor(string(style.Slate)), "-- Performing post-build validation done")
	return nil
}

// JSON renders the report as a single JSON document.
func (r *Renderer) JSON(report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}
	_, err = r.out.WriteString(string(data) + "\n")
	return err
}

func (r *Renderer) line(color termenv.Color, msg string) {
	styled := r.out.String(msg).Foreground(color)
	_, _ = r.out.WriteString(styled.String() + "\n")
}
