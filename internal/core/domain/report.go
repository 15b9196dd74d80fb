package domain

// LintStatus is the atomic outcome of one check.
type LintStatus int

const (
	// LintSuccess means the check passed.
	LintSuccess LintStatus = 0
	// LintErrorDetected means the check found a violation. Each detection
	// contributes exactly one error to the aggregate count, regardless of
	// how many files it implicates.
	LintErrorDetected LintStatus = 1
)

// Severity classifies a diagnostic line.
type Severity string

const (
	// SeverityInfo marks informational output, such as skipped checks and
	// remediation snippets.
	SeverityInfo Severity = "info"
	// SeverityWarning marks a convention violation.
	SeverityWarning Severity = "warning"
)

// Diagnostic is one human-readable finding. It is never mutated after being
// appended to a report.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Paths    []string `json:"paths,omitempty"`
}

// Report accumulates diagnostics and the aggregate error count for one
// validation run. It is append-only.
type Report struct {
	Spec        PackageSpec  `json:"spec"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	ErrorCount  int          `json:"error_count"`

	// RecipePath is the build recipe to correct; named in the summary when
	// ErrorCount is nonzero.
	RecipePath string `json:"recipe_path,omitempty"`
}

// NewReport creates an empty report for the given package.
func NewReport(spec PackageSpec) *Report {
	return &Report{Spec: spec}
}

// Warn appends a warning diagnostic.
func (r *Report) Warn(msg string, paths ...string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Message:  msg,
		Paths:    paths,
	})
}

// Info appends an informational diagnostic.
func (r *Report) Info(msg string, paths ...string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: SeverityInfo,
		Message:  msg,
		Paths:    paths,
	})
}

// Add accumulates a check outcome into the error count.
func (r *Report) Add(status LintStatus) {
	r.ErrorCount += int(status)
}
