package render_test

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/ui/render"
)

func sampleReport() *domain.Report {
	r := domain.NewReport(domain.PackageSpec{Name: "zlib", Triplet: "x64-windows"})
	r.RecipePath = "ports/zlib/portfile.cmake"
	r.Warn("The folder /include is empty or not present. This indicates the library was not correctly installed.")
	r.Warn("The following dlls were found in /lib or /debug/lib. Please move them to /bin or /debug/bin, respectively.",
		"lib/zlib1.dll")
	r.Info("Not evaluated: dynamic module exports (binary inspection tool not available)")
	r.Add(domain.LintErrorDetected)
	r.Add(domain.LintErrorDetected)
	return r
}

func TestRenderer_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	require.NoError(t, render.New(buf).Text(sampleReport()))

	g := goldie.New(t)
	g.Assert(t, "report_text", buf.Bytes())
}

func TestRenderer_Text_Clean(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	report := domain.NewReport(domain.PackageSpec{Name: "zlib", Triplet: "x64-windows"})
	report.RecipePath = "ports/zlib/portfile.cmake"

	buf := &bytes.Buffer{}
	require.NoError(t, render.New(buf).Text(report))

	g := goldie.New(t)
	g.Assert(t, "report_text_clean", buf.Bytes())
}

func TestRenderer_JSON(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	require.NoError(t, render.New(buf).JSON(sampleReport()))

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, *sampleReport(), decoded)
	assert.Equal(t, 2, decoded.ErrorCount)
	require.Len(t, decoded.Diagnostics, 3)
	assert.Equal(t, domain.SeverityInfo, decoded.Diagnostics[2].Severity)
}
