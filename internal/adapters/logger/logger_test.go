package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlint/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. It also sets NO_COLOR=1 to keep the output free of ANSI codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("validating package layout")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("tool not found on PATH")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				errors.New("open packlint.yaml: no such file or directory"),
				"failed to read the build recipe",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "stdlib chain stays flat",
			err: fmt.Errorf("failed to load manifest: %w",
				fmt.Errorf("read failed: %w", errors.New("connection refused"))),
			goldenName: "error_chain_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("test error message"))

	output := buf.String()
	assert.Contains(t, output, `"error"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.NotContains(t, output, "✗")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("error in json mode"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPretty := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.NotContains(t, prettyOutput, `"error"`)

	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")

	assert.Contains(t, backToPretty, "✗")
	assert.NotContains(t, backToPretty, `"error"`)
}

func TestLogger_SetOutput_NilDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	done := make(chan bool, 5)

	go func() {
		lg.Info("concurrent info")
		done <- true
	}()
	go func() {
		lg.Warn("concurrent warn")
		done <- true
	}()
	go func() {
		lg.Error(errors.New("concurrent error"))
		done <- true
	}()
	go func() {
		lg.SetJSON(true)
		done <- true
	}()
	go func() {
		lg.SetOutput(&bytes.Buffer{})
		done <- true
	}()

	for i := 0; i < 5; i++ {
		<-done
	}
}
