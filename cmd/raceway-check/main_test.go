package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const project = `
cables:
  - id: C-1
    from: MCC-1
    to: PMP-1
    quantity: "3"
    size: "#10"
    type: THHN
    raceway_routing: R-1, R-2
  - id: C-2
    from: MCC-1
    to: PMP-9
    raceway_routing: R-1
raceways:
  - id: R-1
    from: MCC-1
    to: HH-1
    cable_fill: C-1, C-2
  - id: R-2
    from: HH-1
    to: PMP-1
    cable_fill: C-1
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Report(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	path := writeTemp(t, "project.yaml", project)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-project", path, "-workers", "2"}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "C-1 [Valid]")
	assert.Contains(t, out, "C-2 [BrokenRoute]")
	assert.Contains(t, out, "== Cable / tray ==")
	assert.Contains(t, stderr.String(), "validation run finished")
}

func TestRun_StrictAndMetrics(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	path := writeTemp(t, "project.yaml", project)
	metricsPath := filepath.Join(t.TempDir(), "metrics.prom")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-project", path, "-strict", "-metrics", metricsPath}, &stdout, &stderr)

	assert.Equal(t, exitFindings, code)
	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `raceway_routes_checked_total{status="BrokenRoute"} 1`)
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(context.Background(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-project is required")

	stderr.Reset()
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-bogus"}, &stdout, &stderr))
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	assert.Equal(t, exitError, run(context.Background(), []string{"-project", missing}, &stdout, &stderr))

	empty := writeTemp(t, "empty.yaml", "cables: []\n")
	stderr.Reset()
	assert.Equal(t, exitError, run(context.Background(), []string{"-project", empty}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "project is incomplete")

	badConfig := writeTemp(t, "raceway.yaml", "constraints: [voltage]\n")
	stderr.Reset()
	assert.Equal(t, exitError, run(context.Background(), []string{"-project", empty, "-config", badConfig}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Failed to load config")
}
