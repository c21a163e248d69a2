package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDFCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cv.pdf")

	stdout, _, err := executeCommand(t, "export-pdf", "-p", sampleProfile, "-s", sampleSections,
		"-o", out, "--title", "Ada Lovelace", "--page-numbers", "--check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote")

	count, err := validation.CountPDFPages(out)
	require.NoError(t, err)

	flowOut, _, err := executeCommand(t, "flow", "-p", sampleProfile, "-s", sampleSections)
	require.NoError(t, err)
	var flow pagination.FlowResult
	require.NoError(t, json.Unmarshal([]byte(flowOut), &flow))
	assert.Equal(t, flow.PageCount(), count)
}

func TestExportPDFCommand_Landscape(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cv.pdf")

	_, _, err := executeCommand(t, "export-pdf", "-p", sampleProfile, "-o", out, "--orientation", "landscape", "--draw-boxes", "--check")
	require.NoError(t, err)

	count, err := validation.CountPDFPages(out)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)
}

func TestExportPDFCommand_MissingOutput(t *testing.T) {
	_, _, err := executeCommand(t, "export-pdf", "-p", sampleProfile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "out" not set`)
}
