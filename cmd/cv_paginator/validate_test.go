package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-paginator/internal/types"
	"github.com/jonathan/cv-paginator/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Passes(t *testing.T) {
	stdout, _, err := executeCommand(t, "validate", "-p", sampleProfile, "-s", sampleSections)
	require.NoError(t, err)

	var vs types.Violations
	require.NoError(t, json.Unmarshal([]byte(stdout), &vs))
	assert.False(t, vs.HasErrors())
}

func TestValidateCommand_OutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "violations.json")

	stdout, _, err := executeCommand(t, "validate", "-p", sampleProfile, "-s", sampleSections, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestValidateCommand_Truncation(t *testing.T) {
	out := filepath.Join(t.TempDir(), "violations.json")

	_, _, err := executeCommand(t, "validate", "-p", sampleProfile, "-s", sampleSections, "--max-pages", "1", "-o", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation found")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var vs types.Violations
	require.NoError(t, json.Unmarshal(data, &vs))
	require.NotEmpty(t, vs.Violations)
	assert.Equal(t, validation.ViolationPageLimit, vs.Violations[0].Type)
}

func TestValidateCommand_SchemaFailure(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"experiences": [{"company": "x"}]}`), 0644))

	_, _, err := executeCommand(t, "validate", "-p", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}
