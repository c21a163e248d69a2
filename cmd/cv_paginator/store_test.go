package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommands_RequireDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, _, err := executeCommand(t, "import", "profile", "-i", sampleProfile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	_, _, err = executeCommand(t, "import", "template", "-i", sampleSections)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestImportCommands_ValidateInputFirst(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, _, err := executeCommand(t, "import", "profile", "-i", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile file not found")

	_, _, err = executeCommand(t, "import", "template", "-i", sampleSections, "--orientation", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid orientation")
}

func TestImportCommand_MissingInput(t *testing.T) {
	_, _, err := executeCommand(t, "import", "profile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "in" not set`)
}

func TestStoredName(t *testing.T) {
	importName = ""
	assert.Equal(t, "profile", storedName("/tmp/dir/profile.json"))

	importName = "ada"
	defer func() { importName = "" }()
	assert.Equal(t, "ada", storedName("/tmp/dir/profile.json"))
}
