package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	validate "github.com/jonathan/cv-paginator/internal/schemas"
	"github.com/jonathan/cv-paginator/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	schemas.Profile,
	schemas.Sections,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare type and $schema")
		})
	}
}

func TestEmbeddedMatchesDisk(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		embedded, err := schemas.FS.ReadFile(schemaFile)
		require.NoError(t, err)
		onDisk, err := os.ReadFile(schemaFile)
		require.NoError(t, err)
		assert.Equal(t, onDisk, embedded, schemaFile)
	}
}

func TestSampleDocuments(t *testing.T) {
	tests := []struct {
		schema string
		file   string
	}{
		{schemas.Profile, "../testdata/profile.json"},
		{schemas.Sections, "../testdata/sections.json"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.NoError(t, validate.ValidateJSON(tt.schema, tt.file))
		})
	}
}
