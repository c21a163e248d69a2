package db

import (
	"testing"

	"github.com/jonathan/cv-paginator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineConstants(t *testing.T) {
	assert.NotEqual(t, EngineAllocate, EngineFlow)
	assert.NotEmpty(t, EngineAllocate)
	assert.NotEmpty(t, EngineFlow)
}

func TestEncodeDecodeMap(t *testing.T) {
	data, err := encodeMap(nil)
	require.NoError(t, err)
	assert.Nil(t, data, "empty maps are stored as NULL")

	data, err = encodeMap(map[string]string{"heading": "role"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"heading":"role"}`, string(data))

	m, err := decodeMap(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"heading": "role"}, m)

	m, err = decodeMap(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = decodeMap([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestNullString(t *testing.T) {
	assert.Nil(t, nullString(""))
	require.NotNil(t, nullString("Experience"))
	assert.Equal(t, "Experience", *nullString("Experience"))
}

func TestDecodeProfile(t *testing.T) {
	profile, err := decodeProfile([]byte(`{"general": {"name": "Ada"}, "technical_skills": [{"name": "Go"}]}`))
	require.NoError(t, err)
	require.NotNil(t, profile.General)
	assert.Equal(t, "Ada", profile.General.Name)
	assert.Len(t, profile.Items(types.SectionTechnicalSkills), 1)

	empty, err := decodeProfile(nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)

	_, err = decodeProfile([]byte(`not json`))
	assert.Error(t, err)
}
