package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage(3)
	assert.Equal(t, 3, p.Number)
	assert.True(t, p.IsEmpty())
	assert.NotNil(t, p.PartialSections)

	p.Sections = append(p.Sections, Section{ID: "general-0"})
	assert.False(t, p.IsEmpty())
}

func TestGeometryFor(t *testing.T) {
	portrait := GeometryFor(OrientationPortrait)
	assert.Equal(t, OrientationPortrait, portrait.Orientation)
	assert.InDelta(t, 1027.0, portrait.ContentHeight(), 0.001)
	assert.InDelta(t, 698.0, portrait.ContentWidth(), 0.001)

	landscape := GeometryFor(OrientationLandscape)
	assert.Equal(t, OrientationLandscape, landscape.Orientation)
	assert.InDelta(t, 698.0, landscape.ContentHeight(), 0.001)

	assert.Equal(t, portrait, GeometryFor(Orientation("diagonal")))
}

func TestOrientation_Valid(t *testing.T) {
	assert.True(t, OrientationPortrait.Valid())
	assert.True(t, OrientationLandscape.Valid())
	assert.False(t, Orientation("").Valid())
}
