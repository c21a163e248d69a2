package pagination

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/cv-paginator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// experienceItems returns n distinct experience items of 90 units each.
func experienceItems(n int) []types.Item {
	items := make([]types.Item, n)
	for i := range items {
		items[i] = types.Item{
			Type:        types.SectionExperience,
			Heading:     fmt.Sprintf("Role %d", i),
			Subheading:  "Company",
			Period:      "2020 - 2021",
			Description: strings.Repeat("d", 50),
		}
	}
	return items
}

func TestContinuationTitle(t *testing.T) {
	assert.Equal(t, "Experience (continued)", ContinuationTitle("Experience"))
}

func TestSplit_AllFit(t *testing.T) {
	s := NewSplitter(DefaultHeights())
	items := experienceItems(2)

	res := s.Split(types.SectionExperience, items, 210, "Experience")
	require.True(t, res.Fits())
	assert.Equal(t, items, res.Items())
	assert.Empty(t, res.RemainingItems)
	assert.Equal(t, 210.0, res.Used)
	assert.Equal(t, 90.0, res.PageItems[0].EstimatedHeight)
	assert.Equal(t, "Experience", res.Title)
}

func TestSplit_Partial(t *testing.T) {
	s := NewSplitter(DefaultHeights())
	items := experienceItems(3)

	res := s.Split(types.SectionExperience, items, 150, "Experience")
	require.Len(t, res.PageItems, 1)
	assert.Equal(t, items[0], res.PageItems[0].Content)
	assert.Equal(t, items[1:], res.RemainingItems)
	assert.Equal(t, 105.0, res.Used)
}

func TestSplit_NothingFits(t *testing.T) {
	s := NewSplitter(DefaultHeights())
	items := experienceItems(2)

	res := s.Split(types.SectionExperience, items, 50, "Experience")
	assert.False(t, res.Fits())
	assert.Empty(t, res.PageItems)
	assert.Equal(t, items, res.RemainingItems)
	assert.Equal(t, 0.0, res.Used)
}

func TestSplit_StopsAtFirstOverflow(t *testing.T) {
	s := NewSplitter(DefaultHeights())
	items := []types.Item{
		{Description: strings.Repeat("x", 50)},   // 90
		{Description: strings.Repeat("x", 1000)}, // 180
		{Description: ""},                        // 80, would fit but must not jump the queue
	}

	res := s.Split(types.SectionExperience, items, 250, "Experience")
	require.Len(t, res.PageItems, 1)
	assert.Equal(t, items[1:], res.RemainingItems)
}

func TestSplit_EmptyItems(t *testing.T) {
	s := NewSplitter(DefaultHeights())
	res := s.Split(types.SectionEducation, nil, 500, "Education")
	assert.False(t, res.Fits())
	assert.Empty(t, res.RemainingItems)
}

func TestForce(t *testing.T) {
	s := NewSplitter(DefaultHeights())
	items := experienceItems(3)

	res := s.Force(types.SectionExperience, items, "Experience (continued)")
	require.Len(t, res.PageItems, 1)
	assert.Equal(t, items[0], res.PageItems[0].Content)
	assert.Equal(t, items[1:], res.RemainingItems)
	assert.Equal(t, 105.0, res.Used)

	single := s.Force(types.SectionExperience, items[:1], "Experience")
	assert.Empty(t, single.RemainingItems)

	none := s.Force(types.SectionExperience, nil, "Experience")
	assert.False(t, none.Fits())
}
