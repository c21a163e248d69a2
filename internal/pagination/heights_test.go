package pagination

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-paginator/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDefaultHeights_PinnedConstants(t *testing.T) {
	h := DefaultHeights()
	assert.Equal(t, 30.0, h.Title)
	assert.Equal(t, 120.0, h.General)
	assert.Equal(t, 15.0, h.ItemMargin)
	assert.Equal(t, 65.0, h.EducationItem)
	assert.Equal(t, 50.0, h.TrainingItem)
	// one value for both engines; the print path used to read 40
	assert.Equal(t, 55.0, h.AchievementItem)
	assert.Equal(t, 40.0, h.Fallback)
}

func TestEstimateItem(t *testing.T) {
	h := DefaultHeights()

	tests := []struct {
		name        string
		sectionType types.SectionType
		item        types.Item
		want        float64
	}{
		{"experience without text", types.SectionExperience, types.Item{Heading: "Engineer"}, 80},
		{"experience with 50 chars", types.SectionExperience, types.Item{Description: strings.Repeat("a", 50)}, 90},
		{"experience text capped", types.SectionExperience, types.Item{Description: strings.Repeat("a", 5000)}, 180},
		{"project with 100 chars", types.SectionProjects, types.Item{Description: strings.Repeat("b", 100)}, 80},
		{"project text capped", types.SectionProjects, types.Item{Description: strings.Repeat("b", 5000)}, 140},
		{"education ignores text", types.SectionEducation, types.Item{Description: strings.Repeat("c", 500)}, 65},
		{"training", types.SectionTraining, types.Item{Heading: "AWS"}, 50},
		{"achievement", types.SectionAchievements, types.Item{Heading: "Award"}, 55},
		{"general", types.SectionGeneral, types.Item{Heading: "Name"}, 120},
		{"skill", types.SectionTechnicalSkills, types.Item{Heading: "Go"}, 20},
		{"page break", types.SectionPageBreak, types.Item{}, 0},
		{"unknown type", types.SectionType("hobbies"), types.Item{Heading: "Chess"}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.EstimateItem(tt.sectionType, tt.item))
		})
	}
}

func TestEstimateItem_Deterministic(t *testing.T) {
	h := DefaultHeights()
	item := types.Item{Description: strings.Repeat("x", 123)}
	first := h.EstimateItem(types.SectionExperience, item)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, h.EstimateItem(types.SectionExperience, item))
	}
}

func TestEstimateItem_ZeroCharsPerUnit(t *testing.T) {
	h := DefaultHeights()
	h.CharsPerUnit = 0
	assert.Equal(t, 80.0, h.EstimateItem(types.SectionExperience, types.Item{Description: "long text"}))
}

func TestEstimateBody_Skills(t *testing.T) {
	h := DefaultHeights()
	skills := func(n int) []types.Item {
		return make([]types.Item, n)
	}

	assert.Equal(t, 60.0, h.EstimateBody(types.SectionTechnicalSkills, skills(1)))
	assert.Equal(t, 60.0, h.EstimateBody(types.SectionSpecializedSkills, skills(3)))
	assert.Equal(t, 100.0, h.EstimateBody(types.SectionTechnicalSkills, skills(5)))
}

func TestEstimateSection(t *testing.T) {
	h := DefaultHeights()

	general := types.Section{Type: types.SectionGeneral, Items: []types.Item{{Heading: "Ada"}}}
	assert.Equal(t, 120.0, h.EstimateSection(general))

	education := types.Section{Type: types.SectionEducation, Title: "Education", Items: make([]types.Item, 2)}
	assert.Equal(t, 30.0+2*(65+15), h.EstimateSection(education))

	skills := types.Section{Type: types.SectionTechnicalSkills, Items: make([]types.Item, 1)}
	assert.Equal(t, 90.0, h.EstimateSection(skills))

	// unknown types: the 40 fallback body plus the title, regardless of item count
	custom := types.Section{Type: types.SectionType("hobbies"), Items: make([]types.Item, 4)}
	assert.Equal(t, 70.0, h.EstimateSection(custom))

	assert.Equal(t, 0.0, h.EstimateSection(types.Section{Type: types.SectionPageBreak}))
}
