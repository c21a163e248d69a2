package pagination

import (
	"testing"

	"github.com/jonathan/cv-paginator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *types.Profile {
	return &types.Profile{
		General: &types.GeneralInfo{Name: "Ada Lovelace", Designation: "Engineer"},
		Experiences: []types.Experience{
			{Company: "Analytical Engines", Role: "Programmer", StartDate: "1842"},
			{Company: "Royal Society", Role: "Correspondent", StartDate: "1840", EndDate: "1842"},
		},
		Education:       []types.Education{{Institution: "Home", Degree: "Mathematics"}},
		TechnicalSkills: []types.Skill{{Name: "Algorithms"}, {Name: "Notation"}},
		Custom: map[string][]types.CustomEntry{
			"volunteer_work": {{Heading: "Library", Description: "Weekends"}},
		},
	}
}

func TestDefaultSectionConfigs(t *testing.T) {
	configs := DefaultSectionConfigs()
	require.Len(t, configs, 8)
	assert.Equal(t, types.SectionGeneral, configs[0].Type)
	for i, cfg := range configs {
		assert.Equal(t, i, cfg.DisplayOrder)
		assert.NoError(t, cfg.Validate())
	}
}

func TestBuildSections_SortsStablyByDisplayOrder(t *testing.T) {
	configs := []types.SectionConfig{
		{Type: types.SectionTechnicalSkills, DisplayOrder: 2},
		{ID: "exp", Type: types.SectionExperience, DisplayOrder: 1, Title: "Work"},
		{Type: types.SectionGeneral, DisplayOrder: 0},
		{ID: "brk", Type: types.SectionPageBreak, DisplayOrder: 1},
	}

	sections := BuildSections(sampleProfile(), configs)
	require.Len(t, sections, 4)

	var ids []string
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"general-0", "exp", "brk", "technical_skills-2"}, ids)

	assert.Equal(t, "Work", sections[1].Title)
	assert.Len(t, sections[1].Items, 2)
	assert.Equal(t, "Programmer", sections[1].Items[0].Heading)
	assert.Equal(t, "1842 - Present", sections[1].Items[0].Period)

	assert.Empty(t, sections[2].Title)
	assert.Empty(t, sections[2].Items)
	assert.Equal(t, "Technical Skills", sections[3].Title)
}

func TestBuildSections_KeepsEmptyAndCustomSections(t *testing.T) {
	configs := []types.SectionConfig{
		{Type: types.SectionProjects, DisplayOrder: 0},
		{Type: types.SectionType("volunteer_work"), DisplayOrder: 1},
	}

	sections := BuildSections(sampleProfile(), configs)
	require.Len(t, sections, 2)
	assert.True(t, sections[0].IsEmpty())
	assert.Equal(t, "Volunteer Work", sections[1].Title)
	require.Len(t, sections[1].Items, 1)
	assert.Equal(t, "Library", sections[1].Items[0].Heading)
}

func TestBuildSections_NilProfile(t *testing.T) {
	sections := BuildSections(nil, DefaultSectionConfigs())
	require.Len(t, sections, 8)
	for _, s := range sections {
		assert.True(t, s.IsEmpty(), s.ID)
	}

	pages := Paginate(sections, DefaultOptions())
	require.Len(t, pages, 1)
	assert.True(t, pages[0].IsEmpty())
}

func TestBuildSections_DoesNotReorderInput(t *testing.T) {
	configs := []types.SectionConfig{
		{Type: types.SectionEducation, DisplayOrder: 3},
		{Type: types.SectionGeneral, DisplayOrder: 0},
	}
	BuildSections(sampleProfile(), configs)
	assert.Equal(t, types.SectionEducation, configs[0].Type)
}

func TestBuildSections_EndToEnd(t *testing.T) {
	sections := BuildSections(sampleProfile(), DefaultSectionConfigs())
	res := Allocate(sections, DefaultOptions())

	require.Len(t, res.Pages, 1)
	assert.False(t, res.Truncated)
	assert.Equal(t, []string{"general-0", "experience-1", "education-3", "technical_skills-4"}, res.Pages[0].Layout)
}

func TestBuildSections_RepeatedConfigsGetDistinctIDs(t *testing.T) {
	profile := &types.Profile{}
	for i := 0; i < 5; i++ {
		profile.Experiences = append(profile.Experiences, types.Experience{Company: "Co", Role: "Engineer"})
	}
	configs := []types.SectionConfig{
		{Type: types.SectionExperience, DisplayOrder: 1},
		{Type: types.SectionExperience, DisplayOrder: 1, Title: "More"},
	}

	sections := BuildSections(profile, configs)
	require.Len(t, sections, 2)
	assert.Equal(t, "experience-1", sections[0].ID)
	assert.Equal(t, "experience-1-2", sections[1].ID)

	// 95 per item: page 2 holds the tail of the first section and the head of the second
	pages := Paginate(sections, optionsWithHeight(400))
	require.GreaterOrEqual(t, len(pages), 2)
	assert.Len(t, pages[1].PartialSections, 2)
	assert.Equal(t, []string{"experience-1", "experience-1-2"}, pages[1].Layout)

	assert.Len(t, collectItems(pages, "experience-1"), 5)
	assert.Len(t, collectItems(pages, "experience-1-2"), 5)
}
