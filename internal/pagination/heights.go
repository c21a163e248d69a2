// Package pagination distributes CV sections across fixed-size pages.
//
// Heights are heuristic estimates in layout units (CSS pixels at 96 DPI) that
// stand in for real text measurement, which callers cannot cheaply perform
// before layout. Every estimate is pure and total.
package pagination

import "github.com/jonathan/cv-paginator/internal/types"

// Heights is the single table of height constants shared by the page
// allocator and the block flow engine.
type Heights struct {
	Title      float64 `json:"title"`
	General    float64 `json:"general"`
	ItemMargin float64 `json:"item_margin"`

	ExperienceBase    float64 `json:"experience_base"`
	ExperienceTextCap float64 `json:"experience_text_cap"`
	ProjectBase       float64 `json:"project_base"`
	ProjectTextCap    float64 `json:"project_text_cap"`
	// CharsPerUnit converts free-text length into height before capping.
	CharsPerUnit float64 `json:"chars_per_unit"`

	EducationItem float64 `json:"education_item"`
	TrainingItem  float64 `json:"training_item"`
	// AchievementItem was 55 on the preview path and 40 on the print path;
	// both engines now read this one value.
	AchievementItem float64 `json:"achievement_item"`

	SkillsMin     float64 `json:"skills_min"`
	SkillsPerItem float64 `json:"skills_per_item"`

	Fallback float64 `json:"fallback"`
}

// DefaultHeights returns the standard height table.
func DefaultHeights() Heights {
	return Heights{
		Title:             30,
		General:           120,
		ItemMargin:        15,
		ExperienceBase:    80,
		ExperienceTextCap: 100,
		ProjectBase:       60,
		ProjectTextCap:    80,
		CharsPerUnit:      5,
		EducationItem:     65,
		TrainingItem:      50,
		AchievementItem:   55,
		SkillsMin:         60,
		SkillsPerItem:     20,
		Fallback:          40,
	}
}

// textHeight returns the capped height contribution of free text.
func (h Heights) textHeight(length int, limit float64) float64 {
	if h.CharsPerUnit <= 0 {
		return 0
	}
	return min(float64(length)/h.CharsPerUnit, limit)
}

// EstimateItem returns the height of a single item, excluding the inter-item margin.
func (h Heights) EstimateItem(t types.SectionType, item types.Item) float64 {
	switch t {
	case types.SectionExperience:
		return h.ExperienceBase + h.textHeight(item.TextLength(), h.ExperienceTextCap)
	case types.SectionProjects:
		return h.ProjectBase + h.textHeight(item.TextLength(), h.ProjectTextCap)
	case types.SectionEducation:
		return h.EducationItem
	case types.SectionTraining:
		return h.TrainingItem
	case types.SectionAchievements:
		return h.AchievementItem
	case types.SectionGeneral:
		return h.General
	case types.SectionTechnicalSkills, types.SectionSpecializedSkills:
		return h.SkillsPerItem
	case types.SectionPageBreak:
		return 0
	default:
		return h.Fallback
	}
}

// EstimateItems returns the height of a run of items, each followed by the item margin.
func (h Heights) EstimateItems(t types.SectionType, items []types.Item) float64 {
	total := 0.0
	for _, item := range items {
		total += h.EstimateItem(t, item) + h.ItemMargin
	}
	return total
}

// EstimateBody returns the height of a section's content without its title.
func (h Heights) EstimateBody(t types.SectionType, items []types.Item) float64 {
	switch {
	case t == types.SectionPageBreak:
		return 0
	case t == types.SectionGeneral:
		return h.General
	case t.IsSkills():
		return max(h.SkillsMin, float64(len(items))*h.SkillsPerItem)
	case t.Splittable():
		return h.EstimateItems(t, items)
	default:
		return h.Fallback
	}
}

// EstimateSection returns the height of a whole section including its title.
// The general header carries no separate title.
func (h Heights) EstimateSection(s types.Section) float64 {
	switch s.Type {
	case types.SectionPageBreak:
		return 0
	case types.SectionGeneral:
		return h.General
	default:
		return h.Title + h.EstimateBody(s.Type, s.Items)
	}
}
