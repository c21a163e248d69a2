package pagination

import (
	"fmt"
	"slices"

	"github.com/jonathan/cv-paginator/internal/types"
)

// DefaultSectionConfigs returns the section configuration used when a template defines none.
func DefaultSectionConfigs() []types.SectionConfig {
	order := []types.SectionType{
		types.SectionGeneral,
		types.SectionExperience,
		types.SectionProjects,
		types.SectionEducation,
		types.SectionTechnicalSkills,
		types.SectionSpecializedSkills,
		types.SectionTraining,
		types.SectionAchievements,
	}
	configs := make([]types.SectionConfig, len(order))
	for i, t := range order {
		configs[i] = types.SectionConfig{Type: t, DisplayOrder: i}
	}
	return configs
}

// BuildSections resolves a template's section configuration against profile
// content. Sections come back stably sorted by display order; sections with
// no content are kept (the engines skip them) so callers can still see them.
// Configs resolving to the same ID get distinct IDs, see uniqueIDs.
func BuildSections(profile *types.Profile, configs []types.SectionConfig) []types.Section {
	sorted := slices.Clone(configs)
	slices.SortStableFunc(sorted, func(a, b types.SectionConfig) int {
		return a.DisplayOrder - b.DisplayOrder
	})

	sections := make([]types.Section, 0, len(sorted))
	for _, cfg := range sorted {
		s := types.Section{
			ID:           cfg.ResolvedID(),
			Type:         cfg.Type,
			DisplayOrder: cfg.DisplayOrder,
		}
		if cfg.Type != types.SectionPageBreak {
			s.Title = cfg.ResolvedTitle()
			s.Items = profile.Items(cfg.Type)
		}
		sections = append(sections, s)
	}
	uniqueIDs(sections)
	return sections
}

// sortSections returns a copy of sections stably ordered by display order,
// each carrying a distinct ID.
func sortSections(sections []types.Section) []types.Section {
	sorted := slices.Clone(sections)
	slices.SortStableFunc(sorted, func(a, b types.Section) int {
		return a.DisplayOrder - b.DisplayOrder
	})
	uniqueIDs(sorted)
	return sorted
}

// uniqueIDs sets every section's ID to its SectionKey, suffixing repeats
// with their occurrence number: a second "experience-1" becomes
// "experience-1-2". Page layouts and partial sections are keyed by ID.
func uniqueIDs(sections []types.Section) {
	seen := make(map[string]bool, len(sections))
	for i := range sections {
		base := SectionKey(sections[i])
		id := base
		for n := 2; seen[id]; n++ {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		seen[id] = true
		sections[i].ID = id
	}
}
