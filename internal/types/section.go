// Package types provides type definitions for structured data used throughout the cv-paginator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// SectionType identifies one category of CV content
type SectionType string

// Known section types
const (
	SectionGeneral           SectionType = "general"
	SectionExperience        SectionType = "experience"
	SectionEducation         SectionType = "education"
	SectionProjects          SectionType = "projects"
	SectionTechnicalSkills   SectionType = "technical_skills"
	SectionSpecializedSkills SectionType = "specialized_skills"
	SectionTraining          SectionType = "training"
	SectionAchievements      SectionType = "achievements"
	SectionPageBreak         SectionType = "page_break"
)

// KnownSectionTypes lists every built-in section type in canonical order.
var KnownSectionTypes = []SectionType{
	SectionGeneral,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionTechnicalSkills,
	SectionSpecializedSkills,
	SectionTraining,
	SectionAchievements,
	SectionPageBreak,
}

var defaultTitles = map[SectionType]string{
	SectionGeneral:           "General Information",
	SectionExperience:        "Experience",
	SectionEducation:         "Education",
	SectionProjects:          "Projects",
	SectionTechnicalSkills:   "Technical Skills",
	SectionSpecializedSkills: "Specialized Skills",
	SectionTraining:          "Training & Certifications",
	SectionAchievements:      "Achievements",
}

// IsKnown reports whether t is one of the built-in section types.
func (t SectionType) IsKnown() bool {
	for _, known := range KnownSectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Splittable reports whether items of this section type may be spread across pages.
func (t SectionType) Splittable() bool {
	switch t {
	case SectionExperience, SectionProjects, SectionEducation, SectionTraining, SectionAchievements:
		return true
	default:
		return false
	}
}

// IsSkills reports whether t is one of the skill-count section types.
func (t SectionType) IsSkills() bool {
	return t == SectionTechnicalSkills || t == SectionSpecializedSkills
}

// DefaultTitle returns the display label used when a section config has no title.
func (t SectionType) DefaultTitle() string {
	if title, ok := defaultTitles[t]; ok {
		return title
	}
	if t == "" {
		return ""
	}
	// custom types: "volunteer_work" -> "Volunteer Work"
	words := strings.Fields(strings.ReplaceAll(string(t), "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Section is one logical CV block, resolved from a SectionConfig and profile content
type Section struct {
	ID           string      `json:"id"`
	Type         SectionType `json:"type"`
	DisplayOrder int         `json:"display_order"`
	Title        string      `json:"title"`
	Items        []Item      `json:"items,omitempty"`
}

// Splittable reports whether the section's items may be divided across pages.
func (s Section) Splittable() bool {
	return s.Type.Splittable()
}

// IsEmpty reports whether the section has no content to place.
// Page breaks are never empty: they carry no content but still act.
func (s Section) IsEmpty() bool {
	if s.Type == SectionPageBreak {
		return false
	}
	return len(s.Items) == 0
}

// SectionConfig is one entry of a template's ordered section configuration
type SectionConfig struct {
	ID           string            `json:"id,omitempty"`
	Type         SectionType       `json:"type" validate:"required"`
	DisplayOrder int               `json:"display_order" validate:"gte=0"`
	Title        string            `json:"title,omitempty"`
	FieldMapping map[string]string `json:"field_mapping,omitempty"`
	Styling      map[string]string `json:"styling,omitempty"`
}

// ResolvedID returns the configured ID or a stable one derived from type and order.
func (c SectionConfig) ResolvedID() string {
	if c.ID != "" {
		return c.ID
	}
	return fmt.Sprintf("%s-%d", c.Type, c.DisplayOrder)
}

// ResolvedTitle returns the configured title or the type default.
func (c SectionConfig) ResolvedTitle() string {
	if strings.TrimSpace(c.Title) != "" {
		return c.Title
	}
	return c.Type.DefaultTitle()
}

// Validate validates the SectionConfig using the validator.
func (c *SectionConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
