package types

import (
	"strings"
	"unicode/utf8"
)

// Item is one entry inside a section (one job, one degree, one project...).
// Type tags the variant; the remaining fields are what the estimator and
// renderers need, everything else about the source record stays opaque.
type Item struct {
	Type        SectionType `json:"type"`
	Heading     string      `json:"heading"`
	Subheading  string      `json:"subheading,omitempty"`
	Period      string      `json:"period,omitempty"`
	Description string      `json:"description,omitempty"`
}

// TextLength returns the free-text length (in characters) that drives height estimation.
func (i Item) TextLength() int {
	return utf8.RuneCountInString(i.Description)
}

// IsZero reports whether the item carries no content at all.
func (i Item) IsZero() bool {
	return strings.TrimSpace(i.Heading) == "" &&
		strings.TrimSpace(i.Subheading) == "" &&
		strings.TrimSpace(i.Description) == ""
}

// Profile is an employee's CV content, keyed by section type
type Profile struct {
	General           *GeneralInfo             `json:"general,omitempty"`
	Experiences       []Experience             `json:"experiences,omitempty"`
	Education         []Education              `json:"education,omitempty"`
	Projects          []Project                `json:"projects,omitempty"`
	TechnicalSkills   []Skill                  `json:"technical_skills,omitempty"`
	SpecializedSkills []Skill                  `json:"specialized_skills,omitempty"`
	Trainings         []Training               `json:"trainings,omitempty"`
	Achievements      []Achievement            `json:"achievements,omitempty"`
	Custom            map[string][]CustomEntry `json:"custom,omitempty"`
}

// GeneralInfo holds the CV header fields
type GeneralInfo struct {
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// Experience represents one job
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents one degree or diploma
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Project represents one project entry
type Project struct {
	Name         string   `json:"name"`
	Role         string   `json:"role,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Skill represents one skill with an optional proficiency label
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Training represents a course or certification
type Training struct {
	Title     string `json:"title"`
	Provider  string `json:"provider,omitempty"`
	Completed string `json:"completed,omitempty"`
}

// Achievement represents an award or notable accomplishment
type Achievement struct {
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// CustomEntry is a free-form entry for section types outside the built-in set
type CustomEntry struct {
	Heading     string `json:"heading"`
	Description string `json:"description,omitempty"`
}

// Items resolves a section type to its ordered item list.
// Missing or empty content resolves to nil; zero-content records are dropped.
func (p *Profile) Items(t SectionType) []Item {
	if p == nil {
		return nil
	}

	var items []Item
	add := func(item Item) {
		if !item.IsZero() {
			items = append(items, item)
		}
	}

	switch t {
	case SectionGeneral:
		if p.General != nil {
			g := p.General
			add(Item{
				Type:        t,
				Heading:     g.Name,
				Subheading:  g.Designation,
				Period:      joinNonEmpty(" | ", g.Email, g.Phone, g.Location),
				Description: g.Summary,
			})
		}
	case SectionExperience:
		for _, e := range p.Experiences {
			add(Item{Type: t, Heading: e.Role, Subheading: e.Company, Period: period(e.StartDate, e.EndDate), Description: e.Description})
		}
	case SectionEducation:
		for _, e := range p.Education {
			add(Item{Type: t, Heading: joinNonEmpty(", ", e.Degree, e.Field), Subheading: e.Institution, Period: period(e.StartDate, e.EndDate), Description: e.GPA})
		}
	case SectionProjects:
		for _, pr := range p.Projects {
			add(Item{Type: t, Heading: pr.Name, Subheading: joinNonEmpty(" | ", append([]string{pr.Role}, pr.Technologies...)...), Period: period(pr.StartDate, pr.EndDate), Description: pr.Description})
		}
	case SectionTechnicalSkills:
		for _, s := range p.TechnicalSkills {
			add(Item{Type: t, Heading: s.Name, Subheading: s.Proficiency})
		}
	case SectionSpecializedSkills:
		for _, s := range p.SpecializedSkills {
			add(Item{Type: t, Heading: s.Name, Subheading: s.Proficiency})
		}
	case SectionTraining:
		for _, tr := range p.Trainings {
			add(Item{Type: t, Heading: tr.Title, Subheading: tr.Provider, Period: tr.Completed})
		}
	case SectionAchievements:
		for _, a := range p.Achievements {
			add(Item{Type: t, Heading: a.Title, Period: a.Date, Description: a.Description})
		}
	case SectionPageBreak:
		return nil
	default:
		for _, c := range p.Custom[string(t)] {
			add(Item{Type: t, Heading: c.Heading, Description: c.Description})
		}
	}

	return items
}

func period(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - Present"
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
