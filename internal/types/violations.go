package types

// Violation severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single check failure on a pagination result
type Violation struct {
	Type             string   `json:"type"`
	Severity         string   `json:"severity"`
	Details          string   `json:"details"`
	AffectedSections []string `json:"affected_sections,omitempty"`
	Page             *int     `json:"page,omitempty"` // 1-based page number
}

// Violations represents a collection of check failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Add appends v.
func (vs *Violations) Add(v Violation) {
	vs.Violations = append(vs.Violations, v)
}

// HasErrors reports whether any violation has error severity.
func (vs *Violations) HasErrors() bool {
	for _, v := range vs.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of violations.
func (vs *Violations) Count() int {
	return len(vs.Violations)
}
