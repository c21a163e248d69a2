package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-paginator/internal/types"
)

// ProfileRecord is a stored employee profile
type ProfileRecord struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Profile   *types.Profile `json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Template is a stored CV template with its ordered section configuration
type Template struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Orientation types.Orientation     `json:"orientation"`
	Sections    []types.SectionConfig `json:"sections"`
	CreatedAt   time.Time             `json:"created_at"`
}

// Engine names recorded on exports
const (
	EngineAllocate = "allocate"
	EngineFlow     = "flow"
)

// ExportInput describes one pagination or export run to record
type ExportInput struct {
	ProfileID   uuid.UUID
	TemplateID  *uuid.UUID
	Orientation types.Orientation
	Engine      string
	PageCount   int
	Truncated   bool
}

// Export is a recorded pagination or export run
type Export struct {
	ID          uuid.UUID         `json:"id"`
	ProfileID   uuid.UUID         `json:"profile_id"`
	TemplateID  *uuid.UUID        `json:"template_id,omitempty"`
	Orientation types.Orientation `json:"orientation"`
	Engine      string            `json:"engine"`
	PageCount   int               `json:"page_count"`
	Truncated   bool              `json:"truncated"`
	CreatedAt   time.Time         `json:"created_at"`
}
