// Package schemas holds the JSON Schemas for documents accepted by the CLI and server.
package schemas

import "embed"

// Schema file names
const (
	Profile  = "profile.schema.json"
	Sections = "sections.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
