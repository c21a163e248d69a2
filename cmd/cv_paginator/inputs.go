package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/schemas"
	"github.com/jonathan/cv-paginator/internal/types"
)

// loadProfile reads a profile document and checks it against the profile schema.
func loadProfile(path string) (*types.Profile, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("profile file not found: %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := schemas.ValidateProfile(content); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &profile, nil
}

// loadSectionConfigs reads a section config document. An empty path yields
// the default configuration.
func loadSectionConfigs(path string) ([]types.SectionConfig, error) {
	if path == "" {
		return pagination.DefaultSectionConfigs(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sections file: %w", err)
	}
	if err := schemas.ValidateSections(content); err != nil {
		return nil, fmt.Errorf("sections %s: %w", path, err)
	}

	var configs []types.SectionConfig
	if err := json.Unmarshal(content, &configs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections JSON: %w", err)
	}
	for i := range configs {
		if err := configs[i].Validate(); err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
	}
	return configs, nil
}

// loadSections resolves a profile against its section configuration.
func loadSections(profilePath, sectionsPath string) ([]types.Section, error) {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return nil, err
	}
	configs, err := loadSectionConfigs(sectionsPath)
	if err != nil {
		return nil, err
	}
	return pagination.BuildSections(profile, configs), nil
}

// fileExists reports whether path names a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
