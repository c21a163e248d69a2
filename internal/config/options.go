package config

import (
	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/types"
)

// PaginationOptions resolves the layout settings into engine options.
// Zero values fall back to the engine defaults.
func (c *Config) PaginationOptions() pagination.Options {
	opts := pagination.DefaultOptions()
	opts.Geometry = types.GeometryFor(types.Orientation(c.Orientation))
	if c.MaxPages > 0 {
		opts.MaxPages = c.MaxPages
	}
	if c.AchievementItemHeight > 0 {
		opts.Heights.AchievementItem = c.AchievementItemHeight
	}
	return opts
}
