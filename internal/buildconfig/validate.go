package buildconfig

import (
	"fmt"
	"strings"
)

// Validate performs a pre-flight check of the values the engine relies on.
// New never calls it; the engine remains the authority on path existence.
func (c BuildConfig) Validate() error {
	expr := c.Build.PostHTML.Expressions
	pairs := []struct {
		name string
		pair Delimiters
	}{
		{"delimiters", expr.Delimiters},
		{"unescapeDelimiters", expr.UnescapeDelimiters},
	}
	for _, p := range pairs {
		if strings.TrimSpace(p.pair.Open()) == "" || strings.TrimSpace(p.pair.Close()) == "" {
			return fmt.Errorf("%s %q: %w", p.name, p.pair, ErrEmptyDelimiter)
		}
	}
	if expr.Delimiters == expr.UnescapeDelimiters {
		return fmt.Errorf("%q: %w", expr.Delimiters, ErrDelimiterCollision)
	}

	tpl := c.Build.Templates
	if strings.TrimSpace(tpl.Source) == "" {
		return fmt.Errorf("templates.source: %w", ErrEmptyPath)
	}
	if strings.TrimSpace(tpl.Destination.Path) == "" {
		return fmt.Errorf("templates.destination.path: %w", ErrEmptyPath)
	}
	return nil
}
