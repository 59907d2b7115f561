// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package issues

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/we-the-people/models"
)

var errNegativeCount = errors.New("counts must be non-negative")

// DefaultSeed is the issue list the service starts with when no seed file
// is configured.
func DefaultSeed() []models.Issue {
	return []models.Issue{
		{
			ID:     "federal-term-limits",
			Title:  "Should Congress have 12-year total term limits?",
			Detail: "Proposed reform: Max 12 total years across the House/Senate. Existing members phase in after current term.",
			Tags:   []string{"Reform", "Congress"},
			Stats:  models.Counts{Yes: 1842, No: 623, Unsure: 211},
		},
		{
			ID:     "single-subject-rule",
			Title:  "Adopt a nationwide Single-Subject Rule for federal bills?",
			Detail: "Each bill must be one subject with a clear title — no hidden riders or unrelated spending.",
			Tags:   []string{"Transparency", "Process"},
			Stats:  models.Counts{Yes: 2215, No: 188, Unsure: 97},
		},
		{
			ID:     "ban-corporate-donations",
			Title:  "Ban direct corporate & PAC donations to members of Congress?",
			Detail: "Shift to small-dollar, individual contributions with real-time disclosure.",
			Tags:   []string{"Anti-Corruption"},
			Stats:  models.Counts{Yes: 1999, No: 301, Unsure: 155},
		},
	}
}

type seedFile struct {
	Issues []models.Issue `yaml:"issues"`
}

// LoadSeed reads a YAML seed list. An empty path yields DefaultSeed.
//
//	issues:
//	  - title: Should Congress have 12-year total term limits?
//	    detail: ...
//	    tags: [Reform, Congress]
//	    stats: {yes: 1842, no: 623, unsure: 211}
//
// Missing IDs are derived from the title.
func LoadSeed(path string) ([]models.Issue, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML seed document
func ParseSeed(data []byte) ([]models.Issue, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seen := make(map[string]bool, len(f.Issues))
	for i := range f.Issues {
		is := &f.Issues[i]
		if is.Title == "" {
			return nil, fmt.Errorf("seed issue %d: title is required", i)
		}
		if is.ID == "" {
			is.ID = Slugify(is.Title)
		}
		if is.ID == "" {
			return nil, fmt.Errorf("seed issue %d: cannot derive id from %q", i, is.Title)
		}
		if seen[is.ID] {
			return nil, fmt.Errorf("seed issue %d: duplicate id %q", i, is.ID)
		}
		if is.Stats.Yes < 0 || is.Stats.No < 0 || is.Stats.Unsure < 0 {
			return nil, fmt.Errorf("seed issue %q: %w", is.ID, errNegativeCount)
		}
		if is.Tags == nil {
			is.Tags = []string{}
		}
		seen[is.ID] = true
	}
	return f.Issues, nil
}
