package classifier

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

// Issue is a catalogue problem that does not stop it from loading.
type Issue struct {
	Source    string
	Archetype analysis.Archetype
	Location  string
	Message   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s.%s -> %s", i.Source, i.Archetype, i.Location, i.Message)
}

// Lint reports keywords that can never win dispatch, duplicate entries and
// empty tech stack groups.
func (c *Catalog) Lint() []Issue {
	if c == nil {
		return nil
	}

	var issues []Issue
	type owned struct {
		keyword   string
		archetype analysis.Archetype
	}
	var earlier []owned

	for _, arch := range c.archetypes {
		add := func(location, format string, args ...any) {
			issues = append(issues, Issue{
				Source:    arch.Source,
				Archetype: arch.Name,
				Location:  location,
				Message:   fmt.Sprintf(format, args...),
			})
		}

		seen := map[string]bool{}
		for i, keyword := range arch.Keywords {
			location := fmt.Sprintf("keywords[%d]", i)
			if seen[keyword] {
				add(location, "duplicate keyword %q", keyword)
				continue
			}
			seen[keyword] = true
			for _, prev := range earlier {
				if strings.Contains(keyword, prev.keyword) {
					add(location, "keyword %q never matches: %q of %s wins first", keyword, prev.keyword, prev.archetype)
					break
				}
			}
		}
		for _, keyword := range arch.Keywords {
			earlier = append(earlier, owned{keyword: keyword, archetype: arch.Name})
		}

		issues = append(issues, duplicates(arch, "goals", arch.Template.Goals)...)
		issues = append(issues, duplicates(arch, "features", arch.Template.Features)...)

		for i, entry := range arch.Template.TechStack {
			if strings.TrimSpace(entry.Category) == "" {
				add(fmt.Sprintf("techStack[%d]", i), "category is empty")
			}
			if len(entry.Technologies) == 0 {
				add(fmt.Sprintf("techStack[%d]", i), "no technologies listed")
			}
		}
	}
	return issues
}

func duplicates(arch Archetype, field string, items []string) []Issue {
	var issues []Issue
	seen := map[string]bool{}
	for i, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if seen[key] {
			issues = append(issues, Issue{
				Source:    arch.Source,
				Archetype: arch.Name,
				Location:  fmt.Sprintf("%s[%d]", field, i),
				Message:   fmt.Sprintf("duplicate entry %q", item),
			})
		}
		seen[key] = true
	}
	return issues
}
