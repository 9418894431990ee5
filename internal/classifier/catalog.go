package classifier

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

// EmbeddedFS exposes the built-in archetype catalogue.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		return embeddedCatalog
	}
	return sub
}

// Archetype is one keyword group together with the static analysis template
// it selects.
type Archetype struct {
	Name     analysis.Archetype
	Keywords []string
	Template analysis.ProjectAnalysis
	Source   string
}

// Default reports whether the archetype is the keyword-less fallback.
func (a Archetype) Default() bool {
	return len(a.Keywords) == 0
}

// Matches reports whether any keyword is contained in the lower-cased idea.
func (a Archetype) Matches(lowerIdea string) bool {
	for _, keyword := range a.Keywords {
		if strings.Contains(lowerIdea, keyword) {
			return true
		}
	}
	return false
}

// Catalog is the ordered list of archetypes. Order is significant: dispatch
// walks it front to back and the last entry is always the default.
type Catalog struct {
	archetypes []Archetype
}

// Archetypes returns a copy of the ordered archetype list.
func (c *Catalog) Archetypes() []Archetype {
	if c == nil {
		return nil
	}
	out := make([]Archetype, len(c.archetypes))
	for i, arch := range c.archetypes {
		arch.Keywords = append([]string(nil), arch.Keywords...)
		arch.Template = arch.Template.Clone()
		out[i] = arch
	}
	return out
}

var (
	ErrEmptyCatalog   = errors.New("classifier: catalogue defines no archetypes")
	ErrMissingDefault = errors.New("classifier: catalogue must end with a keyword-less default archetype")
)

type catalogFile struct {
	Archetypes []archetypeFile `yaml:"archetypes"`
}

type archetypeFile struct {
	Name       string               `yaml:"name"`
	Keywords   []string             `yaml:"keywords"`
	Goals      []string             `yaml:"goals"`
	Features   []string             `yaml:"features"`
	TechStack  []analysis.TechStack `yaml:"techStack"`
	Timeline   string               `yaml:"timeline"`
	Complexity string               `yaml:"complexity"`
	TeamSize   string               `yaml:"teamSize"`
}

// LoadFS reads every YAML file in fsys (sorted by path) and appends their
// archetypes in file order. The combined list must contain exactly one default
// archetype, placed last.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("classifier: catalogue filesystem is nil")
	}

	catalog := &Catalog{}
	seen := make(map[analysis.Archetype]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("classifier: read %s: %w", path, err)
		}

		var doc catalogFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("classifier: parse %s: %w", path, err)
		}

		for idx, raw := range doc.Archetypes {
			arch, err := normaliseArchetype(raw, path, idx)
			if err != nil {
				return err
			}
			if prev, exists := seen[arch.Name]; exists {
				return fmt.Errorf("classifier: duplicate archetype %q (files %s and %s)", arch.Name, prev, path)
			}
			seen[arch.Name] = path
			catalog.archetypes = append(catalog.archetypes, arch)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(catalog.archetypes) == 0 {
		return nil, ErrEmptyCatalog
	}
	defaults := 0
	for _, arch := range catalog.archetypes {
		if arch.Default() {
			defaults++
		}
	}
	if defaults != 1 || !catalog.archetypes[len(catalog.archetypes)-1].Default() {
		return nil, ErrMissingDefault
	}

	return catalog, nil
}

func normaliseArchetype(raw archetypeFile, source string, idx int) (Archetype, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Archetype{}, fmt.Errorf("classifier: %s archetype #%d has no name", source, idx)
	}

	keywords := make([]string, 0, len(raw.Keywords))
	for _, keyword := range raw.Keywords {
		trimmed := strings.ToLower(strings.TrimSpace(keyword))
		if trimmed == "" {
			continue
		}
		keywords = append(keywords, trimmed)
	}

	template := analysis.ProjectAnalysis{
		Archetype:  analysis.Archetype(name),
		Goals:      raw.Goals,
		Features:   raw.Features,
		TechStack:  raw.TechStack,
		Timeline:   strings.TrimSpace(raw.Timeline),
		Complexity: analysis.Complexity(strings.TrimSpace(raw.Complexity)),
		TeamSize:   strings.TrimSpace(raw.TeamSize),
	}
	if err := template.Validate(); err != nil {
		return Archetype{}, fmt.Errorf("classifier: %s archetype %q: %w", source, name, err)
	}

	return Archetype{
		Name:     analysis.Archetype(name),
		Keywords: keywords,
		Template: template,
		Source:   source,
	}, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
