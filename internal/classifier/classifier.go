package classifier

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

// Options configures the classifier.
type Options struct {
	// CatalogFS replaces the embedded archetype catalogue when non-nil.
	CatalogFS fs.FS
}

// Classifier dispatches idea text to the first archetype whose keyword group
// matches. It never blends idea text into the result: the returned analysis is
// a fresh copy of the archetype template.
type Classifier struct {
	catalog *Catalog
}

var _ analysis.Classifier = (*Classifier)(nil)

// New builds a classifier from the configured catalogue.
func New(opts Options) (*Classifier, error) {
	fsys := opts.CatalogFS
	if fsys == nil {
		fsys = EmbeddedFS()
	}
	catalog, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return &Classifier{catalog: catalog}, nil
}

// MustNew panics if the catalogue cannot be loaded.
func MustNew(opts Options) *Classifier {
	c, err := New(opts)
	if err != nil {
		panic(fmt.Sprintf("classifier: %v", err))
	}
	return c
}

// Classify returns the analysis for the first matching archetype, falling back
// to the default archetype.
func (c *Classifier) Classify(idea string) analysis.ProjectAnalysis {
	return c.Match(idea).Template.Clone()
}

// Match returns the archetype selected for idea.
func (c *Classifier) Match(idea string) Archetype {
	lower := strings.ToLower(idea)
	archetypes := c.catalog.archetypes
	for _, arch := range archetypes {
		if arch.Default() {
			continue
		}
		if arch.Matches(lower) {
			return arch
		}
	}
	return archetypes[len(archetypes)-1]
}

// Catalog exposes the loaded catalogue.
func (c *Classifier) Catalog() *Catalog {
	return c.catalog
}
