package ideaplan

import (
	"io/fs"

	"github.com/goliatone/go-ideaplan/internal/classifier"
	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

// NewClassifier builds the keyword classifier over the embedded archetype
// catalogue.
func NewClassifier() (analysis.Classifier, error) {
	return classifier.New(classifier.Options{})
}

// NewClassifierFS builds a classifier over a caller-supplied catalogue. YAML
// files are read in path order; the last archetype must be the keyword-less
// default.
func NewClassifierFS(fsys fs.FS) (analysis.Classifier, error) {
	return classifier.New(classifier.Options{CatalogFS: fsys})
}

// CatalogFS exposes the embedded archetype catalogue so callers can copy and
// extend it.
func CatalogFS() fs.FS {
	return classifier.EmbeddedFS()
}
