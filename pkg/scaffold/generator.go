package scaffold

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/render/template"
	"github.com/goliatone/go-ideaplan/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embedded embed.FS

const (
	defaultFrontend = "React"
	defaultBackend  = "Node.js"
	fallbackProject = "project"
	fallbackTable   = "main_table"
)

// TemplatesFS returns the embedded scaffold templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return embedded
	}
	return sub
}

// Option customises a Generator.
type Option func(*options)

type options struct {
	templateDir string
	templates   fs.FS
	renderer    template.TemplateRenderer
}

// WithTemplateDir loads templates from dir before falling back to the
// embedded set, so individual sections can be overridden.
func WithTemplateDir(dir string) Option {
	return func(o *options) {
		o.templateDir = strings.TrimSpace(dir)
	}
}

// WithTemplatesFS replaces the embedded template set.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.templates = fsys
		}
	}
}

// WithTemplateRenderer injects a pre-built renderer, bypassing the pongo2
// engine construction.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(o *options) {
		o.renderer = renderer
	}
}

// Generator renders the scaffold document for an analysis.
type Generator struct {
	renderer template.TemplateRenderer
}

// New builds a Generator backed by the pongo2 engine.
func New(opts ...Option) (*Generator, error) {
	cfg := options{templates: TemplatesFS()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.renderer != nil {
		return &Generator{renderer: cfg.renderer}, nil
	}

	engine, err := gotemplate.New(
		gotemplate.WithName("scaffold"),
		gotemplate.WithBaseDir(cfg.templateDir),
		gotemplate.WithFS(cfg.templates),
		gotemplate.WithTemplateFunc(slugFilters()),
		gotemplate.WithTrimFinalNewline(),
	)
	if err != nil {
		return nil, fmt.Errorf("scaffold: template engine: %w", err)
	}
	return &Generator{renderer: engine}, nil
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultErr  error
)

// Generate renders with a lazily built Generator using the embedded templates.
func Generate(a analysis.ProjectAnalysis, idea string) (string, error) {
	defaultOnce.Do(func() {
		defaultGen, defaultErr = New()
	})
	if defaultErr != nil {
		return "", defaultErr
	}
	return defaultGen.Generate(a, idea)
}

// Generate returns the scaffold document. Output depends only on a and idea.
func (g *Generator) Generate(a analysis.ProjectAnalysis, idea string) (string, error) {
	if g == nil || g.renderer == nil {
		return "", fmt.Errorf("scaffold: generator is not initialised")
	}

	view := buildView(a.Clone(), idea)

	sections := []struct {
		key      string
		template string
	}{
		{key: "package", template: "package"},
		{key: "frontend_code", template: frontendTemplate(view.frontend)},
		{key: "backend_code", template: backendTemplate(view.backend)},
		{key: "schema", template: "schema"},
		{key: "api", template: "api"},
		{key: "deployment", template: "deployment"},
	}

	data := view.data()
	for _, section := range sections {
		out, err := g.renderer.RenderTemplate(section.template, data)
		if err != nil {
			return "", fmt.Errorf("scaffold: render %s: %w", section.key, err)
		}
		data[section.key] = out
	}

	out, err := g.renderer.RenderTemplate("scaffold", data)
	if err != nil {
		return "", fmt.Errorf("scaffold: render document: %w", err)
	}
	return out, nil
}

func frontendTemplate(tech string) string {
	if strings.EqualFold(tech, "react") {
		return "frontend_react"
	}
	return "frontend_generic"
}

func backendTemplate(tech string) string {
	if strings.Contains(strings.ToLower(tech), "node") {
		return "backend_node"
	}
	return "backend_generic"
}

type featureView struct {
	Name  string `json:"name"`
	Lower string `json:"lower"`
	Slug  string `json:"slug"`
	Table string `json:"table"`
}

type view struct {
	idea     string
	frontend string
	backend  string
	features []featureView
}

func buildView(a analysis.ProjectAnalysis, idea string) view {
	v := view{
		idea:     idea,
		frontend: categoryHead(a, "frontend", defaultFrontend),
		backend:  categoryHead(a, "backend", defaultBackend),
	}
	for i, feature := range a.Features {
		item := featureView{
			Name:  feature,
			Lower: strings.ToLower(feature),
			Slug:  FeatureSlug(feature, i),
			Table: SnakeSlug(feature),
		}
		if item.Table == "" {
			item.Table = fmt.Sprintf("feature_%d", i+1)
		}
		v.features = append(v.features, item)
	}
	return v
}

func (v view) data() map[string]any {
	slug := Slug(v.idea)
	snake := SnakeSlug(v.idea)
	if slug == "" {
		slug, snake = fallbackProject, fallbackProject
	}

	indexTable := fallbackTable
	if len(v.features) > 0 {
		indexTable = v.features[0].Table
	}

	ideaJSON, _ := json.Marshal(v.idea)

	features := make([]any, 0, len(v.features))
	for _, feature := range v.features {
		features = append(features, feature)
	}

	return map[string]any{
		"idea":        v.idea,
		"idea_json":   string(ideaJSON),
		"slug":        slug,
		"snake":       snake,
		"frontend":    v.frontend,
		"backend":     v.backend,
		"react":       strings.EqualFold(v.frontend, "react"),
		"node":        strings.Contains(strings.ToLower(v.backend), "node"),
		"features":    features,
		"index_table": indexTable,
	}
}

// categoryHead picks the first technology of the first entry whose category
// mentions needle.
func categoryHead(a analysis.ProjectAnalysis, needle, fallback string) string {
	entry, ok := a.FindTechStack(needle)
	if !ok {
		return fallback
	}
	return entry.Primary(fallback)
}
