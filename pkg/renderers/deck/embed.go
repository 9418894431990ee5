package deck

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	rendertemplate "github.com/goliatone/go-ideaplan/pkg/render/template"
	"github.com/goliatone/go-ideaplan/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl templates/slides/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	StylesheetName = "deck.css"
	ScriptName     = "deck.js"
)

// TemplatesFS exposes the embedded deck templates rooted at the templates
// directory, for callers that want to copy and override them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the stylesheet and navigation script inlined into HTML
// decks.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func readAsset(name string) string {
	data, err := fs.ReadFile(AssetsFS(), name)
	if err != nil {
		return ""
	}
	return string(data)
}

// Option configures the HTML and Markdown deck renderers.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// deck.tpl, markdown.tpl and the slides/ partials.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

func newTemplates(name string, options []Option) (rendertemplate.TemplateRenderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateRenderer != nil {
		return cfg.templateRenderer, nil
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine, err := gotemplate.New(
		gotemplate.WithName(name),
		gotemplate.WithFS(cfg.templateFS),
	)
	if err != nil {
		return nil, fmt.Errorf("%s renderer: configure template renderer: %w", name, err)
	}
	return engine, nil
}
