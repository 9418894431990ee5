// Package config loads ideaplan settings from a YAML file, an optional .env
// file and IDEAPLAN_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "ideaplan.yaml"

const envPrefix = "IDEAPLAN_"

// Config is the complete application configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Render   RenderConfig   `yaml:"render"`
	Export   ExportConfig   `yaml:"export"`
	Server   ServerConfig   `yaml:"server"`
}

type AnalysisConfig struct {
	Delay       time.Duration `yaml:"delay"`
	CatalogPath string        `yaml:"catalog_path"`
}

type RenderConfig struct {
	DefaultRenderer string `yaml:"default_renderer"`
	Theme           string `yaml:"theme"`
	Variant         string `yaml:"variant"`
}

type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{Delay: 2500 * time.Millisecond},
		Render: RenderConfig{
			DefaultRenderer: "summary",
			Theme:           "ideaplan",
			Variant:         "dark",
		},
		Export: ExportConfig{OutputDir: "out"},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
// Environment overrides are applied afterwards, then the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv populates the process environment from the given .env files
// (".env" when none are named). Variables already set are kept and missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(envPrefix + "DELAY"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %sDELAY: %w", envPrefix, err)
		}
		c.Analysis.Delay = d
	}
	str("CATALOG_PATH", &c.Analysis.CatalogPath)
	str("RENDERER", &c.Render.DefaultRenderer)
	str("THEME", &c.Render.Theme)
	str("VARIANT", &c.Render.Variant)
	str("OUTPUT_DIR", &c.Export.OutputDir)
	str("ADDR", &c.Server.Addr)

	if v, ok := lookup(envPrefix + "ALLOWED_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	return nil
}

// Validate checks the configuration for obviously wrong values.
func (c *Config) Validate() error {
	if c.Analysis.Delay < 0 {
		return fmt.Errorf("analysis.delay must not be negative")
	}
	if strings.TrimSpace(c.Render.DefaultRenderer) == "" {
		return fmt.Errorf("render.default_renderer is required")
	}
	if strings.TrimSpace(c.Export.OutputDir) == "" {
		return fmt.Errorf("export.output_dir is required")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
