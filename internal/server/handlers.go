package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/deckthemes"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/orchestrator"
	"github.com/goliatone/go-ideaplan/pkg/slides"
)

type ideaRequest struct {
	Idea string `json:"idea"`
}

type planResponse struct {
	Idea      string                   `json:"idea"`
	Analysis  analysis.ProjectAnalysis `json:"analysis"`
	Diagram   string                   `json:"diagram"`
	Slides    []slides.Slide           `json:"slides"`
	Scaffold  string                   `json:"scaffold"`
	CreatedAt time.Time                `json:"createdAt"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRenderers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":   s.orch.DefaultRenderer(),
		"renderers": s.orch.Registry().Describe(),
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	idea, ok := s.bindIdea(c)
	if !ok {
		return
	}
	p, err := s.orch.Plan(c.Request.Context(), idea)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Analysis)
}

func (s *Server) handlePlan(c *gin.Context) {
	idea, ok := s.bindIdea(c)
	if !ok {
		return
	}
	p, err := s.orch.Plan(c.Request.Context(), idea)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, planResponse{
		Idea:      p.Idea,
		Analysis:  p.Analysis,
		Diagram:   p.Mermaid(),
		Slides:    p.Slides,
		Scaffold:  p.Scaffold,
		CreatedAt: p.CreatedAt,
	})
}

func (s *Server) handleRender(c *gin.Context) {
	name := c.Param("renderer")
	renderer, err := s.orch.Renderer(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown renderer %q", name)})
		return
	}

	idea, ok := s.bindIdea(c)
	if !ok {
		return
	}

	themeName := c.DefaultQuery("theme", s.themeName)
	variant := c.DefaultQuery("variant", s.themeVariant)

	out, err := s.orch.Generate(c.Request.Context(), orchestrator.Request{
		Idea:         idea,
		Renderer:     renderer.Name(),
		ThemeName:    themeName,
		ThemeVariant: variant,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	filename := export.FileName(renderer.Name(), idea)
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, renderer.ContentType(), out)
}

// bindIdea decodes the request body and rejects blank ideas with 400.
func (s *Server) bindIdea(c *gin.Context) (string, bool) {
	var req ideaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return "", false
	}
	if analysis.IsBlank(req.Idea) {
		c.JSON(http.StatusBadRequest, gin.H{"error": export.ErrEmptyIdea.Error()})
		return "", false
	}
	return req.Idea, true
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, analysis.ErrEmptyIdea),
		errors.Is(err, deckthemes.ErrUnknownTheme),
		errors.Is(err, deckthemes.ErrUnknownVariant):
		status = http.StatusBadRequest
	default:
		s.logger.Printf("server: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
