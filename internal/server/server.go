// Package server exposes the planner over HTTP: JSON endpoints for
// analysis, plans and rendered documents, plus a websocket that streams
// session progress.
package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/goliatone/go-ideaplan/pkg/orchestrator"
	"github.com/goliatone/go-ideaplan/pkg/session"
)

const shutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins sets the CORS and websocket origin allow list.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = append([]string(nil), origins...)
	}
}

// WithDelay sets the analysis delay used by websocket sessions.
func WithDelay(d time.Duration) Option {
	return func(s *Server) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithTheme sets the deck theme used when a render request names none.
func WithTheme(name, variant string) Option {
	return func(s *Server) {
		s.themeName = name
		s.themeVariant = variant
	}
}

// WithLogger sets the request and failure logger. Nil discards.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server is an http.Handler backed by gin.
type Server struct {
	orch         *orchestrator.Orchestrator
	origins      []string
	delay        time.Duration
	themeName    string
	themeVariant string
	logger       *log.Logger

	engine   *gin.Engine
	upgrader websocket.Upgrader
}

// New builds the router.
func New(orch *orchestrator.Orchestrator, opts ...Option) (*Server, error) {
	if orch == nil {
		return nil, errors.New("server: orchestrator is required")
	}
	s := &Server{
		orch:   orch,
		delay:  session.DefaultDelay,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(s.logger.Writer()), gin.Recovery())

	if len(s.origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  s.origins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		}))
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	api.GET("/renderers", s.handleRenderers)
	api.POST("/analyze", s.handleAnalyze)
	api.POST("/plan", s.handlePlan)
	api.POST("/render/:renderer", s.handleRender)

	router.GET("/ws", s.handleStream)
	return router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("server: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.origins) == 0 {
		return true
	}
	return slices.Contains(s.origins, "*") || slices.Contains(s.origins, origin)
}
