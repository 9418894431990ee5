package server

import (
	"context"
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/session"
)

type streamError struct {
	Error string `json:"error"`
}

// handleStream runs one session per connection. Every idea the client sends
// is submitted to the session; snapshots are written back as they happen.
// A newer idea supersedes one still being analysed.
func (s *Server) handleStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Printf("server: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	var writeMu sync.Mutex
	send := func(v any) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(v); err != nil {
			s.logger.Printf("server: websocket write failed: %v", err)
		}
	}

	sess := session.New(s.orch,
		session.WithDelay(s.delay),
		session.WithLogger(s.logger),
		session.WithObserver(func(snap session.Snapshot) { send(snap) }),
	)

	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	for {
		var req ideaRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("server: websocket read: %v", err)
			}
			return
		}
		if analysis.IsBlank(req.Idea) {
			send(streamError{Error: export.ErrEmptyIdea.Error()})
			continue
		}

		wg.Add(1)
		go func(idea string) {
			defer wg.Done()
			if _, err := sess.Submit(ctx, idea); err != nil && !errors.Is(err, context.Canceled) {
				send(streamError{Error: err.Error()})
			}
		}(req.Idea)
	}
}
