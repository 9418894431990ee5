// Package session holds the caller-owned state machine for one interactive
// planning session: input → analyzing → results. Each submission replaces the
// previous result outright; a newer submission cancels any that is still in
// flight.
package session

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
	"github.com/goliatone/go-ideaplan/pkg/export"
	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/slides"
)

// DefaultDelay is the pause between accepting an idea and publishing its
// results.
const DefaultDelay = 2500 * time.Millisecond

// State is one of the three session phases.
type State string

const (
	StateInput     State = "input"
	StateAnalyzing State = "analyzing"
	StateResults   State = "results"
)

// Planner builds a plan for an idea. *orchestrator.Orchestrator satisfies it.
type Planner interface {
	Plan(ctx context.Context, idea string) (plan.Plan, error)
}

// PlannerFunc adapts a function into a Planner.
type PlannerFunc func(ctx context.Context, idea string) (plan.Plan, error)

func (fn PlannerFunc) Plan(ctx context.Context, idea string) (plan.Plan, error) {
	return fn(ctx, idea)
}

// Snapshot is a point-in-time copy of the session. Plan is nil outside
// StateResults.
type Snapshot struct {
	ID    string     `json:"id"`
	State State      `json:"state"`
	Idea  string     `json:"idea"`
	Plan  *plan.Plan `json:"plan,omitempty"`
	Slide int        `json:"slide"`
}

// Option configures a Session.
type Option func(*Session)

// WithDelay overrides DefaultDelay. Zero publishes results immediately.
func WithDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithObserver registers fn to receive a snapshot after every transition.
// Observers run outside the session lock, one snapshot at a time, in the
// order the transitions happened. An observer may call back into the session.
func WithObserver(fn func(Snapshot)) Option {
	return func(s *Session) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithLogger sets the transition logger. Nil discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces uuid.NewString for submission ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Session is safe for concurrent use.
type Session struct {
	planner   Planner
	delay     time.Duration
	observers []func(Snapshot)
	logger    *log.Logger
	newID     func() string

	mu         sync.Mutex
	pending    []Snapshot
	delivering bool
	seq        uint64
	cancel context.CancelFunc
	id     string
	state  State
	idea   string
	plan   *plan.Plan
	nav    *slides.Navigator
}

// New returns a session in StateInput.
func New(planner Planner, opts ...Option) *Session {
	s := &Session{
		planner: planner,
		delay:   DefaultDelay,
		logger:  log.New(io.Discard, "", 0),
		newID:   uuid.NewString,
		state:   StateInput,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Submit runs one idea through the session. A blank idea is rejected with
// export.ErrEmptyIdea and leaves the session untouched. Otherwise Submit
// blocks for the configured delay, builds the plan and publishes it. A
// submission superseded by a later Submit or Reset returns context.Canceled
// and publishes nothing.
func (s *Session) Submit(ctx context.Context, idea string) (Snapshot, error) {
	if analysis.IsBlank(idea) {
		return s.Snapshot(), export.ErrEmptyIdea
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.id = s.newID()
	s.state = StateAnalyzing
	s.idea = idea
	s.plan = nil
	s.nav = nil
	analyzing := s.publishLocked()
	s.mu.Unlock()

	s.logger.Printf("session %s: analyzing %q", analyzing.ID, idea)
	s.flush()

	if err := s.wait(runCtx); err != nil {
		return s.abandon(seq, err)
	}

	p, err := s.planner.Plan(runCtx, idea)
	if err != nil {
		return s.abandon(seq, err)
	}

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return Snapshot{}, context.Canceled
	}
	s.cancel = nil
	s.state = StateResults
	s.plan = &p
	s.nav = slides.NewNavigator(len(p.Slides))
	results := s.publishLocked()
	s.mu.Unlock()

	s.logger.Printf("session %s: results ready", results.ID)
	s.flush()
	return results, nil
}

func (s *Session) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// abandon ends submission seq after a failure. If it is still the latest
// submission the session returns to StateInput; otherwise it was superseded.
func (s *Session) abandon(seq uint64, err error) (Snapshot, error) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return Snapshot{}, context.Canceled
	}
	s.cancel = nil
	s.state = StateInput
	s.plan = nil
	s.nav = nil
	snap := s.publishLocked()
	s.mu.Unlock()

	s.logger.Printf("session %s: submission failed: %v", snap.ID, err)
	s.flush()
	return snap, err
}

// Reset cancels any in-flight submission and returns to StateInput.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	s.id = ""
	s.state = StateInput
	s.idea = ""
	s.plan = nil
	s.nav = nil
	snap := s.publishLocked()
	s.mu.Unlock()

	s.logger.Printf("session: reset")
	s.flush()
	return snap
}

// NextSlide advances the slide cursor. The boolean is false outside
// StateResults.
func (s *Session) NextSlide() (slides.Slide, bool) {
	return s.moveSlide(func(n *slides.Navigator) { n.Next() })
}

// PrevSlide steps the slide cursor back.
func (s *Session) PrevSlide() (slides.Slide, bool) {
	return s.moveSlide(func(n *slides.Navigator) { n.Prev() })
}

// GoToSlide jumps to idx, clamped to the deck.
func (s *Session) GoToSlide(idx int) (slides.Slide, bool) {
	return s.moveSlide(func(n *slides.Navigator) { n.Go(idx) })
}

// CurrentSlide returns the slide under the cursor.
func (s *Session) CurrentSlide() (slides.Slide, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) moveSlide(move func(*slides.Navigator)) (slides.Slide, bool) {
	s.mu.Lock()
	if s.nav == nil || s.plan == nil {
		s.mu.Unlock()
		return slides.Slide{}, false
	}
	before := s.nav.Index()
	move(s.nav)
	slide, ok := s.currentLocked()
	moved := s.nav.Index() != before
	if moved {
		s.publishLocked()
	}
	s.mu.Unlock()

	if moved {
		s.flush()
	}
	return slide, ok
}

func (s *Session) currentLocked() (slides.Slide, bool) {
	if s.nav == nil || s.plan == nil || s.nav.Len() == 0 {
		return slides.Slide{}, false
	}
	return s.plan.Slides[s.nav.Index()], true
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:    s.id,
		State: s.state,
		Idea:  s.idea,
		Plan:  s.plan,
	}
	if s.nav != nil {
		snap.Slide = s.nav.Index()
	}
	return snap
}

// publishLocked queues the current snapshot for observers and returns it.
// Queueing under the session lock fixes delivery order to transition order.
func (s *Session) publishLocked() Snapshot {
	snap := s.snapshotLocked()
	if len(s.observers) > 0 {
		s.pending = append(s.pending, snap)
	}
	return snap
}

// flush delivers queued snapshots. Only one goroutine drains at a time; a
// caller that finds a drain in progress leaves its snapshots to that drainer.
func (s *Session) flush() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.pending) > 0 {
		snap := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()
		s.notify(snap)
		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}

func (s *Session) notify(snap Snapshot) {
	for _, fn := range s.observers {
		fn(snap)
	}
}
