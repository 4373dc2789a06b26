// Package session keeps one checkout workflow per browser session.
package session

import (
	"sync"
	"time"

	"lab-booking/internal/checkout"
	"lab-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns exactly one checkout workflow (and with it one cart and one
// booking draft).
type Session struct {
	ID       uuid.UUID
	Checkout *checkout.Workflow

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// WorkflowFactory builds the workflow for a new session.
type WorkflowFactory func(log *zap.Logger) *checkout.Workflow

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	newWorkflow WorkflowFactory
	now         func() time.Time
	log         *zap.Logger
}

func NewStore(factory WorkflowFactory, log *zap.Logger) *Store {
	return &Store{
		sessions:    make(map[uuid.UUID]*Session),
		newWorkflow: factory,
		now:         time.Now,
		log:         log.With(zap.String("component", "session_store")),
	}
}

// Get returns the session and marks it as used.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		sess.touch(s.now())
	}
	return sess, ok
}

func (s *Store) Create() *Session {
	id := utils.GenerateSessionID()
	sess := &Session{
		ID:       id,
		Checkout: s.newWorkflow(s.log.With(zap.String("session_id", id.String()))),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.log.Debug("Session created", zap.String("session_id", id.String()))
	return sess
}

// GetOrCreate resolves raw as a session id, creating a new session when it
// is empty, malformed or unknown.
func (s *Store) GetOrCreate(raw string) (sess *Session, created bool) {
	if raw != "" {
		if id, err := utils.ParseSessionID(raw); err == nil {
			if sess, ok := s.Get(id); ok {
				return sess, false
			}
		}
	}
	return s.Create(), true
}

// Sweep drops sessions idle for longer than ttl. Sessions with a booking in
// flight are kept.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) && !sess.Checkout.Submitting() {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.log.Info("Expired sessions removed", zap.Int("count", removed), zap.Int("remaining", len(s.sessions)))
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunSweeper sweeps every interval until stop is closed.
func (s *Store) RunSweeper(interval, ttl time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(ttl)
		case <-stop:
			return
		}
	}
}
