package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/bookshelf/internal/ui"
)

type session struct {
	app      *ui.App
	lastSeen time.Time
}

// SessionStore maps browser sessions to their app containers. A session that
// stays idle longer than the TTL is dropped together with its state.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	newApp   func() *ui.App
	now      func() time.Time
}

// NewSessionStore creates a store that builds containers with newApp.
func NewSessionStore(ttl time.Duration, newApp func() *ui.App) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		newApp:   newApp,
		now:      time.Now,
	}
}

// Acquire returns the container for id. When id is unknown or expired a new
// session is started; created reports that case and the returned id must be
// handed back to the browser.
func (s *SessionStore) Acquire(id string) (app *ui.App, sessionID string, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if sess, ok := s.sessions[id]; ok && id != "" {
		sess.lastSeen = now

		return sess.app, id, false
	}

	sessionID = uuid.NewString()
	sess := &session{app: s.newApp(), lastSeen: now}
	s.sessions[sessionID] = sess

	return sess.app, sessionID, true
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *SessionStore) pruneLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}

	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
