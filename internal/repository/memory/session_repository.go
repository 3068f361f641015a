package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"ai-agent-be/pkg/store"
)

const (
	DefaultMaxHistory = 10
	DefaultTTL        = 1 * time.Hour
	sweepInterval     = 10 * time.Minute
)

// session is one conversation's bounded history. The mutex serializes
// appends so concurrent requests on the same session never interleave.
type session struct {
	mu       sync.Mutex
	messages []store.Message
}

// SessionRepository keeps per-session conversation history in go-cache.
// Sessions idle past the TTL are evicted by the cache sweeper; every append
// refreshes the TTL so only truly idle sessions expire.
type SessionRepository struct {
	mu         sync.Mutex
	cache      *cache.Cache
	maxHistory int
	ttl        time.Duration
}

func NewSessionRepository(maxHistory int, ttl time.Duration) *SessionRepository {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionRepository{
		cache:      cache.New(ttl, sweepInterval),
		maxHistory: maxHistory,
		ttl:        ttl,
	}
}

// Append records a message, evicting the oldest once maxHistory is reached.
func (r *SessionRepository) Append(sessionID, role, content string) {
	s := r.getOrCreate(sessionID)

	s.mu.Lock()
	s.messages = append(s.messages, store.Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if len(s.messages) > r.maxHistory {
		s.messages = s.messages[len(s.messages)-r.maxHistory:]
	}
	s.mu.Unlock()

	// Sliding expiration: activity keeps the session alive.
	r.cache.Set(sessionID, s, r.ttl)
}

// Recent returns the last n messages in chronological order. n <= 0 returns
// the full retained history.
func (r *SessionRepository) Recent(sessionID string, n int) []store.Message {
	x, found := r.cache.Get(sessionID)
	if !found {
		return nil
	}
	s := x.(*session)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages
	if n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]store.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Clear drops a session's history. It reports whether the session existed.
func (r *SessionRepository) Clear(sessionID string) bool {
	_, found := r.cache.Get(sessionID)
	r.cache.Delete(sessionID)
	return found
}

// ActiveSessions counts sessions that have not expired yet.
func (r *SessionRepository) ActiveSessions() int {
	return r.cache.ItemCount()
}

func (r *SessionRepository) getOrCreate(sessionID string) *session {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*session)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if x, found := r.cache.Get(sessionID); found {
		return x.(*session)
	}
	s := &session{}
	r.cache.Set(sessionID, s, r.ttl)
	return s
}
