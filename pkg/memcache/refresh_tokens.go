package mem

import (
	"sync"
	"time"
)

// RefreshTokenStore keeps opaque refresh tokens in memory. Tokens are
// single-use: Consume removes them.
type RefreshTokenStore interface {
	Set(token string, accountID string, ttl time.Duration)

	// Consume returns the account id for token if not expired and removes
	// the token. Returns "" if missing or expired.
	Consume(token string) string

	// Sweep drops expired entries and returns how many were removed.
	Sweep() int
}

type entry struct {
	accountID string
	expiresAt time.Time
}

type RefreshTokens struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewRefreshTokens() *RefreshTokens {
	return &RefreshTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *RefreshTokens) Set(token string, accountID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		accountID: accountID,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *RefreshTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if s.now().After(e.expiresAt) {
		return ""
	}
	return e.accountID
}

func (s *RefreshTokens) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, token)
			removed++
		}
	}
	return removed
}
