package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTokens_SingleUse(t *testing.T) {
	s := NewRefreshTokens()
	s.Set("tok", "acc-1", time.Hour)

	assert.Equal(t, "acc-1", s.Consume("tok"))
	assert.Equal(t, "", s.Consume("tok"))
}

func TestRefreshTokens_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewRefreshTokens()
	s.now = func() time.Time { return now }

	s.Set("old", "acc-1", time.Minute)
	s.Set("fresh", "acc-2", time.Hour)
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, "", s.Consume("old"))
	assert.Equal(t, "acc-2", s.Consume("fresh"))
}
