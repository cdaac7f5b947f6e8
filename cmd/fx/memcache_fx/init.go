package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "clean/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideRefreshTokenStore)

// provideRefreshTokenStore also runs a background sweep of expired tokens for
// the lifetime of the app.
func provideRefreshTokenStore(lc fx.Lifecycle) mem.RefreshTokenStore {
	store := mem.NewRefreshTokens()
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							zap.L().Debug("expired refresh tokens removed", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
