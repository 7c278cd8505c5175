package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/navstack/internal/adapters/file"
	"github.com/aretw0/navstack/internal/config"
	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/adapters/postgres"
	"github.com/aretw0/navstack/pkg/adapters/redis"
	"github.com/aretw0/navstack/pkg/persistence/middleware"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/aretw0/navstack/pkg/session"
)

// Persistence bundles the configured store and the session manager on top of it.
type Persistence struct {
	Store    ports.SnapshotStore
	Sessions *session.Manager
	close    func() error
}

// Close releases the store's connections.
func (p *Persistence) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

// OpenPersistence opens the store selected by cfg. Redis stores also get a
// distributed locker so several processes can share the same keys.
func OpenPersistence(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*Persistence, error) {
	p := &Persistence{}
	var opts []session.Option
	opts = append(opts, session.WithLogger(logger))

	switch cfg.Driver {
	case config.DriverMemory:
		p.Store = memory.NewStore()
	case config.DriverFile, "":
		p.Store = file.New(cfg.Dir)
	case config.DriverRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		if err := store.Client().Ping(ctx).Err(); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
		}
		p.Store = store
		p.close = store.Close
		opts = append(opts, session.WithLocker(redis.NewLocker(store.Client(), cfg.Redis.Prefix)))
	case config.DriverPostgres:
		store, err := postgres.Open(cfg.Postgres.DSN, postgres.WithTable(cfg.Postgres.Table))
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		p.Store = store
		p.close = store.Close
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	if cfg.Encryption.Enabled() {
		active, fallback, err := cfg.Encryption.Decode()
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		p.Store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey:    active,
			FallbackKeys: fallback,
		})(p.Store)
	}

	logger.Debug("snapshot store opened", "driver", cfg.Driver, "encrypted", cfg.Encryption.Enabled())
	p.Sessions = session.NewManager(p.Store, opts...)
	return p, nil
}
