package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/filex"
)

// OpenStore opens the session store selected by cfg.StoreDriver and, when
// a passphrase is configured, seals it.
func OpenStore(ctx context.Context, cfg *config.Config) (kv.Repository, error) {
	var (
		store kv.Repository
		err   error
	)

	switch cfg.StoreDriver {
	case config.StoreSQLite:
		store, err = openSQLite(ctx, cfg.StorePath)
	case config.StoreRedis:
		store, err = kv.NewRedisRepository(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case config.StoreMemory:
		store = kv.NewMemoryRepository()
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.StorePassphrase == "" {
		return store, nil
	}

	sealed, err := kv.NewSealedRepository(ctx, store, []byte(cfg.StorePassphrase))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("seal store: %w", err)
	}
	return sealed, nil
}

func openSQLite(ctx context.Context, path string) (kv.Repository, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, abs)
	if err != nil {
		return nil, err
	}
	return kv.NewSQLiteRepository(db), nil
}
