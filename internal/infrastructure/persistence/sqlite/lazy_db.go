package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/domain/repository"
	"github.com/bnema/themesync/internal/logging"
)

// LazyDB opens the database on first access, deferring the WASM compilation
// and migration overhead for commands that never touch the preference store.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

// NewLazyDB creates a new lazy database provider.
// The actual connection is not established until DB() is called.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, initializing it if necessary.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized returns true if the database has been initialized.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// lazyPreferenceRepo defers opening the database until the first Get or Set.
type lazyPreferenceRepo struct {
	lazy *LazyDB
}

// NewLazyPreferenceRepository creates a preference repository backed by a LazyDB.
func NewLazyPreferenceRepository(lazy *LazyDB) repository.PreferenceRepository {
	return &lazyPreferenceRepo{lazy: lazy}
}

func (r *lazyPreferenceRepo) repo(ctx context.Context) (repository.PreferenceRepository, error) {
	db, err := r.lazy.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewPreferenceRepository(db), nil
}

func (r *lazyPreferenceRepo) Get(ctx context.Context, key string) (*entity.StoredPreference, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, key)
}

func (r *lazyPreferenceRepo) Set(ctx context.Context, pref *entity.StoredPreference) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Set(ctx, pref)
}
