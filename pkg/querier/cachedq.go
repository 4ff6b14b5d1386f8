package querier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v2"
	"go.uber.org/zap"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

type CachedConfig struct {
	// Path is the badger directory, ignored when InMemory is set
	Path     string
	InMemory bool
	// TTL limits how long a lookup stays cached, zero keeps it forever
	TTL time.Duration
}

// Cached wraps another Querier and remembers found entries and not-found
// outcomes. Random is never cached.
type Cached struct {
	querier Querier
	storage *Storage
	logger  *zap.Logger
}

func NewCached(q Querier, config *CachedConfig, logger *zap.Logger) (*Cached, error) {
	opts := badger.DefaultOptions(config.Path).WithLogger(nil)
	if config.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("can not open cache: %w", err)
	}
	return NewCachedDB(q, db, config.TTL, logger), nil
}

func NewCachedDB(q Querier, db *badger.DB, ttl time.Duration, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{
		querier: q,
		storage: &Storage{DB: db, TTL: ttl},
		logger:  logger,
	}
}

func (c *Cached) Lookup(ctx context.Context, word string) (*lexicon.Entry, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	cached, err := c.storage.GetEntry(word)
	if err == nil {
		return cached.Return()
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		c.logger.Warn("cache read failed", zap.String("word", word), zap.Error(err))
	}
	entry, lookupErr := c.querier.Lookup(ctx, word)
	if err := c.storage.PutEntry(word, entry, lookupErr); err != nil && !errors.Is(err, errNotCacheable) {
		c.logger.Warn("cache write failed", zap.String("word", word), zap.Error(err))
	}
	return entry, lookupErr
}

func (c *Cached) Random(ctx context.Context) (*lexicon.Entry, error) {
	return c.querier.Random(ctx)
}

func (c *Cached) Close(ctx context.Context) error {
	var errs []string
	if closeErr := c.querier.Close(ctx); closeErr != nil {
		errs = append(errs, fmt.Sprintf("querier close failed: %s", closeErr))
	}
	if closeErr := c.storage.Close(); closeErr != nil {
		errs = append(errs, fmt.Sprintf("storage close failed: %s", closeErr))
	}
	if len(errs) != 0 {
		return fmt.Errorf("while closing next errors happened: %s", strings.Join(errs, " AND "))
	}
	return nil
}
