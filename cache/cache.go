// Package cache persists solved mazes in BadgerDB, keyed by the grid's
// content hash, so repeated solves of the same grid skip the search.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/maze"
)

// ErrClosed is returned by Put after Close.
var ErrClosed = errors.New("cache: closed")

const keyPrefix = "solution:"

// Stats counts lookups since Open.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Errors int64 `json:"errors"`
}

// Cache is a solution store. It is safe for concurrent use.
type Cache struct {
	db     *badger.DB
	logger logrus.FieldLogger
	ttl    time.Duration
	closed atomic.Bool

	hits   atomic.Int64
	misses atomic.Int64
	errs   atomic.Int64
}

type options struct {
	inMemory bool
	ttl      time.Duration
	logger   logrus.FieldLogger
}

// Option configures Open.
type Option func(*options)

// WithInMemory keeps the store in memory; dir is ignored.
func WithInMemory() Option {
	return func(o *options) { o.inMemory = true }
}

// WithTTL expires entries d after they are written. Zero keeps them forever.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// WithLogger sets the logger for read and write failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Open opens or creates a store in dir.
func Open(dir string, opts ...Option) (*Cache, error) {
	o := options{logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	bopts := badger.DefaultOptions(dir)
	if o.inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts = bopts.WithLogger(nil)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("cache: open %q: %w", dir, err)
	}
	return &Cache{db: db, logger: o.logger, ttl: o.ttl}, nil
}

// Key returns the store key for g.
func Key(g *maze.Grid) []byte {
	return []byte(keyPrefix + g.Hash())
}

// Get returns the cached result for g. Read failures are logged and reported
// as misses.
func (c *Cache) Get(g *maze.Grid) (*bfs.Result, bool) {
	if c == nil || c.closed.Load() || g == nil {
		return nil, false
	}
	key := Key(g)

	var res bfs.Result
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &res)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			c.errs.Add(1)
			c.logger.WithError(err).WithField("key", string(key)).Warn("cache: read failed")
		}
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return &res, true
}

// Put stores res as the solution of g.
func (c *Cache) Put(g *maze.Grid, res *bfs.Result) error {
	if c == nil || c.closed.Load() {
		return ErrClosed
	}
	if g == nil || res == nil {
		return fmt.Errorf("cache: nil grid or result")
	}
	val, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache: encode result: %w", err)
	}
	key := Key(g)

	err = c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, val)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		c.errs.Add(1)
		c.logger.WithError(err).WithField("key", string(key)).Warn("cache: write failed")
		return fmt.Errorf("cache: write: %w", err)
	}
	return nil
}

// Stats returns a snapshot of the lookup counters.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Errors: c.errs.Load()}
}

// Close flushes and closes the store. Closing twice is a no-op.
func (c *Cache) Close() error {
	if c == nil || !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.db.Close()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
