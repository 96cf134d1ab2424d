package storage

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	// Registers the "stoolap" database/sql driver for the embedded engine.
	_ "github.com/stoolap/stoolap/pkg/driver"
)

// Config holds the pool settings read once at startup. Username and
// Password are accepted for parity with managed engines; the embedded
// engine has no authentication and ignores them.
type Config struct {
	Driver   string
	DSN      string
	Username string
	Password string
	MinSize  int
	MaxSize  int
}

const (
	DefaultMinSize = 5
	DefaultMaxSize = 20
)

// Conn is a dedicated database session owned by a Pool. A Conn moves
// Created -> Pooled <-> Borrowed -> Pooled | Closed and never comes back
// from Closed.
type Conn struct {
	sc     *sql.Conn
	closed atomic.Bool
}

func (c *Conn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.sc.ExecContext(ctx, query, args...)
}

func (c *Conn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.sc.QueryContext(ctx, query, args...)
}

func (c *Conn) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return c.sc.QueryRowContext(ctx, query, args...)
}

// Close releases the underlying session. Safe to call more than once.
func (c *Conn) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		return c.sc.Close()
	}
	return nil
}

func (c *Conn) isOpen() bool {
	return !c.closed.Load()
}

// Pool is the single process-wide authority over database sessions and
// schema presence. Construct one with Open and hand it to every
// repository; there is no hidden global instance.
type Pool struct {
	db      *sql.DB
	conns   chan *Conn
	maxSize int
	logger  *zap.Logger

	schemaOnce sync.Once
}

// Open connects to the embedded database, eagerly dials MinSize pooled
// sessions and ensures the schema exists. Schema DDL problems are logged,
// never fatal to startup.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*Pool, error) {
	if cfg.MinSize <= 0 {
		cfg.MinSize = DefaultMinSize
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.Driver == "" {
		cfg.Driver = "stoolap"
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, &ConnectionError{Message: "failed to open database", Err: err}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &ConnectionError{Message: "database ping failed", Err: err}
	}

	p := &Pool{
		db:      db,
		conns:   make(chan *Conn, cfg.MaxSize),
		maxSize: cfg.MaxSize,
		logger:  logger,
	}

	for i := 0; i < cfg.MinSize; i++ {
		c, err := p.dial(ctx)
		if err != nil {
			p.drain()
			_ = db.Close()
			return nil, err
		}
		p.conns <- c
	}
	logger.Info("connection pool initialized", zap.Int("connections", cfg.MinSize))

	if err := p.EnsureSchema(ctx); err != nil {
		// EnsureSchema only errors when it cannot borrow a session.
		p.drain()
		_ = db.Close()
		return nil, err
	}

	return p, nil
}

func (p *Pool) dial(ctx context.Context) (*Conn, error) {
	sc, err := p.db.Conn(ctx)
	if err != nil {
		return nil, &ConnectionError{Message: "failed to create connection", Err: err}
	}
	return &Conn{sc: sc}, nil
}

// Acquire returns a pooled session if one is ready, otherwise dials a
// fresh one. It never waits on an empty pool, so callers cannot deadlock
// on exhaustion; the trade-off is transient overshoot above MinSize.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	select {
	case c := <-p.conns:
		if c.isOpen() {
			return c, nil
		}
	default:
	}
	return p.dial(ctx)
}

// Release returns a session to the pool, or closes it when the pool is
// already at MaxSize. A nil or closed session is a logged no-op. Call
// this on every exit path of an acquisition, error paths included.
func (p *Pool) Release(c *Conn) {
	if c == nil || !c.isOpen() {
		p.logger.Debug("release of nil or closed connection ignored")
		return
	}
	select {
	case p.conns <- c:
	default:
		if err := c.Close(); err != nil {
			p.logger.Error("error closing surplus connection", zap.Error(err))
		}
	}
}

// Size reports how many sessions are currently parked in the pool.
func (p *Pool) Size() int {
	return len(p.conns)
}

func (p *Pool) drain() {
	for {
		select {
		case c := <-p.conns:
			if err := c.Close(); err != nil {
				p.logger.Warn("error closing pooled connection", zap.Error(err))
			}
		default:
			return
		}
	}
}

// Shutdown drains and closes every pooled session, then shuts the engine
// down. Failures are logged and swallowed; the process is exiting anyway.
func (p *Pool) Shutdown() {
	p.drain()
	if err := p.db.Close(); err != nil {
		p.logger.Warn("database did not shut down cleanly", zap.Error(err))
		return
	}
	p.logger.Info("database shut down")
}
