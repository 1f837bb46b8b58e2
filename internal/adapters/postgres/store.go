// Package postgres provides the pgx-backed implementation of the TodoStore
// port, including startup connection retry and schema bootstrap.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/platform/config"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// Compile-time checks that Store implements its ports.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id         BIGSERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	completed  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store implements ports.TodoStore backed by a pgx connection pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect establishes the connection pool, retrying failed attempts on a
// fixed interval until ctx is canceled, then ensures the schema exists.
// Startup blocks here until the database is reachable; a schema bootstrap
// failure after a successful connect is fatal, not retried.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	poolCfg, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	for attempt := 1; ; attempt++ {
		pool, err := connectOnce(ctx, poolCfg, cfg.ConnectTimeout)
		if err == nil {
			store := &Store{pool: pool, logger: logger}
			if err := store.ensureSchema(ctx); err != nil {
				pool.Close()
				return nil, err
			}

			logger.InfoContext(ctx, "database connected",
				slog.String("host", cfg.Host),
				slog.Int("port", cfg.Port),
				slog.String("database", cfg.Name),
				slog.Int("attempt", attempt),
			)
			return store, nil
		}

		logger.WarnContext(ctx, "database connection failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", cfg.ConnectRetryInterval),
			slog.Any("error", err),
		)

		select {
		case <-time.After(cfg.ConnectRetryInterval):
		case <-ctx.Done():
			return nil, fmt.Errorf("connecting to database: %w", ctx.Err())
		}
	}
}

// connectOnce builds a pool and verifies connectivity with a ping bounded
// by the configured connect timeout.
func connectOnce(ctx context.Context, poolCfg *pgxpool.Config, timeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// dsn assembles the connection URL from the config. net/url handles
// escaping, so credentials never need manual quoting.
func dsn(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	if cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	} else {
		u.User = url.User(cfg.User)
	}

	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}

// ensureSchema creates the todos table when it does not exist yet.
func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensuring todos schema: %w", err)
	}
	return nil
}

// ListTodos returns all todos ordered by creation time, newest first.
func (s *Store) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, completed, created_at FROM todos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table serializes as [] rather than null.
	todos := make([]domain.Todo, 0)
	for rows.Next() {
		var td domain.Todo
		if err := rows.Scan(&td.ID, &td.Title, &td.Completed, &td.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		todos = append(todos, td)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}

	return todos, nil
}

// CreateTodo inserts a new todo. ID, Completed, and CreatedAt come back
// from the database so the returned entity reflects the stored row.
func (s *Store) CreateTodo(ctx context.Context, td *domain.Todo) (*domain.Todo, error) {
	created := *td
	err := s.pool.QueryRow(ctx,
		`INSERT INTO todos (title) VALUES ($1) RETURNING id, completed, created_at`,
		td.Title,
	).Scan(&created.ID, &created.Completed, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	return &created, nil
}

// SetTodoCompleted updates the completion flag of the todo with the given ID.
func (s *Store) SetTodoCompleted(ctx context.Context, id int64, completed bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE todos SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return fmt.Errorf("updating todo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteTodo removes the todo with the given ID.
func (s *Store) DeleteTodo(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Name identifies the store in the health registry.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck reports connectivity by pinging the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// Close releases the connection pool during shutdown.
func (s *Store) Close() {
	s.pool.Close()
}
