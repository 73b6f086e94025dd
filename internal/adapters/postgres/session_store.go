package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// SessionStore is a PostgreSQL-backed session log
type SessionStore struct {
	pool *pgxpool.Pool
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SessionStore)(nil)

// NewSessionStore creates a SessionStore on an existing pool
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// Open connects to databaseURL and makes sure the table exists
func Open(ctx context.Context, databaseURL string) (*SessionStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	store := NewSessionStore(pool)
	if err := store.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	logging.Logger.Info("Postgres session log connected")
	return store, nil
}

// EnsureTable creates the completed_sessions table if it doesn't exist
func (s *SessionStore) EnsureTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS completed_sessions (
			id           TEXT PRIMARY KEY,
			task         TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL DEFAULT 'work',
			duration     INTEGER NOT NULL DEFAULT 0,
			date         TEXT NOT NULL DEFAULT '',
			completed_at TIMESTAMPTZ NOT NULL,
			created_at   TIMESTAMPTZ DEFAULT NOW()
		)`)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_completed_sessions_completed_at ON completed_sessions(completed_at DESC)`)
	return err
}

// Record inserts a completed session. Recording the same ID twice keeps the first row.
func (s *SessionStore) Record(ctx context.Context, session domain.Session) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO completed_sessions (id, task, category, duration, date, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		session.ID, session.Task, string(session.Category), session.Duration, session.Date, session.CompletedAt)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// Get retrieves a single session by ID
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, task, category, duration, date, completed_at
		FROM completed_sessions WHERE id = $1`, id)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return &session, nil
}

// List returns sessions newest first. limit <= 0 returns every session.
func (s *SessionStore) List(ctx context.Context, limit int) ([]domain.Session, error) {
	query := `
		SELECT id, task, category, duration, date, completed_at
		FROM completed_sessions ORDER BY completed_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Close releases the connection pool
func (s *SessionStore) Close() error {
	s.pool.Close()
	return nil
}

func scanSession(row pgx.Row) (domain.Session, error) {
	var session domain.Session
	var category string
	err := row.Scan(&session.ID, &session.Task, &category, &session.Duration, &session.Date, &session.CompletedAt)
	session.Category = domain.Category(category)
	return session, err
}
