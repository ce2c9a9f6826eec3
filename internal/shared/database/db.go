package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/mrmushfiq/cloud-ide-server/internal/shared/models"
)

type DB struct {
	conn *sql.DB
}

// New creates a new database connection
func New(databaseURL string) (*DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return NewWithConn(conn), nil
}

// NewWithConn wraps an existing connection pool
func NewWithConn(conn *sql.DB) *DB {
	return &DB{conn: conn}
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

const schema = `
	CREATE TABLE IF NOT EXISTS generation_logs (
		id                 UUID PRIMARY KEY,
		description        TEXT NOT NULL,
		requested_provider TEXT NOT NULL,
		method             TEXT NOT NULL,
		source             TEXT NOT NULL,
		cache_hit          BOOLEAN NOT NULL DEFAULT FALSE,
		latency_ms         INTEGER NOT NULL,
		error_message      TEXT,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// EnsureSchema creates the generation_logs table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create generation_logs: %w", err)
	}
	return nil
}

// LogGeneration records one generation. An empty ID is filled with a new UUID.
func (db *DB) LogGeneration(ctx context.Context, log *models.GenerationLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO generation_logs (
			id, description, requested_provider, method, source,
			cache_hit, latency_ms, error_message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := db.conn.ExecContext(ctx,
		query,
		log.ID,
		log.Description,
		log.RequestedProvider,
		log.Method,
		log.Source,
		log.CacheHit,
		log.LatencyMs,
		log.ErrorMessage,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	return nil
}
