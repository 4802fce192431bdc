package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS habito_kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// PostgresStore keeps the key space in a habito_kv table. Selected when the
// config string is a postgres:// or postgresql:// URL. Credentials must come
// from the environment or .pgpass, never from the connection string itself.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// ValidateConnString checks that a connection string parses and carries no
// embedded password.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := u.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}
	} else {
		for _, pair := range strings.Fields(connStr) {
			parts := strings.SplitN(pair, "=", 2)
			if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
				return false, ErrEmbeddedCredentials
			}
		}
	}

	return true, nil
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, ErrNotLoaded
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM habito_kv WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(key, value string) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	_, err := s.db.Exec(
		"INSERT INTO habito_kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(key string) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	if _, err := s.db.Exec("DELETE FROM habito_kv WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Keys() ([]string, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT key FROM habito_kv ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *PostgresStore) ConfigPath() string {
	return s.connStr
}
