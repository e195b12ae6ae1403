// Package testdb creates a throwaway Postgres database for DB backed tests.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNoTestDB is returned when TEST_DATABASE_URI is not set.
var ErrNoTestDB = errors.New("TEST_DATABASE_URI is not set")

type TestDBInstance struct {
	DSN   string
	admin *pgx.Conn
	name  string
}

// NewTestDBInstance creates a fresh database on the server named by TEST_DATABASE_URI,
// a postgres:// URL.
func NewTestDBInstance() (*TestDBInstance, error) {
	base := os.Getenv("TEST_DATABASE_URI")
	if base == "" {
		return nil, ErrNoTestDB
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse TEST_DATABASE_URI: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgx.Connect(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("connect test server: %w", err)
	}

	name := "ypshop_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		_ = admin.Close(ctx)
		return nil, fmt.Errorf("create test database: %w", err)
	}

	u.Path = "/" + name
	return &TestDBInstance{DSN: u.String(), admin: admin, name: name}, nil
}

// Down drops the database and closes the admin connection.
func (i *TestDBInstance) Down() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = i.admin.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{i.name}.Sanitize()+" WITH (FORCE)")
	_ = i.admin.Close(ctx)
}
