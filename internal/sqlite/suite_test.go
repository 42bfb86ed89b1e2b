package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bankledger/internal/sqlite"
)

type TestSuite struct {
	DB       *sql.DB
	DBPath   string
	Client   *sqlite.Client
	teardown func()
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_journal.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")

	err = client.Migrate(context.Background())
	require.NoError(t, err, "failed to create schema")

	return &TestSuite{
		DB:     client.DB(),
		DBPath: dbPath,
		Client: client,
		teardown: func() {
			client.Close()
		},
	}
}

func (s *TestSuite) Teardown() {
	s.teardown()
}

func (s *TestSuite) CountEntries(t *testing.T, holder string) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM journal_entries WHERE holder_name = ?", holder).Scan(&count)
	require.NoError(t, err, "failed to count journal entries")

	return count
}
