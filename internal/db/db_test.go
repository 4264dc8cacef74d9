package db

import (
	"os"
	"testing"
)

// Connection tests only run against a real database; the unit suites
// use the in-memory repositories instead.
func TestConnectPostgresRequiresEnv(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()
}
