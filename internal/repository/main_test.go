//go:build integration

package repository

import (
	"os"
	"testing"

	"maintenance-portal-backend/internal/testutils"
)

// TestMain ensures the shared Postgres container is cleaned up after the
// integration suites in this package finish.
func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
