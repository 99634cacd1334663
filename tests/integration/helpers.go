package integration

import (
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"innkeep/pkg/gateway"
)

// Integration tests run against a live stack. They are skipped unless
// INNKEEP_API_URL points at a running server.
func newClient(t *testing.T) *gateway.Client {
	t.Helper()

	baseURL := os.Getenv("INNKEEP_API_URL")
	if baseURL == "" {
		t.Skip("INNKEEP_API_URL not set, skipping integration test")
	}

	email := os.Getenv("INNKEEP_API_EMAIL")
	if email == "" {
		email = "admin@innkeep.local"
	}
	password := os.Getenv("INNKEEP_API_PASSWORD")
	if password == "" {
		password = "admin"
	}

	return gateway.New(baseURL, email, password)
}

// uniqueRoomNumber avoids collisions with rooms left over from earlier runs
func uniqueRoomNumber() string {
	return fmt.Sprintf("9%03d", rand.Intn(1000))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
