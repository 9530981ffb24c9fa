package testutil

import (
	"os"
	"testing"
)

// LoadEnv skips the test unless key is set to a non-empty value.
func LoadEnv(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping", key)
	}
	return value
}

func LoadEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
