package testutil

import (
	"testing"
	"time"
)

// Eventually polls cond until it returns true or timeout elapses.
func Eventually(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	if !cond() {
		t.Fatalf("condition not satisfied within %s", timeout)
	}
}

// Consistently fails if cond turns false at any time during the period.
func Consistently(t *testing.T, period time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(period)
	for time.Now().Before(deadline) {
		if !cond() {
			t.Fatalf("condition violated within %s", period)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
