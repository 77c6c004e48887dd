// Package testkit holds helpers for tests that patch package level seams
package testkit

import (
	"sync"
	"testing"
)

var seams sync.Mutex

// Swap replaces *target for the rest of the test
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	orig := *target
	*target = v
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until the test ends, pair it with Swap on shared seams
func Serial(t testing.TB) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}
