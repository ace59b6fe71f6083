package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bnema/pomodesk/internal/adapters/repo/jsonfile"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)}
}

func newJSONStore(t *testing.T, clock *fakeClock) *jsonfile.Store {
	t.Helper()

	paths, err := jsonfile.ResolvePaths(t.TempDir())
	require.NoError(t, err)

	store, err := jsonfile.Open(context.Background(), paths, clock, nil)
	require.NoError(t, err)

	return store
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
