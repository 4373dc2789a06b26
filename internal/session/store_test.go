package session

import (
	"testing"
	"time"

	"lab-booking/internal/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore() *Store {
	return NewStore(func(log *zap.Logger) *checkout.Workflow {
		return checkout.NewWorkflow(nil, checkout.Options{}, log)
	}, zap.NewNop())
}

func TestGetOrCreate(t *testing.T) {
	s := newTestStore()

	first, created := s.GetOrCreate("")
	require.True(t, created)
	require.NotNil(t, first.Checkout)

	again, created := s.GetOrCreate(first.ID.String())
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := s.GetOrCreate("not-a-uuid")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)

	unknown, created := s.GetOrCreate("7f1c2a38-52f1-4b7e-9d6f-0c8a9b1e2d3f")
	assert.True(t, created)
	assert.NotEqual(t, "7f1c2a38-52f1-4b7e-9d6f-0c8a9b1e2d3f", unknown.ID.String())

	assert.Equal(t, 3, s.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestStore()
	a := s.Create()
	b := s.Create()

	assert.NotSame(t, a.Checkout, b.Checkout)
}

func TestSweep(t *testing.T) {
	s := newTestStore()
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	stale := s.Create()
	now = now.Add(90 * time.Minute)
	fresh := s.Create()

	removed := s.Sweep(time.Hour)
	assert.Equal(t, 1, removed)

	_, ok := s.Get(stale.ID)
	assert.False(t, ok)
	_, ok = s.Get(fresh.ID)
	assert.True(t, ok)
}

func TestGetRefreshesLastSeen(t *testing.T) {
	s := newTestStore()
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	sess := s.Create()
	now = now.Add(50 * time.Minute)
	_, ok := s.Get(sess.ID)
	require.True(t, ok)

	now = now.Add(50 * time.Minute)
	assert.Equal(t, 0, s.Sweep(time.Hour))
}
