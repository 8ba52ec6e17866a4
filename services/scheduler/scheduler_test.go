package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"pictocat/services/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResetter struct {
	calls []bool
	err   error
}

func (f *fakeResetter) ResetAll(_ context.Context, force bool) (int, error) {
	f.calls = append(f.calls, force)
	return 3, f.err
}

func TestResetMissions(t *testing.T) {
	r := &fakeResetter{}
	scheduler.ResetMissions(context.Background(), r, zap.NewNop())
	assert.Equal(t, []bool{false}, r.calls)

	r.err = errors.New("db down")
	scheduler.ResetMissions(context.Background(), r, zap.NewNop())
	assert.Len(t, r.calls, 2)
}

func TestSchedulerLifecycle(t *testing.T) {
	s, err := scheduler.New(&fakeResetter{}, zap.NewNop())
	require.NoError(t, err)
	s.Start()
	assert.NoError(t, s.Shutdown())
}
