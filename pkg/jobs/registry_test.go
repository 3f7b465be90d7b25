package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForStatus(t *testing.T, r *Registry, id string, want Status) *Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := r.Get(id)
		require.NoError(t, err)
		if job.Status == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	job, _ := r.Get(id)
	t.Fatalf("job %s never reached %s, last status %s", id, want, job.Status)
	return nil
}

func TestRegistry_CompletedJobCarriesResult(t *testing.T) {
	r := NewRegistry(time.Hour)
	job := r.Submit(context.Background(), "scan", func(ctx context.Context, h *Handle) (interface{}, error) {
		return map[string]int{"messages": 42}, nil
	})

	done := waitForStatus(t, r, job.ID, StatusCompleted)
	assert.Equal(t, 100, done.Progress)
	assert.Equal(t, map[string]int{"messages": 42}, done.Result)
	assert.NotNil(t, done.CompletedAt)
	assert.Empty(t, done.Error)
}

func TestRegistry_FailedJobCarriesError(t *testing.T) {
	r := NewRegistry(time.Hour)
	job := r.Submit(context.Background(), "ingest", func(ctx context.Context, h *Handle) (interface{}, error) {
		return nil, errors.New("mailbox unreachable")
	})

	done := waitForStatus(t, r, job.ID, StatusFailed)
	assert.Equal(t, "mailbox unreachable", done.Error)
	assert.Nil(t, done.Result)
}

func TestRegistry_CancelLiveJob(t *testing.T) {
	r := NewRegistry(time.Hour)
	started := make(chan struct{})
	job := r.Submit(context.Background(), "scan", func(ctx context.Context, h *Handle) (interface{}, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	<-started
	assert.True(t, r.Cancel(job.ID))

	done := waitForStatus(t, r, job.ID, StatusCancelled)
	assert.Equal(t, context.Canceled.Error(), done.Error)

	// Terminal jobs cannot be cancelled again.
	assert.False(t, r.Cancel(job.ID))
}

func TestRegistry_CancelUnknownJob(t *testing.T) {
	r := NewRegistry(time.Hour)
	assert.False(t, r.Cancel("no-such-job"))
}

func TestRegistry_GetUnknownJob(t *testing.T) {
	r := NewRegistry(time.Hour)
	_, err := r.Get("no-such-job")
	assert.Error(t, err)
}

func TestRegistry_ProgressClampedAndVisible(t *testing.T) {
	r := NewRegistry(time.Hour)
	progressed := make(chan struct{})
	release := make(chan struct{})
	job := r.Submit(context.Background(), "ingest", func(ctx context.Context, h *Handle) (interface{}, error) {
		h.SetProgress(150, "downloading")
		close(progressed)
		<-release
		return nil, nil
	})

	<-progressed
	snap, err := r.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, "downloading", snap.ProgressMessage)

	close(release)
	waitForStatus(t, r, job.ID, StatusCompleted)
}

func TestRegistry_SurvivesCallerContextCancel(t *testing.T) {
	r := NewRegistry(time.Hour)
	callerCtx, cancelCaller := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	job := r.Submit(callerCtx, "scan", func(ctx context.Context, h *Handle) (interface{}, error) {
		close(started)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-release:
			return "ok", nil
		}
	})

	<-started
	// The HTTP request that submitted the job ends; the job keeps running.
	cancelCaller()
	close(release)

	done := waitForStatus(t, r, job.ID, StatusCompleted)
	assert.Equal(t, "ok", done.Result)
}

func TestRegistry_EvictsTerminalJobsPastRetention(t *testing.T) {
	r := NewRegistry(time.Minute)
	now := time.Now()
	r.now = func() time.Time { return now }

	job := r.Submit(context.Background(), "scan", func(ctx context.Context, h *Handle) (interface{}, error) {
		return nil, nil
	})
	waitForStatus(t, r, job.ID, StatusCompleted)

	// Inside retention the job stays visible.
	r.evictExpired()
	_, err := r.Get(job.ID)
	require.NoError(t, err)

	r.now = func() time.Time { return now.Add(2 * time.Minute) }
	r.evictExpired()
	_, err = r.Get(job.ID)
	assert.Error(t, err)
}

func TestRegistry_StopCancelsLiveJobs(t *testing.T) {
	r := NewRegistry(time.Hour)
	started := make(chan struct{})
	job := r.Submit(context.Background(), "ingest", func(ctx context.Context, h *Handle) (interface{}, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	<-started
	r.Stop()

	done, err := r.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, done.Status)
}
