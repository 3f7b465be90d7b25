// Package jobs provides the in-process job fabric: a registry with
// progress tracking and cancellation, and the periodic session sweep.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is a job's lifecycle state.
type Status string

// Job lifecycle states. Queued and Processing are live; Completed,
// Failed and Cancelled are terminal.
const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// Job is one unit of background work and its observable state.
// Progress is advisory; only Status is a correctness signal.
type Job struct {
	ID              string      `json:"id"`
	Type            string      `json:"type"`
	Status          Status      `json:"status"`
	Progress        int         `json:"progress"`
	ProgressMessage string      `json:"progress_message,omitempty"`
	Result          interface{} `json:"result,omitempty"`
	Error           string      `json:"error,omitempty"`
	StartedAt       time.Time   `json:"started_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
}

// Handle is passed to running jobs for progress reporting.
type Handle struct {
	id       string
	registry *Registry
}

// SetProgress records advisory progress in [0,100] with an optional message.
func (h *Handle) SetProgress(pct int, message string) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	h.registry.update(h.id, func(j *Job) {
		j.Progress = pct
		j.ProgressMessage = message
	})
}

// Fn is the body of a job. The returned value becomes Job.Result on
// success; a non-nil error marks the job failed.
type Fn func(ctx context.Context, h *Handle) (interface{}, error)

// Registry tracks in-flight and recently finished jobs in memory.
// Jobs do not survive a restart; callers must treat a missing job id as
// terminal-unknown.
type Registry struct {
	mu        sync.RWMutex
	jobs      map[string]*Job
	cancels   map[string]context.CancelFunc
	retention time.Duration
	wg        sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}
	now      func() time.Time
}

// NewRegistry creates a registry. Terminal jobs are evicted after
// retention by the reaper loop.
func NewRegistry(retention time.Duration) *Registry {
	return &Registry{
		jobs:      make(map[string]*Job),
		cancels:   make(map[string]context.CancelFunc),
		retention: retention,
		stopCh:    make(chan struct{}),
		now:       time.Now,
	}
}

// Start launches the eviction loop.
func (r *Registry) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.retention / 4)
		defer ticker.Stop()
		for {
			select {
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.evictExpired()
			}
		}
	}()
}

// Stop cancels every live job and waits for them to finish.
func (r *Registry) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })

	r.mu.Lock()
	for _, cancel := range r.cancels {
		cancel()
	}
	r.mu.Unlock()

	r.wg.Wait()
	slog.Info("Job registry stopped")
}

// Submit registers a job and runs fn in its own goroutine. The job's
// context is cancelled by Cancel or Stop.
func (r *Registry) Submit(ctx context.Context, jobType string, fn Fn) *Job {
	id := uuid.NewString()
	job := &Job{
		ID:        id,
		Type:      jobType,
		Status:    StatusQueued,
		StartedAt: r.now(),
	}

	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	r.mu.Lock()
	r.jobs[id] = job
	r.cancels[id] = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		r.run(jobCtx, id, jobType, fn)
	}()

	snapshot := *job
	return &snapshot
}

func (r *Registry) run(ctx context.Context, id, jobType string, fn Fn) {
	r.update(id, func(j *Job) { j.Status = StatusProcessing })

	result, err := fn(ctx, &Handle{id: id, registry: r})

	finished := r.now()
	r.update(id, func(j *Job) {
		j.CompletedAt = &finished
		switch {
		case err != nil && ctx.Err() != nil:
			j.Status = StatusCancelled
			j.Error = err.Error()
		case err != nil:
			j.Status = StatusFailed
			j.Error = err.Error()
		default:
			j.Status = StatusCompleted
			j.Progress = 100
			j.Result = result
		}
	})

	r.mu.Lock()
	delete(r.cancels, id)
	r.mu.Unlock()

	if err != nil {
		slog.Warn("Job finished with error", "job_id", id, "type", jobType, "error", err)
	} else {
		slog.Info("Job completed", "job_id", id, "type", jobType)
	}
}

// Get returns a snapshot of the job, or an error if the id is unknown
// (never submitted, or already evicted).
func (r *Registry) Get(id string) (*Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s not found", id)
	}
	snapshot := *job
	return &snapshot, nil
}

// Cancel requests cancellation of a live job. Returns false when the
// job is unknown or already terminal.
func (r *Registry) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	cancel, ok := r.cancels[id]
	if !ok {
		return false
	}
	cancel()
	return true
}

func (r *Registry) update(id string, mutate func(*Job)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		mutate(job)
	}
}

func (r *Registry) evictExpired() {
	cutoff := r.now().Add(-r.retention)
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, job := range r.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(r.jobs, id)
		}
	}
}
