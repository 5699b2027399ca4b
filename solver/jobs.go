package solver

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	JobPending = "pending"
	JobRunning = "running"
	JobDone    = "done"
	JobFailed  = "failed"
)

// DefaultMaxJobs is the registry size used when Config.MaxJobs is not set.
const DefaultMaxJobs = 1000

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	Id        string    `json:"id"`
	N         int       `json:"n"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	Count     string    `json:"count,omitempty"`
	Digits    int       `json:"digits,omitzero"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Elapsed   string    `json:"elapsed,omitempty"`
}

// Jobs keeps at most max jobs. Finished jobs are forgotten oldest first to
// make room for new ones.
type Jobs struct {
	mutex *sync.RWMutex
	jobs  map[string]*Job
	order []string
	max   int
}

func NewJobs(max int) *Jobs {
	if max <= 0 {
		max = DefaultMaxJobs
	}
	return &Jobs{
		mutex: &sync.RWMutex{},
		jobs:  map[string]*Job{},
		max:   max,
	}
}

func (j *Jobs) create(n int, method string) (*Job, error) {
	job := &Job{
		Id:        uuid.New().String(),
		N:         n,
		Method:    method,
		Status:    JobPending,
		CreatedAt: time.Now().UTC(),
	}

	j.mutex.Lock()
	defer j.mutex.Unlock()

	if len(j.jobs) >= j.max && !j.evictFinished() {
		return nil, fmt.Errorf("%w: %d jobs still pending or running", ErrUnavailable, len(j.jobs))
	}

	j.jobs[job.Id] = job
	j.order = append(j.order, job.Id)

	snapshot := *job
	return &snapshot, nil
}

// evictFinished drops the oldest done or failed job. Must hold the lock.
func (j *Jobs) evictFinished() bool {
	for i, id := range j.order {
		status := j.jobs[id].Status
		if status != JobDone && status != JobFailed {
			continue
		}
		delete(j.jobs, id)
		j.order = append(j.order[:i], j.order[i+1:]...)
		return true
	}
	return false
}

func (j *Jobs) update(id string, f func(job *Job)) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	job, exists := j.jobs[id]
	if !exists {
		return
	}
	f(job)
}

// Get returns a snapshot of the job.
func (j *Jobs) Get(id string) (*Job, error) {
	j.mutex.RLock()
	defer j.mutex.RUnlock()

	job, exists := j.jobs[id]
	if !exists {
		return nil, ErrJobNotFound
	}

	snapshot := *job
	return &snapshot, nil
}

// List returns snapshots of every job, oldest first.
func (j *Jobs) List() []*Job {
	j.mutex.RLock()
	list := make([]*Job, 0, len(j.jobs))
	for _, job := range j.jobs {
		snapshot := *job
		list = append(list, &snapshot)
	}
	j.mutex.RUnlock()

	sort.SliceStable(list, func(a, b int) bool {
		if list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].Id < list[b].Id
		}
		return list[a].CreatedAt.Before(list[b].CreatedAt)
	})

	return list
}
