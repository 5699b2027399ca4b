package solver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/funmatu/sawsolver/saw"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

// DefaultMaxN is the walk length limit used when Config.MaxN is not set.
// Counting cost grows roughly like 2.64^n, so any real limit is small.
const DefaultMaxN = 32

var (
	ErrTooLarge    = errors.New("walk length too large")
	ErrTimeout     = errors.New("count timed out")
	ErrUnavailable = errors.New("solver unavailable")
)

type Config struct {
	// MaxN bounds the accepted walk length, DefaultMaxN when not positive
	MaxN int
	// Timeout bounds how long Count waits, 0 means forever
	Timeout time.Duration
	// Workers bounds how many counts run at the same time
	Workers int
	// Method is used when a request does not name one
	Method string
	// MaxJobs bounds the job registry, DefaultMaxJobs when not positive
	MaxJobs int
}

type Solver struct {
	config      *Config
	status      string
	statusMutex *sync.RWMutex
	Results     *Results
	Jobs        *Jobs
	flight      *singleflight.Group
	workers     *semaphore.Weighted
	ctx         context.Context
	cancel      context.CancelFunc
	exit        chan struct{}
	stopOnce    *sync.Once
}

func NewSolver(config *Config) *Solver {

	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Method == "" {
		config.Method = saw.DefaultMethod
	}
	if config.MaxN <= 0 {
		config.MaxN = DefaultMaxN
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Solver{
		config:      config,
		status:      StatusOpening,
		statusMutex: &sync.RWMutex{},
		Results:     NewResults(),
		Jobs:        NewJobs(config.MaxJobs),
		flight:      &singleflight.Group{},
		workers:     semaphore.NewWeighted(int64(config.Workers)),
		ctx:         ctx,
		cancel:      cancel,
		exit:        make(chan struct{}),
		stopOnce:    &sync.Once{},
	}
}

func (s *Solver) GetStatus() string {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()
	return s.status
}

func (s *Solver) setStatus(status string) {
	s.statusMutex.Lock()
	s.status = status
	s.statusMutex.Unlock()
}

func (s *Solver) Config() Config {
	return *s.config
}

// Load checks the configuration and seeds the trivial count, then moves the
// solver to operating.
func (s *Solver) Load() error {

	log.Printf("Loading solver (method %s, workers %d, max n %d)...\n", s.config.Method, s.config.Workers, s.config.MaxN)

	if _, ok := saw.GetMethod(s.config.Method); !ok {
		s.setStatus(StatusClosing)
		return fmt.Errorf("default method: %w '%s'", saw.ErrUnknownMethod, s.config.Method)
	}

	s.Results.Put(&Result{
		N:          0,
		Count:      big.NewInt(1),
		Method:     s.config.Method,
		ComputedAt: time.Now().UTC(),
	})

	s.setStatus(StatusOperating)

	return nil
}

func (s *Solver) Start() error {

	err := s.Load()
	if err != nil {
		return err
	}

	<-s.exit

	return nil
}

func (s *Solver) Stop() error {

	s.stopOnce.Do(func() {
		s.setStatus(StatusClosing)
		s.cancel()
		close(s.exit)
	})

	return nil
}

// Check validates a request without running it.
func (s *Solver) Check(n int, method string) (string, saw.CountFunc, error) {

	if method == "" {
		method = s.config.Method
	}
	count, ok := saw.GetMethod(method)
	if !ok {
		return "", nil, fmt.Errorf("%w '%s', must be [%s]", saw.ErrUnknownMethod, method, strings.Join(saw.MethodNames(), "|"))
	}

	if n < 0 {
		return "", nil, fmt.Errorf("%w: walk length must be non-negative, got %d", saw.ErrInvalidArgument, n)
	}
	if n > s.config.MaxN {
		return "", nil, fmt.Errorf("%w: %d exceeds the limit of %d", ErrTooLarge, n, s.config.MaxN)
	}

	return method, count, nil
}

// Count returns the number of self-avoiding walks of length n. Concurrent
// requests for the same n share one computation. When the configured timeout
// expires the caller gets ErrTimeout but the computation keeps going and
// its result is cached for later requests.
func (s *Solver) Count(ctx context.Context, n int, method string) (*Result, error) {

	method, count, err := s.Check(n, method)
	if err != nil {
		return nil, err
	}

	if result, ok := s.Results.Get(n); ok {
		cached := *result
		cached.Cached = true
		return &cached, nil
	}

	var timeout <-chan time.Time
	if s.config.Timeout > 0 {
		timer := time.NewTimer(s.config.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case r := <-s.compute(n, method, count):
		if r.Err != nil {
			return nil, r.Err
		}
		result := *r.Val.(*Result)
		return &result, nil
	case <-timeout:
		return nil, fmt.Errorf("%w: n=%d still running after %s", ErrTimeout, n, s.config.Timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Solver) compute(n int, method string, count saw.CountFunc) <-chan singleflight.Result {

	return s.flight.DoChan(strconv.Itoa(n), func() (_ interface{}, err error) {

		// DoChan runs this in its own goroutine, out of reach of any
		// recover in the caller
		defer func() {
			if r := recover(); r != nil {
				log.Printf("ERROR: count n=%d panicked: %v\n%s", n, r, debug.Stack())
				err = fmt.Errorf("count n=%d: panic: %v", n, r)
			}
		}()

		err = s.workers.Acquire(s.ctx, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
		}
		defer s.workers.Release(1)

		t0 := time.Now()
		total, err := count(n)
		if err != nil {
			return nil, err
		}

		result := &Result{
			N:          n,
			Count:      total,
			Method:     method,
			Elapsed:    time.Since(t0),
			ComputedAt: t0.UTC(),
		}
		s.Results.Put(result)

		return result, nil
	})
}

// Submit registers an asynchronous count. Jobs are not bound by the
// configured timeout, they only stop when the solver stops.
func (s *Solver) Submit(n int, method string) (*Job, error) {

	if s.GetStatus() == StatusClosing {
		return nil, ErrUnavailable
	}

	method, count, err := s.Check(n, method)
	if err != nil {
		return nil, err
	}

	job, err := s.Jobs.create(n, method)
	if err != nil {
		return nil, err
	}

	go func() {

		s.Jobs.update(job.Id, func(j *Job) {
			j.Status = JobRunning
		})

		t0 := time.Now()

		var result *Result
		var err error
		if cached, ok := s.Results.Get(n); ok {
			result = cached
		} else {
			select {
			case r := <-s.compute(n, method, count):
				if r.Err != nil {
					err = r.Err
				} else {
					result = r.Val.(*Result)
				}
			case <-s.ctx.Done():
				err = fmt.Errorf("%w: %s", ErrUnavailable, s.ctx.Err().Error())
			}
		}

		if err != nil {
			log.Printf("ERROR: job %s (n=%d): %s\n", job.Id, n, err.Error())
		}

		s.Jobs.update(job.Id, func(j *Job) {
			j.Elapsed = time.Since(t0).String()
			if err != nil {
				j.Status = JobFailed
				j.Error = err.Error()
				return
			}
			j.Status = JobDone
			j.Count = result.Count.String()
			j.Digits = len(j.Count)
		})
	}()

	return job, nil
}

func (s *Solver) GetJob(id string) (*Job, error) {
	return s.Jobs.Get(id)
}

func (s *Solver) ListJobs() []*Job {
	return s.Jobs.List()
}
