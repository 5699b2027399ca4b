package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/funmatu/sawsolver/saw"
	"github.com/funmatu/sawsolver/sequence"
	"github.com/funmatu/sawsolver/solver"
)

var ErrorNoReference = errors.New("no reference value")

type Servicer interface { // todo: split jobs into their own interface?
	Count(ctx context.Context, n int, method string) (*solver.Result, error)
	Verify(ctx context.Context, n int, method string) (*Verification, error)
	ListResults(from, to int) []*solver.Result
	Methods() []string
	Submit(n int, method string) (*solver.Job, error)
	GetJob(id string) (*solver.Job, error)
	ListJobs() []*solver.Job
}

type Verification struct {
	Result   *solver.Result
	Expected *big.Int
	Match    bool
}

type Service struct {
	solver    *solver.Solver
	reference *sequence.Table
}

func NewService(s *solver.Solver) *Service {
	return &Service{
		solver:    s,
		reference: sequence.Known(),
	}
}

func (s *Service) Count(ctx context.Context, n int, method string) (*solver.Result, error) {
	return s.solver.Count(ctx, n, method)
}

// Verify counts n and compares the result with the published value.
func (s *Service) Verify(ctx context.Context, n int, method string) (*Verification, error) {

	expected, exists := s.reference.Lookup(n)
	if !exists {
		if n < 0 {
			return nil, fmt.Errorf("%w: walk length must be non-negative, got %d", saw.ErrInvalidArgument, n)
		}
		return nil, fmt.Errorf("%w for n=%d, known values cover 0..%d", ErrorNoReference, n, s.reference.Max())
	}

	result, err := s.solver.Count(ctx, n, method)
	if err != nil {
		return nil, err
	}

	return &Verification{
		Result:   result,
		Expected: expected,
		Match:    result.Count.Cmp(expected) == 0,
	}, nil
}

func (s *Service) ListResults(from, to int) []*solver.Result {
	return s.solver.Results.Range(from, to)
}

func (s *Service) Methods() []string {
	return saw.MethodNames()
}

func (s *Service) Submit(n int, method string) (*solver.Job, error) {
	return s.solver.Submit(n, method)
}

func (s *Service) GetJob(id string) (*solver.Job, error) {
	return s.solver.GetJob(id)
}

func (s *Service) ListJobs() []*solver.Job {
	return s.solver.ListJobs()
}
