// Package saw counts self-avoiding walks on the square lattice exactly.
//
// Every walk starts at the origin and takes unit steps east, west, north or
// south without ever revisiting a position. Counts grow roughly like 2.64^n,
// so they are returned as *big.Int.
//
// All scratch state lives inside a single call; concurrent calls are
// independent. Calls cannot be interrupted: callers that need a deadline must
// bound n or run the count in its own goroutine.
package saw

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrInvalidArgument = errors.New("invalid argument")

const allDirections = Direction(len(Directions))

type frame[C comparable] struct {
	cell C
	next Direction
}

func validate(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: walk length must be non-negative, got %d", ErrInvalidArgument, n)
	}
	return nil
}

// Count returns the number of self-avoiding walks of length n that start at
// the origin. Count(0) is 1.
func Count(n int) (*big.Int, error) {
	if err := validate(n); err != nil {
		return nil, err
	}

	acc := newAccumulator()
	if n <= DenseLimit {
		countFrom[int](newDenseGrid(n), n, allDirections, acc)
	} else {
		countFrom[Point](newSparseSet(n), n, allDirections, acc)
	}

	return acc.Total(), nil
}

// CountSymmetric pins the first step to East, the first of Directions, and
// multiplies by four: each quarter turn of the lattice maps the walks that
// start east onto the walks that start in another direction.
func CountSymmetric(n int) (*big.Int, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	if n == 0 {
		return big.NewInt(1), nil
	}

	acc := newAccumulator()
	if n <= DenseLimit {
		countFrom[int](newDenseGrid(n), n, East+1, acc)
	} else {
		countFrom[Point](newSparseSet(n), n, East+1, acc)
	}

	total := acc.Total()
	return total.Mul(total, big.NewInt(4)), nil
}

// countFrom is the backtracking search over an explicit stack. The first
// frame only tries directions below rootEnd; every other frame tries all
// four. b is left empty on return.
func countFrom[C comparable, B board[C]](b B, n int, rootEnd Direction, acc *accumulator) {

	if n == 0 {
		acc.Add(1)
		return
	}

	origin := b.origin()
	b.mark(origin)

	stack := make([]frame[C], 1, scratchCap(n))
	stack[0] = frame[C]{cell: origin}

	for len(stack) > 0 {
		depth := len(stack) - 1
		top := &stack[depth]

		end := allDirections
		if depth == 0 {
			end = rootEnd
		}
		if top.next >= end {
			b.unmark(top.cell)
			stack = stack[:depth]
			continue
		}

		d := top.next
		top.next++

		c := b.next(top.cell, d)
		if b.visited(c) {
			continue
		}
		if depth+1 == n {
			// complete walk, nothing left to extend
			acc.Add(1)
			continue
		}

		b.mark(c)
		stack = append(stack, frame[C]{cell: c})
	}
}
