package main

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestRun(t *testing.T) {

	biff.Alternative("Run", func(a *biff.A) {

		a.Alternative("Count", func(a *biff.A) {
			biff.AssertEqual(run(Config{N: 5, Method: "stack"}), 0)
		})

		a.Alternative("Verify", func(a *biff.A) {
			biff.AssertEqual(run(Config{N: 9, Method: "symmetric", Verify: true}), 0)
		})

		a.Alternative("Negative", func(a *biff.A) {
			biff.AssertEqual(run(Config{N: -1, Method: "stack"}), 2)
		})

		a.Alternative("Unknown method", func(a *biff.A) {
			biff.AssertEqual(run(Config{N: 3, Method: "magic"}), 2)
		})
	})
}
