package utils

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {

	keys := GetKeys(map[string]int{"symmetric": 1, "recursive": 2, "stack": 3})
	biff.AssertEqual(keys, []string{"recursive", "stack", "symmetric"})

	biff.AssertEqual(len(GetKeys(map[int]bool{})), 0)
}

func TestRemarshal(t *testing.T) {

	type job struct {
		Id     string `json:"id"`
		N      int    `json:"n"`
		Digits int    `json:"digits,omitzero"`
	}

	m := map[string]any{}
	err := Remarshal(job{Id: "x", N: 7}, &m)
	biff.AssertNil(err)
	biff.AssertEqual(m, map[string]any{"id": "x", "n": 7.0})
}
