// Package sequence holds published square-lattice SAW counts used to verify
// computed results.
package sequence

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math/big"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed a001411.yaml
var a001411 []byte

type Table struct {
	Name   string
	Source string
	counts []*big.Int
}

type tableDisk struct {
	Name   string      `yaml:"name"`
	Source string      `yaml:"source"`
	Counts []entryDisk `yaml:"counts"`
}

type entryDisk struct {
	N     int    `yaml:"n"`
	Count string `yaml:"count"`
}

// Load decodes a table. Entries must cover 0..max without gaps or
// duplicates.
func Load(r io.Reader) (*Table, error) {

	var raw tableDisk
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("sequence: parse: %w", err)
	}

	t := &Table{
		Name:   raw.Name,
		Source: raw.Source,
		counts: make([]*big.Int, len(raw.Counts)),
	}

	for _, e := range raw.Counts {
		if e.N < 0 || e.N >= len(raw.Counts) {
			return nil, fmt.Errorf("sequence: entry n=%d out of range [0,%d)", e.N, len(raw.Counts))
		}
		if t.counts[e.N] != nil {
			return nil, fmt.Errorf("sequence: duplicated entry n=%d", e.N)
		}
		count, ok := new(big.Int).SetString(e.Count, 10)
		if !ok || count.Sign() < 0 {
			return nil, fmt.Errorf("sequence: entry n=%d: bad count '%s'", e.N, e.Count)
		}
		t.counts[e.N] = count
	}

	return t, nil
}

var known = sync.OnceValue(func() *Table {
	t, err := Load(bytes.NewReader(a001411))
	if err != nil {
		panic(err)
	}
	return t
})

// Known returns the embedded reference table.
func Known() *Table {
	return known()
}

// Lookup returns a copy of the reference count for n.
func (t *Table) Lookup(n int) (*big.Int, bool) {
	if n < 0 || n >= len(t.counts) {
		return nil, false
	}
	return new(big.Int).Set(t.counts[n]), true
}

// Max is the largest n in the table, -1 if empty.
func (t *Table) Max() int {
	return len(t.counts) - 1
}
