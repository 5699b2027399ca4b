package configuration

import (
	"fmt"
	"runtime"
	"time"

	"github.com/funmatu/sawsolver/saw"
	"github.com/funmatu/sawsolver/solver"
)

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	MaxN              int    `usage:"largest walk length accepted"`
	Timeout           string `usage:"how long a synchronous count may run before answering 504, 0 waits forever"`
	Workers           int    `usage:"counts running at the same time"`
	Method            string `usage:"default counting method: recursive | stack | symmetric"`
	MaxJobs           int    `usage:"jobs kept in memory, the oldest finished ones are forgotten first"`
	ApiKey            string `usage:"API key, authentication is disabled when key and secret are empty"`
	ApiSecret         string `usage:"API secret"`
	EnableCompression bool   `usage:"gzip responses"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		HttpAddr:   "127.0.0.1:8080",
		MaxN:       32,
		Timeout:    "1m",
		Workers:    runtime.NumCPU(),
		Method:     saw.DefaultMethod,
		MaxJobs:    solver.DefaultMaxJobs,
		ShowBanner: true,
	}
}

func (c *Configuration) SolverConfig() (*solver.Config, error) {

	var timeout time.Duration
	if c.Timeout != "" && c.Timeout != "0" {
		var err error
		timeout, err = time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse timeout: %w", err)
		}
	}

	if c.MaxN < 1 {
		return nil, fmt.Errorf("max n must be positive, got %d", c.MaxN)
	}

	return &solver.Config{
		MaxN:    c.MaxN,
		Timeout: timeout,
		Workers: c.Workers,
		Method:  c.Method,
		MaxJobs: c.MaxJobs,
	}, nil
}
