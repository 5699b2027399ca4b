package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/funmatu/sawsolver/bootstrap"
	"github.com/funmatu/sawsolver/configuration"
	"github.com/funmatu/sawsolver/saw"
)

// Counter runs one case. It must give up when ctx is done.
type Counter func(ctx context.Context, n int, method string) (count string, cached bool, err error)

func CountLocal(ctx context.Context, n int, method string) (string, bool, error) {

	f, ok := saw.GetMethod(method)
	if !ok {
		return "", false, fmt.Errorf("%w '%s'", saw.ErrUnknownMethod, method)
	}

	type outcome struct {
		count string
		err   error
	}

	// The kernel can not be interrupted, a timed out goroutine keeps
	// running until the process exits.
	done := make(chan outcome, 1)
	go func() {
		result, err := f(n)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		done <- outcome{count: result.String()}
	}()

	select {
	case o := <-done:
		return o.count, false, o.err
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

func CountRemote(base string) Counter {

	client := &http.Client{}

	return func(ctx context.Context, n int, method string) (string, bool, error) {

		payload, _ := sjson.Set("", "n", n)
		payload, _ = sjson.Set(payload, "method", method)

		req, err := http.NewRequestWithContext(ctx, "POST", base+"/v1/counts", bytes.NewReader([]byte(payload)))
		if err != nil {
			return "", false, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return "", false, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", false, err
		}

		if resp.StatusCode == http.StatusGatewayTimeout {
			return "", false, context.DeadlineExceeded
		}
		if resp.StatusCode != http.StatusOK {
			return "", false, fmt.Errorf("%d: %s", resp.StatusCode, gjson.GetBytes(body, "error.message").String())
		}

		return gjson.GetBytes(body, "count").String(), gjson.GetBytes(body, "cached").Bool(), nil
	}
}

func CreateServer(c *Config, cases []int, timeout time.Duration) (start, stop func()) {

	conf := configuration.Default()
	conf.Timeout = timeout.String()
	conf.MaxN = 1
	for _, n := range cases {
		if n > conf.MaxN {
			conf.MaxN = n
		}
	}
	c.Base = "http://" + conf.HttpAddr

	start, stop, err := bootstrap.Bootstrap(conf)
	if err != nil {
		panic("Could not start server: " + err.Error())
	}

	return start, stop
}

func WaitReady(base string) {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(base + "/release")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	panic("server at " + base + " is not ready")
}
