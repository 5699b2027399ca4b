package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Mode         string `usage:"where counts run: LOCAL | HTTP"`
	Base         string `usage:"base URL for HTTP mode, empty starts a server in process"`
	Cases        string `usage:"comma separated walk lengths"`
	Methods      string `usage:"comma separated methods to compare"`
	Timeout      string `usage:"time limit for each case"`
	RecursiveMax int    `usage:"skip the recursive method above this walk length"`
}

var cleanups []func()

func main() {

	c := Config{
		Mode:         "local",
		Cases:        "3,10,12,13,15,18,20",
		Methods:      "stack,symmetric,recursive",
		Timeout:      "5s",
		RecursiveMax: 18,
	}
	goconfig.Read(&c)

	cases, err := parseCases(c.Cases)
	if err != nil {
		log.Fatalf("Bad cases: %s", err.Error())
	}

	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		log.Fatalf("Bad timeout: %s", err.Error())
	}

	var count Counter
	switch strings.ToUpper(c.Mode) {
	case "LOCAL":
		count = CountLocal
	case "HTTP":
		if c.Base == "" {
			start, stop := CreateServer(&c, cases, timeout)
			cleanups = append(cleanups, stop)
			go start()
			WaitReady(c.Base)
		}
		count = CountRemote(c.Base)
		fmt.Println("The server caches one count per n: only the first method of each case is computed, the rest are reported as cached and not cross-checked.")
	default:
		log.Fatalf("Unknown mode %s", c.Mode)
	}

	rows := Run(count, cases, splitList(c.Methods), timeout, c.RecursiveMax)
	PrintTable(os.Stdout, rows)

	code := 0
	for _, row := range rows {
		if row.Status == StatusMismatch || row.Status == StatusError {
			code = 1
		}
	}
	cleanupAndExit(code)
}

func cleanupAndExit(code int) {
	for _, cleanup := range cleanups {
		cleanup()
	}
	os.Exit(code)
}

func parseCases(s string) ([]int, error) {
	cases := []int{}
	for _, item := range splitList(s) {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("walk length must be non-negative, got %d", n)
		}
		cases = append(cases, n)
	}
	return cases, nil
}

func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
