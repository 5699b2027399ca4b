package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fulldump/goconfig"

	"github.com/funmatu/sawsolver/saw"
	"github.com/funmatu/sawsolver/sequence"
)

type Config struct {
	N      int    `usage:"walk length"`
	Method string `usage:"counting method: recursive | stack | symmetric"`
	Verify bool   `usage:"compare the count with the published value"`
}

func main() {

	c := Config{
		N:      10,
		Method: saw.DefaultMethod,
	}
	goconfig.Read(&c)

	os.Exit(run(c))
}

func run(c Config) int {

	count, ok := saw.GetMethod(c.Method)
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: %s '%s', must be [%s]\n", saw.ErrUnknownMethod, c.Method, strings.Join(saw.MethodNames(), "|"))
		return 2
	}

	t0 := time.Now()
	result, err := count(c.N)
	if errors.Is(err, saw.ErrInvalidArgument) {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		return 1
	}
	elapsed := time.Since(t0)

	digits := result.String()
	fmt.Printf("n=%d method=%s count=%s digits=%d elapsed=%s\n", c.N, c.Method, digits, len(digits), elapsed)

	if !c.Verify {
		return 0
	}

	expected, ok := sequence.Known().Lookup(c.N)
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: no published value for n=%d, known values cover 0..%d\n", c.N, sequence.Known().Max())
		return 1
	}
	if expected.Cmp(result) != 0 {
		fmt.Printf("MISMATCH: published value is %s\n", expected.String())
		return 1
	}
	fmt.Println("OK: matches", sequence.Known().Source)
	return 0
}
