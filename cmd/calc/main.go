package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/selftest"
)

type checkConfig struct {
	n        int
	endpoint string
	seed     int64
	retries  int
	timeout  time.Duration
	verbose  bool
}

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		nl, echo     bool
		prec         int
		chk          checkConfig
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix and grouped forms")
	flag.IntVar(&chk.n, "check", 0, "instead of evaluating input, check this many random problems against mathjs")
	flag.StringVar(&chk.endpoint, "url", selftest.DefaultEndpoint, "mathjs API endpoint for -check")
	flag.Int64Var(&chk.seed, "seed", 0, "random seed for -check (default from the clock)")
	flag.IntVar(&chk.retries, "retries", 3, "retries after temporary network failures for -check")
	flag.DurationVar(&chk.timeout, "timeout", 5*time.Minute, "time limit for -check")
	flag.BoolVar(&chk.verbose, "v", false, "log every comparison and dump mismatches for -check")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if chk.n > 0 {
		os.Exit(check(chk))
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := exprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	for _, arg := range flag.Args() {
		s, err := exprs(strings.NewReader(arg), nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}

	ctx := calc.NewContext(calc.Prec(uint(prec)))
	verb += "\n"
	for _, src := range srcs {
		if src == "" {
			fmt.Println(math.NaN())
			continue
		}
		postfix, err := calc.InfixToPostfix(calc.Tokenize(src))
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Printf("%s : ", calc.FormatPostfix(postfix))
			if g, err := calc.PostfixToInfix(postfix); err == nil {
				fmt.Printf("%s : ", g)
			}
		}
		r, err := ctx.EvalPostfix(postfix)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// exprs reads expressions from in, either one per line or one for the entire
// input. Surrounding whitespace is removed from each.
func exprs(in io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimSpace(string(b))}, nil
	}
	var r []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		r = append(r, strings.TrimSpace(sc.Text()))
	}
	return r, sc.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

// check runs the self-test and returns the exit status.
func check(cfg checkConfig) int {
	m, err := selftest.NewMathJS(cfg.endpoint, selftest.WithRetries(cfg.retries))
	if err != nil {
		log.Fatal(err)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", cfg.seed)
	problems := selftest.GenerateN(rand.New(rand.NewSource(cfg.seed)), cfg.n)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()
	var logger *log.Logger
	if cfg.verbose {
		logger = log.New(os.Stderr, "", 0)
	}
	results, err := selftest.Check(ctx, m, problems, logger)
	if err != nil {
		log.Print(err)
		return 2
	}
	bad := selftest.Mismatches(results)
	for _, r := range bad {
		if r.Err != nil {
			fmt.Printf("%s: mathjs %g, calc error: %v\n", r.Problem, r.Want, r.Err)
		} else {
			fmt.Printf("%s: mathjs %g, calc %g\n", r.Problem, r.Want, r.Got)
		}
		if cfg.verbose {
			spew.Fdump(os.Stderr, r)
		}
	}
	fmt.Printf("%d of %d problems agree\n", len(results)-len(bad), len(results))
	if len(bad) > 0 {
		return 1
	}
	return 0
}
