package selftest

import (
	"context"
	"log"
	"math"

	"github.com/zephyrtronium/calc"
)

// Result is the outcome of checking one problem.
type Result struct {
	// Problem is the expression that was checked.
	Problem string
	// Want is the oracle's answer.
	Want float64
	// Got is the calculator's answer. It is meaningless if Err is not nil.
	Got float64
	// Err is the calculator's error, if any.
	Err error
	// Clamped is whether Got is zero or infinite only because the exact
	// result is outside the range of float64.
	Clamped bool
	// OK is whether the answers agree.
	OK bool
}

// Check evaluates each problem with both the calculator and the oracle. If
// logger is not nil, each comparison is logged to it. An oracle error stops
// the check; the results up to that problem are returned with the error.
func Check(ctx context.Context, oracle Oracle, problems []string, logger *log.Logger) ([]Result, error) {
	results := make([]Result, 0, len(problems))
	for _, p := range problems {
		want, err := oracle.Evaluate(ctx, p)
		if err != nil {
			return results, err
		}
		got, clamped, err := eval(p)
		r := Result{
			Problem: p,
			Want:    want,
			Got:     got,
			Err:     err,
			Clamped: clamped,
			// The oracle works in float64 throughout, so an intermediate
			// overflow can make its answer NaN where ours is only out of
			// range at the end.
			OK: Compare(want, got, err) || clamped && math.IsNaN(want),
		}
		if logger != nil {
			if err != nil {
				logger.Printf("%s\n\toracle: %g\n\tcalc:   %v", p, want, err)
			} else {
				logger.Printf("%s\n\toracle: %g\n\tcalc:   %g", p, want, got)
			}
		}
		results = append(results, r)
	}
	return results, nil
}

// eval evaluates a problem and converts the result to float64, reporting
// whether the conversion overflowed or underflowed.
func eval(p string) (float64, bool, error) {
	if p == "" {
		return math.NaN(), false, nil
	}
	r, err := calc.NewContext().Eval(p)
	if err != nil {
		return 0, false, err
	}
	f, _ := r.Float64()
	clamped := !r.IsInf() && (math.IsInf(f, 0) || f == 0 && r.Sign() != 0)
	return f, clamped, nil
}

// Mismatches returns the results that are not OK.
func Mismatches(results []Result) []Result {
	var bad []Result
	for _, r := range results {
		if !r.OK {
			bad = append(bad, r)
		}
	}
	return bad
}

// Compare reports whether the calculator's answer got, err agrees with the
// oracle's answer want to eight significant digits. A division by zero agrees
// with an infinite or NaN answer. Compare sees only float64 values, so a NaN
// answer caused by the oracle overflowing never agrees here; Check accepts
// those when the calculator's own result was out of range.
func Compare(want, got float64, err error) bool {
	if err != nil {
		return calc.IsDivisionByZero(err) && (math.IsInf(want, 0) || math.IsNaN(want))
	}
	switch {
	case math.IsNaN(want), math.IsNaN(got):
		return false
	case want == got:
		return true
	case math.IsInf(want, 0), math.IsInf(got, 0):
		return false
	}
	d := math.Abs(want - got)
	return d <= 1e-12 || d <= 1e-7*math.Max(math.Abs(want), math.Abs(got))
}
