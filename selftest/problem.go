package selftest

import (
	"math/rand"
	"strings"

	"github.com/zephyrtronium/calc"
)

// Generate creates a random problem of 11 to 21 characters alternating
// between digits from 1 to 8 and operators, always starting and ending with a
// digit. Problems never contain parentheses, zeros, or adjacent digits, so
// every problem is a valid expression.
func Generate(r *rand.Rand) string {
	var b strings.Builder
	n := r.Intn(10) + 10
	for i := 0; i <= n; i++ {
		if i%2 == 0 {
			b.WriteByte(byte('1' + r.Intn(8)))
		} else {
			b.WriteByte(calc.Operators[r.Intn(len(calc.Operators))])
		}
	}
	if n%2 == 1 {
		// Ended on an operator.
		b.WriteByte(byte('1' + r.Intn(8)))
	}
	return b.String()
}

// GenerateN creates n random problems.
func GenerateN(r *rand.Rand, n int) []string {
	p := make([]string, n)
	for i := range p {
		p[i] = Generate(r)
	}
	return p
}
