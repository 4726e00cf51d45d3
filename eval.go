package calc

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently, but it may be reused for any number of evaluations.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case precopt:
			ctx.prec = uint(opt)
		default:
			panic("calc: unknown option type")
		}
	}
	return &ctx
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval tokenizes, converts, and evaluates an infix expression. The result for
// the empty expression is nil with no error; the package-level Eval reports it
// as NaN instead.
func (ctx *Context) Eval(expr string) (*big.Float, error) {
	if expr == "" {
		return nil, nil
	}
	postfix, err := InfixToPostfix(Tokenize(expr))
	if err != nil {
		return nil, err
	}
	return ctx.EvalPostfix(postfix)
}

// EvalPostfix evaluates a sequence of tokens in postfix order. Each operator
// is applied to the two values below it on the stack, the deeper one being the
// left operand; every other token must be a base-10 number. If the sequence
// does not leave exactly one value, the error is a *MalformedError. The result
// is owned by the caller.
func (ctx *Context) EvalPostfix(postfix []string) (*big.Float, error) {
	ctx.stack = ctx.stack[:0]
	for i, tok := range postfix {
		if !IsOperator(tok) {
			v, ok := ctx.num(tok)
			if !ok {
				return nil, &OperandError{Index: i, Token: tok, Bad: true}
			}
			ctx.push().Set(v)
			continue
		}
		if len(ctx.stack) < 2 {
			return nil, &OperandError{Index: i, Token: tok}
		}
		op1 := ctx.pop()
		op2 := ctx.top()
		if err := ctx.apply(i, tok, op2, op1); err != nil {
			return nil, err
		}
	}
	if len(ctx.stack) != 1 {
		return nil, &MalformedError{Index: len(postfix), Count: len(ctx.stack)}
	}
	return new(big.Float).Copy(ctx.stack[0]), nil
}

// apply sets l to l op r. i is the position of op for error reporting.
func (ctx *Context) apply(i int, op string, l, r *big.Float) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		// Inf-Inf, 0*Inf, and friends after an overflow.
		if _, ok := p.(big.ErrNaN); ok {
			err = DomainError{X: new(big.Float).Copy(r), Func: op}
			return
		}
		panic(p)
	}()
	switch op {
	case "+":
		l.Add(l, r)
	case "-":
		l.Sub(l, r)
	case "*":
		l.Mul(l, r)
	case "/":
		if r.Sign() == 0 {
			return &DivisionByZeroError{Index: i, Operator: op}
		}
		l.Quo(l, r)
	case "^":
		return ctx.pow(i, l, r)
	default:
		return &OperatorError{Index: i, Operator: op}
	}
	return nil
}

// pow sets l to l^r.
func (ctx *Context) pow(i int, l, r *big.Float) error {
	switch {
	case r.Sign() == 0:
		// Including 0^0, as with math.Pow.
		l.SetInt64(1)
		return nil
	case l.Sign() == 0:
		if r.Sign() < 0 {
			return &DivisionByZeroError{Index: i, Operator: "^"}
		}
		l.SetInt64(0)
		return nil
	case l.IsInf() || r.IsInf() || overflows(l, r):
		// The result is zero or infinite depending only on the signs and
		// magnitudes, so float64 arithmetic gets it right.
		x, _ := l.Float64()
		y, _ := r.Float64()
		z := math.Pow(x, y)
		if math.IsNaN(z) {
			return DomainError{X: new(big.Float).Copy(l), Func: "^"}
		}
		l.SetFloat64(z)
		return nil
	}
	neg := false
	if l.Signbit() {
		if !r.IsInt() {
			return DomainError{X: new(big.Float).Copy(l), Func: "^"}
		}
		n, _ := r.Int(nil)
		neg = n.Bit(0) == 1
		l.Neg(l)
	}
	// Pow may return a different value than its first argument.
	l.Set(bigfloat.Pow(new(big.Float).SetPrec(ctx.prec), l, r))
	if neg {
		l.Neg(l)
	}
	return nil
}

// overflows reports whether x^y is too large or too small in magnitude to
// compute directly.
func overflows(x, y *big.Float) bool {
	var m big.Float
	e := x.MantExp(&m)
	f, _ := m.Float64()
	g, _ := y.Float64()
	return math.Abs(g*(float64(e)+math.Log2(math.Abs(f)))) > 1<<30
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future pushes.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text. The second result is false
// if the text is not a number.
func (ctx *Context) num(s string) (*big.Float, bool) {
	if r := ctx.nums[s]; r != nil {
		return r, true
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		// N.B. s is non-empty, otherwise we couldn't overflow.
		r = new(big.Float).SetInf(s[0] == '-')
	default:
		return nil, false
	}
	ctx.nums[s] = r
	return r, true
}

// Eval tokenizes, converts, and evaluates an infix expression. The result for
// the empty expression is NaN with no error. Results outside the range of
// float64 are infinite, or zero if they are too small in magnitude.
func Eval(expr string) (float64, error) {
	if expr == "" {
		return math.NaN(), nil
	}
	r, err := NewContext().Eval(expr)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

// EvalPostfix evaluates a sequence of tokens in postfix order. See
// Context.EvalPostfix for details.
func EvalPostfix(postfix []string) (float64, error) {
	r, err := NewContext().EvalPostfix(postfix)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

// IsDivisionByZero reports whether err resulted from a division by zero.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}
