package calc

import (
	"strconv"
	"strings"
)

// Operators contains the symbols of the binary operators understood by the
// converter and the evaluator.
const Operators = "+-*/^"

// Assoc is the associativity of an operator.
type Assoc int8

const (
	// Left groups repeated applications left to right: a-b-c is (a-b)-c.
	Left Assoc = iota
	// Right groups repeated applications right to left: a^b^c is a^(b^c).
	Right
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "Assoc(" + strconv.Itoa(int(a)) + ")"
	}
}

// Op describes a binary operator.
type Op struct {
	// Symbol is the operator token.
	Symbol string
	// Prec is the precedence value. Higher is more binding.
	Prec int8
	// Assoc is the associativity among operators of equal precedence.
	Assoc Assoc
}

var optable = [...]Op{
	{"+", 2, Left},
	{"-", 2, Left},
	{"*", 3, Left},
	{"/", 3, Left},
	{"^", 4, Right},
}

// IsOperator returns whether tok is one of the operator symbols in Operators.
func IsOperator(tok string) bool {
	return len(tok) == 1 && strings.Contains(Operators, tok)
}

// Lookup gets the operator metadata for a symbol. If the symbol is not an
// operator, the error is an *OperatorError.
func Lookup(symbol string) (Op, error) {
	for _, op := range optable {
		if op.Symbol == symbol {
			return op, nil
		}
	}
	return Op{}, &OperatorError{Index: -1, Operator: symbol}
}

// yields returns whether the operator op, already on the conversion stack,
// must be output before pushing the incoming operator tok.
func (op Op) yields(tok Op) bool {
	if tok.Assoc == Right {
		return op.Prec > tok.Prec
	}
	return op.Prec >= tok.Prec
}
