package calc

import (
	"errors"
	"math/big"
	"strconv"
)

// Error categories. Every InputError matches exactly one of these with
// errors.Is.
var (
	// ErrMissingOperand is the category of operators without two operands and
	// of operand tokens that are not numbers.
	ErrMissingOperand = errors.New("missing or bad operand")
	// ErrDivisionByZero is the category of divisions by zero.
	ErrDivisionByZero = errors.New("division with 0")
	// ErrMissingOperator is the category of unbalanced parentheses.
	ErrMissingOperator = errors.New("missing operator or parenthesis")
	// ErrUnknownOperator is the category of operator lookups for symbols that
	// are not operators.
	ErrUnknownOperator = errors.New("operator not found")
	// ErrMalformed is the category of postfix sequences that do not evaluate
	// to exactly one value.
	ErrMalformed = errors.New("malformed expression")
)

// OperandError is an error indicating an operator applied to too few operands,
// or an operand token that is not a number. It implements InputError.
type OperandError struct {
	// Index is the position of the token in the postfix sequence.
	Index int
	// Token is the operator that was missing an operand, or the bad operand.
	Token string
	// Bad is whether Token is an operand which could not be parsed.
	Bad bool
}

func (err *OperandError) Error() string {
	if err.Bad {
		return errpos(err.Index, "bad operand "+strconv.Quote(err.Token))
	}
	return errpos(err.Index, "missing operand for "+strconv.Quote(err.Token))
}

func (err *OperandError) Pos() int {
	return err.Index
}

func (err *OperandError) Unwrap() error {
	return ErrMissingOperand
}

// DivisionByZeroError is an error indicating a division whose divisor is zero,
// including a zero raised to a negative power. It implements InputError.
type DivisionByZeroError struct {
	// Index is the position of the operator in the postfix sequence.
	Index int
	// Operator is the operator which divided by zero.
	Operator string
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Index, "division by zero in "+strconv.Quote(err.Operator))
}

func (err *DivisionByZeroError) Pos() int {
	return err.Index
}

func (err *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}

// BracketError is an error indicating an unbalanced parenthesis. It implements
// InputError.
type BracketError struct {
	// Index is the position of the parenthesis in the infix sequence.
	Index int
	// Left is the opening parenthesis that was never closed, if any.
	Left string
	// Right is the closing parenthesis that was never opened, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Index, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Index, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Index
}

func (err *BracketError) Unwrap() error {
	return ErrMissingOperator
}

// OperatorError is an error indicating a symbol which is not an operator. It
// implements InputError.
type OperatorError struct {
	// Index is the position of the symbol, or -1 if it was looked up outside
	// of a token sequence.
	Index int
	// Operator is the symbol that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	msg := "unknown operator " + strconv.Quote(err.Operator)
	if err.Index < 0 {
		return msg
	}
	return errpos(err.Index, msg)
}

func (err *OperatorError) Pos() int {
	return err.Index
}

func (err *OperatorError) Unwrap() error {
	return ErrUnknownOperator
}

// MalformedError is an error indicating a postfix sequence which left other
// than exactly one value on the evaluation stack. It implements InputError.
type MalformedError struct {
	// Index is the length of the postfix sequence.
	Index int
	// Count is the number of values that remained.
	Count int
}

func (err *MalformedError) Error() string {
	if err.Count == 0 {
		return errpos(err.Index, "no expression")
	}
	return errpos(err.Index, strconv.Itoa(err.Count)+" values with no operator between them")
}

func (err *MalformedError) Pos() int {
	return err.Index
}

func (err *MalformedError) Unwrap() error {
	return ErrMalformed
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain, such as a negative number to a fractional power.
// DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Func is the operator.
	Func string
}

func (err DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err DomainError) Unwrap() error {
	return big.ErrNaN{}
}

// errpos is a shortcut to create an error message with a token position.
func errpos(pos int, msg string) string {
	return "token " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input except DomainError implements InputError.
type InputError interface {
	error
	// Pos returns the 0-based index of the token that caused the error in the
	// token sequence being processed.
	Pos() int
}

var (
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*MalformedError)(nil)
)
